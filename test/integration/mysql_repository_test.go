package integration

import (
	"context"
	"database/sql"
	"testing"

	"github.com/courseatlas/backend/internal/config"
	"github.com/courseatlas/backend/internal/models"
	"github.com/courseatlas/backend/internal/repositories"
	"github.com/courseatlas/backend/internal/services"
	_ "github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const coursesSchema = `
CREATE TABLE IF NOT EXISTS courses (
	id VARCHAR(64) NOT NULL,
	title VARCHAR(255) NOT NULL,
	description TEXT NOT NULL,
	category VARCHAR(100) NOT NULL DEFAULT 'Science',
	icon VARCHAR(16) NOT NULL DEFAULT '',
	modules JSON NOT NULL,
	created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
	updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
	PRIMARY KEY (id)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`

// setupTestDB connects to the test database and prepares an empty courses
// table. Tests are skipped when no database is reachable.
func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping database integration test in short mode")
	}

	cfg, err := config.LoadTestConfig()
	require.NoError(t, err)

	dsn := cfg.DSN()
	if cfg.Database.Host == "" {
		dsn = "root:password@tcp(localhost:3306)/course_test?parseTime=true&charset=utf8mb4"
	}

	db, err := sql.Open("mysql", dsn)
	require.NoError(t, err)
	if err := db.Ping(); err != nil {
		db.Close()
		t.Skipf("test database not available: %v", err)
	}

	_, err = db.Exec(coursesSchema)
	require.NoError(t, err)
	_, err = db.Exec("DELETE FROM courses")
	require.NoError(t, err)

	t.Cleanup(func() {
		db.Exec("DELETE FROM courses")
		db.Close()
	})
	return db
}

func TestIntegration_MySQLRepository(t *testing.T) {
	db := setupTestDB(t)
	logger, err := zap.NewDevelopment()
	require.NoError(t, err)
	repo := repositories.NewMySQLCourseRepository(db, logger)
	ctx := context.Background()

	t.Run("CreateAndGet", func(t *testing.T) {
		seed := models.SeedCourses()
		require.NoError(t, repo.Create(ctx, &seed[0]))

		course, err := repo.GetByID(ctx, "1")
		require.NoError(t, err)
		assert.Equal(t, "Introduction to Biology", course.Title)
		require.Len(t, course.Modules, 1)
		require.Len(t, course.Modules[0].Topics, 1)
		assert.True(t, course.Modules[0].Topics[0].Completed)
		require.Len(t, course.Modules[0].Test.Questions, 1)
	})

	t.Run("Update", func(t *testing.T) {
		course, err := repo.GetByID(ctx, "1")
		require.NoError(t, err)

		course.Title = "Modern Biology"
		course.Modules[0].Topics[0].Completed = false
		require.NoError(t, repo.Update(ctx, course))

		updated, err := repo.GetByID(ctx, "1")
		require.NoError(t, err)
		assert.Equal(t, "Modern Biology", updated.Title)
		assert.False(t, updated.Modules[0].Topics[0].Completed)
	})

	t.Run("ReplaceAllAndCount", func(t *testing.T) {
		catalog := []models.Course{
			{ID: "10", Title: "Physics", Description: "Motion", Category: "Science", Icon: "⚛️", Modules: []models.Module{}},
			{ID: "11", Title: "Chemistry", Description: "Atoms", Category: "Science", Icon: "🧪", Modules: []models.Module{}},
		}
		require.NoError(t, repo.ReplaceAll(ctx, catalog))

		count, err := repo.Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, 2, count)

		all, err := repo.GetAll(ctx)
		require.NoError(t, err)
		require.Len(t, all, 2)
	})

	t.Run("Delete", func(t *testing.T) {
		require.NoError(t, repo.Delete(ctx, "10"))

		_, err := repo.GetByID(ctx, "10")
		assert.ErrorIs(t, err, services.ErrCourseNotFound)

		err = repo.Delete(ctx, "10")
		assert.ErrorIs(t, err, services.ErrCourseNotFound)
	})
}

func TestIntegration_MySQLServiceFlow(t *testing.T) {
	db := setupTestDB(t)
	logger, err := zap.NewDevelopment()
	require.NoError(t, err)
	repo := repositories.NewMySQLCourseRepository(db, logger)

	ids := services.NewIDAllocator()
	ctx := context.Background()

	courseSvc := services.NewCourseService(repo, ids, logger)
	require.NoError(t, courseSvc.Seed(ctx, models.SeedCourses()))
	ids.ObserveCourses(models.SeedCourses())

	moduleSvc := services.NewModuleService(repo, ids, logger)
	module, err := moduleSvc.Create(ctx, "1", &models.CreateModuleRequest{Title: "Genetics"})
	require.NoError(t, err)
	assert.Equal(t, "2", module.ID)

	// A fresh allocator must continue past persisted IDs after observing them
	restarted := services.NewIDAllocator()
	all, err := repo.GetAll(ctx)
	require.NoError(t, err)
	restarted.ObserveCourses(all)

	later, err := services.NewModuleService(repo, restarted, logger).Create(ctx, "1", &models.CreateModuleRequest{Title: "Evolution"})
	require.NoError(t, err)
	assert.Equal(t, "3", later.ID)
}

func BenchmarkMySQLGetAll(b *testing.B) {
	if testing.Short() {
		b.Skip("skipping database benchmark in short mode")
	}

	cfg, err := config.LoadTestConfig()
	if err != nil {
		b.Fatal(err)
	}
	dsn := cfg.DSN()
	if cfg.Database.Host == "" {
		dsn = "root:password@tcp(localhost:3306)/course_test?parseTime=true&charset=utf8mb4"
	}
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		b.Fatal(err)
	}
	defer db.Close()
	if err := db.Ping(); err != nil {
		b.Skipf("test database not available: %v", err)
	}
	if _, err := db.Exec(coursesSchema); err != nil {
		b.Fatal(err)
	}

	logger := zap.NewNop()
	repo := repositories.NewMySQLCourseRepository(db, logger)
	ctx := context.Background()
	if err := repo.ReplaceAll(ctx, models.SeedCourses()); err != nil {
		b.Fatal(err)
	}

	for i := 0; i < b.N; i++ {
		if _, err := repo.GetAll(ctx); err != nil {
			b.Fatal(err)
		}
	}
}
