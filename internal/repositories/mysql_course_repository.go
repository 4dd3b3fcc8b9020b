package repositories

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/courseatlas/backend/internal/models"
	"github.com/courseatlas/backend/internal/services"
	"go.uber.org/zap"
)

// mysqlCourseRepository stores one row per course: the scalar columns plus
// the whole module/topic/test/question tree marshaled into a JSON column.
type mysqlCourseRepository struct {
	db     *sql.DB
	logger *zap.Logger
}

// NewMySQLCourseRepository creates a MySQL-backed course repository
func NewMySQLCourseRepository(db *sql.DB, logger *zap.Logger) *mysqlCourseRepository {
	return &mysqlCourseRepository{
		db:     db,
		logger: logger,
	}
}

// scanCourse reads one course row, decoding the modules JSON document.
func scanCourse(scan func(dest ...any) error) (*models.Course, error) {
	var course models.Course
	var modules []byte
	if err := scan(
		&course.ID,
		&course.Title,
		&course.Description,
		&course.Category,
		&course.Icon,
		&modules,
	); err != nil {
		return nil, err
	}

	if err := json.Unmarshal(modules, &course.Modules); err != nil {
		return nil, fmt.Errorf("failed to decode modules: %w", err)
	}
	if course.Modules == nil {
		course.Modules = []models.Module{}
	}
	return &course, nil
}

// GetAll retrieves every course in catalog order
func (r *mysqlCourseRepository) GetAll(ctx context.Context) ([]models.Course, error) {
	query := `
		SELECT id, title, description, category, icon, modules
		FROM courses
		ORDER BY created_at, id
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		r.logger.Error("failed to query courses", zap.Error(err))
		return nil, fmt.Errorf("failed to query courses: %w", err)
	}
	defer rows.Close()

	var courses []models.Course
	for rows.Next() {
		course, err := scanCourse(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("failed to scan course: %w", err)
		}
		courses = append(courses, *course)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return courses, nil
}

// GetByID retrieves one course by its identifier
func (r *mysqlCourseRepository) GetByID(ctx context.Context, id string) (*models.Course, error) {
	query := `
		SELECT id, title, description, category, icon, modules
		FROM courses
		WHERE id = ?
		LIMIT 1
	`

	course, err := scanCourse(r.db.QueryRowContext(ctx, query, id).Scan)
	if err == sql.ErrNoRows {
		return nil, services.ErrCourseNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get course by id: %w", err)
	}

	return course, nil
}

// Create appends a new course to the catalog
func (r *mysqlCourseRepository) Create(ctx context.Context, course *models.Course) error {
	modules, err := json.Marshal(course.Modules)
	if err != nil {
		return fmt.Errorf("failed to encode modules: %w", err)
	}

	query := `
		INSERT INTO courses (id, title, description, category, icon, modules)
		VALUES (?, ?, ?, ?, ?, ?)
	`

	if _, err := r.db.ExecContext(ctx, query,
		course.ID,
		course.Title,
		course.Description,
		course.Category,
		course.Icon,
		modules,
	); err != nil {
		return fmt.Errorf("failed to create course: %w", err)
	}

	return nil
}

// Update replaces the stored course with the given value, matched by ID
func (r *mysqlCourseRepository) Update(ctx context.Context, course *models.Course) error {
	modules, err := json.Marshal(course.Modules)
	if err != nil {
		return fmt.Errorf("failed to encode modules: %w", err)
	}

	query := `
		UPDATE courses
		SET title = ?, description = ?, category = ?, icon = ?, modules = ?
		WHERE id = ?
	`

	result, err := r.db.ExecContext(ctx, query,
		course.Title,
		course.Description,
		course.Category,
		course.Icon,
		modules,
		course.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update course: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return services.ErrCourseNotFound
	}

	return nil
}

// Delete removes a course and everything it owns
func (r *mysqlCourseRepository) Delete(ctx context.Context, id string) error {
	query := "DELETE FROM courses WHERE id = ?"

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete course: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return services.ErrCourseNotFound
	}

	return nil
}

// ReplaceAll discards the current catalog and stores the given courses in
// order, within one transaction.
func (r *mysqlCourseRepository) ReplaceAll(ctx context.Context, courses []models.Course) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM courses"); err != nil {
		return fmt.Errorf("failed to clear courses: %w", err)
	}

	query := `
		INSERT INTO courses (id, title, description, category, icon, modules)
		VALUES (?, ?, ?, ?, ?, ?)
	`
	for _, course := range courses {
		modules, err := json.Marshal(course.Modules)
		if err != nil {
			return fmt.Errorf("failed to encode modules: %w", err)
		}
		if _, err := tx.ExecContext(ctx, query,
			course.ID,
			course.Title,
			course.Description,
			course.Category,
			course.Icon,
			modules,
		); err != nil {
			return fmt.Errorf("failed to insert course: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// Count returns the number of courses in the catalog
func (r *mysqlCourseRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM courses").Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count courses: %w", err)
	}
	return count, nil
}
