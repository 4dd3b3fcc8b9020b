package repositories

import (
	"context"
	"testing"

	"github.com/courseatlas/backend/internal/models"
	"github.com/courseatlas/backend/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedCatalog() []models.Course {
	return []models.Course{
		{
			ID:          "1",
			Title:       "Introduction to Biology",
			Description: "The science of life",
			Category:    "Science",
			Icon:        "🧬",
			Modules: []models.Module{
				{
					ID:     "1",
					Title:  "Biology Basics",
					Topics: []models.Topic{{ID: "1", Title: "What is Biology?"}},
					Test: models.Test{
						Title: "Biology Assessment",
						Questions: []models.Question{
							{ID: "1", Question: "q", Options: []string{"a", "b", "c", "d"}, CorrectAnswer: 1},
						},
					},
				},
			},
		},
	}
}

func TestMemoryCourseRepository_GetAll(t *testing.T) {
	repo := NewMemoryCourseRepository(seedCatalog())

	courses, err := repo.GetAll(context.Background())
	require.NoError(t, err)
	require.Len(t, courses, 1)
	assert.Equal(t, "Introduction to Biology", courses[0].Title)

	empty := NewMemoryCourseRepository(nil)
	courses, err = empty.GetAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, courses)
}

func TestMemoryCourseRepository_GetByID(t *testing.T) {
	repo := NewMemoryCourseRepository(seedCatalog())

	course, err := repo.GetByID(context.Background(), "1")
	require.NoError(t, err)
	assert.Equal(t, "1", course.ID)
	assert.Len(t, course.Modules, 1)

	_, err = repo.GetByID(context.Background(), "999")
	assert.ErrorIs(t, err, services.ErrCourseNotFound)
}

func TestMemoryCourseRepository_Create(t *testing.T) {
	repo := NewMemoryCourseRepository(seedCatalog())

	err := repo.Create(context.Background(), &models.Course{ID: "2", Title: "Chemistry"})
	require.NoError(t, err)

	count, err := repo.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	// Catalog order is preserved
	courses, _ := repo.GetAll(context.Background())
	assert.Equal(t, "2", courses[1].ID)
}

func TestMemoryCourseRepository_Update(t *testing.T) {
	repo := NewMemoryCourseRepository(seedCatalog())

	course, err := repo.GetByID(context.Background(), "1")
	require.NoError(t, err)
	course.Title = "Advanced Biology"
	course.Modules = append(course.Modules, models.Module{ID: "2", Title: "Ecology"})

	require.NoError(t, repo.Update(context.Background(), course))

	stored, err := repo.GetByID(context.Background(), "1")
	require.NoError(t, err)
	assert.Equal(t, "Advanced Biology", stored.Title)
	assert.Len(t, stored.Modules, 2)

	err = repo.Update(context.Background(), &models.Course{ID: "999"})
	assert.ErrorIs(t, err, services.ErrCourseNotFound)
}

func TestMemoryCourseRepository_Delete(t *testing.T) {
	repo := NewMemoryCourseRepository(seedCatalog())

	assert.ErrorIs(t, repo.Delete(context.Background(), "999"), services.ErrCourseNotFound)

	require.NoError(t, repo.Delete(context.Background(), "1"))
	count, _ := repo.Count(context.Background())
	assert.Equal(t, 0, count)
}

func TestMemoryCourseRepository_ReplaceAll(t *testing.T) {
	repo := NewMemoryCourseRepository(seedCatalog())

	replacement := []models.Course{
		{ID: "10", Title: "Physics"},
		{ID: "11", Title: "Chemistry"},
	}
	require.NoError(t, repo.ReplaceAll(context.Background(), replacement))

	courses, err := repo.GetAll(context.Background())
	require.NoError(t, err)
	require.Len(t, courses, 2)
	assert.Equal(t, "10", courses[0].ID)

	_, err = repo.GetByID(context.Background(), "1")
	assert.ErrorIs(t, err, services.ErrCourseNotFound)
}

func TestMemoryCourseRepository_NoAliasing(t *testing.T) {
	seed := seedCatalog()
	repo := NewMemoryCourseRepository(seed)

	// Mutating the seed slice after construction does not touch the store
	seed[0].Title = "mutated"
	stored, err := repo.GetByID(context.Background(), "1")
	require.NoError(t, err)
	assert.Equal(t, "Introduction to Biology", stored.Title)

	// Mutating a read result does not touch the store
	stored.Modules[0].Test.Questions[0].CorrectAnswer = 3
	stored.Modules[0].Topics[0].Title = "mutated"
	again, err := repo.GetByID(context.Background(), "1")
	require.NoError(t, err)
	assert.Equal(t, 1, again.Modules[0].Test.Questions[0].CorrectAnswer)
	assert.Equal(t, "What is Biology?", again.Modules[0].Topics[0].Title)

	// Mutating a written value after Update does not touch the store
	course := again.Clone()
	require.NoError(t, repo.Update(context.Background(), &course))
	course.Modules[0].Title = "mutated"
	final, err := repo.GetByID(context.Background(), "1")
	require.NoError(t, err)
	assert.Equal(t, "Biology Basics", final.Modules[0].Title)
}
