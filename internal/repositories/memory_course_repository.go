package repositories

import (
	"context"
	"sync"

	"github.com/courseatlas/backend/internal/models"
	"github.com/courseatlas/backend/internal/services"
)

// memoryCourseRepository keeps the whole catalog as an ordered slice in
// process memory. A RWMutex serializes operations so the store only ever
// sees one mutation at a time; reads and writes exchange deep copies so no
// caller holds an alias into the stored tree.
type memoryCourseRepository struct {
	mu      sync.RWMutex
	courses []models.Course
}

// NewMemoryCourseRepository creates an in-memory course repository holding
// the given seed catalog.
func NewMemoryCourseRepository(seed []models.Course) *memoryCourseRepository {
	repo := &memoryCourseRepository{
		courses: make([]models.Course, 0, len(seed)),
	}
	for _, course := range seed {
		repo.courses = append(repo.courses, course.Clone())
	}
	return repo
}

// GetAll retrieves every course in catalog order
func (r *memoryCourseRepository) GetAll(ctx context.Context) ([]models.Course, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	courses := make([]models.Course, 0, len(r.courses))
	for _, course := range r.courses {
		courses = append(courses, course.Clone())
	}
	return courses, nil
}

// GetByID retrieves one course by its identifier
func (r *memoryCourseRepository) GetByID(ctx context.Context, id string) (*models.Course, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.courses {
		if r.courses[i].ID == id {
			course := r.courses[i].Clone()
			return &course, nil
		}
	}
	return nil, services.ErrCourseNotFound
}

// Create appends a new course to the catalog
func (r *memoryCourseRepository) Create(ctx context.Context, course *models.Course) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.courses = append(r.courses, course.Clone())
	return nil
}

// Update replaces the stored course with the given value, matched by ID
func (r *memoryCourseRepository) Update(ctx context.Context, course *models.Course) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.courses {
		if r.courses[i].ID == course.ID {
			r.courses[i] = course.Clone()
			return nil
		}
	}
	return services.ErrCourseNotFound
}

// Delete removes a course and everything it owns
func (r *memoryCourseRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.courses {
		if r.courses[i].ID == id {
			r.courses = append(r.courses[:i], r.courses[i+1:]...)
			return nil
		}
	}
	return services.ErrCourseNotFound
}

// ReplaceAll discards the current catalog and stores the given courses in order
func (r *memoryCourseRepository) ReplaceAll(ctx context.Context, courses []models.Course) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.courses = make([]models.Course, 0, len(courses))
	for _, course := range courses {
		r.courses = append(r.courses, course.Clone())
	}
	return nil
}

// Count returns the number of courses in the catalog
func (r *memoryCourseRepository) Count(ctx context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.courses), nil
}
