package services

import (
	"context"
	"fmt"

	"github.com/courseatlas/backend/internal/models"
	"go.uber.org/zap"
)

// Defaults applied when a course is created without them.
const (
	defaultCourseCategory = "Science"
	defaultCourseIcon     = "📚"
)

type courseService struct {
	repo   CourseRepository
	ids    *IDAllocator
	logger *zap.Logger
}

// NewCourseService creates a new course service
func NewCourseService(repo CourseRepository, ids *IDAllocator, logger *zap.Logger) *courseService {
	return &courseService{
		repo:   repo,
		ids:    ids,
		logger: logger,
	}
}

// List retrieves all courses in catalog order
func (s *courseService) List(ctx context.Context) ([]models.Course, error) {
	courses, err := s.repo.GetAll(ctx)
	if err != nil {
		s.logger.Error("failed to list courses", zap.Error(err))
		return nil, fmt.Errorf("failed to list courses: %w", err)
	}
	if courses == nil {
		courses = []models.Course{}
	}
	return courses, nil
}

// Get retrieves one course by ID
func (s *courseService) Get(ctx context.Context, courseID string) (*models.Course, error) {
	return s.repo.GetByID(ctx, courseID)
}

// Create validates the request, allocates an identifier and appends a new
// course with an empty module list.
//
// Title and description are required; category and icon fall back to
// defaults when omitted.
func (s *courseService) Create(ctx context.Context, req *models.CreateCourseRequest) (*models.Course, error) {
	if req.Title == "" || req.Description == "" {
		return nil, validationErrorf("title and description are required")
	}

	course := &models.Course{
		ID:          s.ids.Next(IDKindCourse),
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		Icon:        req.Icon,
		Modules:     []models.Module{},
	}
	if course.Category == "" {
		course.Category = defaultCourseCategory
	}
	if course.Icon == "" {
		course.Icon = defaultCourseIcon
	}

	if err := s.repo.Create(ctx, course); err != nil {
		s.logger.Error("failed to create course", zap.Error(err))
		return nil, fmt.Errorf("failed to create course: %w", err)
	}

	return course, nil
}

// Update applies the fields present in the request to an existing course.
// Absent fields keep their prior values; a field explicitly set to its zero
// value (for example an empty description) is applied.
func (s *courseService) Update(ctx context.Context, courseID string, req *models.UpdateCourseRequest) (*models.Course, error) {
	course, err := s.repo.GetByID(ctx, courseID)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		course.Title = *req.Title
	}
	if req.Description != nil {
		course.Description = *req.Description
	}
	if req.Category != nil {
		course.Category = *req.Category
	}
	if req.Icon != nil {
		course.Icon = *req.Icon
	}

	if err := s.repo.Update(ctx, course); err != nil {
		s.logger.Error("failed to update course", zap.Error(err))
		return nil, fmt.Errorf("failed to update course: %w", err)
	}

	return course, nil
}

// Delete removes a course and, with it, all of its modules, topics, tests
// and questions.
func (s *courseService) Delete(ctx context.Context, courseID string) error {
	return s.repo.Delete(ctx, courseID)
}

// Seed replaces the whole catalog with the given courses.
func (s *courseService) Seed(ctx context.Context, courses []models.Course) error {
	if len(courses) == 0 {
		return validationErrorf("provide a non-empty array of course objects")
	}

	if err := s.repo.ReplaceAll(ctx, courses); err != nil {
		s.logger.Error("failed to seed courses", zap.Error(err))
		return fmt.Errorf("failed to seed courses: %w", err)
	}
	return nil
}
