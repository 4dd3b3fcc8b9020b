package services

import (
	"context"
	"fmt"
	"time"

	"github.com/courseatlas/backend/internal/models"
	"go.uber.org/zap"
)

type moduleService struct {
	repo   CourseRepository
	ids    *IDAllocator
	logger *zap.Logger
}

// NewModuleService creates a new module service
func NewModuleService(repo CourseRepository, ids *IDAllocator, logger *zap.Logger) *moduleService {
	return &moduleService{
		repo:   repo,
		ids:    ids,
		logger: logger,
	}
}

// List retrieves all modules of a course
func (s *moduleService) List(ctx context.Context, courseID string) ([]models.Module, error) {
	course, err := s.repo.GetByID(ctx, courseID)
	if err != nil {
		return nil, err
	}
	if course.Modules == nil {
		return []models.Module{}, nil
	}
	return course.Modules, nil
}

// Get retrieves one module by its course/module identifier chain
func (s *moduleService) Get(ctx context.Context, courseID, moduleID string) (*models.Module, error) {
	course, err := s.repo.GetByID(ctx, courseID)
	if err != nil {
		return nil, err
	}

	module := course.ModuleByID(moduleID)
	if module == nil {
		return nil, ErrModuleNotFound
	}
	return module, nil
}

// Create validates the request, resolves the course and appends a new module.
//
// Order defaults to one past the current sibling count, and every new module
// gets a default "<title> Assessment" test with no questions.
func (s *moduleService) Create(ctx context.Context, courseID string, req *models.CreateModuleRequest) (*models.Module, error) {
	if req.Title == "" {
		return nil, validationErrorf("module title is required")
	}

	course, err := s.repo.GetByID(ctx, courseID)
	if err != nil {
		return nil, err
	}

	module := models.Module{
		ID:          s.ids.Next(IDKindModule),
		Title:       req.Title,
		Description: req.Description,
		Duration:    req.Duration,
		Order:       len(course.Modules) + 1,
		IsPublished: req.IsPublished,
		Topics:      []models.Topic{},
		Test: models.Test{
			Title:     req.Title + " Assessment",
			Questions: []models.Question{},
		},
		CreatedAt: time.Now().UTC(),
	}
	if req.Order != nil {
		module.Order = *req.Order
	}

	course.Modules = append(course.Modules, module)

	if err := s.repo.Update(ctx, course); err != nil {
		s.logger.Error("failed to create module", zap.Error(err))
		return nil, fmt.Errorf("failed to create module: %w", err)
	}

	return &module, nil
}

// Update applies the fields present in the request to an existing module.
// Provided-but-zero values (empty string, 0, false) are applied; absent
// fields keep their prior values.
func (s *moduleService) Update(ctx context.Context, courseID, moduleID string, req *models.UpdateModuleRequest) (*models.Module, error) {
	course, err := s.repo.GetByID(ctx, courseID)
	if err != nil {
		return nil, err
	}

	module := course.ModuleByID(moduleID)
	if module == nil {
		return nil, ErrModuleNotFound
	}

	if req.Title != nil {
		module.Title = *req.Title
	}
	if req.Description != nil {
		module.Description = *req.Description
	}
	if req.Duration != nil {
		module.Duration = *req.Duration
	}
	if req.Order != nil {
		module.Order = *req.Order
	}
	if req.IsPublished != nil {
		module.IsPublished = *req.IsPublished
	}

	if err := s.repo.Update(ctx, course); err != nil {
		s.logger.Error("failed to update module", zap.Error(err))
		return nil, fmt.Errorf("failed to update module: %w", err)
	}

	return module, nil
}

// Delete removes a module and cascades to its topics, test and questions.
func (s *moduleService) Delete(ctx context.Context, courseID, moduleID string) error {
	course, err := s.repo.GetByID(ctx, courseID)
	if err != nil {
		return err
	}

	index := -1
	for i := range course.Modules {
		if course.Modules[i].ID == moduleID {
			index = i
			break
		}
	}
	if index == -1 {
		return ErrModuleNotFound
	}

	course.Modules = append(course.Modules[:index], course.Modules[index+1:]...)

	if err := s.repo.Update(ctx, course); err != nil {
		s.logger.Error("failed to delete module", zap.Error(err))
		return fmt.Errorf("failed to delete module: %w", err)
	}
	return nil
}
