package services

import (
	"context"
	"fmt"

	"github.com/courseatlas/backend/internal/models"
	"go.uber.org/zap"
)

type topicService struct {
	repo   CourseRepository
	ids    *IDAllocator
	logger *zap.Logger
}

// NewTopicService creates a new topic service
func NewTopicService(repo CourseRepository, ids *IDAllocator, logger *zap.Logger) *topicService {
	return &topicService{
		repo:   repo,
		ids:    ids,
		logger: logger,
	}
}

// List retrieves all topics of a module
func (s *topicService) List(ctx context.Context, courseID, moduleID string) ([]models.Topic, error) {
	course, err := s.repo.GetByID(ctx, courseID)
	if err != nil {
		return nil, err
	}

	module := course.ModuleByID(moduleID)
	if module == nil {
		return nil, ErrModuleNotFound
	}
	if module.Topics == nil {
		return []models.Topic{}, nil
	}
	return module.Topics, nil
}

// Get retrieves one topic by its course/module/topic identifier chain
func (s *topicService) Get(ctx context.Context, courseID, moduleID, topicID string) (*models.Topic, error) {
	course, err := s.repo.GetByID(ctx, courseID)
	if err != nil {
		return nil, err
	}

	module := course.ModuleByID(moduleID)
	if module == nil {
		return nil, ErrModuleNotFound
	}

	topic := module.TopicByID(topicID)
	if topic == nil {
		return nil, ErrTopicNotFound
	}
	return topic, nil
}

// Create validates the request, resolves the module and appends a new topic.
// Content defaults to an empty main text with no sections.
func (s *topicService) Create(ctx context.Context, courseID, moduleID string, req *models.CreateTopicRequest) (*models.Topic, error) {
	if req.Title == "" {
		return nil, validationErrorf("topic title is required")
	}

	course, err := s.repo.GetByID(ctx, courseID)
	if err != nil {
		return nil, err
	}

	module := course.ModuleByID(moduleID)
	if module == nil {
		return nil, ErrModuleNotFound
	}

	topic := models.Topic{
		ID:        s.ids.Next(IDKindTopic),
		Title:     req.Title,
		Completed: req.Completed,
		Content: models.TopicContent{
			Main:     "",
			Sections: []models.ContentSection{},
		},
	}
	if req.Content != nil {
		topic.Content = *req.Content
		if topic.Content.Sections == nil {
			topic.Content.Sections = []models.ContentSection{}
		}
	}

	module.Topics = append(module.Topics, topic)

	if err := s.repo.Update(ctx, course); err != nil {
		s.logger.Error("failed to create topic", zap.Error(err))
		return nil, fmt.Errorf("failed to create topic: %w", err)
	}

	return &topic, nil
}

// SetCompleted overwrites a topic's completed flag, leaving every other
// field untouched.
func (s *topicService) SetCompleted(ctx context.Context, courseID, moduleID, topicID string, completed bool) (*models.Topic, error) {
	course, err := s.repo.GetByID(ctx, courseID)
	if err != nil {
		return nil, err
	}

	module := course.ModuleByID(moduleID)
	if module == nil {
		return nil, ErrModuleNotFound
	}

	topic := module.TopicByID(topicID)
	if topic == nil {
		return nil, ErrTopicNotFound
	}

	topic.Completed = completed

	if err := s.repo.Update(ctx, course); err != nil {
		s.logger.Error("failed to update topic", zap.Error(err))
		return nil, fmt.Errorf("failed to update topic: %w", err)
	}

	return topic, nil
}
