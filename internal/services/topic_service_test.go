package services

import (
	"context"
	"testing"

	"github.com/courseatlas/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestTopicService_List(t *testing.T) {
	tests := []struct {
		name          string
		courseID      string
		moduleID      string
		expectedError error
		expectedCount int
	}{
		{name: "success", courseID: "1", moduleID: "1", expectedCount: 1},
		{name: "course not found", courseID: "999", moduleID: "1", expectedError: ErrCourseNotFound},
		{name: "module not found", courseID: "1", moduleID: "999", expectedError: ErrModuleNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, _ := zap.NewDevelopment()
			svc := NewTopicService(newMockRepo(sampleCourse()), NewIDAllocator(), logger)

			topics, err := svc.List(context.Background(), tt.courseID, tt.moduleID)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
			} else {
				assert.NoError(t, err)
				assert.Len(t, topics, tt.expectedCount)
			}
		})
	}
}

func TestTopicService_Get(t *testing.T) {
	logger, _ := zap.NewDevelopment()
	svc := NewTopicService(newMockRepo(sampleCourse()), NewIDAllocator(), logger)

	topic, err := svc.Get(context.Background(), "1", "1", "1")
	assert.NoError(t, err)
	assert.Equal(t, "What is Biology?", topic.Title)
	assert.True(t, topic.Completed)

	_, err = svc.Get(context.Background(), "1", "1", "999")
	assert.ErrorIs(t, err, ErrTopicNotFound)
}

func TestTopicService_Create(t *testing.T) {
	tests := []struct {
		name          string
		req           *models.CreateTopicRequest
		expectedError bool
		check         func(t *testing.T, topic *models.Topic)
	}{
		{
			name: "success with default content",
			req:  &models.CreateTopicRequest{Title: "Cell Membranes"},
			check: func(t *testing.T, topic *models.Topic) {
				assert.Equal(t, "2", topic.ID)
				assert.False(t, topic.Completed)
				assert.Equal(t, "", topic.Content.Main)
				assert.NotNil(t, topic.Content.Sections)
				assert.Empty(t, topic.Content.Sections)
			},
		},
		{
			name: "success with explicit content",
			req: &models.CreateTopicRequest{
				Title: "Osmosis",
				Content: &models.TopicContent{
					Main: "Water moves across membranes",
					Sections: []models.ContentSection{
						{Title: "Overview", Content: "..."},
					},
				},
			},
			check: func(t *testing.T, topic *models.Topic) {
				assert.Equal(t, "Water moves across membranes", topic.Content.Main)
				assert.Len(t, topic.Content.Sections, 1)
			},
		},
		{
			name:          "missing title",
			req:           &models.CreateTopicRequest{},
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, _ := zap.NewDevelopment()
			repo := newMockRepo(sampleCourse())
			svc := NewTopicService(repo, NewIDAllocator(), logger)

			topic, err := svc.Create(context.Background(), "1", "1", tt.req)

			if tt.expectedError {
				var ve *ValidationError
				assert.ErrorAs(t, err, &ve)
			} else {
				assert.NoError(t, err)
				tt.check(t, topic)

				stored, _ := repo.GetByID(context.Background(), "1")
				assert.Len(t, stored.Modules[0].Topics, 2)
			}
		})
	}
}

func TestTopicService_SetCompleted(t *testing.T) {
	logger, _ := zap.NewDevelopment()
	repo := newMockRepo(sampleCourse())
	svc := NewTopicService(repo, NewIDAllocator(), logger)

	topic, err := svc.SetCompleted(context.Background(), "1", "1", "1", false)
	assert.NoError(t, err)
	assert.False(t, topic.Completed)
	// Everything else is untouched
	assert.Equal(t, "What is Biology?", topic.Title)

	stored, _ := repo.GetByID(context.Background(), "1")
	assert.False(t, stored.Modules[0].Topics[0].Completed)

	topic, err = svc.SetCompleted(context.Background(), "1", "1", "1", true)
	assert.NoError(t, err)
	assert.True(t, topic.Completed)

	_, err = svc.SetCompleted(context.Background(), "1", "1", "999", true)
	assert.ErrorIs(t, err, ErrTopicNotFound)
}
