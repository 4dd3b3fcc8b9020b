package services

import (
	"testing"

	"github.com/courseatlas/backend/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestIDAllocator_Next(t *testing.T) {
	ids := NewIDAllocator()

	assert.Equal(t, "2", ids.Next(IDKindCourse))
	assert.Equal(t, "3", ids.Next(IDKindCourse))

	// Counters are independent per kind
	assert.Equal(t, "2", ids.Next(IDKindModule))
	assert.Equal(t, "2", ids.Next(IDKindTopic))
	assert.Equal(t, "2", ids.Next(IDKindQuestion))
	assert.Equal(t, "3", ids.Next(IDKindModule))
}

func TestIDAllocator_Observe(t *testing.T) {
	ids := NewIDAllocator()

	ids.Observe(IDKindCourse, "7")
	assert.Equal(t, "8", ids.Next(IDKindCourse))

	// Lower identifiers never move a counter backwards
	ids.Observe(IDKindCourse, "3")
	assert.Equal(t, "9", ids.Next(IDKindCourse))

	// Non-numeric identifiers are ignored
	ids.Observe(IDKindModule, "abc")
	assert.Equal(t, "2", ids.Next(IDKindModule))
}

func TestIDAllocator_ObserveCourses(t *testing.T) {
	ids := NewIDAllocator()

	ids.ObserveCourses([]models.Course{
		{
			ID: "4",
			Modules: []models.Module{
				{
					ID:     "9",
					Topics: []models.Topic{{ID: "12"}},
					Test: models.Test{
						Questions: []models.Question{{ID: "6"}},
					},
				},
			},
		},
	})

	assert.Equal(t, "5", ids.Next(IDKindCourse))
	assert.Equal(t, "10", ids.Next(IDKindModule))
	assert.Equal(t, "13", ids.Next(IDKindTopic))
	assert.Equal(t, "7", ids.Next(IDKindQuestion))
}
