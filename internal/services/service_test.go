package services

import (
	"context"

	"github.com/courseatlas/backend/internal/models"
)

// mockCourseRepository is an in-memory mock implementation of CourseRepository.
// err fails every read, updateErr fails writes only, so read-modify-write
// paths can be tested against write failures.
type mockCourseRepository struct {
	courses   []models.Course
	err       error
	updateErr error
}

func newMockRepo(courses ...models.Course) *mockCourseRepository {
	stored := make([]models.Course, len(courses))
	for i, c := range courses {
		stored[i] = c.Clone()
	}
	return &mockCourseRepository{courses: stored}
}

func (m *mockCourseRepository) GetAll(ctx context.Context) ([]models.Course, error) {
	if m.err != nil {
		return nil, m.err
	}
	out := make([]models.Course, len(m.courses))
	for i, c := range m.courses {
		out[i] = c.Clone()
	}
	return out, nil
}

func (m *mockCourseRepository) GetByID(ctx context.Context, id string) (*models.Course, error) {
	if m.err != nil {
		return nil, m.err
	}
	for _, c := range m.courses {
		if c.ID == id {
			clone := c.Clone()
			return &clone, nil
		}
	}
	return nil, ErrCourseNotFound
}

func (m *mockCourseRepository) Create(ctx context.Context, course *models.Course) error {
	if m.err != nil {
		return m.err
	}
	if m.updateErr != nil {
		return m.updateErr
	}
	m.courses = append(m.courses, course.Clone())
	return nil
}

func (m *mockCourseRepository) Update(ctx context.Context, course *models.Course) error {
	if m.err != nil {
		return m.err
	}
	if m.updateErr != nil {
		return m.updateErr
	}
	for i := range m.courses {
		if m.courses[i].ID == course.ID {
			m.courses[i] = course.Clone()
			return nil
		}
	}
	return ErrCourseNotFound
}

func (m *mockCourseRepository) Delete(ctx context.Context, id string) error {
	if m.err != nil {
		return m.err
	}
	if m.updateErr != nil {
		return m.updateErr
	}
	for i := range m.courses {
		if m.courses[i].ID == id {
			m.courses = append(m.courses[:i], m.courses[i+1:]...)
			return nil
		}
	}
	return ErrCourseNotFound
}

func (m *mockCourseRepository) ReplaceAll(ctx context.Context, courses []models.Course) error {
	if m.err != nil {
		return m.err
	}
	if m.updateErr != nil {
		return m.updateErr
	}
	stored := make([]models.Course, len(courses))
	for i, c := range courses {
		stored[i] = c.Clone()
	}
	m.courses = stored
	return nil
}

func (m *mockCourseRepository) Count(ctx context.Context) (int, error) {
	if m.err != nil {
		return 0, m.err
	}
	return len(m.courses), nil
}

// sampleCourse builds a course with one module, one topic and a two-question
// test, the shape most tests operate on.
func sampleCourse() models.Course {
	return models.Course{
		ID:          "1",
		Title:       "Introduction to Biology",
		Description: "The science of life",
		Category:    "Science",
		Icon:        "🧬",
		Modules: []models.Module{
			{
				ID:    "1",
				Title: "Biology Basics",
				Order: 1,
				Topics: []models.Topic{
					{
						ID:        "1",
						Title:     "What is Biology?",
						Completed: true,
						Content: models.TopicContent{
							Main:     "Biology is the scientific study of life",
							Sections: []models.ContentSection{},
						},
					},
				},
				Test: models.Test{
					Title: "Biology Assessment",
					Questions: []models.Question{
						{
							ID:            "1",
							Question:      "What is gaseous exchange?",
							Options:       []string{"Digestion", "Oxygen and carbon dioxide transfer", "Circulation", "Cell division"},
							CorrectAnswer: 1,
						},
						{
							ID:            "2",
							Question:      "What do cells divide by?",
							Options:       []string{"Osmosis", "Diffusion", "Mitosis", "Photosynthesis"},
							CorrectAnswer: 2,
						},
					},
				},
			},
		},
	}
}
