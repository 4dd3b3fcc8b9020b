package services

import (
	"context"
	"testing"

	"github.com/courseatlas/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func newTestSvc(courses ...models.Course) (*testService, *mockCourseRepository) {
	logger, _ := zap.NewDevelopment()
	repo := newMockRepo(courses...)
	return NewTestService(repo, NewIDAllocator(), logger), repo
}

func TestTestService_Get(t *testing.T) {
	svc, _ := newTestSvc(sampleCourse())

	test, err := svc.Get(context.Background(), "1", "1")
	assert.NoError(t, err)
	assert.Equal(t, "Biology Assessment", test.Title)
	assert.Len(t, test.Questions, 2)

	_, err = svc.Get(context.Background(), "1", "999")
	assert.ErrorIs(t, err, ErrModuleNotFound)
}

func TestTestService_Get_NormalizesUnsetTest(t *testing.T) {
	course := sampleCourse()
	course.Modules[0].Test = models.Test{}
	svc, _ := newTestSvc(course)

	test, err := svc.Get(context.Background(), "1", "1")
	assert.NoError(t, err)
	assert.Equal(t, "Biology Basics Assessment", test.Title)
	assert.NotNil(t, test.Questions)
	assert.Empty(t, test.Questions)
}

func TestTestService_Set(t *testing.T) {
	svc, repo := newTestSvc(sampleCourse())

	test, err := svc.Set(context.Background(), "1", "1", &models.SetTestRequest{
		Title: "Final Exam",
		Questions: []models.Question{
			{ID: "1", Question: "Q1", Options: []string{"a", "b", "c", "d"}, CorrectAnswer: 0},
		},
	})
	assert.NoError(t, err)
	assert.Equal(t, "Final Exam", test.Title)
	assert.Len(t, test.Questions, 1)

	stored, _ := repo.GetByID(context.Background(), "1")
	assert.Equal(t, "Final Exam", stored.Modules[0].Test.Title)

	// Omitted title and questions fall back to defaults; this is a replace,
	// not a merge
	test, err = svc.Set(context.Background(), "1", "1", &models.SetTestRequest{})
	assert.NoError(t, err)
	assert.Equal(t, "Biology Basics Assessment", test.Title)
	assert.Empty(t, test.Questions)
}

func TestTestService_Reset(t *testing.T) {
	svc, repo := newTestSvc(sampleCourse())

	test, err := svc.Reset(context.Background(), "1", "1")
	assert.NoError(t, err)
	assert.Equal(t, "Biology Basics Assessment", test.Title)
	assert.Empty(t, test.Questions)

	stored, _ := repo.GetByID(context.Background(), "1")
	assert.Empty(t, stored.Modules[0].Test.Questions)
}

func TestTestService_AddQuestion(t *testing.T) {
	tests := []struct {
		name          string
		req           *models.CreateQuestionRequest
		expectedError bool
	}{
		{
			name: "success",
			req: &models.CreateQuestionRequest{
				Question:      "What is ATP?",
				Options:       []string{"a", "b", "c", "d"},
				CorrectAnswer: intPtr(0),
			},
		},
		{
			name: "correctAnswer zero is valid",
			req: &models.CreateQuestionRequest{
				Question:      "Pick the first option",
				Options:       []string{"a", "b", "c", "d"},
				CorrectAnswer: intPtr(0),
			},
		},
		{
			name:          "missing question text",
			req:           &models.CreateQuestionRequest{Options: []string{"a", "b", "c", "d"}, CorrectAnswer: intPtr(1)},
			expectedError: true,
		},
		{
			name:          "wrong option count",
			req:           &models.CreateQuestionRequest{Question: "q", Options: []string{"a", "b"}, CorrectAnswer: intPtr(1)},
			expectedError: true,
		},
		{
			name:          "missing correctAnswer",
			req:           &models.CreateQuestionRequest{Question: "q", Options: []string{"a", "b", "c", "d"}},
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo := newTestSvc(sampleCourse())

			question, err := svc.AddQuestion(context.Background(), "1", "1", tt.req)

			if tt.expectedError {
				var ve *ValidationError
				assert.ErrorAs(t, err, &ve)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, "2", question.ID)

				stored, _ := repo.GetByID(context.Background(), "1")
				assert.Len(t, stored.Modules[0].Test.Questions, 3)
			}
		})
	}
}

func TestTestService_GetQuestion(t *testing.T) {
	svc, _ := newTestSvc(sampleCourse())

	question, err := svc.GetQuestion(context.Background(), "1", "1", "2")
	assert.NoError(t, err)
	assert.Equal(t, "What do cells divide by?", question.Question)

	_, err = svc.GetQuestion(context.Background(), "1", "1", "999")
	assert.ErrorIs(t, err, ErrQuestionNotFound)
}

func TestTestService_UpdateQuestion(t *testing.T) {
	svc, repo := newTestSvc(sampleCourse())

	question, err := svc.UpdateQuestion(context.Background(), "1", "1", "1", &models.UpdateQuestionRequest{
		Question:      strPtr("What is respiration?"),
		CorrectAnswer: intPtr(3),
	})
	assert.NoError(t, err)
	assert.Equal(t, "What is respiration?", question.Question)
	assert.Equal(t, 3, question.CorrectAnswer)
	// Options were absent and stay untouched
	assert.Len(t, question.Options, 4)

	stored, _ := repo.GetByID(context.Background(), "1")
	assert.Equal(t, "What is respiration?", stored.Modules[0].Test.Questions[0].Question)

	_, err = svc.UpdateQuestion(context.Background(), "1", "1", "999", &models.UpdateQuestionRequest{})
	assert.ErrorIs(t, err, ErrQuestionNotFound)
}

func TestTestService_DeleteQuestion(t *testing.T) {
	svc, repo := newTestSvc(sampleCourse())

	assert.ErrorIs(t, svc.DeleteQuestion(context.Background(), "1", "1", "999"), ErrQuestionNotFound)

	assert.NoError(t, svc.DeleteQuestion(context.Background(), "1", "1", "1"))
	stored, _ := repo.GetByID(context.Background(), "1")
	questions := stored.Modules[0].Test.Questions
	assert.Len(t, questions, 1)
	assert.Equal(t, "2", questions[0].ID)
}

func TestTestService_Submit(t *testing.T) {
	tests := []struct {
		name          string
		answers       []int
		expectedError bool
		expected      *models.TestResult
	}{
		{
			name:    "all correct",
			answers: []int{1, 2},
			expected: &models.TestResult{
				Score: 2, TotalQuestions: 2, Percentage: "100.00", Passed: true,
			},
		},
		{
			name:    "half correct fails the threshold",
			answers: []int{1, 0},
			expected: &models.TestResult{
				Score: 1, TotalQuestions: 2, Percentage: "50.00", Passed: false,
			},
		},
		{
			name:    "short submission leaves trailing questions wrong",
			answers: []int{1},
			expected: &models.TestResult{
				Score: 1, TotalQuestions: 2, Percentage: "50.00", Passed: false,
			},
		},
		{
			name:    "excess answers are ignored",
			answers: []int{1, 2, 0, 3},
			expected: &models.TestResult{
				Score: 2, TotalQuestions: 2, Percentage: "100.00", Passed: true,
			},
		},
		{
			name:    "empty but present answers score zero",
			answers: []int{},
			expected: &models.TestResult{
				Score: 0, TotalQuestions: 2, Percentage: "0.00", Passed: false,
			},
		},
		{
			name:          "missing answers",
			answers:       nil,
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _ := newTestSvc(sampleCourse())

			result, err := svc.Submit(context.Background(), "1", "1", tt.answers)

			if tt.expectedError {
				var ve *ValidationError
				assert.ErrorAs(t, err, &ve)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expected, result)
			}
		})
	}
}

func TestTestService_Submit_ZeroQuestions(t *testing.T) {
	course := sampleCourse()
	course.Modules[0].Test.Questions = []models.Question{}
	svc, _ := newTestSvc(course)

	result, err := svc.Submit(context.Background(), "1", "1", []int{0})
	assert.NoError(t, err)
	assert.Equal(t, &models.TestResult{
		Score: 0, TotalQuestions: 0, Percentage: "0.00", Passed: false,
	}, result)
}

func TestTestService_Submit_ExactThresholdPasses(t *testing.T) {
	// 7 of 10 correct is exactly the pass mark
	course := sampleCourse()
	questions := make([]models.Question, 10)
	answers := make([]int, 10)
	for i := range questions {
		questions[i] = models.Question{
			ID:            "1",
			Question:      "q",
			Options:       []string{"a", "b", "c", "d"},
			CorrectAnswer: 0,
		}
		if i < 7 {
			answers[i] = 0
		} else {
			answers[i] = 1
		}
	}
	course.Modules[0].Test.Questions = questions
	svc, _ := newTestSvc(course)

	result, err := svc.Submit(context.Background(), "1", "1", answers)
	assert.NoError(t, err)
	assert.Equal(t, "70.00", result.Percentage)
	assert.True(t, result.Passed)
}
