package services

import (
	"context"
	"fmt"

	"github.com/courseatlas/backend/internal/models"
	"go.uber.org/zap"
)

// Question options are fixed-size multiple choice.
const questionOptionCount = 4

// passThresholdPercent is the minimum percentage counted as a pass.
const passThresholdPercent = 70.0

type testService struct {
	repo   CourseRepository
	ids    *IDAllocator
	logger *zap.Logger
}

// NewTestService creates a new test service
func NewTestService(repo CourseRepository, ids *IDAllocator, logger *zap.Logger) *testService {
	return &testService{
		repo:   repo,
		ids:    ids,
		logger: logger,
	}
}

// defaultTest builds the empty assessment a module carries when no test has
// been set explicitly.
func defaultTest(moduleTitle string) models.Test {
	return models.Test{
		Title:     moduleTitle + " Assessment",
		Questions: []models.Question{},
	}
}

// normalizeTest fills in the default title and question list on a module
// whose test was never set. A module always exposes a non-null test.
func normalizeTest(module *models.Module) {
	if module.Test.Title == "" {
		module.Test.Title = module.Title + " Assessment"
	}
	if module.Test.Questions == nil {
		module.Test.Questions = []models.Question{}
	}
}

// resolveModule walks the course/module identifier chain, propagating the
// not-found sentinel of the first level that fails to resolve.
func (s *testService) resolveModule(ctx context.Context, courseID, moduleID string) (*models.Course, *models.Module, error) {
	course, err := s.repo.GetByID(ctx, courseID)
	if err != nil {
		return nil, nil, err
	}

	module := course.ModuleByID(moduleID)
	if module == nil {
		return nil, nil, ErrModuleNotFound
	}
	return course, module, nil
}

// Get retrieves a module's test, normalized so it always has a title and a
// question list.
func (s *testService) Get(ctx context.Context, courseID, moduleID string) (*models.Test, error) {
	_, module, err := s.resolveModule(ctx, courseID, moduleID)
	if err != nil {
		return nil, err
	}

	normalizeTest(module)
	return &module.Test, nil
}

// Set replaces a module's test wholesale. The title defaults to
// "<module title> Assessment" and the question list to empty when omitted;
// this is a full replace, not a merge.
func (s *testService) Set(ctx context.Context, courseID, moduleID string, req *models.SetTestRequest) (*models.Test, error) {
	course, module, err := s.resolveModule(ctx, courseID, moduleID)
	if err != nil {
		return nil, err
	}

	test := models.Test{
		Title:     req.Title,
		Questions: req.Questions,
	}
	if test.Title == "" {
		test.Title = module.Title + " Assessment"
	}
	if test.Questions == nil {
		test.Questions = []models.Question{}
	}
	module.Test = test

	if err := s.repo.Update(ctx, course); err != nil {
		s.logger.Error("failed to set test", zap.Error(err))
		return nil, fmt.Errorf("failed to set test: %w", err)
	}

	return &module.Test, nil
}

// Reset replaces a module's test with the empty default assessment.
func (s *testService) Reset(ctx context.Context, courseID, moduleID string) (*models.Test, error) {
	course, module, err := s.resolveModule(ctx, courseID, moduleID)
	if err != nil {
		return nil, err
	}

	module.Test = defaultTest(module.Title)

	if err := s.repo.Update(ctx, course); err != nil {
		s.logger.Error("failed to reset test", zap.Error(err))
		return nil, fmt.Errorf("failed to reset test: %w", err)
	}

	return &module.Test, nil
}

// ListQuestions retrieves all questions of a module's test
func (s *testService) ListQuestions(ctx context.Context, courseID, moduleID string) ([]models.Question, error) {
	_, module, err := s.resolveModule(ctx, courseID, moduleID)
	if err != nil {
		return nil, err
	}

	normalizeTest(module)
	return module.Test.Questions, nil
}

// AddQuestion validates the request and appends a question to a module's
// test, initializing the test first if it was never set. Exactly four
// options are required.
func (s *testService) AddQuestion(ctx context.Context, courseID, moduleID string, req *models.CreateQuestionRequest) (*models.Question, error) {
	if req.Question == "" || len(req.Options) != questionOptionCount || req.CorrectAnswer == nil {
		return nil, validationErrorf("question, %d options, and correctAnswer are required", questionOptionCount)
	}

	course, module, err := s.resolveModule(ctx, courseID, moduleID)
	if err != nil {
		return nil, err
	}

	normalizeTest(module)

	question := models.Question{
		ID:            s.ids.Next(IDKindQuestion),
		Question:      req.Question,
		Options:       req.Options,
		CorrectAnswer: *req.CorrectAnswer,
	}
	module.Test.Questions = append(module.Test.Questions, question)

	if err := s.repo.Update(ctx, course); err != nil {
		s.logger.Error("failed to add question", zap.Error(err))
		return nil, fmt.Errorf("failed to add question: %w", err)
	}

	return &question, nil
}

// GetQuestion retrieves one question by its identifier chain
func (s *testService) GetQuestion(ctx context.Context, courseID, moduleID, questionID string) (*models.Question, error) {
	_, module, err := s.resolveModule(ctx, courseID, moduleID)
	if err != nil {
		return nil, err
	}

	question := module.Test.QuestionByID(questionID)
	if question == nil {
		return nil, ErrQuestionNotFound
	}
	return question, nil
}

// UpdateQuestion applies the fields present in the request to an existing
// question.
func (s *testService) UpdateQuestion(ctx context.Context, courseID, moduleID, questionID string, req *models.UpdateQuestionRequest) (*models.Question, error) {
	course, module, err := s.resolveModule(ctx, courseID, moduleID)
	if err != nil {
		return nil, err
	}

	question := module.Test.QuestionByID(questionID)
	if question == nil {
		return nil, ErrQuestionNotFound
	}

	if req.Question != nil {
		question.Question = *req.Question
	}
	if req.Options != nil {
		question.Options = req.Options
	}
	if req.CorrectAnswer != nil {
		question.CorrectAnswer = *req.CorrectAnswer
	}

	if err := s.repo.Update(ctx, course); err != nil {
		s.logger.Error("failed to update question", zap.Error(err))
		return nil, fmt.Errorf("failed to update question: %w", err)
	}

	return question, nil
}

// DeleteQuestion removes one question from a module's test.
func (s *testService) DeleteQuestion(ctx context.Context, courseID, moduleID, questionID string) error {
	course, module, err := s.resolveModule(ctx, courseID, moduleID)
	if err != nil {
		return err
	}

	index := -1
	for i := range module.Test.Questions {
		if module.Test.Questions[i].ID == questionID {
			index = i
			break
		}
	}
	if index == -1 {
		return ErrQuestionNotFound
	}

	module.Test.Questions = append(module.Test.Questions[:index], module.Test.Questions[index+1:]...)

	if err := s.repo.Update(ctx, course); err != nil {
		s.logger.Error("failed to delete question", zap.Error(err))
		return fmt.Errorf("failed to delete question: %w", err)
	}
	return nil
}

// Submit scores an answer sequence against a module's test.
//
// Question i is correct only when answers[i] equals its correctAnswer index:
// a submission shorter than the question count leaves the trailing questions
// wrong, and answers beyond the question count are ignored. A test with zero
// questions scores 0/0, percentage "0.00", not passed.
func (s *testService) Submit(ctx context.Context, courseID, moduleID string, answers []int) (*models.TestResult, error) {
	if answers == nil {
		return nil, validationErrorf("answers array is required")
	}

	_, module, err := s.resolveModule(ctx, courseID, moduleID)
	if err != nil {
		return nil, err
	}

	questions := module.Test.Questions
	total := len(questions)

	score := 0
	for i, question := range questions {
		if i < len(answers) && answers[i] == question.CorrectAnswer {
			score++
		}
	}

	percentage := 0.0
	if total > 0 {
		percentage = float64(score) / float64(total) * 100
	}

	return &models.TestResult{
		Score:          score,
		TotalQuestions: total,
		Percentage:     fmt.Sprintf("%.2f", percentage),
		Passed:         percentage >= passThresholdPercent,
	}, nil
}
