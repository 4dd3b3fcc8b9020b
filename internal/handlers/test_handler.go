package handlers

import (
	"context"
	"net/http"

	"github.com/courseatlas/backend/internal/models"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// TestsService is the interface that wraps methods for module test business logic.
type TestsService interface {
	// Method Get retrieves the test of a module.
	//
	// If the course or the module cannot be resolved, an error satisfying
	// services.IsNotFound will be returned.
	Get(ctx context.Context, courseID, moduleID string) (*models.Test, error)
	// Method Set replaces the whole test of a module. A missing title falls
	// back to one derived from the module title.
	Set(ctx context.Context, courseID, moduleID string, req *models.SetTestRequest) (*models.Test, error)
	// Method Reset replaces the test with an empty default one.
	Reset(ctx context.Context, courseID, moduleID string) (*models.Test, error)
	// Method ListQuestions retrieves all questions of a module test.
	ListQuestions(ctx context.Context, courseID, moduleID string) ([]models.Question, error)
	// Method AddQuestion validates the request and appends a question with a
	// freshly allocated identifier.
	//
	// If the text, the four options or the correct answer are missing, a
	// *services.ValidationError will be returned.
	AddQuestion(ctx context.Context, courseID, moduleID string, req *models.CreateQuestionRequest) (*models.Question, error)
	// Method GetQuestion retrieves one question by its identifier.
	GetQuestion(ctx context.Context, courseID, moduleID, questionID string) (*models.Question, error)
	// Method UpdateQuestion applies the fields present in the request to an
	// existing question. Absent fields keep their prior values.
	UpdateQuestion(ctx context.Context, courseID, moduleID, questionID string, req *models.UpdateQuestionRequest) (*models.Question, error)
	// Method DeleteQuestion removes a question from a module test.
	DeleteQuestion(ctx context.Context, courseID, moduleID, questionID string) error
	// Method Submit grades the given answers against the test and returns the
	// score, percentage and pass flag.
	//
	// If answers are missing, a *services.ValidationError will be returned.
	Submit(ctx context.Context, courseID, moduleID string, answers []int) (*models.TestResult, error)
}

// TestsHandler handles HTTP requests for module tests and their questions
type TestsHandler struct {
	BaseHandler
	service TestsService
}

// NewTestsHandler creates a new test handler
func NewTestsHandler(svc TestsService, logger *zap.Logger) *TestsHandler {
	return &TestsHandler{
		service:     svc,
		BaseHandler: BaseHandler{logger: logger},
	}
}

// RegisterRoutes registers all test handler routes
func (h *TestsHandler) RegisterRoutes(r chi.Router) {
	r.Get("/courses/{courseId}/modules/{moduleId}/test", h.Get)
	r.Post("/courses/{courseId}/modules/{moduleId}/test", h.Set)
	r.Delete("/courses/{courseId}/modules/{moduleId}/test", h.Reset)
	r.Post("/courses/{courseId}/modules/{moduleId}/test/submit", h.Submit)
	r.Get("/courses/{courseId}/modules/{moduleId}/test/questions", h.ListQuestions)
	r.Post("/courses/{courseId}/modules/{moduleId}/test/questions", h.AddQuestion)
	r.Get("/courses/{courseId}/modules/{moduleId}/test/questions/{questionId}", h.GetQuestion)
	r.Put("/courses/{courseId}/modules/{moduleId}/test/questions/{questionId}", h.UpdateQuestion)
	r.Delete("/courses/{courseId}/modules/{moduleId}/test/questions/{questionId}", h.DeleteQuestion)
}

// Get handles GET /api/courses/{courseId}/modules/{moduleId}/test
// @Summary Get module test
// @Tags tests
// @Produce json
// @Param courseId path string true "Course ID"
// @Param moduleId path string true "Module ID"
// @Success 200 {object} handlers.envelope{data=models.Test}
// @Failure 404 {object} handlers.envelope
// @Router /api/courses/{courseId}/modules/{moduleId}/test [get]
func (h *TestsHandler) Get(w http.ResponseWriter, r *http.Request) {
	test, err := h.service.Get(r.Context(), chi.URLParam(r, "courseId"), chi.URLParam(r, "moduleId"))
	if err != nil {
		h.respondServiceError(w, err, "failed to get test")
		return
	}

	h.respondData(w, http.StatusOK, test)
}

// Set handles POST /api/courses/{courseId}/modules/{moduleId}/test
// @Summary Replace module test
// @Description Replace the whole test, title and questions included
// @Tags tests
// @Accept json
// @Produce json
// @Param courseId path string true "Course ID"
// @Param moduleId path string true "Module ID"
// @Param test body models.SetTestRequest true "Test payload"
// @Success 200 {object} handlers.envelope{data=models.Test}
// @Failure 404 {object} handlers.envelope
// @Router /api/courses/{courseId}/modules/{moduleId}/test [post]
func (h *TestsHandler) Set(w http.ResponseWriter, r *http.Request) {
	var req models.SetTestRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}

	test, err := h.service.Set(r.Context(), chi.URLParam(r, "courseId"), chi.URLParam(r, "moduleId"), &req)
	if err != nil {
		h.respondServiceError(w, err, "failed to update test")
		return
	}

	h.respondMessage(w, http.StatusOK, "Test updated successfully", test)
}

// Reset handles DELETE /api/courses/{courseId}/modules/{moduleId}/test
// @Summary Reset module test
// @Description Replace the test with an empty default one
// @Tags tests
// @Produce json
// @Param courseId path string true "Course ID"
// @Param moduleId path string true "Module ID"
// @Success 200 {object} handlers.envelope{data=models.Test}
// @Failure 404 {object} handlers.envelope
// @Router /api/courses/{courseId}/modules/{moduleId}/test [delete]
func (h *TestsHandler) Reset(w http.ResponseWriter, r *http.Request) {
	test, err := h.service.Reset(r.Context(), chi.URLParam(r, "courseId"), chi.URLParam(r, "moduleId"))
	if err != nil {
		h.respondServiceError(w, err, "failed to reset test")
		return
	}

	h.respondMessage(w, http.StatusOK, "Test reset successfully", test)
}

// ListQuestions handles GET /api/courses/{courseId}/modules/{moduleId}/test/questions
// @Summary List test questions
// @Tags tests
// @Produce json
// @Param courseId path string true "Course ID"
// @Param moduleId path string true "Module ID"
// @Success 200 {object} handlers.envelope{data=[]models.Question}
// @Failure 404 {object} handlers.envelope
// @Router /api/courses/{courseId}/modules/{moduleId}/test/questions [get]
func (h *TestsHandler) ListQuestions(w http.ResponseWriter, r *http.Request) {
	questions, err := h.service.ListQuestions(r.Context(), chi.URLParam(r, "courseId"), chi.URLParam(r, "moduleId"))
	if err != nil {
		h.respondServiceError(w, err, "failed to list questions")
		return
	}

	h.respondList(w, questions, len(questions))
}

// AddQuestion handles POST /api/courses/{courseId}/modules/{moduleId}/test/questions
// @Summary Add a test question
// @Description Add a question; text, four options and the correct answer index are required
// @Tags tests
// @Accept json
// @Produce json
// @Param courseId path string true "Course ID"
// @Param moduleId path string true "Module ID"
// @Param question body models.CreateQuestionRequest true "Question payload"
// @Success 201 {object} handlers.envelope{data=models.Question}
// @Failure 400 {object} handlers.envelope
// @Failure 404 {object} handlers.envelope
// @Router /api/courses/{courseId}/modules/{moduleId}/test/questions [post]
func (h *TestsHandler) AddQuestion(w http.ResponseWriter, r *http.Request) {
	var req models.CreateQuestionRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}

	question, err := h.service.AddQuestion(r.Context(), chi.URLParam(r, "courseId"), chi.URLParam(r, "moduleId"), &req)
	if err != nil {
		h.respondServiceError(w, err, "failed to add question")
		return
	}

	h.respondMessage(w, http.StatusCreated, "Question added successfully", question)
}

// GetQuestion handles GET /api/courses/{courseId}/modules/{moduleId}/test/questions/{questionId}
// @Summary Get question by ID
// @Tags tests
// @Produce json
// @Param courseId path string true "Course ID"
// @Param moduleId path string true "Module ID"
// @Param questionId path string true "Question ID"
// @Success 200 {object} handlers.envelope{data=models.Question}
// @Failure 404 {object} handlers.envelope
// @Router /api/courses/{courseId}/modules/{moduleId}/test/questions/{questionId} [get]
func (h *TestsHandler) GetQuestion(w http.ResponseWriter, r *http.Request) {
	question, err := h.service.GetQuestion(r.Context(),
		chi.URLParam(r, "courseId"), chi.URLParam(r, "moduleId"), chi.URLParam(r, "questionId"))
	if err != nil {
		h.respondServiceError(w, err, "failed to get question")
		return
	}

	h.respondData(w, http.StatusOK, question)
}

// UpdateQuestion handles PUT /api/courses/{courseId}/modules/{moduleId}/test/questions/{questionId}
// @Summary Update a test question
// @Description Update question fields; absent fields keep their prior values
// @Tags tests
// @Accept json
// @Produce json
// @Param courseId path string true "Course ID"
// @Param moduleId path string true "Module ID"
// @Param questionId path string true "Question ID"
// @Param question body models.UpdateQuestionRequest true "Fields to update"
// @Success 200 {object} handlers.envelope{data=models.Question}
// @Failure 404 {object} handlers.envelope
// @Router /api/courses/{courseId}/modules/{moduleId}/test/questions/{questionId} [put]
func (h *TestsHandler) UpdateQuestion(w http.ResponseWriter, r *http.Request) {
	var req models.UpdateQuestionRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}

	question, err := h.service.UpdateQuestion(r.Context(),
		chi.URLParam(r, "courseId"), chi.URLParam(r, "moduleId"), chi.URLParam(r, "questionId"), &req)
	if err != nil {
		h.respondServiceError(w, err, "failed to update question")
		return
	}

	h.respondMessage(w, http.StatusOK, "Question updated successfully", question)
}

// DeleteQuestion handles DELETE /api/courses/{courseId}/modules/{moduleId}/test/questions/{questionId}
// @Summary Delete a test question
// @Tags tests
// @Produce json
// @Param courseId path string true "Course ID"
// @Param moduleId path string true "Module ID"
// @Param questionId path string true "Question ID"
// @Success 200 {object} handlers.envelope{data=models.Question}
// @Failure 404 {object} handlers.envelope
// @Router /api/courses/{courseId}/modules/{moduleId}/test/questions/{questionId} [delete]
func (h *TestsHandler) DeleteQuestion(w http.ResponseWriter, r *http.Request) {
	courseID := chi.URLParam(r, "courseId")
	moduleID := chi.URLParam(r, "moduleId")
	questionID := chi.URLParam(r, "questionId")

	question, err := h.service.GetQuestion(r.Context(), courseID, moduleID, questionID)
	if err != nil {
		h.respondServiceError(w, err, "failed to delete question")
		return
	}
	if err := h.service.DeleteQuestion(r.Context(), courseID, moduleID, questionID); err != nil {
		h.respondServiceError(w, err, "failed to delete question")
		return
	}

	h.respondMessage(w, http.StatusOK, "Question deleted successfully", question)
}

// Submit handles POST /api/courses/{courseId}/modules/{moduleId}/test/submit
// @Summary Submit test answers
// @Description Grade the submitted answers and return score, percentage and pass flag
// @Tags tests
// @Accept json
// @Produce json
// @Param courseId path string true "Course ID"
// @Param moduleId path string true "Module ID"
// @Param submission body models.SubmitTestRequest true "Answer indexes, one per question"
// @Success 200 {object} handlers.envelope{data=models.TestResult}
// @Failure 400 {object} handlers.envelope
// @Failure 404 {object} handlers.envelope
// @Router /api/courses/{courseId}/modules/{moduleId}/test/submit [post]
func (h *TestsHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req models.SubmitTestRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}

	result, err := h.service.Submit(r.Context(), chi.URLParam(r, "courseId"), chi.URLParam(r, "moduleId"), req.Answers)
	if err != nil {
		h.respondServiceError(w, err, "failed to submit test")
		return
	}

	h.respondData(w, http.StatusOK, result)
}
