package handlers

import (
	"context"
	"net/http"

	"github.com/courseatlas/backend/internal/models"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// TopicsService is the interface that wraps methods for topic business logic.
type TopicsService interface {
	// Method List retrieves all topics of a module.
	//
	// If the course or the module cannot be resolved, an error satisfying
	// services.IsNotFound will be returned.
	List(ctx context.Context, courseID, moduleID string) ([]models.Topic, error)
	// Method Get retrieves one topic of a module by its identifier.
	Get(ctx context.Context, courseID, moduleID, topicID string) (*models.Topic, error)
	// Method Create validates the request and appends a new topic to a module
	// with a freshly allocated identifier.
	//
	// If the title is missing, a *services.ValidationError will be returned.
	Create(ctx context.Context, courseID, moduleID string, req *models.CreateTopicRequest) (*models.Topic, error)
	// Method SetCompleted overwrites the completion flag of a topic.
	SetCompleted(ctx context.Context, courseID, moduleID, topicID string, completed bool) (*models.Topic, error)
}

// TopicsHandler handles HTTP requests for topics
type TopicsHandler struct {
	BaseHandler
	service TopicsService
}

// NewTopicsHandler creates a new topic handler
func NewTopicsHandler(svc TopicsService, logger *zap.Logger) *TopicsHandler {
	return &TopicsHandler{
		service:     svc,
		BaseHandler: BaseHandler{logger: logger},
	}
}

// RegisterRoutes registers all topic handler routes
func (h *TopicsHandler) RegisterRoutes(r chi.Router) {
	r.Get("/courses/{courseId}/modules/{moduleId}/topics", h.List)
	r.Post("/courses/{courseId}/modules/{moduleId}/topics", h.Create)
	r.Get("/courses/{courseId}/modules/{moduleId}/topics/{topicId}", h.Get)
	r.Put("/courses/{courseId}/modules/{moduleId}/topics/{topicId}/complete", h.Complete)
}

// List handles GET /api/courses/{courseId}/modules/{moduleId}/topics
// @Summary List module topics
// @Tags topics
// @Produce json
// @Param courseId path string true "Course ID"
// @Param moduleId path string true "Module ID"
// @Success 200 {object} handlers.envelope{data=[]models.Topic}
// @Failure 404 {object} handlers.envelope
// @Router /api/courses/{courseId}/modules/{moduleId}/topics [get]
func (h *TopicsHandler) List(w http.ResponseWriter, r *http.Request) {
	topics, err := h.service.List(r.Context(), chi.URLParam(r, "courseId"), chi.URLParam(r, "moduleId"))
	if err != nil {
		h.respondServiceError(w, err, "failed to list topics")
		return
	}

	h.respondList(w, topics, len(topics))
}

// Get handles GET /api/courses/{courseId}/modules/{moduleId}/topics/{topicId}
// @Summary Get topic by ID
// @Tags topics
// @Produce json
// @Param courseId path string true "Course ID"
// @Param moduleId path string true "Module ID"
// @Param topicId path string true "Topic ID"
// @Success 200 {object} handlers.envelope{data=models.Topic}
// @Failure 404 {object} handlers.envelope
// @Router /api/courses/{courseId}/modules/{moduleId}/topics/{topicId} [get]
func (h *TopicsHandler) Get(w http.ResponseWriter, r *http.Request) {
	topic, err := h.service.Get(r.Context(),
		chi.URLParam(r, "courseId"), chi.URLParam(r, "moduleId"), chi.URLParam(r, "topicId"))
	if err != nil {
		h.respondServiceError(w, err, "failed to get topic")
		return
	}

	h.respondData(w, http.StatusOK, topic)
}

// Create handles POST /api/courses/{courseId}/modules/{moduleId}/topics
// @Summary Create a topic
// @Description Create a new topic inside a module; title is required
// @Tags topics
// @Accept json
// @Produce json
// @Param courseId path string true "Course ID"
// @Param moduleId path string true "Module ID"
// @Param topic body models.CreateTopicRequest true "Topic payload"
// @Success 201 {object} handlers.envelope{data=models.Topic}
// @Failure 400 {object} handlers.envelope
// @Failure 404 {object} handlers.envelope
// @Router /api/courses/{courseId}/modules/{moduleId}/topics [post]
func (h *TopicsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.CreateTopicRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}

	topic, err := h.service.Create(r.Context(), chi.URLParam(r, "courseId"), chi.URLParam(r, "moduleId"), &req)
	if err != nil {
		h.respondServiceError(w, err, "failed to create topic")
		return
	}

	h.respondMessage(w, http.StatusCreated, "Topic created successfully", topic)
}

// Complete handles PUT /api/courses/{courseId}/modules/{moduleId}/topics/{topicId}/complete
// @Summary Set topic completion
// @Description Mark a topic completed or not completed
// @Tags topics
// @Accept json
// @Produce json
// @Param courseId path string true "Course ID"
// @Param moduleId path string true "Module ID"
// @Param topicId path string true "Topic ID"
// @Param completion body models.CompleteTopicRequest true "Completion flag"
// @Success 200 {object} handlers.envelope{data=models.Topic}
// @Failure 404 {object} handlers.envelope
// @Router /api/courses/{courseId}/modules/{moduleId}/topics/{topicId}/complete [put]
func (h *TopicsHandler) Complete(w http.ResponseWriter, r *http.Request) {
	var req models.CompleteTopicRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}

	topic, err := h.service.SetCompleted(r.Context(),
		chi.URLParam(r, "courseId"), chi.URLParam(r, "moduleId"), chi.URLParam(r, "topicId"), req.Completed)
	if err != nil {
		h.respondServiceError(w, err, "failed to update topic completion")
		return
	}

	message := "Topic marked as incomplete"
	if topic.Completed {
		message = "Topic marked as completed"
	}
	h.respondMessage(w, http.StatusOK, message, topic)
}
