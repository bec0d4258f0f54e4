package inbox

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/theijon/folio/internal/platform/apperr"
	requestutil "github.com/theijon/folio/internal/platform/request"
	"github.com/theijon/folio/internal/platform/respond"
	"github.com/theijon/folio/internal/platform/validate"
)

const maxMessageLength = 5000

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterAdminRoutes mounts the session-gated triage API.
func (handler *Handler) RegisterAdminRoutes(router chi.Router) {
	router.Get("/", handler.list)
	router.Put("/{id}/status", handler.updateStatus)
	router.Delete("/{id}", handler.delete)
}

// Submit handles the public contact-form POST.
func (handler *Handler) Submit(writer http.ResponseWriter, request *http.Request) {
	var submission Submission
	if err := requestutil.DecodeJSON(request, &submission); err != nil {
		respond.Error(writer, request, err)
		return
	}

	validator := &validate.Validator{}
	validator.Required("name", submission.Name)
	validator.Required("email", submission.Email)
	validator.Email("email", submission.Email)
	validator.Required("content", submission.Content)
	validator.MaxLen("content", submission.Content, maxMessageLength)
	if err := validator.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	created, err := handler.service.Submit(request.Context(), submission)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, created)
}

func (handler *Handler) list(writer http.ResponseWriter, request *http.Request) {
	messages, err := handler.service.List(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, messages)
}

type statusRequest struct {
	Status string `json:"status"`
}

func (handler *Handler) updateStatus(writer http.ResponseWriter, request *http.Request) {
	id, err := requestutil.IntParam(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input statusRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	validator := &validate.Validator{}
	validator.OneOf("status", input.Status, StatusUnread, StatusRead, StatusArchived)
	if err := validator.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	updated, err := handler.service.UpdateStatus(request.Context(), id, input.Status)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, updated)
}

func (handler *Handler) delete(writer http.ResponseWriter, request *http.Request) {
	id, err := requestutil.IntParam(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if !requestutil.Confirmed(request) {
		respond.Error(writer, request, apperr.Unprocessable("Deletion requires confirmation"))
		return
	}

	if err := handler.service.Delete(request.Context(), id); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}
