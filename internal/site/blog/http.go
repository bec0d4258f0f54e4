package blog

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/theijon/folio/internal/platform/apperr"
	requestutil "github.com/theijon/folio/internal/platform/request"
	"github.com/theijon/folio/internal/platform/respond"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterAdminRoutes mounts the session-gated editing API.
func (handler *Handler) RegisterAdminRoutes(router chi.Router) {
	router.Get("/", handler.list)
	router.Post("/draft", handler.beginDraft)
	router.Get("/draft", handler.getDraft)
	router.Put("/draft", handler.replaceDraft)
	router.Delete("/draft", handler.discardDraft)
	router.Post("/draft/save", handler.save)
	router.Delete("/{id}", handler.delete)
}

// RegisterPublicRoutes mounts the unauthenticated reads for the rendered site.
func (handler *Handler) RegisterPublicRoutes(router chi.Router) {
	router.Get("/", handler.publicList)
	router.Get("/slug/{slug}", handler.publicBySlug)
}

func (handler *Handler) publicList(writer http.ResponseWriter, request *http.Request) {
	blogs, err := handler.service.PublicList(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, blogs)
}

func (handler *Handler) publicBySlug(writer http.ResponseWriter, request *http.Request) {
	post, err := handler.service.PublicBySlug(request.Context(), requestutil.Param(request, "slug"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, post)
}

func (handler *Handler) list(writer http.ResponseWriter, request *http.Request) {
	blogs, err := handler.service.List(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, blogs)
}

// beginDraftRequest selects which post to edit; a nil ID begins a new post.
type beginDraftRequest struct {
	ID *int `json:"id"`
}

func (handler *Handler) beginDraft(writer http.ResponseWriter, request *http.Request) {
	var input beginDraftRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if input.ID == nil {
		respond.OK(writer, handler.service.BeginNew())
		return
	}

	draft, err := handler.service.BeginEdit(*input.ID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, draft)
}

func (handler *Handler) getDraft(writer http.ResponseWriter, request *http.Request) {
	draft, err := handler.service.Draft()
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, draft)
}

func (handler *Handler) replaceDraft(writer http.ResponseWriter, request *http.Request) {
	var draft Blog
	if err := requestutil.DecodeJSON(request, &draft); err != nil {
		respond.Error(writer, request, err)
		return
	}

	handler.service.ReplaceDraft(draft)
	respond.OK(writer, draft)
}

func (handler *Handler) discardDraft(writer http.ResponseWriter, request *http.Request) {
	handler.service.DiscardDraft()
	respond.NoContent(writer)
}

func (handler *Handler) save(writer http.ResponseWriter, request *http.Request) {
	saved, err := handler.service.Save(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, saved)
}

func (handler *Handler) delete(writer http.ResponseWriter, request *http.Request) {
	id, err := requestutil.IntParam(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	// Deletion is irreversible; the console must send the confirmation flag.
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
