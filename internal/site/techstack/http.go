package techstack

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/theijon/folio/internal/platform/apperr"
	requestutil "github.com/theijon/folio/internal/platform/request"
	"github.com/theijon/folio/internal/platform/respond"
	"github.com/theijon/folio/internal/platform/validate"
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
	router.Post("/", handler.createDefault)

	router.Post("/draft", handler.beginDraft)
	router.Get("/draft", handler.getDraft)
	router.Put("/draft", handler.replaceDraft)
	router.Delete("/draft", handler.discardDraft)
	router.Put("/draft/name", handler.rename)

	router.Post("/draft/technologies", handler.addTechnology)
	router.Put("/draft/technologies/{index}", handler.updateTechnology)
	router.Delete("/draft/technologies/{index}", handler.removeTechnology)

	router.Post("/draft/save", handler.save)
	router.Delete("/{id}", handler.delete)
}

// Public handles the unauthenticated collection read for the rendered site.
func (handler *Handler) Public(writer http.ResponseWriter, request *http.Request) {
	categories, err := handler.service.PublicList(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, categories)
}

func (handler *Handler) list(writer http.ResponseWriter, request *http.Request) {
	categories, err := handler.service.List(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, categories)
}

func (handler *Handler) createDefault(writer http.ResponseWriter, request *http.Request) {
	saved, err := handler.service.CreateDefault(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, saved)
}

type beginDraftRequest struct {
	ID int `json:"id"`
}

func (handler *Handler) beginDraft(writer http.ResponseWriter, request *http.Request) {
	var input beginDraftRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	draft, err := handler.service.BeginEdit(input.ID)
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
	var draft Category
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

type renameRequest struct {
	Name string `json:"category"`
}

func (handler *Handler) rename(writer http.ResponseWriter, request *http.Request) {
	var input renameRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	validator := &validate.Validator{}
	validator.Required("category", input.Name)
	if err := validator.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	draft, err := handler.service.Rename(input.Name)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, draft)
}

func (handler *Handler) addTechnology(writer http.ResponseWriter, request *http.Request) {
	draft, err := handler.service.AddTechnology()
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, draft)
}

func (handler *Handler) updateTechnology(writer http.ResponseWriter, request *http.Request) {
	index, err := requestutil.IntParam(request, "index")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var patch TechnologyPatch
	if err := requestutil.DecodeJSON(request, &patch); err != nil {
		respond.Error(writer, request, err)
		return
	}

	draft, err := handler.service.UpdateTechnology(index, patch)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, draft)
}

func (handler *Handler) removeTechnology(writer http.ResponseWriter, request *http.Request) {
	index, err := requestutil.IntParam(request, "index")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	draft, err := handler.service.RemoveTechnology(index)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, draft)
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
