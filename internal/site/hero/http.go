package hero

import (
	"net/http"

	"github.com/go-chi/chi/v5"

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
	router.Get("/draft", handler.getDraft)
	router.Put("/draft", handler.replaceDraft)
	router.Delete("/draft", handler.discardDraft)
	router.Post("/draft/positions", handler.addPosition)
	router.Put("/draft/positions/{index}", handler.updatePosition)
	router.Delete("/draft/positions/{index}", handler.removePosition)
	router.Post("/save", handler.save)
}

// Public handles the unauthenticated read for the rendered site.
func (handler *Handler) Public(writer http.ResponseWriter, request *http.Request) {
	hero, err := handler.service.Public(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, hero)
}

func (handler *Handler) getDraft(writer http.ResponseWriter, request *http.Request) {
	draft, err := handler.service.Draft(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, draft)
}

func (handler *Handler) replaceDraft(writer http.ResponseWriter, request *http.Request) {
	var draft Hero
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

func (handler *Handler) addPosition(writer http.ResponseWriter, request *http.Request) {
	draft, err := handler.service.AddPosition()
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, draft)
}

func (handler *Handler) updatePosition(writer http.ResponseWriter, request *http.Request) {
	index, err := requestutil.IntParam(request, "index")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var patch PositionPatch
	if err := requestutil.DecodeJSON(request, &patch); err != nil {
		respond.Error(writer, request, err)
		return
	}

	draft, err := handler.service.UpdatePosition(index, patch)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, draft)
}

func (handler *Handler) removePosition(writer http.ResponseWriter, request *http.Request) {
	index, err := requestutil.IntParam(request, "index")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	draft, err := handler.service.RemovePosition(index)
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
