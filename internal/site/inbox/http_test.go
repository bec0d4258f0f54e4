package inbox

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"

	"github.com/theijon/folio/internal/content"
)

func newTestRouter(t *testing.T, upstream http.Handler) *chi.Mux {
	t.Helper()
	server := httptest.NewServer(upstream)
	t.Cleanup(server.Close)

	resolver := content.Resolver{InternalBase: server.URL}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	client := content.NewClient(resolver, 2*time.Second, logger)
	handler := NewHandler(NewService(client, logger))

	router := chi.NewRouter()
	router.Route("/admin/messages", handler.RegisterAdminRoutes)
	return router
}

/*
TestHandler_UpdateStatus_RejectsUnknownStatus verifies the status allowlist
at the handler boundary: an unrecognized status is rejected with a
validation error and never reaches the content service.
*/
func TestHandler_UpdateStatus_RejectsUnknownStatus(t *testing.T) {
	upstreamCalls := 0
	router := newTestRouter(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		upstreamCalls++
	}))

	body := strings.NewReader(`{"status": "starred"}`)
	request := httptest.NewRequest(http.MethodPut, "/admin/messages/1/status", body)
	recorder := httptest.NewRecorder()

	router.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "VALIDATION_ERROR")
	assert.Equal(t, 0, upstreamCalls, "invalid status never reaches the content service")
}
