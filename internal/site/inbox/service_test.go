// Copyright (c) 2026 Folio. All rights reserved.
// Author: jon@theijon.online

package inbox

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/theijon/folio/internal/content"
)

func newTestService(t *testing.T, handler http.Handler) *Service {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	resolver := content.Resolver{InternalBase: server.URL}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	client := content.NewClient(resolver, 2*time.Second, logger)
	return NewService(client, logger)
}

const inboxFixture = `[
	{"id": 1, "name": "Alice", "email": "alice@example.com", "content": "Hi", "status": "unread", "createdAt": "2024-03-01T10:00:00Z"},
	{"id": 2, "name": "Bob", "email": "bob@example.com", "content": "Hello", "status": "read", "createdAt": "2024-03-02T10:00:00Z"}
]`

func TestService_List_NewestFirst(t *testing.T) {
	service := newTestService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(inboxFixture))
	}))

	messages, err := service.List(context.Background())

	require.NoError(t, err)
	require.Len(t, messages, 2)
	assert.Equal(t, 2, messages[0].ID, "newest message sorts first")
}

/*
TestService_UpdateStatus verifies the triage path: the status change is
addressed by identifier and the returned message replaces its list entry.
*/
func TestService_UpdateStatus(t *testing.T) {
	service := newTestService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			_, _ = w.Write([]byte(inboxFixture))
		case http.MethodPut:
			assert.Equal(t, "/messages/1/status", r.URL.Path)

			var body struct {
				Status string `json:"status"`
			}
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, StatusArchived, body.Status)

			_, _ = w.Write([]byte(`{"id": 1, "name": "Alice", "status": "archived", "createdAt": "2024-03-01T10:00:00Z"}`))
		}
	}))

	_, err := service.List(context.Background())
	require.NoError(t, err)

	updated, err := service.UpdateStatus(context.Background(), 1, StatusArchived)
	require.NoError(t, err)
	assert.Equal(t, StatusArchived, updated.Status)

	member, found := service.list.Find(1)
	require.True(t, found)
	assert.Equal(t, StatusArchived, member.Status)

	other, found := service.list.Find(2)
	require.True(t, found)
	assert.Equal(t, StatusRead, other.Status, "only the addressed message changes")
}

func TestService_Delete_SyncsList(t *testing.T) {
	service := newTestService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			_, _ = w.Write([]byte(inboxFixture))
		case http.MethodDelete:
			assert.Equal(t, "/messages/2", r.URL.Path)
			w.WriteHeader(http.StatusNoContent)
		}
	}))

	_, err := service.List(context.Background())
	require.NoError(t, err)

	require.NoError(t, service.Delete(context.Background(), 2))

	_, found := service.list.Find(2)
	assert.False(t, found)
	assert.Len(t, service.list.Items(), 1)
}

func TestService_Submit(t *testing.T) {
	service := newTestService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/messages", r.URL.Path)

		var submission Submission
		require.NoError(t, json.NewDecoder(r.Body).Decode(&submission))

		_ = json.NewEncoder(w).Encode(Message{
			ID:      5,
			Name:    submission.Name,
			Email:   submission.Email,
			Content: submission.Content,
			Status:  StatusUnread,
		})
	}))

	created, err := service.Submit(context.Background(), Submission{
		Name:    "Carol",
		Email:   "carol@example.com",
		Content: "Love the site",
	})

	require.NoError(t, err)
	assert.Equal(t, 5, created.ID)
	assert.Equal(t, StatusUnread, created.Status)
}
