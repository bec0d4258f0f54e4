// Copyright (c) 2026 Folio. All rights reserved.
// Author: jon@theijon.online

package blog

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

	service := NewService(client, logger)
	service.now = func() time.Time {
		return time.Date(2024, time.March, 5, 12, 0, 0, 0, time.UTC)
	}
	return service
}

const listFixture = `[
	{"id": 1, "title": "First", "slug": "first", "date": "1 Jan 2024", "published": true},
	{"id": 2, "title": "Second", "slug": "second", "date": "2 Feb 2024", "published": false}
]`

/*
TestService_Save_DerivesSlugAndDate verifies save-time derivation: a blank
slug comes from the title, a blank date from the clock, and values the user
supplied are never overwritten.
*/
func TestService_Save_DerivesSlugAndDate(t *testing.T) {
	var received Blog
	service := newTestService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		received.ID = 9
		_ = json.NewEncoder(w).Encode(received)
	}))

	service.BeginNew()
	service.ReplaceDraft(Blog{Title: "Hello, World! 2024"})

	saved, err := service.Save(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "hello-world-2024", received.Slug)
	assert.Equal(t, "5 Mar 2024", received.Date)
	assert.Equal(t, 9, saved.ID, "server-assigned identifier is adopted")
}

func TestService_Save_KeepsSuppliedFields(t *testing.T) {
	var received Blog
	service := newTestService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		_ = json.NewEncoder(w).Encode(received)
	}))

	service.BeginNew()
	service.ReplaceDraft(Blog{Title: "My Post", Slug: "custom-slug", Date: "9 Sep 2020"})

	_, err := service.Save(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "custom-slug", received.Slug)
	assert.Equal(t, "9 Sep 2020", received.Date)
}

/*
TestService_Save_CreateAppendsToList covers create-then-sync: the saved post
joins the loaded collection without a refetch.
*/
func TestService_Save_CreateAppendsToList(t *testing.T) {
	service := newTestService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			_, _ = w.Write([]byte(listFixture))
		case http.MethodPost:
			var incoming Blog
			_ = json.NewDecoder(r.Body).Decode(&incoming)
			incoming.ID = 7
			_ = json.NewEncoder(w).Encode(incoming)
		}
	}))

	_, err := service.List(context.Background())
	require.NoError(t, err)

	service.BeginNew()
	service.ReplaceDraft(Blog{Title: "Third"})

	saved, err := service.Save(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 7, saved.ID)

	_, found := service.list.Find(7)
	assert.True(t, found, "created post must appear in the synchronized list")
	assert.Len(t, service.list.Items(), 3)
}

func TestService_Save_UpdateReplacesListEntry(t *testing.T) {
	service := newTestService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			_, _ = w.Write([]byte(listFixture))
		case http.MethodPut:
			assert.Equal(t, "/blogs/2", r.URL.Path)
			var incoming Blog
			_ = json.NewDecoder(r.Body).Decode(&incoming)
			_ = json.NewEncoder(w).Encode(incoming)
		}
	}))

	_, err := service.List(context.Background())
	require.NoError(t, err)

	_, err = service.BeginEdit(2)
	require.NoError(t, err)
	service.ReplaceDraft(Blog{ID: 2, Title: "Second, revised", Slug: "second", Date: "2 Feb 2024", Published: true})

	_, err = service.Save(context.Background())
	require.NoError(t, err)

	member, found := service.list.Find(2)
	require.True(t, found)
	assert.Equal(t, "Second, revised", member.Title)
	assert.Len(t, service.list.Items(), 2, "update must not grow the list")
}

func TestService_Save_FailurePreservesDraftAndList(t *testing.T) {
	service := newTestService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			_, _ = w.Write([]byte(listFixture))
		default:
			w.WriteHeader(http.StatusUnprocessableEntity)
			_, _ = w.Write([]byte(`{"message": "Title too long"}`))
		}
	}))

	_, err := service.List(context.Background())
	require.NoError(t, err)

	service.BeginNew()
	service.ReplaceDraft(Blog{Title: "Doomed"})

	_, err = service.Save(context.Background())
	require.Error(t, err)
	assert.Equal(t, "Title too long", err.Error(), "upstream message surfaces verbatim")

	draft, derr := service.Draft()
	require.NoError(t, derr)
	assert.Equal(t, "Doomed", draft.Title)
	assert.Len(t, service.list.Items(), 2, "failed save must not touch the list")
}

func TestService_BeginEdit_UnknownID(t *testing.T) {
	service := newTestService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(listFixture))
	}))

	_, err := service.List(context.Background())
	require.NoError(t, err)

	_, err = service.BeginEdit(404)
	assert.Error(t, err)
}

func TestService_Delete_SyncsList(t *testing.T) {
	service := newTestService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			_, _ = w.Write([]byte(listFixture))
		case http.MethodDelete:
			assert.Equal(t, "/blogs/1", r.URL.Path)
			w.WriteHeader(http.StatusNoContent)
		}
	}))

	_, err := service.List(context.Background())
	require.NoError(t, err)

	require.NoError(t, service.Delete(context.Background(), 1))

	_, found := service.list.Find(1)
	assert.False(t, found)
	assert.Len(t, service.list.Items(), 1)
}

func TestService_List_FailureEmptiesView(t *testing.T) {
	service := newTestService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))

	_, err := service.List(context.Background())
	require.Error(t, err)
	assert.Empty(t, service.list.Items())
}
