// Copyright (c) 2026 Folio. All rights reserved.
// Author: jon@theijon.online

package hero_test

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
	"github.com/theijon/folio/internal/platform/apperr"
	"github.com/theijon/folio/internal/site/hero"
	"github.com/theijon/folio/pkg/pointer"
)

func newService(t *testing.T, handler http.Handler) *hero.Service {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	resolver := content.Resolver{InternalBase: server.URL}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	client := content.NewClient(resolver, 2*time.Second, logger)
	return hero.NewService(client, logger)
}

func heroFixture() string {
	return `{
		"id": 1,
		"firstName": "Jon",
		"lastName": "Doe",
		"positions": [
			{"title": "Engineer", "organization": "Acme", "since": "2020"},
			{"title": "Lead", "organization": "Initech", "since": "2023"}
		]
	}`
}

/*
TestService_Draft_LoadsOnce verifies the fetch-once editing session: the first
Draft call hits the content service, later calls serve the held draft.
*/
func TestService_Draft_LoadsOnce(t *testing.T) {
	fetches := 0
	service := newService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fetches++
		_, _ = w.Write([]byte(heroFixture()))
	}))

	first, err := service.Draft(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Jon", first.FirstName)

	_, err = service.Draft(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, fetches)
}

func TestService_Draft_FailedLoadLeavesNoDraft(t *testing.T) {
	service := newService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))

	_, err := service.Draft(context.Background())
	require.Error(t, err)

	// No draft means position edits have nothing to target.
	_, err = service.AddPosition()
	assert.Error(t, err)
}

func TestService_PositionEditing(t *testing.T) {
	service := newService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(heroFixture()))
	}))

	_, err := service.Draft(context.Background())
	require.NoError(t, err)

	t.Run("add_appends_default", func(t *testing.T) {
		draft, err := service.AddPosition()
		require.NoError(t, err)
		require.Len(t, draft.Positions, 3)
		assert.Equal(t, hero.DefaultPosition(), draft.Positions[2])
	})

	t.Run("update_merges_shallowly", func(t *testing.T) {
		draft, err := service.UpdatePosition(0, hero.PositionPatch{
			Title: pointer.To("Principal Engineer"),
		})
		require.NoError(t, err)
		assert.Equal(t, "Principal Engineer", draft.Positions[0].Title)
		assert.Equal(t, "Acme", draft.Positions[0].Organization, "unset patch fields keep existing values")
	})

	t.Run("remove_shifts_down", func(t *testing.T) {
		draft, err := service.RemovePosition(0)
		require.NoError(t, err)
		require.Len(t, draft.Positions, 2)
		assert.Equal(t, "Lead", draft.Positions[0].Title)
	})

	t.Run("out_of_range_is_unprocessable", func(t *testing.T) {
		_, err := service.UpdatePosition(99, hero.PositionPatch{})
		require.Error(t, err)
		ae := apperr.As(err)
		require.NotNil(t, ae)
		assert.Equal(t, http.StatusUnprocessableEntity, ae.HTTPStatus)
	})
}

/*
TestService_Save_FailurePreservesDraft is the crash-safety contract of the
editing session: a rejected save must leave the user's work intact.
*/
func TestService_Save_FailurePreservesDraft(t *testing.T) {
	saves := 0
	service := newService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			saves++
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		_, _ = w.Write([]byte(heroFixture()))
	}))

	_, err := service.Draft(context.Background())
	require.NoError(t, err)

	edited, err := service.AddPosition()
	require.NoError(t, err)

	_, err = service.Save(context.Background())
	require.Error(t, err)
	assert.Equal(t, 1, saves)

	current, err := service.Draft(context.Background())
	require.NoError(t, err)
	assert.Equal(t, edited, current, "failed save must not touch the draft")
}

/*
TestService_Save_HungUpstreamPreservesDraft covers the stuck-save path: a
save against an unresponsive content service is cut off by the client
timeout, surfaces as unreachable, and leaves the draft exactly as edited.
*/
func TestService_Save_HungUpstreamPreservesDraft(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			// Hold the save open until the client gives up. The body must be
			// drained first: the server only detects the client disconnect
			// (and cancels the request context) once the body is consumed.
			_, _ = io.Copy(io.Discard, r.Body)
			<-r.Context().Done()
			return
		}
		_, _ = w.Write([]byte(heroFixture()))
	}))
	t.Cleanup(server.Close)

	resolver := content.Resolver{InternalBase: server.URL}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	client := content.NewClient(resolver, 50*time.Millisecond, logger)
	service := hero.NewService(client, logger)

	_, err := service.Draft(context.Background())
	require.NoError(t, err)

	edited, err := service.AddPosition()
	require.NoError(t, err)

	_, err = service.Save(context.Background())
	require.Error(t, err)
	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, "UPSTREAM_UNREACHABLE", ae.Code)

	current, err := service.Draft(context.Background())
	require.NoError(t, err)
	assert.Equal(t, edited, current, "a timed-out save must not touch the draft")
}

/*
TestService_Save_UnmodifiedDraftRoundTrips verifies that saving an untouched
draft persists a document equal to the one that was loaded.
*/
func TestService_Save_UnmodifiedDraftRoundTrips(t *testing.T) {
	var persisted hero.Hero
	service := newService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			require.NoError(t, json.NewDecoder(r.Body).Decode(&persisted))
			// Echo the document back unchanged.
			require.NoError(t, json.NewEncoder(w).Encode(persisted))
			return
		}
		_, _ = w.Write([]byte(heroFixture()))
	}))

	loaded, err := service.Draft(context.Background())
	require.NoError(t, err)

	saved, err := service.Save(context.Background())
	require.NoError(t, err)

	assert.Equal(t, loaded, persisted, "an untouched draft persists exactly what was loaded")
	assert.Equal(t, loaded, saved)

	current, err := service.Draft(context.Background())
	require.NoError(t, err)
	assert.Equal(t, loaded, current)
}

func TestService_Save_AdoptsServerResponse(t *testing.T) {
	service := newService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			// Server normalizes the document on save.
			_, _ = w.Write([]byte(`{"id": 1, "firstName": "Jon", "displayName": "jon.doe", "positions": []}`))
			return
		}
		_, _ = w.Write([]byte(heroFixture()))
	}))

	_, err := service.Draft(context.Background())
	require.NoError(t, err)

	saved, err := service.Save(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "jon.doe", saved.DisplayName)

	current, err := service.Draft(context.Background())
	require.NoError(t, err)
	assert.Equal(t, saved, current, "server response becomes the new draft")
}

func TestService_DiscardDraft(t *testing.T) {
	fetches := 0
	service := newService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fetches++
		_, _ = w.Write([]byte(heroFixture()))
	}))

	_, err := service.Draft(context.Background())
	require.NoError(t, err)

	service.DiscardDraft()

	_, err = service.Draft(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, fetches, "discard forces a fresh load")
}
