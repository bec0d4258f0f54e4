// Copyright (c) 2026 Folio. All rights reserved.
// Author: jon@theijon.online

// Package about manages the about-me singleton and its nested facts list.
package about

import (
	"context"
	"errors"
	"log/slog"

	"github.com/theijon/folio/internal/content"
	"github.com/theijon/folio/internal/edit"
	"github.com/theijon/folio/internal/platform/apperr"
)

const resourcePath = "/aboutme"

// Service orchestrates the about-me editing session.
type Service struct {
	client *content.Client
	draft  *edit.Store[AboutMe]
	logger *slog.Logger
}

// NewService constructs the about-me [Service].
func NewService(client *content.Client, logger *slog.Logger) *Service {
	return &Service{
		client: client,
		draft:  edit.NewStore[AboutMe](),
		logger: logger,
	}
}

// Public fetches the live document for the public site.
func (service *Service) Public(ctx context.Context) (AboutMe, error) {
	return content.Get[AboutMe](ctx, service.client, resourcePath)
}

// Draft returns the current draft, loading it on first access.
func (service *Service) Draft(ctx context.Context) (AboutMe, error) {
	if current, ok := service.draft.Current(); ok {
		return current, nil
	}
	return service.draft.Load(ctx, func(ctx context.Context) (AboutMe, error) {
		return content.Get[AboutMe](ctx, service.client, resourcePath)
	})
}

// ReplaceDraft swaps in a full new draft value.
func (service *Service) ReplaceDraft(draft AboutMe) {
	service.draft.Replace(draft)
}

// DiscardDraft drops any unsaved edits.
func (service *Service) DiscardDraft() {
	service.draft.Discard()
}

// AddFact appends a default fact to the draft.
func (service *Service) AddFact() (AboutMe, error) {
	current, ok := service.draft.Current()
	if !ok {
		return AboutMe{}, apperr.NotFound("About-me draft")
	}

	next := current
	next.Facts = edit.Insert(current.Facts, DefaultFact())
	service.draft.Replace(next)
	return next, nil
}

// UpdateFact patches the fact at index.
func (service *Service) UpdateFact(index int, patch FactPatch) (AboutMe, error) {
	current, ok := service.draft.Current()
	if !ok {
		return AboutMe{}, apperr.NotFound("About-me draft")
	}

	facts, err := edit.UpdateAt(current.Facts, index, patch.Apply)
	if err != nil {
		return AboutMe{}, indexError(err)
	}

	next := current
	next.Facts = facts
	service.draft.Replace(next)
	return next, nil
}

// RemoveFact deletes the fact at index; later facts shift down.
func (service *Service) RemoveFact(index int) (AboutMe, error) {
	current, ok := service.draft.Current()
	if !ok {
		return AboutMe{}, apperr.NotFound("About-me draft")
	}

	facts, err := edit.RemoveAt(current.Facts, index)
	if err != nil {
		return AboutMe{}, indexError(err)
	}

	next := current
	next.Facts = facts
	service.draft.Replace(next)
	return next, nil
}

// Save persists the draft wholesale and adopts the server's response.
func (service *Service) Save(ctx context.Context) (AboutMe, error) {
	current, ok := service.draft.Current()
	if !ok {
		return AboutMe{}, apperr.NotFound("About-me draft")
	}

	saved, err := content.SaveSingleton(ctx, service.client, resourcePath, current)
	if err != nil {
		return AboutMe{}, err
	}

	service.draft.Replace(saved)
	service.logger.Info("aboutme_saved", slog.Int("facts", len(saved.Facts)))
	return saved, nil
}

func indexError(err error) error {
	if errors.Is(err, edit.ErrIndexOutOfRange) {
		return apperr.Unprocessable("Fact index out of range")
	}
	return err
}
