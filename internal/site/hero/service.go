// Copyright (c) 2026 Folio. All rights reserved.
// Author: jon@theijon.online

/*
Package hero manages the profile singleton: the public read plus the draft
editing session for the hero document and its nested positions list.

All mutation flows through the generic engine in [edit]; this package only
supplies the entity shape, the default element, and the patch merge.
*/
package hero

import (
	"context"
	"errors"
	"log/slog"

	"github.com/theijon/folio/internal/content"
	"github.com/theijon/folio/internal/edit"
	"github.com/theijon/folio/internal/platform/apperr"
)

// resourcePath is the logical path of the hero singleton.
const resourcePath = "/hero"

// Service orchestrates the hero editing session.
type Service struct {
	client *content.Client
	draft  *edit.Store[Hero]
	logger *slog.Logger
}

// NewService constructs the hero [Service].
func NewService(client *content.Client, logger *slog.Logger) *Service {
	return &Service{
		client: client,
		draft:  edit.NewStore[Hero](),
		logger: logger,
	}
}

// Public fetches the live hero document for the public site. It bypasses the
// draft store entirely.
func (service *Service) Public(ctx context.Context) (Hero, error) {
	return content.Get[Hero](ctx, service.client, resourcePath)
}

// Draft returns the current draft, loading it from the content service if no
// editing session is in progress yet.
func (service *Service) Draft(ctx context.Context) (Hero, error) {
	if current, ok := service.draft.Current(); ok {
		return current, nil
	}
	return service.draft.Load(ctx, func(ctx context.Context) (Hero, error) {
		return content.Get[Hero](ctx, service.client, resourcePath)
	})
}

// ReplaceDraft swaps in a full new draft value.
func (service *Service) ReplaceDraft(draft Hero) {
	service.draft.Replace(draft)
}

// DiscardDraft drops any unsaved edits.
func (service *Service) DiscardDraft() {
	service.draft.Discard()
}

// AddPosition appends a default position to the draft and returns the new draft.
func (service *Service) AddPosition() (Hero, error) {
	current, ok := service.draft.Current()
	if !ok {
		return Hero{}, apperr.NotFound("Hero draft")
	}

	next := current
	next.Positions = edit.Insert(current.Positions, DefaultPosition())
	service.draft.Replace(next)
	return next, nil
}

// UpdatePosition patches the position at index and returns the new draft.
func (service *Service) UpdatePosition(index int, patch PositionPatch) (Hero, error) {
	current, ok := service.draft.Current()
	if !ok {
		return Hero{}, apperr.NotFound("Hero draft")
	}

	positions, err := edit.UpdateAt(current.Positions, index, patch.Apply)
	if err != nil {
		return Hero{}, indexError(err)
	}

	next := current
	next.Positions = positions
	service.draft.Replace(next)
	return next, nil
}

// RemovePosition deletes the position at index; later positions shift down.
func (service *Service) RemovePosition(index int) (Hero, error) {
	current, ok := service.draft.Current()
	if !ok {
		return Hero{}, apperr.NotFound("Hero draft")
	}

	positions, err := edit.RemoveAt(current.Positions, index)
	if err != nil {
		return Hero{}, indexError(err)
	}

	next := current
	next.Positions = positions
	service.draft.Replace(next)
	return next, nil
}

// Save persists the draft wholesale. On success the server's response becomes
// the new draft; on failure the draft is left exactly as the user built it.
func (service *Service) Save(ctx context.Context) (Hero, error) {
	current, ok := service.draft.Current()
	if !ok {
		return Hero{}, apperr.NotFound("Hero draft")
	}

	saved, err := content.SaveSingleton(ctx, service.client, resourcePath, current)
	if err != nil {
		return Hero{}, err
	}

	service.draft.Replace(saved)
	service.logger.Info("hero_saved", slog.Int("positions", len(saved.Positions)))
	return saved, nil
}

// indexError maps the engine's positional contract violation to a client error.
func indexError(err error) error {
	if errors.Is(err, edit.ErrIndexOutOfRange) {
		return apperr.Unprocessable("Position index out of range")
	}
	return err
}
