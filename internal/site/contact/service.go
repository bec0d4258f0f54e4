// Copyright (c) 2026 Folio. All rights reserved.
// Author: jon@theijon.online

// Package contact manages the contact singleton and its nested socials list.
package contact

import (
	"context"
	"errors"
	"log/slog"

	"github.com/theijon/folio/internal/content"
	"github.com/theijon/folio/internal/edit"
	"github.com/theijon/folio/internal/platform/apperr"
)

const resourcePath = "/contact"

// Service orchestrates the contact editing session.
type Service struct {
	client *content.Client
	draft  *edit.Store[Contact]
	logger *slog.Logger
}

// NewService constructs the contact [Service].
func NewService(client *content.Client, logger *slog.Logger) *Service {
	return &Service{
		client: client,
		draft:  edit.NewStore[Contact](),
		logger: logger,
	}
}

// Public fetches the live document for the public site.
func (service *Service) Public(ctx context.Context) (Contact, error) {
	return content.Get[Contact](ctx, service.client, resourcePath)
}

// Draft returns the current draft, loading it on first access.
func (service *Service) Draft(ctx context.Context) (Contact, error) {
	if current, ok := service.draft.Current(); ok {
		return current, nil
	}
	return service.draft.Load(ctx, func(ctx context.Context) (Contact, error) {
		return content.Get[Contact](ctx, service.client, resourcePath)
	})
}

// ReplaceDraft swaps in a full new draft value.
func (service *Service) ReplaceDraft(draft Contact) {
	service.draft.Replace(draft)
}

// DiscardDraft drops any unsaved edits.
func (service *Service) DiscardDraft() {
	service.draft.Discard()
}

// AddSocial appends a default social link to the draft.
func (service *Service) AddSocial() (Contact, error) {
	current, ok := service.draft.Current()
	if !ok {
		return Contact{}, apperr.NotFound("Contact draft")
	}

	next := current
	next.Socials = edit.Insert(current.Socials, DefaultSocialLink())
	service.draft.Replace(next)
	return next, nil
}

// UpdateSocial patches the social link at index.
func (service *Service) UpdateSocial(index int, patch SocialLinkPatch) (Contact, error) {
	current, ok := service.draft.Current()
	if !ok {
		return Contact{}, apperr.NotFound("Contact draft")
	}

	socials, err := edit.UpdateAt(current.Socials, index, patch.Apply)
	if err != nil {
		return Contact{}, indexError(err)
	}

	next := current
	next.Socials = socials
	service.draft.Replace(next)
	return next, nil
}

// RemoveSocial deletes the social link at index; later links shift down.
func (service *Service) RemoveSocial(index int) (Contact, error) {
	current, ok := service.draft.Current()
	if !ok {
		return Contact{}, apperr.NotFound("Contact draft")
	}

	socials, err := edit.RemoveAt(current.Socials, index)
	if err != nil {
		return Contact{}, indexError(err)
	}

	next := current
	next.Socials = socials
	service.draft.Replace(next)
	return next, nil
}

// Save persists the draft wholesale and adopts the server's response.
func (service *Service) Save(ctx context.Context) (Contact, error) {
	current, ok := service.draft.Current()
	if !ok {
		return Contact{}, apperr.NotFound("Contact draft")
	}

	saved, err := content.SaveSingleton(ctx, service.client, resourcePath, current)
	if err != nil {
		return Contact{}, err
	}

	service.draft.Replace(saved)
	service.logger.Info("contact_saved", slog.Int("socials", len(saved.Socials)))
	return saved, nil
}

func indexError(err error) error {
	if errors.Is(err, edit.ErrIndexOutOfRange) {
		return apperr.Unprocessable("Social link index out of range")
	}
	return err
}
