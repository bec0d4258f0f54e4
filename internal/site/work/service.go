// Copyright (c) 2026 Folio. All rights reserved.
// Author: jon@theijon.online

/*
Package work manages the portfolio collection. A work draft carries two
nested record lists (tags and links), both edited through the structured
operations in [edit] — the console never hand-authors encoded text for them.
*/
package work

import (
	"context"
	"errors"
	"log/slog"

	"github.com/theijon/folio/internal/content"
	"github.com/theijon/folio/internal/edit"
	"github.com/theijon/folio/internal/platform/apperr"
)

const collectionPath = "/works"

// Service orchestrates work editing: one draft plus the synchronized
// collection view, sorted by the display order field.
type Service struct {
	client *content.Client
	list   *edit.SyncedList[Work]
	draft  *edit.Store[Work]
	logger *slog.Logger
}

// NewService constructs the work [Service].
func NewService(client *content.Client, logger *slog.Logger) *Service {
	return &Service{
		client: client,
		list: edit.NewSyncedList[Work](func(a, b Work) bool {
			return a.Order < b.Order
		}),
		draft:  edit.NewStore[Work](),
		logger: logger,
	}
}

// List fetches the collection and installs it in the synchronized view.
func (service *Service) List(ctx context.Context) ([]Work, error) {
	service.list.BeginLoad()

	works, err := content.Get[[]Work](ctx, service.client, collectionPath)
	if err != nil {
		service.list.FailLoad()
		return nil, err
	}

	service.list.ReplaceAll(works)
	return service.list.Items(), nil
}

// PublicList exposes the collection for the rendered site.
func (service *Service) PublicList(ctx context.Context) ([]Work, error) {
	return content.Get[[]Work](ctx, service.client, collectionPath)
}

// BeginNew seeds an empty draft with its nested lists present but empty.
func (service *Service) BeginNew() Work {
	draft := Work{Size: SizeSmall, Tags: []Tag{}, Links: []Link{}}
	service.draft.Seed(draft)
	return draft
}

// BeginEdit seeds the draft from a member of the loaded collection.
func (service *Service) BeginEdit(id int) (Work, error) {
	member, ok := service.list.Find(id)
	if !ok {
		return Work{}, apperr.NotFound("Work")
	}
	service.draft.Seed(member)
	return member, nil
}

// Draft returns the current draft.
func (service *Service) Draft() (Work, error) {
	current, ok := service.draft.Current()
	if !ok {
		return Work{}, apperr.NotFound("Work draft")
	}
	return current, nil
}

// ReplaceDraft swaps in a full new draft value.
func (service *Service) ReplaceDraft(draft Work) {
	service.draft.Replace(draft)
}

// DiscardDraft drops any unsaved edits.
func (service *Service) DiscardDraft() {
	service.draft.Discard()
}

// # Nested List: Tags

// AddTag appends a default tag to the draft.
func (service *Service) AddTag() (Work, error) {
	current, ok := service.draft.Current()
	if !ok {
		return Work{}, apperr.NotFound("Work draft")
	}

	next := current
	next.Tags = edit.Insert(current.Tags, DefaultTag())
	service.draft.Replace(next)
	return next, nil
}

// UpdateTag patches the tag at index.
func (service *Service) UpdateTag(index int, patch TagPatch) (Work, error) {
	current, ok := service.draft.Current()
	if !ok {
		return Work{}, apperr.NotFound("Work draft")
	}

	tags, err := edit.UpdateAt(current.Tags, index, patch.Apply)
	if err != nil {
		return Work{}, indexError(err)
	}

	next := current
	next.Tags = tags
	service.draft.Replace(next)
	return next, nil
}

// RemoveTag deletes the tag at index; later tags shift down.
func (service *Service) RemoveTag(index int) (Work, error) {
	current, ok := service.draft.Current()
	if !ok {
		return Work{}, apperr.NotFound("Work draft")
	}

	tags, err := edit.RemoveAt(current.Tags, index)
	if err != nil {
		return Work{}, indexError(err)
	}

	next := current
	next.Tags = tags
	service.draft.Replace(next)
	return next, nil
}

// # Nested List: Links

// AddLink appends a default link to the draft.
func (service *Service) AddLink() (Work, error) {
	current, ok := service.draft.Current()
	if !ok {
		return Work{}, apperr.NotFound("Work draft")
	}

	next := current
	next.Links = edit.Insert(current.Links, DefaultLink())
	service.draft.Replace(next)
	return next, nil
}

// UpdateLink patches the link at index.
func (service *Service) UpdateLink(index int, patch LinkPatch) (Work, error) {
	current, ok := service.draft.Current()
	if !ok {
		return Work{}, apperr.NotFound("Work draft")
	}

	links, err := edit.UpdateAt(current.Links, index, patch.Apply)
	if err != nil {
		return Work{}, indexError(err)
	}

	next := current
	next.Links = links
	service.draft.Replace(next)
	return next, nil
}

// RemoveLink deletes the link at index; later links shift down.
func (service *Service) RemoveLink(index int) (Work, error) {
	current, ok := service.draft.Current()
	if !ok {
		return Work{}, apperr.NotFound("Work draft")
	}

	links, err := edit.RemoveAt(current.Links, index)
	if err != nil {
		return Work{}, indexError(err)
	}

	next := current
	next.Links = links
	service.draft.Replace(next)
	return next, nil
}

// # Persistence

// Save persists the draft and reconciles local state with the response.
// Nested lists are defaulted to empty rather than null so the renderer and
// the content service always see well-formed arrays.
func (service *Service) Save(ctx context.Context) (Work, error) {
	current, ok := service.draft.Current()
	if !ok {
		return Work{}, apperr.NotFound("Work draft")
	}

	outgoing := current
	if outgoing.Tags == nil {
		outgoing.Tags = []Tag{}
	}
	if outgoing.Links == nil {
		outgoing.Links = []Link{}
	}
	creating := outgoing.ID == 0

	saved, err := content.SaveMember(ctx, service.client, collectionPath, outgoing)
	if err != nil {
		return Work{}, err
	}

	service.draft.Replace(saved)
	if creating {
		service.list.Append(saved)
	} else {
		service.list.Update(saved)
	}

	service.logger.Info("work_saved",
		slog.Int("id", saved.ID),
		slog.Bool("created", creating),
	)
	return saved, nil
}

// Delete removes a work by identifier and drops it from the collection view.
func (service *Service) Delete(ctx context.Context, id int) error {
	if err := service.client.DeleteMember(ctx, collectionPath, id); err != nil {
		return err
	}
	service.list.Remove(id)
	service.logger.Info("work_deleted", slog.Int("id", id))
	return nil
}

func indexError(err error) error {
	if errors.Is(err, edit.ErrIndexOutOfRange) {
		return apperr.Unprocessable("List index out of range")
	}
	return err
}
