// Copyright (c) 2026 Folio. All rights reserved.
// Author: jon@theijon.online

/*
Package techstack manages the tech-stack catalog: ordered categories, each
holding a nested technologies list.

Unlike the other collections, adding a category calls through to the content
service immediately (the console shows the saved category right away), while
technology edits accumulate in the draft until an explicit save.
*/
package techstack

import (
	"context"
	"errors"
	"log/slog"

	"github.com/theijon/folio/internal/content"
	"github.com/theijon/folio/internal/edit"
	"github.com/theijon/folio/internal/platform/apperr"
)

const collectionPath = "/techstack"

// Service orchestrates tech-stack editing.
type Service struct {
	client *content.Client
	list   *edit.SyncedList[Category]
	draft  *edit.Store[Category]
	logger *slog.Logger
}

// NewService constructs the tech-stack [Service].
func NewService(client *content.Client, logger *slog.Logger) *Service {
	return &Service{
		client: client,
		list: edit.NewSyncedList[Category](func(a, b Category) bool {
			return a.Order < b.Order
		}),
		draft:  edit.NewStore[Category](),
		logger: logger,
	}
}

// List fetches the collection and installs it in the synchronized view.
func (service *Service) List(ctx context.Context) ([]Category, error) {
	service.list.BeginLoad()

	categories, err := content.Get[[]Category](ctx, service.client, collectionPath)
	if err != nil {
		service.list.FailLoad()
		return nil, err
	}

	service.list.ReplaceAll(categories)
	return service.list.Items(), nil
}

// PublicList exposes the collection for the rendered site.
func (service *Service) PublicList(ctx context.Context) ([]Category, error) {
	return content.Get[[]Category](ctx, service.client, collectionPath)
}

// CreateDefault creates a new category on the content service right away and
// appends the saved member to the collection view. The display order is
// derived: one more than the maximum among loaded categories, or 1 when the
// catalog is empty.
func (service *Service) CreateDefault(ctx context.Context) (Category, error) {
	category := Category{
		Name:         "New Category",
		Order:        service.list.MaxBy(func(c Category) int { return c.Order }) + 1,
		Technologies: []Technology{},
	}

	saved, err := content.SaveMember(ctx, service.client, collectionPath, category)
	if err != nil {
		return Category{}, err
	}

	service.list.Append(saved)
	service.logger.Info("techstack_category_created",
		slog.Int("id", saved.ID),
		slog.Int("order", saved.Order),
	)
	return saved, nil
}

// BeginEdit seeds the draft from a member of the loaded collection.
func (service *Service) BeginEdit(id int) (Category, error) {
	member, ok := service.list.Find(id)
	if !ok {
		return Category{}, apperr.NotFound("Tech-stack category")
	}
	service.draft.Seed(member)
	return member, nil
}

// Draft returns the current draft.
func (service *Service) Draft() (Category, error) {
	current, ok := service.draft.Current()
	if !ok {
		return Category{}, apperr.NotFound("Category draft")
	}
	return current, nil
}

// ReplaceDraft swaps in a full new draft value.
func (service *Service) ReplaceDraft(draft Category) {
	service.draft.Replace(draft)
}

// DiscardDraft drops any unsaved edits.
func (service *Service) DiscardDraft() {
	service.draft.Discard()
}

// Rename changes the category name in the draft.
func (service *Service) Rename(name string) (Category, error) {
	current, ok := service.draft.Current()
	if !ok {
		return Category{}, apperr.NotFound("Category draft")
	}

	next := current
	next.Name = name
	service.draft.Replace(next)
	return next, nil
}

// AddTechnology appends a default technology to the draft.
func (service *Service) AddTechnology() (Category, error) {
	current, ok := service.draft.Current()
	if !ok {
		return Category{}, apperr.NotFound("Category draft")
	}

	next := current
	next.Technologies = edit.Insert(current.Technologies, DefaultTechnology())
	service.draft.Replace(next)
	return next, nil
}

// UpdateTechnology patches the technology at index.
func (service *Service) UpdateTechnology(index int, patch TechnologyPatch) (Category, error) {
	current, ok := service.draft.Current()
	if !ok {
		return Category{}, apperr.NotFound("Category draft")
	}

	technologies, err := edit.UpdateAt(current.Technologies, index, patch.Apply)
	if err != nil {
		return Category{}, indexError(err)
	}

	next := current
	next.Technologies = technologies
	service.draft.Replace(next)
	return next, nil
}

// RemoveTechnology deletes the technology at index; later entries shift down.
func (service *Service) RemoveTechnology(index int) (Category, error) {
	current, ok := service.draft.Current()
	if !ok {
		return Category{}, apperr.NotFound("Category draft")
	}

	technologies, err := edit.RemoveAt(current.Technologies, index)
	if err != nil {
		return Category{}, indexError(err)
	}

	next := current
	next.Technologies = technologies
	service.draft.Replace(next)
	return next, nil
}

// Save persists the draft and reconciles local state with the response.
func (service *Service) Save(ctx context.Context) (Category, error) {
	current, ok := service.draft.Current()
	if !ok {
		return Category{}, apperr.NotFound("Category draft")
	}

	outgoing := current
	if outgoing.Technologies == nil {
		outgoing.Technologies = []Technology{}
	}
	creating := outgoing.ID == 0
	if creating && outgoing.Order == 0 {
		outgoing.Order = service.list.MaxBy(func(c Category) int { return c.Order }) + 1
	}

	saved, err := content.SaveMember(ctx, service.client, collectionPath, outgoing)
	if err != nil {
		return Category{}, err
	}

	service.draft.Replace(saved)
	if creating {
		service.list.Append(saved)
	} else {
		service.list.Update(saved)
	}

	service.logger.Info("techstack_saved",
		slog.Int("id", saved.ID),
		slog.Int("technologies", len(saved.Technologies)),
	)
	return saved, nil
}

// Delete removes a category by identifier and drops it from the view.
func (service *Service) Delete(ctx context.Context, id int) error {
	if err := service.client.DeleteMember(ctx, collectionPath, id); err != nil {
		return err
	}
	service.list.Remove(id)
	service.logger.Info("techstack_deleted", slog.Int("id", id))
	return nil
}

func indexError(err error) error {
	if errors.Is(err, edit.ErrIndexOutOfRange) {
		return apperr.Unprocessable("Technology index out of range")
	}
	return err
}
