// Copyright (c) 2026 Folio. All rights reserved.
// Author: jon@theijon.online

/*
Package blog manages the blogs collection: list synchronization, the
single-post draft session, and the derived fields filled in at save time
(slug from title, submission date).
*/
package blog

import (
	"context"
	"log/slog"
	"time"

	"github.com/theijon/folio/internal/content"
	"github.com/theijon/folio/internal/edit"
	"github.com/theijon/folio/internal/platform/apperr"
	"github.com/theijon/folio/pkg/slug"
)

const collectionPath = "/blogs"

// dateLayout renders dates like "5 Mar 2024". English month names are fixed
// regardless of server locale so derived dates match what the site renders.
const dateLayout = "2 Jan 2006"

// Service orchestrates blog editing: one draft (the post currently open in
// the console) plus the synchronized collection view.
type Service struct {
	client *content.Client
	list   *edit.SyncedList[Blog]
	draft  *edit.Store[Blog]
	logger *slog.Logger

	// now is injected for deterministic derived-date tests.
	now func() time.Time
}

// NewService constructs the blog [Service].
func NewService(client *content.Client, logger *slog.Logger) *Service {
	return &Service{
		client: client,
		list:   edit.NewSyncedList[Blog](nil),
		draft:  edit.NewStore[Blog](),
		logger: logger,
		now:    time.Now,
	}
}

// List fetches the collection and installs it in the synchronized view.
func (service *Service) List(ctx context.Context) ([]Blog, error) {
	service.list.BeginLoad()

	blogs, err := content.Get[[]Blog](ctx, service.client, collectionPath)
	if err != nil {
		service.list.FailLoad()
		return nil, err
	}

	service.list.ReplaceAll(blogs)
	return service.list.Items(), nil
}

// PublicList exposes the collection for the rendered site, bypassing editing state.
func (service *Service) PublicList(ctx context.Context) ([]Blog, error) {
	return content.Get[[]Blog](ctx, service.client, collectionPath)
}

// PublicBySlug fetches one published post by its slug.
func (service *Service) PublicBySlug(ctx context.Context, postSlug string) (Blog, error) {
	return content.Get[Blog](ctx, service.client, collectionPath+"/slug/"+postSlug)
}

// BeginNew seeds an empty draft for a post that does not exist yet.
func (service *Service) BeginNew() Blog {
	draft := Blog{}
	service.draft.Seed(draft)
	return draft
}

// BeginEdit seeds the draft from a member of the loaded collection.
func (service *Service) BeginEdit(id int) (Blog, error) {
	member, ok := service.list.Find(id)
	if !ok {
		return Blog{}, apperr.NotFound("Blog post")
	}
	service.draft.Seed(member)
	return member, nil
}

// Draft returns the current draft.
func (service *Service) Draft() (Blog, error) {
	current, ok := service.draft.Current()
	if !ok {
		return Blog{}, apperr.NotFound("Blog draft")
	}
	return current, nil
}

// ReplaceDraft swaps in a full new draft value.
func (service *Service) ReplaceDraft(draft Blog) {
	service.draft.Replace(draft)
}

// DiscardDraft drops any unsaved edits.
func (service *Service) DiscardDraft() {
	service.draft.Discard()
}

// Save derives blank fields, persists the draft, and reconciles local state:
// the server's response becomes both the new draft and the collection entry
// (appended for creates, replaced by identifier for updates). A failed save
// leaves the draft and the list exactly as they were.
func (service *Service) Save(ctx context.Context) (Blog, error) {
	current, ok := service.draft.Current()
	if !ok {
		return Blog{}, apperr.NotFound("Blog draft")
	}

	outgoing := service.deriveFields(current)
	creating := outgoing.ID == 0

	saved, err := content.SaveMember(ctx, service.client, collectionPath, outgoing)
	if err != nil {
		return Blog{}, err
	}

	service.draft.Replace(saved)
	if creating {
		service.list.Append(saved)
	} else {
		service.list.Update(saved)
	}

	service.logger.Info("blog_saved",
		slog.Int("id", saved.ID),
		slog.String("slug", saved.Slug),
		slog.Bool("created", creating),
	)
	return saved, nil
}

// Delete removes a post by identifier and drops it from the collection view.
func (service *Service) Delete(ctx context.Context, id int) error {
	if err := service.client.DeleteMember(ctx, collectionPath, id); err != nil {
		return err
	}
	service.list.Remove(id)
	service.logger.Info("blog_deleted", slog.Int("id", id))
	return nil
}

// deriveFields fills fields the user left blank, never overwriting supplied
// values. An empty title leaves the slug empty; the save still proceeds and
// any validation is the content service's call.
func (service *Service) deriveFields(draft Blog) Blog {
	derived := draft

	if derived.Slug == "" && derived.Title != "" {
		derived.Slug = slug.From(derived.Title)
	}
	if derived.Date == "" {
		derived.Date = service.now().Format(dateLayout)
	}

	return derived
}
