// Copyright (c) 2026 Folio. All rights reserved.
// Author: jon@theijon.online

package inbox

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/theijon/folio/internal/content"
	"github.com/theijon/folio/internal/edit"
)

const collectionPath = "/messages"

// Service coordinates message triage against the content service.
type Service struct {
	client *content.Client
	list   *edit.SyncedList[Message]
	logger *slog.Logger
}

// NewService constructs the inbox [Service]. Newest messages sort first.
func NewService(client *content.Client, logger *slog.Logger) *Service {
	return &Service{
		client: client,
		list: edit.NewSyncedList[Message](func(a, b Message) bool {
			return a.CreatedAt > b.CreatedAt
		}),
		logger: logger,
	}
}

// List fetches the inbox and installs it in the synchronized view.
func (service *Service) List(ctx context.Context) ([]Message, error) {
	service.list.BeginLoad()

	messages, err := content.Get[[]Message](ctx, service.client, collectionPath)
	if err != nil {
		service.list.FailLoad()
		return nil, err
	}

	service.list.ReplaceAll(messages)
	return service.list.Items(), nil
}

type statusChange struct {
	Status string `json:"status"`
}

// UpdateStatus transitions one message to a new read status. The status is
// validated at the handler boundary. The updated message replaces its entry
// in the loaded view, matched by identifier so a concurrent re-sort cannot
// redirect the change to another message.
func (service *Service) UpdateStatus(ctx context.Context, id int, status string) (Message, error) {
	path := fmt.Sprintf("%s/%d/status", collectionPath, id)
	updated, err := content.Put[Message](ctx, service.client, path, statusChange{Status: status})
	if err != nil {
		return Message{}, err
	}

	service.list.Update(updated)
	service.logger.Info("message_status_changed",
		slog.Int("id", id),
		slog.String("status", status),
	)
	return updated, nil
}

// Delete removes a message by identifier and drops it from the view.
func (service *Service) Delete(ctx context.Context, id int) error {
	if err := service.client.DeleteMember(ctx, collectionPath, id); err != nil {
		return err
	}
	service.list.Remove(id)
	service.logger.Info("message_deleted", slog.Int("id", id))
	return nil
}

// Submit records a visitor message through the public contact form.
func (service *Service) Submit(ctx context.Context, submission Submission) (Message, error) {
	created, err := content.Post[Message](ctx, service.client, collectionPath, submission)
	if err != nil {
		return Message{}, err
	}

	service.logger.Info("message_submitted", slog.Int("id", created.ID))
	return created, nil
}
