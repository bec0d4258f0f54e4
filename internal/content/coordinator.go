// Copyright (c) 2026 Folio. All rights reserved.
// Author: jon@theijon.online

package content

import (
	"context"
	"fmt"

	"github.com/theijon/folio/internal/edit"
)

// This file is the persistence coordinator: it issues the create, update, or
// delete call for a draft and hands back the server's body as the new
// canonical document. On any failure the caller's local draft is untouched —
// retrying is simply saving again.

// SaveSingleton persists a full singleton document (hero, about, contact).
// Singletons are replaced wholesale with a POST to their resource path.
func SaveSingleton[T any](ctx context.Context, client *Client, path string, draft T) (T, error) {
	return Post[T](ctx, client, path, draft)
}

// SaveMember persists a collection member draft, choosing the method by the
// presence of its server-assigned identifier:
//
//   - identity zero: POST to the collection path; the server assigns an
//     identifier and the returned member carries it.
//   - identity set: idempotent PUT of the full document to the member path.
//
// The returned member is the server's response body — the canonical document
// including any server-assigned fields — and should replace the caller's
// draft and list entry.
func SaveMember[T edit.Identifiable](ctx context.Context, client *Client, collectionPath string, draft T) (T, error) {
	if draft.Identity() == 0 {
		return Post[T](ctx, client, collectionPath, draft)
	}
	return Put[T](ctx, client, memberPath(collectionPath, draft.Identity()), draft)
}

// DeleteMember removes a collection member by identifier. Irreversible;
// callers gate it behind an explicit confirmation step.
func (client *Client) DeleteMember(ctx context.Context, collectionPath string, id int) error {
	return client.Delete(ctx, memberPath(collectionPath, id))
}

// memberPath joins a collection path with a member identifier.
func memberPath(collectionPath string, id int) string {
	return fmt.Sprintf("%s/%d", collectionPath, id)
}
