// Copyright (c) 2026 Folio. All rights reserved.
// Author: jon@theijon.online

/*
Package request provides utilities for extracting data from HTTP requests.

It abstracts away the underlying router's parameter extraction and common
body decoding patterns, ensuring consistent error handling and type safety.
*/
package requestutil

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/theijon/folio/internal/platform/apperr"
	"github.com/theijon/folio/internal/platform/ctxutil"
	"github.com/theijon/folio/internal/platform/sec"
	"github.com/theijon/folio/internal/platform/validate"
)

/*
DecodeJSON reads the request body and decodes it into the target structure.

Parameters:
  - request: *http.Request
  - target: interface{} (Pointer to the destination struct)

Returns:
  - error: validate.ErrInvalidJSON if decoding fails, otherwise nil
*/
func DecodeJSON(request *http.Request, target interface{}) error {
	if err := json.NewDecoder(request.Body).Decode(target); err != nil {
		return validate.ErrInvalidJSON
	}
	return nil
}

/*
Param retrieves a named URL parameter from the request.
*/
func Param(request *http.Request, name string) string {
	return chi.URLParam(request, name)
}

/*
IntParam retrieves a named URL parameter and parses it as an integer.

Returns:
  - int: The parsed value
  - error: apperr.ValidationError if the parameter is not a valid integer
*/
func IntParam(request *http.Request, name string) (int, error) {
	value, err := strconv.Atoi(chi.URLParam(request, name))
	if err != nil {
		return 0, apperr.ValidationError("Parameter '" + name + "' must be an integer")
	}
	return value, nil
}

/*
Confirmed reports whether the request carries the explicit confirmation flag
required before irreversible operations (deletes) are issued.
*/
func Confirmed(request *http.Request) bool {
	return request.URL.Query().Get("confirm") == "true"
}

/*
Session extracts the authenticated admin session from the request context.

Returns nil if the request is not authenticated.
*/
func Session(request *http.Request) *sec.Session {
	return ctxutil.GetSession(request.Context())
}

