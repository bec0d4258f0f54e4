// Copyright (c) 2026 Folio. All rights reserved.
// Author: jon@theijon.online

package auth

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/theijon/folio/internal/platform/constants"
	requestutil "github.com/theijon/folio/internal/platform/request"
	"github.com/theijon/folio/internal/platform/respond"
	"github.com/theijon/folio/internal/platform/validate"
)

// Handler exposes the console login endpoints.
type Handler struct {
	service *Service
	// secureCookies marks the session cookie Secure; disabled only for
	// local development over plain HTTP.
	secureCookies bool
}

// NewHandler constructs the auth [Handler].
func NewHandler(service *Service, secureCookies bool) *Handler {
	return &Handler{service: service, secureCookies: secureCookies}
}

// RegisterRoutes mounts the auth endpoints. These live outside the admin
// gate: login must work for anonymous requests.
func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Post("/login", handler.login)
	router.Post("/logout", handler.logout)
	router.Get("/me", handler.me)
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type meResponse struct {
	Authenticated bool   `json:"authenticated"`
	Username      string `json:"username,omitempty"`
}

func (handler *Handler) login(writer http.ResponseWriter, request *http.Request) {
	var input loginRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	validator := &validate.Validator{}
	validator.Required("username", input.Username)
	validator.Required("password", input.Password)
	if err := validator.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	token, err := handler.service.Login(request.Context(), input.Username, input.Password)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	http.SetCookie(writer, handler.sessionCookie(token, int(handler.service.SessionTTL().Seconds())))
	respond.OK(writer, meResponse{Authenticated: true, Username: input.Username})
}

func (handler *Handler) logout(writer http.ResponseWriter, request *http.Request) {
	if cookie, err := request.Cookie(constants.SessionCookieName); err == nil && cookie.Value != "" {
		if err := handler.service.Logout(request.Context(), cookie.Value); err != nil {
			respond.Error(writer, request, err)
			return
		}
	}

	// MaxAge -1 tells the browser to drop the cookie immediately.
	http.SetCookie(writer, handler.sessionCookie("", -1))
	respond.NoContent(writer)
}

// me reports whether the request carries an authenticated session. It sits
// behind Authenticate but not RequireAdmin, so the console can probe login
// state without triggering an error response.
func (handler *Handler) me(writer http.ResponseWriter, request *http.Request) {
	session := requestutil.Session(request)
	if session == nil {
		respond.OK(writer, meResponse{Authenticated: false})
		return
	}
	respond.OK(writer, meResponse{Authenticated: true, Username: session.Username})
}

func (handler *Handler) sessionCookie(value string, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     constants.SessionCookieName,
		Value:    value,
		Path:     constants.SessionCookiePath,
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   handler.secureCookies,
		SameSite: http.SameSiteLaxMode,
	}
}
