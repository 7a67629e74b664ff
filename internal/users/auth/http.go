// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package auth

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/taibuivan/legaldesign/internal/platform/request"
	"github.com/taibuivan/legaldesign/internal/platform/respond"
	"github.com/taibuivan/legaldesign/internal/platform/validate"
)

// # Definitions & Constructors

// Handler implements the admin authentication endpoints.
type Handler struct {
	authService *Service
}

// NewHandler constructs a new [Handler] with its service dependency.
func NewHandler(service *Service) *Handler {
	return &Handler{authService: service}
}

// LoginRoutes mounts the endpoint reachable without a token.
func (handler *Handler) LoginRoutes(router chi.Router) {
	router.Post("/login", handler.login)
}

// AdminRoutes mounts the endpoints behind the admin gate.
func (handler *Handler) AdminRoutes(router chi.Router) {
	router.Post("/logout", handler.logout)
	router.Get("/me", handler.me)
}

// # Request Payloads

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

/*
POST /api/admin/login.

Description: Verifies admin credentials and issues a 24 hour bearer token.

Request:
  - Body: {username, password}

Response:
  - 200: {access_token, token_type, user_id, username}
  - 400: VALIDATION_ERROR: Missing username or password
  - 401: UNAUTHORIZED: Incorrect username or password
*/
func (handler *Handler) login(writer http.ResponseWriter, request *http.Request) {
	var input loginRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	validator := &validate.Validator{}
	validator.Required(FieldUsername, input.Username)
	validator.Required(FieldPassword, input.Password)
	if err := validator.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	session, err := handler.authService.Login(request.Context(), LoginInput{
		Username: input.Username,
		Password: input.Password,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, session)
}

/*
POST /api/admin/logout.

Description: Revokes the bearer token of the request.

Response:
  - 200: {message}
  - 401: UNAUTHORIZED: Not authenticated
*/
func (handler *Handler) logout(writer http.ResponseWriter, request *http.Request) {
	claims, err := requestutil.RequiredClaims(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.authService.Logout(request.Context(), claims); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Message(writer, MessageLoggedOut)
}

/*
GET /api/admin/me.

Response:
  - 200: Profile: The authenticated admin, without credentials
  - 401: UNAUTHORIZED: Not authenticated
*/
func (handler *Handler) me(writer http.ResponseWriter, request *http.Request) {
	claims, err := requestutil.RequiredClaims(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	profile, err := handler.authService.Me(request.Context(), claims.UserID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Dual(writer, request, profile)
}
