// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package middleware

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/taibuivan/legaldesign/internal/platform/apperr"
	"github.com/taibuivan/legaldesign/internal/platform/ctxutil"
	requestutil "github.com/taibuivan/legaldesign/internal/platform/request"
	"github.com/taibuivan/legaldesign/internal/platform/respond"
	"github.com/taibuivan/legaldesign/internal/platform/sec"
)

// Gate resolves a bearer token to the claims of an active, non-revoked admin.
//
// Defining Gate here decouples the middleware from the auth service, so tests
// can mount a stub.
type Gate interface {
	Authenticate(ctx context.Context, token string) (*sec.AuthClaims, error)
}

// Authenticate guards the admin scope. Every request must carry a bearer
// token that the [Gate] accepts.
//
// # Flow
//  1. Read 'Authorization: Bearer <token>'; missing or malformed → 401.
//  2. Resolve the token through the gate; any failure → 401.
//  3. Inject [*sec.AuthClaims] into the request context for downstream use.
func Authenticate(gate Gate) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {

			// ── 1. Header Extraction ──────────────────────────────────────────
			token, ok := requestutil.BearerToken(request)
			if !ok {
				respond.Error(writer, request, apperr.Unauthorized("Not authenticated"))
				return
			}

			// ── 2. Token Verification ─────────────────────────────────────────
			claims, err := gate.Authenticate(request.Context(), token)
			if err != nil {
				if appError := apperr.As(err); appError != nil && appError.HTTPStatus >= 500 {
					respond.Error(writer, request, err)
					return
				}
				respond.Error(writer, request, apperr.Unauthorized("Could not validate credentials"))
				return
			}

			// ── 3. Context Injection ──────────────────────────────────────────
			ctx := ctxutil.WithAuthUser(request.Context(), claims)
			ctx = ctxutil.WithLogger(ctx, ctxutil.GetLogger(ctx).With(slog.String("admin_id", claims.UserID)))
			next.ServeHTTP(writer, request.WithContext(ctx))
		})
	}
}
