// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/MKhiriev/go-quiz-api/internal/logger"
	"github.com/MKhiriev/go-quiz-api/internal/service"
	"github.com/MKhiriev/go-quiz-api/internal/store"
	"github.com/MKhiriev/go-quiz-api/internal/utils"
	"github.com/MKhiriev/go-quiz-api/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	var creds models.Credentials
	if err := utils.DecodeJSON(r, &creds); err != nil {
		h.writeError(w, r, err)
		return
	}

	user, token, err := h.services.AuthService.Register(r.Context(), creds)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	logger.FromRequest(r).Info().Str("user_id", user.ID).Msg("user registered")
	h.writeSession(w, user, token, http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var creds models.Credentials
	if err := utils.DecodeJSON(r, &creds); err != nil {
		h.writeError(w, r, err)
		return
	}

	user, token, err := h.services.AuthService.Login(r.Context(), creds)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	logger.FromRequest(r).Debug().Str("user_id", user.ID).Msg("user logged in")
	h.writeSession(w, user, token, http.StatusOK)
}

// logout clears the session cookie. A valid token is also revoked; an
// invalid or missing one is not an error.
func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if tokenString, err := tokenFromRequest(r); err == nil {
		token, err := h.services.AuthService.ParseToken(ctx, tokenString)
		switch {
		case err == nil:
			if err = h.services.AuthService.Logout(ctx, token); err != nil {
				h.writeError(w, r, err)
				return
			}
		case errors.Is(err, store.ErrDatabaseUnavailable):
			h.writeError(w, r, err)
			return
		default:
			logger.FromRequest(r).Debug().Err(err).Msg("logout without a valid token")
		}
	}

	h.clearTokenCookie(w)
	utils.WriteMessage(w, "Logged out successfully", http.StatusOK)
}

func (h *Handler) me(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		h.writeError(w, r, service.ErrNoOwner)
		return
	}

	user, err := h.services.AuthService.Me(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			utils.WriteMessage(w, "User not found", http.StatusNotFound)
			return
		}
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, user.Public(), http.StatusOK)
}

// writeSession answers with the user and token, mirroring the token in the
// Authorization header and the httpOnly cookie.
func (h *Handler) writeSession(w http.ResponseWriter, user models.User, token models.Token, status int) {
	w.Header().Set("Authorization", fmt.Sprintf("Bearer %s", token.SignedString))
	h.setTokenCookie(w, token)

	utils.WriteJSON(w, models.AuthResponse{User: user.Public(), Token: token.SignedString}, status)
}

func (h *Handler) setTokenCookie(w http.ResponseWriter, token models.Token) {
	cookie := h.baseTokenCookie()
	cookie.Value = token.SignedString
	if token.ExpiresAt != nil {
		cookie.Expires = token.ExpiresAt.Time
		cookie.MaxAge = int(time.Until(token.ExpiresAt.Time).Seconds())
	}
	http.SetCookie(w, cookie)
}

func (h *Handler) clearTokenCookie(w http.ResponseWriter) {
	cookie := h.baseTokenCookie()
	cookie.Expires = time.Unix(0, 0)
	cookie.MaxAge = -1
	http.SetCookie(w, cookie)
}

// baseTokenCookie returns the cookie attributes. Cross-site frontends need
// SameSite=None, which browsers accept only on secure cookies.
func (h *Handler) baseTokenCookie() *http.Cookie {
	cookie := &http.Cookie{
		Name:     tokenCookieName,
		Path:     "/",
		HttpOnly: true,
		Secure:   h.cfg.Auth.CookieSecure,
		SameSite: http.SameSiteLaxMode,
	}
	if cookie.Secure {
		cookie.SameSite = http.SameSiteNoneMode
	}
	return cookie
}
