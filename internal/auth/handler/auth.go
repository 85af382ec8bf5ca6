package handler

import (
	"encoding/json"
	"net/http"

	"github.com/julienschmidt/httprouter"

	"servenest/internal/auth/token"
	apperrors "servenest/pkg/errors"
	httputil "servenest/pkg/http"
	"servenest/pkg/logger"
	"servenest/pkg/middleware"
)

type AuthHandler struct {
	tokens     *token.Service
	production bool
	log        *logger.Logger
}

func NewAuthHandler(tokens *token.Service, production bool, log *logger.Logger) *AuthHandler {
	return &AuthHandler{
		tokens:     tokens,
		production: production,
		log:        log,
	}
}

type issueRequest struct {
	Email string `json:"email"`
}

type statusResponse struct {
	Success bool `json:"success"`
}

// Issue signs a session token for the given email and hands it back as
// an HTTP-only cookie. There is no credential check here; the identity
// is whatever the client asserts, as in the reference deployment.
func (h *AuthHandler) Issue(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var req issueRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, "Issue", apperrors.InvalidInput("Invalid request body"))
		return
	}
	if req.Email == "" {
		h.writeError(w, "Issue", apperrors.InvalidInput("email is required"))
		return
	}

	signed, err := h.tokens.Issue(token.Identity{Email: req.Email})
	if err != nil {
		h.log.Error("Failed to issue session token", "error", err)
		h.writeError(w, "Issue", apperrors.Internal("Failed to issue session token", err))
		return
	}

	http.SetCookie(w, h.sessionCookie(signed, int(h.tokens.TTL().Seconds())))
	h.log.Info("Session token issued", "email", req.Email)

	if err := httputil.WriteSuccess(w, statusResponse{Success: true}); err != nil {
		h.log.Error("failed to write success response", "handler", "Issue", "error", err)
	}
}

// Logout clears the cookie. This only stops the browser from resending
// the token; the token itself stays valid until expiry.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	http.SetCookie(w, h.sessionCookie("", -1))

	if err := httputil.WriteSuccess(w, statusResponse{Success: true}); err != nil {
		h.log.Error("failed to write success response", "handler", "Logout", "error", err)
	}
}

// Production deployments serve the frontend cross-site, so the cookie
// needs SameSite=None and Secure; development stays on Lax over HTTP.
func (h *AuthHandler) sessionCookie(value string, maxAge int) *http.Cookie {
	cookie := &http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	if h.production {
		cookie.Secure = true
		cookie.SameSite = http.SameSiteNoneMode
	}
	return cookie
}

func (h *AuthHandler) writeError(w http.ResponseWriter, handler string, err error) {
	if writeErr := httputil.WriteError(w, err); writeErr != nil {
		h.log.Error("failed to write error response", "handler", handler, "error", writeErr)
	}
}

func (h *AuthHandler) RegisterRoutes(router *httprouter.Router) {
	router.POST("/jwt", h.Issue)
	router.POST("/logout", h.Logout)
}
