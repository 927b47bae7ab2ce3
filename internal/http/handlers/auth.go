package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"unicode/utf8"

	"github.com/luminashop/storefront-be/internal/auth"
	"github.com/luminashop/storefront-be/internal/config"
	"github.com/luminashop/storefront-be/internal/http/respond"
	"github.com/luminashop/storefront-be/internal/middleware"
	"github.com/luminashop/storefront-be/internal/models"
	"github.com/luminashop/storefront-be/internal/models/dto"
	"github.com/luminashop/storefront-be/internal/storage"
)

// AuthHandler owns the sign-up, sign-in, sign-out, and session endpoints.
type AuthHandler struct {
	store  storage.UserStore
	tokens *auth.TokenManager
	cfg    config.Config
	log    *slog.Logger
}

// NewAuthHandler constructs the handler.
func NewAuthHandler(store storage.UserStore, tokens *auth.TokenManager, cfg config.Config, log *slog.Logger) *AuthHandler {
	return &AuthHandler{store: store, tokens: tokens, cfg: cfg, log: log}
}

// Register attaches auth routes to the mux.
func (h *AuthHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("POST /api/auth/signup", h.handleSignUp)
	mux.HandleFunc("POST /api/auth/signin", h.handleSignIn)
	mux.HandleFunc("POST /api/auth/signout", h.handleSignOut)
	mux.HandleFunc("GET /api/auth/session", h.handleSession)
}

func (h *AuthHandler) handleSignUp(w http.ResponseWriter, r *http.Request) {
	var req dto.SignUpRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid JSON payload")
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	name := strings.TrimSpace(req.Name)
	if err := validateCredentials(email, name, req.Password); err != nil {
		respond.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	passwordHash, err := auth.HashPassword(req.Password)
	if err != nil {
		respond.Error(w, http.StatusInternalServerError, "failed to hash password")
		return
	}

	role := models.RoleCustomer
	if h.cfg.IsAdminEmail(email) {
		role = models.RoleAdmin
	}

	created, err := h.store.CreateUser(r.Context(), models.User{
		Email:        email,
		Name:         name,
		Role:         role,
		PasswordHash: passwordHash,
	})
	if err != nil {
		if errors.Is(err, storage.ErrAlreadyExists) {
			respond.Error(w, http.StatusConflict, "user already exists")
			return
		}
		h.log.Error("create user failed", "error", err)
		respond.ErrorDetails(w, http.StatusInternalServerError, "failed to create user", err.Error())
		return
	}

	h.issueSession(w, r, created, http.StatusCreated)
}

func (h *AuthHandler) handleSignIn(w http.ResponseWriter, r *http.Request) {
	var req dto.SignInRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid JSON payload")
		return
	}
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email == "" || req.Password == "" {
		respond.Error(w, http.StatusBadRequest, "email and password are required")
		return
	}

	user, err := h.store.FindByEmail(r.Context(), email)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			// Unknown email and wrong password share one response.
			respond.Error(w, http.StatusUnauthorized, "invalid credentials")
			return
		}
		h.log.Error("fetch user failed", "email", email, "error", err)
		respond.ErrorDetails(w, http.StatusInternalServerError, "failed to fetch user", err.Error())
		return
	}
	if err := auth.CheckPassword(user.PasswordHash, req.Password); err != nil {
		respond.Error(w, http.StatusUnauthorized, "invalid credentials")
		return
	}

	h.issueSession(w, r, user, http.StatusOK)
}

func (h *AuthHandler) handleSignOut(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.cfg.CookieSecure,
		SameSite: http.SameSiteLaxMode,
	})
	respond.Message(w, http.StatusOK, "signed out")
}

func (h *AuthHandler) handleSession(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFrom(r.Context())
	if !ok {
		respond.JSON(w, http.StatusOK, dto.SessionResponse{User: nil})
		return
	}
	respond.JSON(w, http.StatusOK, dto.SessionResponse{User: &dto.SessionUser{
		ID:    claims.UserID(),
		Name:  claims.Name,
		Email: claims.Email,
		Role:  claims.Role,
	}})
}

func (h *AuthHandler) issueSession(w http.ResponseWriter, r *http.Request, user models.User, status int) {
	token, err := h.tokens.Generate(user)
	if err != nil {
		h.log.Error("generate token failed", "error", err)
		respond.Error(w, http.StatusInternalServerError, "failed to generate token")
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookie,
		Value:    token,
		Path:     "/",
		MaxAge:   int(h.tokens.TTL().Seconds()),
		HttpOnly: true,
		Secure:   h.cfg.CookieSecure,
		SameSite: http.SameSiteLaxMode,
	})
	respond.JSON(w, status, map[string]models.User{"user": user})
}

func validateCredentials(email, name, password string) error {
	if email == "" || name == "" {
		return errors.New("email and name are required")
	}
	if !strings.Contains(email, "@") {
		return errors.New("email is not valid")
	}
	if len(password) < 8 || !utf8.ValidString(password) {
		return errors.New("password must be at least 8 characters")
	}
	return nil
}
