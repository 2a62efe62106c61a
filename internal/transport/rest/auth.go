package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/heartmarshall/wordforge-backend/internal/domain"
	"github.com/heartmarshall/wordforge-backend/internal/service/auth"
	"github.com/heartmarshall/wordforge-backend/internal/service/user"
)

// authService defines the minimal interface needed by AuthHandler.
type authService interface {
	Register(ctx context.Context, input auth.RegisterInput) (auth.AuthResult, error)
	Login(ctx context.Context, input auth.LoginInput) (auth.AuthResult, error)
}

type profileService interface {
	GetProfile(ctx context.Context) (user.Profile, error)
	UpdateName(ctx context.Context, input user.UpdateNameInput) (domain.User, error)
}

// AuthHandler serves registration, login and the caller's profile.
type AuthHandler struct {
	auth    authService
	profile profileService
	log     *slog.Logger
}

// NewAuthHandler creates an AuthHandler.
func NewAuthHandler(auth authService, profile profileService, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{auth: auth, profile: profile, log: logger.With("handler", "auth")}
}

type registerRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type updateProfileRequest struct {
	Name string `json:"name" validate:"required"`
}

type authResponse struct {
	Token string       `json:"token"`
	User  userResponse `json:"user"`
}

type userStatsResponse struct {
	WordsLearned     int       `json:"wordsLearned"`
	TotalBadges      int       `json:"totalBadges"`
	QuizzesCompleted int       `json:"quizzesCompleted"`
	CurrentStreak    int       `json:"currentStreak"`
	LongestStreak    int       `json:"longestStreak"`
	MemberSince      time.Time `json:"memberSince"`
}

type profileResponse struct {
	User         userResponse      `json:"user"`
	Stats        userStatsResponse `json:"stats"`
	RecentBadges []badgeResponse   `json:"recentBadges"`
}

// Register handles POST /auth/register.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	result, err := h.auth.Register(r.Context(), auth.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeData(w, http.StatusCreated, toAuthResponse(result))
}

// Login handles POST /auth/login.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	result, err := h.auth.Login(r.Context(), auth.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeData(w, http.StatusOK, toAuthResponse(result))
}

// Profile handles GET /auth/profile.
func (h *AuthHandler) Profile(w http.ResponseWriter, r *http.Request) {
	p, err := h.profile.GetProfile(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeData(w, http.StatusOK, profileResponse{
		User: toUserResponse(p.User),
		Stats: userStatsResponse{
			WordsLearned:     p.Stats.WordsLearned,
			TotalBadges:      p.Stats.TotalBadges,
			QuizzesCompleted: p.Stats.QuizzesCompleted,
			CurrentStreak:    p.Stats.CurrentStreak,
			LongestStreak:    p.Stats.LongestStreak,
			MemberSince:      p.Stats.MemberSince,
		},
		RecentBadges: toBadgeResponses(p.RecentBadges),
	})
}

// UpdateProfile handles PUT /auth/profile.
func (h *AuthHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	var req updateProfileRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	u, err := h.profile.UpdateName(r.Context(), user.UpdateNameInput{Name: req.Name})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeData(w, http.StatusOK, toUserResponse(u))
}

func toAuthResponse(r auth.AuthResult) authResponse {
	return authResponse{Token: r.Token, User: toUserResponse(r.User)}
}
