package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"akshaya-backend/internal/models"
	"akshaya-backend/internal/services"
	"akshaya-backend/pkg/utils"
)

type AuthHandler struct {
	Service *services.UserService
}

func NewAuthHandler(s *services.UserService) *AuthHandler {
	return &AuthHandler{Service: s}
}

func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req models.SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	resp, err := h.Service.Signup(r.Context(), &req)
	if err != nil {
		utils.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	utils.JSON(w, http.StatusCreated, resp)
}

// Login returns a session token, or a temp token when the account has
// 2FA enabled (finish with POST /auth/login/2fa).
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	authResp, step1, err := h.Service.Login(r.Context(), &req)
	if err != nil {
		status := http.StatusUnauthorized
		if errors.Is(err, services.ErrAccountSuspended) {
			status = http.StatusForbidden
		}
		utils.Error(w, status, err.Error())
		return
	}

	if step1 != nil {
		utils.JSON(w, http.StatusOK, step1)
		return
	}
	utils.JSON(w, http.StatusOK, authResp)
}

// Logout acknowledges the logout. Sessions are stateless JWTs, so the
// client discards the token; nothing is revoked server-side.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	utils.JSON(w, http.StatusOK, map[string]string{"status": "logged out"})
}

func (h *AuthHandler) VerifyLogin2FA(w http.ResponseWriter, r *http.Request) {
	var req models.TOTPVerifyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	resp, err := h.Service.VerifyLogin2FA(r.Context(), &req)
	if err != nil {
		utils.Error(w, http.StatusUnauthorized, err.Error())
		return
	}
	utils.JSON(w, http.StatusOK, resp)
}
