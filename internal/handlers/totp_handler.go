package handlers

import (
	"encoding/json"
	"net/http"

	"akshaya-backend/internal/middleware"
	"akshaya-backend/internal/models"
	"akshaya-backend/internal/repositories"
	"akshaya-backend/internal/services"
	"akshaya-backend/pkg/utils"
)

type TOTPHandler struct {
	Service  *services.TOTPService
	UserRepo *repositories.UserRepository
}

func NewTOTPHandler(s *services.TOTPService, userRepo *repositories.UserRepository) *TOTPHandler {
	return &TOTPHandler{Service: s, UserRepo: userRepo}
}

// Setup starts 2FA enrolment for the authenticated user.
func (h *TOTPHandler) Setup(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		utils.Error(w, http.StatusUnauthorized, "User ID not found in context")
		return
	}

	user, err := h.UserRepo.Get(r.Context(), userID)
	if err != nil {
		utils.Error(w, http.StatusUnauthorized, "User not found")
		return
	}

	resp, err := h.Service.GenerateSetup(r.Context(), user)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, err.Error())
		return
	}
	utils.JSON(w, http.StatusOK, resp)
}

// Enable verifies the first code and switches 2FA on.
func (h *TOTPHandler) Enable(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		utils.Error(w, http.StatusUnauthorized, "User ID not found in context")
		return
	}

	var req models.TOTPEnableRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.Service.VerifyAndEnable(r.Context(), userID, req.Code); err != nil {
		utils.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	utils.JSON(w, http.StatusOK, map[string]bool{"enabled": true})
}

// Disable switches 2FA off; requires password and a current code.
func (h *TOTPHandler) Disable(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		utils.Error(w, http.StatusUnauthorized, "User ID not found in context")
		return
	}

	var req struct {
		Password string `json:"password"`
		Code     string `json:"code"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.Service.Disable(r.Context(), userID, req.Password, req.Code); err != nil {
		utils.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	utils.JSON(w, http.StatusOK, map[string]bool{"enabled": false})
}
