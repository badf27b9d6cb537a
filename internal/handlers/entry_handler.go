package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"akshaya-backend/internal/ledger"
	"akshaya-backend/internal/middleware"
	"akshaya-backend/internal/models"
	"akshaya-backend/internal/services"
	"akshaya-backend/internal/timeutil"
	"akshaya-backend/pkg/utils"

	"github.com/gorilla/mux"
)

type EntryHandler struct {
	Service *services.EntryService
}

func NewEntryHandler(s *services.EntryService) *EntryHandler {
	return &EntryHandler{Service: s}
}

func (h *EntryHandler) CreateEntry(w http.ResponseWriter, r *http.Request) {
	var req models.CreateEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		utils.Error(w, http.StatusUnauthorized, "User ID not found in context")
		return
	}

	entry, err := h.Service.CreateEntry(r.Context(), &req, userID)
	if err != nil {
		var inputErr *ledger.InputError
		if errors.As(err, &inputErr) {
			utils.Error(w, http.StatusBadRequest, err.Error())
			return
		}
		utils.Error(w, http.StatusInternalServerError, err.Error())
		return
	}

	utils.JSON(w, http.StatusCreated, entry)
}

func (h *EntryHandler) GetEntry(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid entry id")
		return
	}

	entry, err := h.Service.GetEntry(r.Context(), id)
	if err != nil {
		utils.Error(w, http.StatusNotFound, "Entry not found")
		return
	}
	utils.JSON(w, http.StatusOK, entry)
}

// ListEntries returns entries for ?from=YYYY-MM-DD&to=YYYY-MM-DD.
// Both default to today (IST).
func (h *EntryHandler) ListEntries(w http.ResponseWriter, r *http.Request) {
	today := timeutil.StartOfDay(timeutil.Now())
	from, to := today, today

	if v := r.URL.Query().Get("from"); v != "" {
		parsed, err := timeutil.ParseInIST(timeutil.DateLayout, v)
		if err != nil {
			utils.Error(w, http.StatusBadRequest, "from must be YYYY-MM-DD")
			return
		}
		from = parsed
	}
	if v := r.URL.Query().Get("to"); v != "" {
		parsed, err := timeutil.ParseInIST(timeutil.DateLayout, v)
		if err != nil {
			utils.Error(w, http.StatusBadRequest, "to must be YYYY-MM-DD")
			return
		}
		to = parsed
	}
	if to.Before(from) {
		utils.Error(w, http.StatusBadRequest, "to must not be before from")
		return
	}

	entries, err := h.Service.ListEntries(r.Context(), from, to)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, err.Error())
		return
	}

	// Ensure we return empty array instead of null
	if entries == nil {
		entries = []*models.DailyEntry{}
	}
	utils.JSON(w, http.StatusOK, entries)
}

func (h *EntryHandler) UpdateEntry(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid entry id")
		return
	}

	var req models.UpdateEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		utils.Error(w, http.StatusUnauthorized, "User ID not found in context")
		return
	}

	entry, err := h.Service.UpdateEntry(r.Context(), id, &req, userID)
	if err != nil {
		var inputErr *ledger.InputError
		if errors.As(err, &inputErr) {
			utils.Error(w, http.StatusBadRequest, err.Error())
			return
		}
		utils.Error(w, http.StatusInternalServerError, err.Error())
		return
	}
	utils.JSON(w, http.StatusOK, entry)
}

func (h *EntryHandler) DeleteEntry(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid entry id")
		return
	}

	if err := h.Service.DeleteEntry(r.Context(), id); err != nil {
		utils.Error(w, http.StatusInternalServerError, err.Error())
		return
	}
	utils.JSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

// ListEditLogs returns the latest edits across all entries for the
// admin audit view. ?limit= caps the row count (default 100).
func (h *EntryHandler) ListEditLogs(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			utils.Error(w, http.StatusBadRequest, "limit must be a number")
			return
		}
		limit = n
	}

	logs, err := h.Service.ListRecentEditLogs(r.Context(), limit)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, err.Error())
		return
	}
	if logs == nil {
		logs = []*models.EntryEditLog{}
	}
	utils.JSON(w, http.StatusOK, logs)
}

func (h *EntryHandler) GetEditLogs(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid entry id")
		return
	}

	logs, err := h.Service.GetEditLogs(r.Context(), id)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, err.Error())
		return
	}
	if logs == nil {
		logs = []*models.EntryEditLog{}
	}
	utils.JSON(w, http.StatusOK, logs)
}
