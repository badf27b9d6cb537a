package handlers

import (
	"fmt"
	"net/http"
	"time"

	"akshaya-backend/internal/services"
	"akshaya-backend/internal/timeutil"
	"akshaya-backend/pkg/utils"
)

type ReportHandler struct {
	Service *services.ReportService
}

func NewReportHandler(s *services.ReportService) *ReportHandler {
	return &ReportHandler{Service: s}
}

// parseDateParam reads ?date=YYYY-MM-DD, defaulting to today (IST).
func parseDateParam(r *http.Request) (time.Time, error) {
	v := r.URL.Query().Get("date")
	if v == "" {
		return timeutil.StartOfDay(timeutil.Now()), nil
	}
	return timeutil.ParseInIST(timeutil.DateLayout, v)
}

func (h *ReportHandler) DailyReport(w http.ResponseWriter, r *http.Request) {
	date, err := parseDateParam(r)
	if err != nil {
		utils.Error(w, http.StatusBadRequest, "date must be YYYY-MM-DD")
		return
	}

	report, err := h.Service.GetDailyReport(r.Context(), date)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, err.Error())
		return
	}
	utils.JSON(w, http.StatusOK, report)
}

// WeeklyReport covers the week containing ?start=YYYY-MM-DD (any day
// of the week works as the anchor), defaulting to the current week.
func (h *ReportHandler) WeeklyReport(w http.ResponseWriter, r *http.Request) {
	anchor := timeutil.StartOfDay(timeutil.Now())
	if v := r.URL.Query().Get("start"); v != "" {
		parsed, err := timeutil.ParseInIST(timeutil.DateLayout, v)
		if err != nil {
			utils.Error(w, http.StatusBadRequest, "start must be YYYY-MM-DD")
			return
		}
		anchor = parsed
	}

	report, err := h.Service.GetWeeklyReport(r.Context(), anchor)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, err.Error())
		return
	}
	utils.JSON(w, http.StatusOK, report)
}

// MonthlyReport covers ?month=YYYY-MM, defaulting to the current month.
func (h *ReportHandler) MonthlyReport(w http.ResponseWriter, r *http.Request) {
	anchor := timeutil.StartOfDay(timeutil.Now())
	if v := r.URL.Query().Get("month"); v != "" {
		parsed, err := timeutil.ParseInIST("2006-01", v)
		if err != nil {
			utils.Error(w, http.StatusBadRequest, "month must be YYYY-MM")
			return
		}
		anchor = parsed
	}

	report, err := h.Service.GetMonthlyReport(r.Context(), anchor)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, err.Error())
		return
	}
	utils.JSON(w, http.StatusOK, report)
}

func (h *ReportHandler) DailyCSV(w http.ResponseWriter, r *http.Request) {
	date, err := parseDateParam(r)
	if err != nil {
		utils.Error(w, http.StatusBadRequest, "date must be YYYY-MM-DD")
		return
	}

	data, err := h.Service.GenerateDailyCSV(r.Context(), date)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, err.Error())
		return
	}

	filename := fmt.Sprintf("tally-%s.csv", timeutil.FormatIST(date, timeutil.DateLayout))
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	w.Write(data)
}

func (h *ReportHandler) DailyPDF(w http.ResponseWriter, r *http.Request) {
	date, err := parseDateParam(r)
	if err != nil {
		utils.Error(w, http.StatusBadRequest, "date must be YYYY-MM-DD")
		return
	}

	data, err := h.Service.GenerateDailyPDF(r.Context(), date)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, err.Error())
		return
	}

	filename := fmt.Sprintf("tally-%s.pdf", timeutil.FormatIST(date, timeutil.DateLayout))
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	w.Write(data)
}
