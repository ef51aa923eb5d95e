package http

import (
	"net/http"

	"github.com/shiftline/workforce-backend-go/internal/domain/report"
	"github.com/shiftline/workforce-backend-go/internal/handler/http/response"
	"github.com/shiftline/workforce-backend-go/internal/pkg/timeutil"
)

type ReportHandler interface {
	Daily(w http.ResponseWriter, r *http.Request)
}

type ReportHandlerImpl struct {
	reportService report.ReportService
}

func NewReportHandler(reportService report.ReportService) ReportHandler {
	return &ReportHandlerImpl{reportService: reportService}
}

// Daily implements ReportHandler.
func (h *ReportHandlerImpl) Daily(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")
	if date == "" {
		response.BadRequest(w, "date query parameter is required", nil)
		return
	}
	if _, err := timeutil.ParseDate(date); err != nil {
		response.BadRequest(w, "date must be a valid YYYY-MM-DD date", nil)
		return
	}

	entries, err := h.reportService.Daily(r.Context(), date)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, entries)
}
