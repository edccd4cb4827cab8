package handler

import (
	"net/http"

	"bhrms/internal/usecase"
	"bhrms/pkg/response"
)

type ReportHandler struct {
	reportUsecase usecase.ReportUsecase
}

func NewReportHandler(reportUsecase usecase.ReportUsecase) *ReportHandler {
	return &ReportHandler{
		reportUsecase: reportUsecase,
	}
}

// GetSummary handles the admin reports page counters
// @Summary Get system summary counts
// @Tags Reports
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response
// @Router /admin/reports/summary [get]
func (h *ReportHandler) GetSummary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.reportUsecase.GetSummary(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get report summary")
		return
	}

	response.Success(w, http.StatusOK, "Report summary retrieved successfully", summary)
}
