package handlers

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/username/taxdraft/src/logger"
	"github.com/username/taxdraft/src/report"
	"github.com/username/taxdraft/src/services"
	"github.com/username/taxdraft/src/utils"
)

// ExcelHandler runs the same computation as the report endpoint and streams
// the result back as a spreadsheet attachment.
type ExcelHandler struct {
	computationService services.ComputationService
}

func NewExcelHandler(service services.ComputationService) *ExcelHandler {
	return &ExcelHandler{computationService: service}
}

func (h *ExcelHandler) HandleExcel(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeComputeRequest(w, r)
	if !ok {
		return
	}

	draft, err := h.computationService.ComputeDraft(req)
	if err != nil {
		writeComputationError(w, r, err)
		return
	}

	buf, err := report.RenderWorkbook(draft)
	if err != nil {
		logger.L.Error("Workbook rendering failed", "error", err,
			"requestID", RequestIDFromContext(r.Context()))
		utils.SendJSONError(w, "An internal error occurred while rendering the workbook. Please try again later.", http.StatusInternalServerError)
		return
	}

	filename := workbookFilename(req.Metadata.FiscalYear)
	w.Header().Set("Content-Type", report.ContentTypeXLSX)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.WriteHeader(http.StatusOK)
	if _, err := buf.WriteTo(w); err != nil {
		logger.L.Error("Error writing workbook response", "error", err,
			"requestID", RequestIDFromContext(r.Context()))
	}
}

// workbookFilename builds a filesystem-safe attachment name from the
// fiscal-year label supplied in the metadata.
func workbookFilename(fiscalYear string) string {
	cleaned := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			return r
		case r == ' ':
			return '_'
		}
		return -1
	}, strings.TrimSpace(fiscalYear))
	if cleaned == "" {
		return "tax_draft.xlsx"
	}
	return fmt.Sprintf("tax_draft_%s.xlsx", cleaned)
}
