package export

import (
	"fmt"
	"net/http"
	"time"
)

type ExportHandler struct {
	exportService ExportService
	csvRenderer   ExportRenderer
}

func NewExportHandler(exportService ExportService, csvRenderer ExportRenderer) *ExportHandler {
	return &ExportHandler{exportService, csvRenderer}
}

// GetAudit serves the full audit log as a CSV download.
func (handler *ExportHandler) GetAudit(w http.ResponseWriter, r *http.Request) {
	rows, err := handler.exportService.AuditRows(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	csv, err := handler.csvRenderer.RenderAudit(rows)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	filename := fmt.Sprintf("bucky-audit-%s.csv", time.Now().Format("2006-01-02"))
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	if _, err := w.Write([]byte(csv)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
