package export

import (
	"bytes"
	"encoding/csv"
	"strconv"

	log "github.com/sirupsen/logrus"
)

type ExportRenderer interface {
	RenderAudit(rows []AuditRow) (string, error)
}

type CsvExportRendererImpl struct {
}

func NewCsvExportRenderer() *CsvExportRendererImpl {
	return &CsvExportRendererImpl{}
}

func (t *CsvExportRendererImpl) RenderAudit(rows []AuditRow) (string, error) {
	data := make([][]string, 0, len(rows)+1)
	data = append(data, []string{"Date", "Type", "Category/Stream", "Amount", "Note"})
	for _, row := range rows {
		data = append(data, []string{
			row.Date.Format("2006-01-02"),
			row.Type,
			row.Label,
			strconv.FormatFloat(row.Amount, 'f', 2, 64),
			row.Note,
		})
	}

	var b bytes.Buffer
	writer := csv.NewWriter(&b)
	for _, row := range data {
		if err := writer.Write(row); err != nil {
			log.Errorf("Error writing to csv: %v", err)
			return "", err
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		log.Errorf("Error writing to csv: %v", err)
		return "", err
	}

	return b.String(), nil
}
