package infra

// pdf.go - renders the full-inventory forecast as an A4 PDF table using
// go-pdf/fpdf. The file is attached to the report email; the SMS channel only
// carries the short text summary.

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"smartwarehouse/internal/dto"

	"github.com/go-pdf/fpdf"
)

// RenderForecastPDF writes the report to storagePath/forecast_{date}.pdf and
// returns the absolute path of the generated file.
func RenderForecastPDF(forecasts []dto.ForecastResponse, storagePath string, generatedAt time.Time) (string, error) {
	if err := os.MkdirAll(storagePath, 0755); err != nil {
		return "", fmt.Errorf("pdf: create storage dir: %w", err)
	}

	fileName := fmt.Sprintf("forecast_%s.pdf", generatedAt.Format("2006-01-02_150405"))
	filePath := filepath.Join(storagePath, fileName)

	pdf := fpdf.New("L", "mm", "A4", "")
	pdf.SetMargins(10, 12, 10)
	pdf.AddPage()

	pageW, _ := pdf.GetPageSize()
	contentW := pageW - 20

	// ── Header ───────────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(contentW, 9, "Warehouse Analytics Report", "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 9)
	pdf.CellFormat(contentW, 5, generatedAt.Format("02/01/2006 15:04"), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	// ── Table header ─────────────────────────────────────────────────────────
	cols := []struct {
		title string
		width float64
	}{
		{"Item", contentW * 0.30},
		{"Stock", contentW * 0.10},
		{"Avg daily sales", contentW * 0.15},
		{"Days left", contentW * 0.12},
		{"Stockout date", contentW * 0.15},
		{"Recommendation", contentW * 0.18},
	}

	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(230, 230, 230)
	for _, col := range cols {
		pdf.CellFormat(col.width, 7, col.title, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	// ── Rows ─────────────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "", 9)
	for _, f := range forecasts {
		if f.Recommendation != "Healthy" {
			pdf.SetTextColor(200, 0, 0)
			pdf.SetFont("Helvetica", "B", 9)
		}
		pdf.CellFormat(cols[0].width, 6, f.ItemName, "1", 0, "L", false, 0, "")
		pdf.CellFormat(cols[1].width, 6, fmt.Sprintf("%d", f.CurrentStock), "1", 0, "R", false, 0, "")
		pdf.CellFormat(cols[2].width, 6, f.AvgDailySales.StringFixed(2), "1", 0, "R", false, 0, "")
		pdf.CellFormat(cols[3].width, 6, fmt.Sprintf("%d", f.DaysUntilOutOfStock), "1", 0, "R", false, 0, "")
		pdf.CellFormat(cols[4].width, 6, f.PredictedStockoutDate, "1", 0, "C", false, 0, "")
		pdf.CellFormat(cols[5].width, 6, f.Recommendation, "1", 1, "C", false, 0, "")
		pdf.SetTextColor(0, 0, 0)
		pdf.SetFont("Helvetica", "", 9)
	}

	if len(forecasts) == 0 {
		pdf.CellFormat(contentW, 8, "No items in inventory.", "", 1, "C", false, 0, "")
	}

	if err := pdf.OutputFileAndClose(filePath); err != nil {
		return "", fmt.Errorf("pdf: write file: %w", err)
	}
	return filePath, nil
}
