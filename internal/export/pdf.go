// internal/export/pdf.go
package export

import (
	"fmt"
	"io"

	"github.com/go-pdf/fpdf"

	"github.com/lernquiz/backend/internal/service"
)

// WritePDF renders the missed-question report as a simple A4 document, one
// block per question.
func WritePDF(w io.Writer, player, datasetID string, rows []service.MissedRow) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 15)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 10, "Missed questions", "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(0, 6, fmt.Sprintf("Player: %s    Dataset: %s", player, datasetID), "", 1, "L", false, 0, "")
	pdf.Ln(4)

	if len(rows) == 0 {
		pdf.SetFont("Helvetica", "I", 11)
		pdf.MultiCell(0, 6, "Nothing to review. Every answered question was correct.", "", "L", false)
	}

	for i, r := range rows {
		pdf.SetFont("Helvetica", "B", 11)
		pdf.MultiCell(0, 6, fmt.Sprintf("%d. %s", i+1, r.Question), "", "L", false)

		pdf.SetFont("Helvetica", "", 10)
		pdf.MultiCell(0, 5, "Your answer: "+r.YourAnswer, "", "L", false)
		if r.CorrectAnswer != "" {
			pdf.MultiCell(0, 5, "Correct answer: "+r.CorrectAnswer, "", "L", false)
		}

		pdf.SetFont("Helvetica", "I", 9)
		pdf.MultiCell(0, 5, r.Explanation, "", "L", false)
		pdf.Ln(4)
	}

	return pdf.Output(w)
}
