// internal/export/csv.go
package export

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/lernquiz/backend/internal/service"
)

// WriteCSV renders the missed-question report as CSV with a header row.
func WriteCSV(w io.Writer, rows []service.MissedRow) error {
	cw := csv.NewWriter(w)

	if err := cw.Write([]string{"question", "your_answer", "correct_answer", "explanation"}); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for _, r := range rows {
		if err := cw.Write([]string{r.Question, r.YourAnswer, r.CorrectAnswer, r.Explanation}); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}
