package export_test

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"

	"github.com/lernquiz/backend/internal/export"
	"github.com/lernquiz/backend/internal/service"
)

func TestWriteCSV(t *testing.T) {
	rows := []service.MissedRow{
		{Question: "What is 2+2?", YourAnswer: "5", CorrectAnswer: "4", Explanation: "Basic arithmetic."},
		{Question: `A "quoted" question, with commas`, YourAnswer: "(skipped)", CorrectAnswer: "yes", Explanation: "n/a"},
	}

	var buf bytes.Buffer
	if err := export.WriteCSV(&buf, rows); err != nil {
		t.Fatalf("WriteCSV: %v", err)
	}

	records, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("re-read csv: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("got %d records, want header + 2", len(records))
	}
	if got := strings.Join(records[0], ","); got != "question,your_answer,correct_answer,explanation" {
		t.Errorf("header = %q", got)
	}
	if records[2][0] != rows[1].Question {
		t.Errorf("quoting broke round trip: %q", records[2][0])
	}
}

func TestWriteCSV_Empty(t *testing.T) {
	var buf bytes.Buffer
	if err := export.WriteCSV(&buf, nil); err != nil {
		t.Fatalf("WriteCSV: %v", err)
	}
	records, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("re-read csv: %v", err)
	}
	if len(records) != 1 {
		t.Errorf("got %d records, want header only", len(records))
	}
}

func TestWritePDF_ProducesDocument(t *testing.T) {
	var buf bytes.Buffer
	rows := []service.MissedRow{
		{Question: "Q", YourAnswer: "a", CorrectAnswer: "b", Explanation: "e"},
	}
	if err := export.WritePDF(&buf, "alice", "demo", rows); err != nil {
		t.Fatalf("WritePDF: %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("%PDF")) {
		t.Errorf("output does not look like a PDF: %q", buf.Bytes()[:8])
	}
}
