package question_test

import (
	"strings"
	"testing"

	"github.com/lernquiz/backend/internal/domain/question"
)

func choiceQuestion(mode question.AnswerMode, correct ...int) question.Question {
	return question.Question{
		ID:         1,
		Type:       question.TypeChoice,
		Text:       "Pick",
		Options:    []string{"A", "B", "C", "D"},
		Correct:    correct,
		AnswerMode: mode,
	}
}

func TestIsCorrectChoice_Single(t *testing.T) {
	q := choiceQuestion(question.ModeSingle, 2)

	cases := []struct {
		name     string
		selected []int
		want     bool
	}{
		{"correct option", []int{2}, true},
		{"wrong option", []int{0}, false},
		{"no selection", nil, false},
		{"two selections", []int{2, 0}, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := question.IsCorrectChoice(q, tc.selected); got != tc.want {
				t.Errorf("IsCorrectChoice(%v) = %v, want %v", tc.selected, got, tc.want)
			}
		})
	}
}

func TestIsCorrectChoice_Multi(t *testing.T) {
	q := choiceQuestion(question.ModeMulti, 0, 3)

	cases := []struct {
		name     string
		selected []int
		want     bool
	}{
		{"exact set", []int{0, 3}, true},
		{"exact set reordered", []int{3, 0}, true},
		{"subset", []int{0}, false},
		{"superset", []int{0, 3, 1}, false},
		{"empty", nil, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := question.IsCorrectChoice(q, tc.selected); got != tc.want {
				t.Errorf("IsCorrectChoice(%v) = %v, want %v", tc.selected, got, tc.want)
			}
		})
	}
}

func TestIsCorrectChoice_OpenNeverScores(t *testing.T) {
	q := question.Question{ID: 2, Type: question.TypeOpen, Text: "Explain"}

	if question.IsCorrectChoice(q, []int{0}) {
		t.Error("open questions must never auto-score as correct")
	}
}

func TestSafeExplanation_UsesStoredText(t *testing.T) {
	q := choiceQuestion(question.ModeSingle, 1)
	q.Explanation = "  because B  "

	if got := question.SafeExplanation(q); got != "because B" {
		t.Errorf("got %q", got)
	}
}

func TestSafeExplanation_FallsBackToCorrectOptions(t *testing.T) {
	q := choiceQuestion(question.ModeMulti, 1, 3)

	got := question.SafeExplanation(q)
	if !strings.Contains(got, "B; D") {
		t.Errorf("expected correct options in fallback, got %q", got)
	}
}

func TestSafeExplanation_FallsBackToSolution(t *testing.T) {
	q := question.Question{ID: 3, Type: question.TypeOpen, Solution: "the heap"}

	got := question.SafeExplanation(q)
	if !strings.Contains(got, "the heap") {
		t.Errorf("expected solution in fallback, got %q", got)
	}
}

func TestSafeExplanation_IgnoresOutOfRangeCorrectIndices(t *testing.T) {
	q := choiceQuestion(question.ModeSingle, 9)

	got := question.SafeExplanation(q)
	if got != "No explanation recorded yet." {
		t.Errorf("got %q", got)
	}
}
