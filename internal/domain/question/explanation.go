package question

import "strings"

// SafeExplanation returns explanation text that is always presentable.
// When no explanation is stored it falls back to the correct options or the
// model solution, so a missing field never blocks the session.
func SafeExplanation(q Question) string {
	if exp := strings.TrimSpace(q.Explanation); exp != "" {
		return exp
	}

	if q.Type == TypeChoice {
		if labels := q.CorrectOptions(); len(labels) > 0 {
			return "No detailed explanation recorded yet. Correct answer(s): " + strings.Join(labels, "; ")
		}
	}

	if sol := strings.TrimSpace(q.Solution); sol != "" {
		return "No detailed explanation recorded yet. Suggested solution: " + sol
	}

	return "No explanation recorded yet."
}
