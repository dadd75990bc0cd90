package key

import "strings"

// PlayerKey derives the persistence key for a player within a dataset.
// Progress must not leak across datasets, so the dataset id is part of the
// key. The player name is reduced to a safe lowercase slug; a name with no
// usable characters falls back to "player".
func PlayerKey(player, datasetID string) string {
	return sanitize(datasetID) + "_" + sanitize(player)
}

func sanitize(s string) string {
	var b strings.Builder
	for _, ch := range strings.TrimSpace(s) {
		switch {
		case ch >= 'a' && ch <= 'z', ch >= '0' && ch <= '9', ch == '-', ch == '_':
			b.WriteRune(ch)
		case ch >= 'A' && ch <= 'Z':
			b.WriteRune(ch + ('a' - 'A'))
		}
	}
	if b.Len() == 0 {
		return "player"
	}
	return b.String()
}
