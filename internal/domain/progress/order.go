package progress

import (
	"crypto/sha256"
	"encoding/binary"
	"fmt"
	"math/rand"
)

// DeterministicOrder returns a reproducible permutation of ids for a
// player and mix key. The same inputs always shuffle the same way, so a
// player can resume mid-session; a different mix key (new day, bumped
// nonce, or a suffixed sub-key) yields an independent-looking order.
func DeterministicOrder(player, mixKey string, ids []int) []int {
	sum := sha256.Sum256([]byte(player + "|" + mixKey))
	seed := binary.BigEndian.Uint64(sum[:8])

	out := make([]int, len(ids))
	copy(out, ids)

	rng := rand.New(rand.NewSource(int64(seed)))
	rng.Shuffle(len(out), func(i, j int) {
		out[i], out[j] = out[j], out[i]
	})
	return out
}

// MixKey builds the order generation key for a day and shuffle nonce.
func MixKey(day string, nonce int) string {
	return fmt.Sprintf("%s#%d", day, nonce)
}

// EnsureDailyOrder makes sure the state carries a presentation order for
// today. It regenerates on a new day, a bumped nonce, or when the stored
// order references questions that no longer exist; ids that appeared since
// the order was generated are appended in a deterministic sub-order without
// disturbing existing positions. Calling it twice with no dataset change is
// a no-op.
func EnsureDailyOrder(s *PlayerState, player string, ids []int, day string) {
	mixKey := MixKey(day, s.ShuffleNonce)

	current := make(map[int]struct{}, len(ids))
	for _, id := range ids {
		current[id] = struct{}{}
	}

	regenerate := s.OrderKey != mixKey || len(s.Order) == 0
	if !regenerate {
		for _, id := range s.Order {
			if _, ok := current[id]; !ok {
				// The dataset lost questions the order still points at.
				regenerate = true
				break
			}
		}
	}

	if regenerate {
		s.OrderKey = mixKey
		s.Order = DeterministicOrder(player, mixKey, ids)
		s.Cursor = 0
	} else {
		have := make(map[int]struct{}, len(s.Order))
		for _, id := range s.Order {
			have[id] = struct{}{}
		}
		var missing []int
		for _, id := range ids {
			if _, ok := have[id]; !ok {
				missing = append(missing, id)
			}
		}
		if len(missing) > 0 {
			s.Order = append(s.Order, DeterministicOrder(player, mixKey+"|new", missing)...)
		}
	}

	s.Cursor = clampCursor(s.Cursor, len(s.Order))
}

func clampCursor(cursor, length int) int {
	if cursor < 0 {
		return 0
	}
	if cursor > length {
		return length
	}
	return cursor
}
