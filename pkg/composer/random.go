package composer

import (
	"math/rand/v2"

	"github.com/pluqqy/tagpick/pkg/models"
)

// DefaultRandomCount is how many tags AddRandomTags picks
const DefaultRandomCount = 5

// PickRandom returns up to n entries chosen uniformly without replacement.
// entries is not modified. A nil rng uses the global source.
func PickRandom(entries []models.TagEntry, n int, rng *rand.Rand) []models.TagEntry {
	if n <= 0 || len(entries) == 0 {
		return nil
	}

	shuffled := make([]models.TagEntry, len(entries))
	copy(shuffled, entries)

	swap := func(i, j int) { shuffled[i], shuffled[j] = shuffled[j], shuffled[i] }
	if rng != nil {
		rng.Shuffle(len(shuffled), swap)
	} else {
		rand.Shuffle(len(shuffled), swap)
	}

	if n > len(shuffled) {
		n = len(shuffled)
	}
	return shuffled[:n]
}
