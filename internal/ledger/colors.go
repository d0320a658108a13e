package ledger

import (
	"math/rand"
	"time"
)

// Palette is the set of display colors handed out to new people.
var Palette = []string{
	"#FF6B6B", "#4ECDC4", "#45B7D1", "#96CEB4", "#FFEAA7",
	"#DDA0DD", "#98D8C8", "#F7DC6F", "#BB8FCE", "#85C1E9",
}

// ColorPicker returns the color for a newly added person.
// It is only called while the store lock is held.
type ColorPicker func() string

// PaletteColors picks uniformly from Palette using a generator seeded with seed.
// A seed of 0 seeds from the clock.
func PaletteColors(seed int64) ColorPicker {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))
	return func() string {
		return Palette[rng.Intn(len(Palette))]
	}
}

// FixedColor always returns hex.
func FixedColor(hex string) ColorPicker {
	return func() string { return hex }
}
