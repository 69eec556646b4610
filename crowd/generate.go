package crowd

import (
	"errors"
	"math/rand/v2"
)

var (
	ErrEmptyPool    = errors.New("crowd: asset pool is empty")
	ErrInvalidWidth = errors.New("crowd: bound width must be positive")
)

const (
	DefaultMinDurationMs = 5000
	DefaultMaxDurationMs = 30000
	DefaultStepMs        = 1000
)

// DirectionalAsset names an animation and the way its artwork faces.
type DirectionalAsset struct {
	AssetID   string
	FacesLeft bool
}

// Options bounds the random walk duration. Durations are drawn from
// [MinDurationMs, MaxDurationMs) in StepMs increments.
type Options struct {
	MinDurationMs int
	MaxDurationMs int
	StepMs        int
}

// DefaultOptions returns the 5s..30s range in whole seconds.
func DefaultOptions() Options {
	return Options{
		MinDurationMs: DefaultMinDurationMs,
		MaxDurationMs: DefaultMaxDurationMs,
		StepMs:        DefaultStepMs,
	}
}

func (o Options) normalized() Options {
	d := DefaultOptions()
	if o.StepMs <= 0 {
		o.StepMs = d.StepMs
	}
	if o.MinDurationMs <= 0 {
		o.MinDurationMs = d.MinDurationMs
	}
	if o.MaxDurationMs <= 0 {
		o.MaxDurationMs = d.MaxDurationMs
	}
	if o.MaxDurationMs <= o.MinDurationMs {
		o.MaxDurationMs = o.MinDurationMs + o.StepMs
	}
	return o
}

// Validate reports whether Generate can run with the given pool and width.
// Generate itself does not check; callers that take user input should.
func Validate(pool []DirectionalAsset, width float64) error {
	if len(pool) == 0 {
		return ErrEmptyPool
	}
	if !(width > 0) {
		return ErrInvalidWidth
	}
	return nil
}

// EndX returns the far end of the path for a sprite starting at startX.
// Sprites starting in the left half walk right past the bound; the rest
// walk left past zero.
func EndX(startX, width float64) float64 {
	if startX < width/2 {
		return width + startX
	}
	return -startX
}

// Generate creates count sprites with default duration options.
func Generate(rng *rand.Rand, pool []DirectionalAsset, count int, width float64) []Sprite {
	return GenerateWith(rng, pool, count, width, DefaultOptions())
}

// GenerateWith creates count sprites in generation order. A nil rng uses the
// package-level source.
func GenerateWith(rng *rand.Rand, pool []DirectionalAsset, count int, width float64, opts Options) []Sprite {
	if count <= 0 {
		return []Sprite{}
	}
	opts = opts.normalized()
	steps := (opts.MaxDurationMs - opts.MinDurationMs + opts.StepMs - 1) / opts.StepMs

	out := make([]Sprite, 0, count)
	for i := 0; i < count; i++ {
		startX := float64Of(rng) * width
		asset := pool[intN(rng, len(pool))]
		out = append(out, Sprite{
			AssetID:    asset.AssetID,
			FacesLeft:  asset.FacesLeft,
			StartX:     startX,
			EndX:       EndX(startX, width),
			DurationMs: opts.MinDurationMs + intN(rng, steps)*opts.StepMs,
		})
	}
	return out
}

func float64Of(rng *rand.Rand) float64 {
	if rng == nil {
		return rand.Float64()
	}
	return rng.Float64()
}

func intN(rng *rand.Rand, n int) int {
	if rng == nil {
		return rand.IntN(n)
	}
	return rng.IntN(n)
}
