package crowd

import (
	"time"

	"github.com/milk9111/parade/common"
)

// Easing maps linear progress in [0,1] to eased progress.
type Easing func(t float64) float64

// Sprite is one walker on its randomized path.
type Sprite struct {
	AssetID    string
	FacesLeft  bool
	StartX     float64
	EndX       float64
	DurationMs int

	// LastOffsetX is the position seen on the previous frame, nil before the
	// first frame.
	LastOffsetX *float64
}

// Duration returns the one-way travel time.
func (s Sprite) Duration() time.Duration {
	return time.Duration(s.DurationMs) * time.Millisecond
}

// Offset returns the position at elapsed time on the repeating
// StartX -> EndX -> StartX path. A nil ease is linear.
func Offset(s Sprite, elapsed time.Duration, ease Easing) float64 {
	if s.DurationMs <= 0 {
		return s.StartX
	}
	d := s.Duration()
	if elapsed < 0 {
		elapsed = 0
	}
	// The return leg replays the outbound curve backwards.
	phase := elapsed % (2 * d)
	t := float64(phase) / float64(d)
	if phase >= d {
		t = 2 - t
	}
	if ease != nil {
		t = common.Clamp01(ease(t))
	}
	return common.Lerp(s.StartX, s.EndX, t)
}

// MovingRight reports whether offset is right of the last observed position,
// or of StartX before the first observation.
func (s *Sprite) MovingRight(offset float64) bool {
	prev := s.StartX
	if s.LastOffsetX != nil {
		prev = *s.LastOffsetX
	}
	return offset > prev
}

// ShouldMirror reports whether the artwork must be flipped to face the
// direction of travel.
func (s *Sprite) ShouldMirror(offset float64) bool {
	return s.FacesLeft == s.MovingRight(offset)
}

// Observe records offset as the latest position and returns whether the
// sprite is mirrored at it.
func (s *Sprite) Observe(offset float64) bool {
	mirror := s.ShouldMirror(offset)
	v := offset
	s.LastOffsetX = &v
	return mirror
}
