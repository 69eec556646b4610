package prefabs

import (
	"math/rand/v2"

	"github.com/milk9111/parade/crowd"
)

// Placement is one generated sprite together with the lane it walks in.
type Placement struct {
	Group  string
	Layer  int
	Easing string
	Y      float64
	Sprite crowd.Sprite
}

// NewRand returns the generator a parade seed stands for. Equal seeds give
// equal parades in the viewer and in paradectl.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// ClampDelta floors delta at minus the largest group count. Below that every
// group is already empty and further decrements would have to be undone
// before an increment shows.
func (p ParadeSpec) ClampDelta(delta int) int {
	largest := 0
	for _, g := range p.Groups {
		largest = max(largest, g.Count)
	}
	return max(delta, -largest)
}

// Roll generates every group in order. countDelta is added to each group's
// count, which never drops below zero.
func (p ParadeSpec) Roll(seed uint64, countDelta int) []Placement {
	rng := NewRand(seed)
	var out []Placement
	for _, g := range p.Groups {
		count := max(g.Count+countDelta, 0)
		for _, s := range crowd.GenerateWith(rng, g.Assets(), count, p.Width, g.Options()) {
			out = append(out, Placement{
				Group:  g.Name,
				Layer:  g.Layer,
				Easing: g.Easing,
				Y:      g.LaneY + (rng.Float64()*2-1)*g.LaneJitter,
				Sprite: s,
			})
		}
	}
	return out
}
