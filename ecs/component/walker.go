package component

import (
	"time"

	"github.com/milk9111/parade/crowd"
)

// Walker drives an entity along its ping-pong path.
type Walker struct {
	Group   string
	Sprite  crowd.Sprite
	Elapsed time.Duration
	Ease    crowd.Easing
	Offset  float64
	Mirror  bool
}

var WalkerComponent = NewComponent[Walker]()
