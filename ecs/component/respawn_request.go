package component

// RespawnRequest asks the spawn system to rebuild the parade. Seed zero keeps
// the current seed; Reseed draws a fresh one.
type RespawnRequest struct {
	Seed   uint64
	Reseed bool
}

var RespawnRequestComponent = NewComponent[RespawnRequest]()
