package crowd

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// SnapshotEntry is the serialized form of a live sprite.
type SnapshotEntry struct {
	Group       string   `yaml:"group,omitempty"`
	Asset       string   `yaml:"asset"`
	FacesLeft   bool     `yaml:"faces_left"`
	StartX      float64  `yaml:"start_x"`
	EndX        float64  `yaml:"end_x"`
	DurationMs  int      `yaml:"duration_ms"`
	LastOffsetX *float64 `yaml:"last_offset_x,omitempty"`
	Mirrored    bool     `yaml:"mirrored"`
}

// Snapshot is a point-in-time dump of the parade.
type Snapshot struct {
	Seed    uint64          `yaml:"seed"`
	Width   float64         `yaml:"width"`
	Sprites []SnapshotEntry `yaml:"sprites"`
}

// EntryOf builds a snapshot entry for s. Mirrored is derived from the last
// observed position so taking a snapshot does not mutate the sprite.
func EntryOf(group string, s Sprite, mirrored bool) SnapshotEntry {
	e := SnapshotEntry{
		Group:      group,
		Asset:      s.AssetID,
		FacesLeft:  s.FacesLeft,
		StartX:     s.StartX,
		EndX:       s.EndX,
		DurationMs: s.DurationMs,
		Mirrored:   mirrored,
	}
	if s.LastOffsetX != nil {
		v := *s.LastOffsetX
		e.LastOffsetX = &v
	}
	return e
}

// Marshal encodes the snapshot as YAML.
func (s Snapshot) Marshal() ([]byte, error) {
	b, err := yaml.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("crowd: marshal snapshot: %w", err)
	}
	return b, nil
}
