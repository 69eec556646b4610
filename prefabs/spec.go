package prefabs

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/milk9111/parade/crowd"
	"gopkg.in/yaml.v3"
)

const ParadeFile = "parade.yaml"

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

// ParadeSpec describes the screen region and the groups that walk across it.
type ParadeSpec struct {
	Name       string      `yaml:"name"`
	Width      float64     `yaml:"width"`
	Height     float64     `yaml:"height"`
	Seed       uint64      `yaml:"seed"`
	Background *YAMLColor  `yaml:"background"`
	Groups     []GroupSpec `yaml:"groups"`
}

// GroupSpec is one generator run: a pool, a count, and the lane the sprites
// walk along.
type GroupSpec struct {
	Name       string       `yaml:"name"`
	Count      int          `yaml:"count"`
	LaneY      float64      `yaml:"lane_y"`
	LaneJitter float64      `yaml:"lane_jitter"`
	Layer      int          `yaml:"layer"`
	Easing     string       `yaml:"easing"`
	Duration   DurationSpec `yaml:"duration"`
	Pool       []PoolEntry  `yaml:"pool"`
}

type DurationSpec struct {
	MinMs  int `yaml:"min_ms"`
	MaxMs  int `yaml:"max_ms"`
	StepMs int `yaml:"step_ms"`
}

type PoolEntry struct {
	Asset     string `yaml:"asset"`
	FacesLeft bool   `yaml:"faces_left"`
}

func LoadParadeSpec(filename string) (*ParadeSpec, error) {
	if filename == "" {
		filename = ParadeFile
	}
	spec, err := LoadSpec[ParadeSpec](filename)
	if err != nil {
		return nil, err
	}
	if err := spec.Validate(); err != nil {
		return nil, fmt.Errorf("prefabs: %s: %w", filename, err)
	}
	return &spec, nil
}

// Validate rejects specs the generator cannot run with.
func (p ParadeSpec) Validate() error {
	if !(p.Width > 0) {
		return crowd.ErrInvalidWidth
	}
	seen := make(map[string]bool, len(p.Groups))
	for _, g := range p.Groups {
		if seen[g.Name] {
			return fmt.Errorf("duplicate group %q", g.Name)
		}
		seen[g.Name] = true
		if g.Count < 0 {
			return fmt.Errorf("group %q: negative count %d", g.Name, g.Count)
		}
		if err := crowd.Validate(g.Assets(), p.Width); err != nil {
			return fmt.Errorf("group %q: %w", g.Name, err)
		}
	}
	return nil
}

// Assets converts the pool into generator input.
func (g GroupSpec) Assets() []crowd.DirectionalAsset {
	out := make([]crowd.DirectionalAsset, 0, len(g.Pool))
	for _, p := range g.Pool {
		out = append(out, crowd.DirectionalAsset{AssetID: p.Asset, FacesLeft: p.FacesLeft})
	}
	return out
}

// Options converts the duration block, leaving zero fields to the generator
// defaults.
func (g GroupSpec) Options() crowd.Options {
	return crowd.Options{
		MinDurationMs: g.Duration.MinMs,
		MaxDurationMs: g.Duration.MaxMs,
		StepMs:        g.Duration.StepMs,
	}
}

type YAMLColor struct {
	color.Color
}

func (c *YAMLColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}
	parsed, err := ParseHexColor(value.Value)
	if err != nil {
		return err
	}
	c.Color = parsed
	return nil
}

// ParseHexColor accepts #rrggbb or #rrggbbaa.
func ParseHexColor(v string) (color.NRGBA, error) {
	s := strings.TrimPrefix(v, "#")

	if len(s) != 6 && len(s) != 8 {
		return color.NRGBA{}, fmt.Errorf("invalid color format: %s", v)
	}

	parse := func(start int) (uint8, error) {
		n, err := strconv.ParseUint(s[start:start+2], 16, 8)
		return uint8(n), err
	}

	var rgba [4]uint8
	rgba[3] = 255
	for i := 0; i < len(s)/2; i++ {
		b, err := parse(i * 2)
		if err != nil {
			return color.NRGBA{}, fmt.Errorf("invalid color format: %s", v)
		}
		rgba[i] = b
	}

	return color.NRGBA{R: rgba[0], G: rgba[1], B: rgba[2], A: rgba[3]}, nil
}
