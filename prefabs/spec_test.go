package prefabs

import (
	"errors"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/milk9111/parade/crowd"
)

func TestLoadEmbeddedParadeSpec(t *testing.T) {
	spec, err := LoadParadeSpec("")
	if err != nil {
		t.Fatalf("LoadParadeSpec: %v", err)
	}
	if spec.Width != 1280 || spec.Height != 720 {
		t.Fatalf("unexpected size %vx%v", spec.Width, spec.Height)
	}
	if spec.Background == nil {
		t.Fatalf("expected a background color")
	}

	want := map[string]int{"walkers": 6, "flyers": 2}
	for _, g := range spec.Groups {
		n, ok := want[g.Name]
		if !ok {
			t.Fatalf("unexpected group %q", g.Name)
		}
		if len(g.Pool) != n {
			t.Fatalf("group %q: pool size %d, want %d", g.Name, len(g.Pool), n)
		}
		for _, p := range g.Pool {
			if _, err := LoadEntityBuildSpec(AssetFile(p.Asset)); err != nil {
				t.Fatalf("asset %q has no prefab: %v", p.Asset, err)
			}
		}
	}
}

func TestParadeSpecEasing(t *testing.T) {
	cases := []struct {
		file string
		want map[string]string
	}{
		{"", map[string]string{"walkers": "linear", "flyers": "linear"}},
		{"parade_eased.yaml", map[string]string{"walkers": "stride", "flyers": "glide"}},
	}

	for _, c := range cases {
		t.Run("file="+c.file, func(t *testing.T) {
			spec, err := LoadParadeSpec(c.file)
			if err != nil {
				t.Fatalf("LoadParadeSpec(%q): %v", c.file, err)
			}
			if len(spec.Groups) != len(c.want) {
				t.Fatalf("got %d groups, want %d", len(spec.Groups), len(c.want))
			}
			for _, g := range spec.Groups {
				if g.Easing != c.want[g.Name] {
					t.Fatalf("group %q easing %q, want %q", g.Name, g.Easing, c.want[g.Name])
				}
			}
		})
	}
}

func TestParadeSpecValidate(t *testing.T) {
	pool := []PoolEntry{{Asset: "a"}}
	cases := []struct {
		name    string
		spec    ParadeSpec
		wantErr error
		anyErr  bool
	}{
		{"ok", ParadeSpec{Width: 10, Groups: []GroupSpec{{Name: "g", Count: 1, Pool: pool}}}, nil, false},
		{"zero_width", ParadeSpec{Width: 0}, crowd.ErrInvalidWidth, true},
		{"empty_pool", ParadeSpec{Width: 10, Groups: []GroupSpec{{Name: "g", Count: 1}}}, crowd.ErrEmptyPool, true},
		{"negative_count", ParadeSpec{Width: 10, Groups: []GroupSpec{{Name: "g", Count: -1, Pool: pool}}}, nil, true},
		{"duplicate_group", ParadeSpec{Width: 10, Groups: []GroupSpec{{Name: "g", Pool: pool}, {Name: "g", Pool: pool}}}, nil, true},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			err := c.spec.Validate()
			if !c.anyErr {
				if err != nil {
					t.Fatalf("unexpected error %v", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("expected error")
			}
			if c.wantErr != nil && !errors.Is(err, c.wantErr) {
				t.Fatalf("error %v does not wrap %v", err, c.wantErr)
			}
		})
	}
}

func TestParseHexColor(t *testing.T) {
	cases := []struct {
		in      string
		want    color.NRGBA
		wantErr bool
	}{
		{"#1d2b3a", color.NRGBA{R: 0x1d, G: 0x2b, B: 0x3a, A: 0xff}, false},
		{"ff000080", color.NRGBA{R: 0xff, A: 0x80}, false},
		{"#fff", color.NRGBA{}, true},
		{"#gg0000", color.NRGBA{}, true},
	}
	for _, c := range cases {
		t.Run(c.in, func(t *testing.T) {
			got, err := ParseHexColor(c.in)
			if c.wantErr {
				if err == nil {
					t.Fatalf("expected error for %q", c.in)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseHexColor(%q): %v", c.in, err)
			}
			if got != c.want {
				t.Fatalf("got %+v, want %+v", got, c.want)
			}
		})
	}
}

func TestPaths(t *testing.T) {
	assetCases := []struct{ in, want string }{
		{"bird", "bird.yaml"},
		{"prefabs/bat", "bat.yaml"},
		{"catwalk.yaml", "catwalk.yaml"},
	}
	for _, c := range assetCases {
		if got := AssetFile(c.in); got != c.want {
			t.Fatalf("AssetFile(%q) = %q, want %q", c.in, got, c.want)
		}
	}

	scriptCases := []struct{ in, want string }{
		{"glide", "scripts/glide.tengo"},
		{"scripts/glide.tengo", "scripts/glide.tengo"},
		{"prefabs/scripts/stride", "scripts/stride.tengo"},
		{"", ""},
	}
	for _, c := range scriptCases {
		if got := cleanScriptPath(c.in); got != c.want {
			t.Fatalf("cleanScriptPath(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestLoadPrefersDisk(t *testing.T) {
	dir := t.TempDir()
	old := Dir
	Dir = dir
	t.Cleanup(func() { Dir = old })

	src := []byte("name: local\nwidth: 50\ngroups:\n  - name: g\n    count: 1\n    pool:\n      - asset: bird\n")
	if err := os.WriteFile(filepath.Join(dir, ParadeFile), src, 0o644); err != nil {
		t.Fatal(err)
	}

	spec, err := LoadParadeSpec(ParadeFile)
	if err != nil {
		t.Fatalf("LoadParadeSpec: %v", err)
	}
	if spec.Name != "local" || spec.Width != 50 {
		t.Fatalf("expected disk spec, got %+v", spec)
	}

	// Files missing on disk still come from the embedded copy.
	if _, err := LoadEntityBuildSpec("bird.yaml"); err != nil {
		t.Fatalf("embedded fallback: %v", err)
	}
}

func TestRoll(t *testing.T) {
	spec, err := LoadParadeSpec("")
	if err != nil {
		t.Fatal(err)
	}

	a := spec.Roll(99, 0)
	b := spec.Roll(99, 0)
	if len(a) != 12 {
		t.Fatalf("expected 12 placements, got %d", len(a))
	}
	for i := range a {
		if a[i].Sprite.StartX != b[i].Sprite.StartX || a[i].Y != b[i].Y || a[i].Sprite.AssetID != b[i].Sprite.AssetID {
			t.Fatalf("placement %d differs between rolls", i)
		}
	}

	for _, p := range a {
		g := spec.Groups[0]
		if p.Group == "flyers" {
			g = spec.Groups[1]
		}
		if p.Y < g.LaneY-g.LaneJitter || p.Y > g.LaneY+g.LaneJitter {
			t.Fatalf("%s lane y %v outside %v±%v", p.Group, p.Y, g.LaneY, g.LaneJitter)
		}
		if p.Layer != g.Layer || p.Easing != g.Easing {
			t.Fatalf("placement does not carry group settings: %+v", p)
		}
	}

	if got := spec.ClampDelta(-100); got != -8 {
		t.Fatalf("ClampDelta(-100) = %d, want -8", got)
	}
	if got := spec.ClampDelta(-3); got != -3 {
		t.Fatalf("ClampDelta(-3) = %d, want -3", got)
	}
	if n := len(spec.Roll(99, -100)); n != 0 {
		t.Fatalf("negative delta should clamp to zero, got %d", n)
	}
	if n := len(spec.Roll(99, 1)); n != 14 {
		t.Fatalf("expected 14 placements with delta 1, got %d", n)
	}
}
