package tui

import (
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/milk9111/parade/crowd"
	"github.com/milk9111/parade/crowd/easing"
	"github.com/milk9111/parade/prefabs"
)

const (
	frameInterval = time.Second / 30
	labelWidth    = 16
	defaultWidth  = 80
	minTrack      = 10
)

type tickMsg time.Time

type walker struct {
	group  string
	sprite crowd.Sprite
	ease   crowd.Easing
	offset float64
	mirror bool
}

// facingLeft reports which way the artwork points on screen after mirroring.
func (w walker) facingLeft() bool {
	return w.sprite.FacesLeft != w.mirror
}

// Preview is a Bubble Tea model that walks the parade along text rows.
type Preview struct {
	spec    *prefabs.ParadeSpec
	seed    uint64
	delta   int
	walkers []walker
	elapsed time.Duration
	width   int
	height  int
	lastErr string
	newSeed func() uint64
}

type Option func(*Preview)

// WithSeedSource sets where reshuffles get their seed.
func WithSeedSource(fn func() uint64) Option {
	return func(p *Preview) {
		if fn != nil {
			p.newSeed = fn
		}
	}
}

// WithCountDelta adds delta walkers to every group.
func WithCountDelta(delta int) Option {
	return func(p *Preview) {
		p.delta = delta
	}
}

// NewPreview creates a preview of spec rolled with seed.
func NewPreview(spec *prefabs.ParadeSpec, seed uint64, opts ...Option) Preview {
	p := Preview{
		spec:    spec,
		seed:    seed,
		newSeed: rand.Uint64,
	}
	for _, opt := range opts {
		opt(&p)
	}
	p.roll()
	return p
}

func (p Preview) Seed() uint64 { return p.seed }

func (p Preview) Len() int { return len(p.walkers) }

func (p *Preview) roll() {
	p.elapsed = 0
	p.walkers = nil
	p.lastErr = ""
	p.delta = p.spec.ClampDelta(p.delta)

	eases := map[string]crowd.Easing{}
	for _, g := range p.spec.Groups {
		ease, err := easing.Resolve(g.Easing)
		if err != nil {
			p.lastErr = fmt.Sprintf("group %s: %v (using linear)", g.Name, err)
		}
		eases[g.Name] = ease
	}

	for _, pl := range p.spec.Roll(p.seed, p.delta) {
		p.walkers = append(p.walkers, walker{
			group:  pl.Group,
			sprite: pl.Sprite,
			ease:   eases[pl.Group],
			offset: pl.Sprite.StartX,
			mirror: pl.Sprite.FacesLeft == (pl.Sprite.EndX > pl.Sprite.StartX),
		})
	}
}

func tick() tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Init starts the frame clock.
func (p Preview) Init() tea.Cmd {
	return tick()
}

// Update handles messages.
func (p Preview) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return p.handleKey(msg)

	case tea.WindowSizeMsg:
		p.width = msg.Width
		p.height = msg.Height
		return p, nil

	case tickMsg:
		p.step(frameInterval)
		return p, tick()
	}

	return p, nil
}

func (p *Preview) step(d time.Duration) {
	p.elapsed += d
	// Copy so models returned by earlier updates keep their frame.
	p.walkers = append([]walker(nil), p.walkers...)
	for i := range p.walkers {
		w := &p.walkers[i]
		w.offset = crowd.Offset(w.sprite, p.elapsed, w.ease)
		w.mirror = w.sprite.Observe(w.offset)
	}
}

func (p Preview) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c", "esc":
		return p, tea.Quit

	case "r":
		p.seed = p.newSeed()
		p.roll()

	case "+", "=":
		p.delta++
		p.roll()

	case "-":
		p.delta--
		p.roll()
	}
	return p, nil
}

// View renders one row per walker under its group heading.
func (p Preview) View() string {
	width := p.width
	if width <= 0 {
		width = defaultWidth
	}
	track := max(width-labelWidth-1, minTrack)

	var b strings.Builder
	b.WriteString(HeaderStyle.Render("parade preview"))
	b.WriteString("\n")
	b.WriteString(SubheaderStyle.Render(fmt.Sprintf("seed %d · %d walking · t=%.1fs", p.seed, len(p.walkers), p.elapsed.Seconds())))
	b.WriteString("\n")

	group := ""
	for _, w := range p.walkers {
		if w.group != group {
			group = w.group
			b.WriteString("\n")
			b.WriteString(groupStyle.Render(group))
			b.WriteString("\n")
		}
		b.WriteString(fmt.Sprintf("%-*s ", labelWidth, truncate(w.sprite.AssetID, labelWidth)))
		b.WriteString(p.renderTrack(w, track))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if p.lastErr != "" {
		b.WriteString(errorStyle.Render(p.lastErr))
		b.WriteString("\n")
	}
	b.WriteString(statusBarStyle.Render("q quit · r reshuffle · +/- walkers"))
	return b.String()
}

// renderTrack maps the visible range [0, spec width) onto cols cells. Sprites
// outside it are off screen and leave the track empty.
func (p Preview) renderTrack(w walker, cols int) string {
	col := -1
	if p.spec.Width > 0 && w.offset >= 0 && w.offset < p.spec.Width {
		col = int(w.offset / p.spec.Width * float64(cols))
	}
	if col < 0 || col >= cols {
		return trackStyle.Render(strings.Repeat("·", cols))
	}
	glyph := FacingStyle(w.facingLeft()).Render(Glyph(w.facingLeft()))
	return trackStyle.Render(strings.Repeat("·", col)) + glyph + trackStyle.Render(strings.Repeat("·", cols-col-1))
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
