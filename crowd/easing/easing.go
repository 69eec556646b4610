// Package easing resolves the easing curve a group walks with. Besides the
// built-in curves, any name is looked up as a tengo script under
// prefabs/scripts that defines ease(t).
package easing

import (
	"fmt"
	"log"
	"strings"
	"sync"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/milk9111/parade/crowd"
	"github.com/milk9111/parade/prefabs"
)

const (
	Linear = "linear"
	Smooth = "smooth"
)

const dispatchScript = `
__out := ease(__t)
`

// Resolve returns the easing for name. Empty and "linear" return nil, which
// the mover treats as linear.
func Resolve(name string) (crowd.Easing, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", Linear:
		return nil, nil
	case Smooth:
		return smoothstep, nil
	}
	return LoadScript(name)
}

func smoothstep(t float64) float64 {
	return t * t * (3 - 2*t)
}

// LoadScript compiles prefabs/scripts/<name>.tengo.
func LoadScript(name string) (crowd.Easing, error) {
	src, err := prefabs.LoadScript(name)
	if err != nil {
		return nil, fmt.Errorf("easing: load %q: %w", name, err)
	}
	return Compile(name, src)
}

// Compile builds an easing from tengo source defining ease(t). A script that
// fails at run time logs once and falls back to linear progress.
func Compile(name string, src []byte) (crowd.Easing, error) {
	script := tengo.NewScript(append(append([]byte{}, src...), []byte(dispatchScript)...))
	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))
	if err := script.Add("__t", 0.0); err != nil {
		return nil, err
	}

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("easing: compile %q: %w", name, err)
	}

	rt := &scriptRuntime{name: name, compiled: compiled}
	if _, err := rt.eval(0); err != nil {
		return nil, fmt.Errorf("easing: %q: %w", name, err)
	}
	return rt.ease, nil
}

type scriptRuntime struct {
	name     string
	compiled *tengo.Compiled
	warnOnce sync.Once
}

func (rt *scriptRuntime) ease(t float64) float64 {
	v, err := rt.eval(t)
	if err != nil {
		rt.warnOnce.Do(func() {
			log.Printf("easing: script %q failed, using linear: %v", rt.name, err)
		})
		return t
	}
	return v
}

func (rt *scriptRuntime) eval(t float64) (float64, error) {
	if err := rt.compiled.Set("__t", t); err != nil {
		return 0, err
	}
	if err := rt.compiled.Run(); err != nil {
		return 0, err
	}
	out := rt.compiled.Get("__out")
	switch v := out.Value().(type) {
	case float64:
		return v, nil
	case int64:
		return float64(v), nil
	default:
		return 0, fmt.Errorf("ease(t) returned %s, want number", out.ValueType())
	}
}
