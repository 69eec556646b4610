package main

import (
	"fmt"
	"math/rand/v2"
	"os"

	"github.com/milk9111/parade/prefabs"
	"github.com/spf13/cobra"
)

var (
	prefabFile string
	prefabDir  string
)

var rootCmd = &cobra.Command{
	Use:   "paradectl",
	Short: "Inspect and preview parade prefabs from the terminal",
	Long: `paradectl rolls the same parades the viewer shows.

Prefabs are read from the prefab directory when present and fall back to
the copies built into the binary.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if prefabDir != "" {
			prefabs.Dir = prefabDir
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&prefabFile, "prefab", "p", prefabs.ParadeFile, "parade prefab to load")
	rootCmd.PersistentFlags().StringVar(&prefabDir, "dir", "", "prefab directory (default ./prefabs)")
}

func Execute() error {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return err
	}
	return nil
}

// loadSpec loads the selected prefab and applies overrides. count < 0 keeps
// the prefab counts; width <= 0 keeps the prefab width.
func loadSpec(count int, width float64) (*prefabs.ParadeSpec, error) {
	spec, err := prefabs.LoadParadeSpec(prefabFile)
	if err != nil {
		return nil, err
	}
	if width > 0 {
		spec.Width = width
	}
	if count >= 0 {
		for i := range spec.Groups {
			spec.Groups[i].Count = count
		}
	}
	if err := spec.Validate(); err != nil {
		return nil, fmt.Errorf("paradectl: %w", err)
	}
	return spec, nil
}

// pickSeed prefers the flag, then the prefab seed, then a random one.
func pickSeed(flagSeed uint64, spec *prefabs.ParadeSpec) uint64 {
	if flagSeed != 0 {
		return flagSeed
	}
	if spec.Seed != 0 {
		return spec.Seed
	}
	return rand.Uint64()
}
