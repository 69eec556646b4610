package render

import (
	"bytes"
	"fmt"
	"image"
	_ "image/png"
	"os"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/parade/assets"
)

// LoadImage loads an image from the assets directory on disk or the embedded
// copy and caches it by key.
func LoadImage(key string) (*ebiten.Image, error) {
	if key == "" {
		return nil, fmt.Errorf("render: empty image key")
	}
	if img := GetImage(key); img != nil {
		return img, nil
	}
	img, err := loadImageFromFSOrAssets(key)
	if err != nil {
		return nil, err
	}
	RegisterImage(key, img)
	return img, nil
}

func loadImageFromFSOrAssets(path string) (*ebiten.Image, error) {
	tried := []string{filepath.Join("assets", path), path}
	for _, p := range tried {
		if b, err := os.ReadFile(p); err == nil {
			if im, _, err := image.Decode(bytes.NewReader(b)); err == nil {
				return ebiten.NewImageFromImage(im), nil
			}
		}
	}
	img, err := assets.LoadImage(path)
	if err != nil {
		return nil, fmt.Errorf("render: load image %s: %w", path, err)
	}
	return img, nil
}
