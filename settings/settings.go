// Package settings keeps the viewer preferences between runs.
package settings

import (
	"fmt"
	"log"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

const (
	AppName = "parade"

	settingsObject   = "settings"
	settingsProperty = "viewer"
)

type Settings struct {
	// CountDelta is added to every group count.
	CountDelta int    `yaml:"count_delta"`
	Seed       uint64 `yaml:"seed"`
	ShowHUD    bool   `yaml:"show_hud"`
}

func Default() Settings {
	return Settings{ShowHUD: true}
}

// Store persists Settings through gdata. A nil manager keeps everything in
// memory.
type Store struct {
	manager  *gdata.Manager
	settings Settings
}

// Open creates the gdata manager for the app and loads saved settings. When
// storage cannot be opened the store still works in memory.
func Open() *Store {
	m, err := gdata.Open(gdata.Config{AppName: AppName})
	if err != nil {
		log.Printf("settings: open storage: %v", err)
		m = nil
	}
	s := NewStore(m)
	if err := s.Load(); err != nil {
		log.Printf("settings: %v", err)
	}
	return s
}

func NewStore(m *gdata.Manager) *Store {
	return &Store{manager: m, settings: Default()}
}

// Load replaces the current settings with the saved ones. On failure the
// defaults are used.
func (s *Store) Load() error {
	if s.manager == nil || !s.manager.ObjectPropExists(settingsObject, settingsProperty) {
		s.settings = Default()
		return nil
	}

	data, err := s.manager.LoadObjectProp(settingsObject, settingsProperty)
	if err != nil {
		s.settings = Default()
		return fmt.Errorf("load settings: %w", err)
	}

	loaded := Default()
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		s.settings = Default()
		return fmt.Errorf("unmarshal settings: %w", err)
	}
	s.settings = loaded
	return nil
}

func (s *Store) Save() error {
	if s.manager == nil {
		return nil
	}
	data, err := yaml.Marshal(s.settings)
	if err != nil {
		return fmt.Errorf("marshal settings: %w", err)
	}
	if err := s.manager.SaveObjectProp(settingsObject, settingsProperty, data); err != nil {
		return fmt.Errorf("save settings: %w", err)
	}
	return nil
}

func (s *Store) Get() Settings {
	return s.settings
}

func (s *Store) Set(v Settings) {
	s.settings = v
}

// Persistent reports whether settings survive a restart.
func (s *Store) Persistent() bool {
	return s.manager != nil
}
