// Package prefs persists simulator preferences through gdata. Without a gdata manager
// the store keeps preferences in memory only.
package prefs

import (
	"fmt"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"

	"nifri2/proto-face/cmd"
)

const (
	AppName = "proto_face"

	prefsObject   = "prefs"
	prefsProperty = "face"
)

// Prefs is everything the simulator remembers between runs.
type Prefs struct {
	Face    cmd.Config `yaml:"face"`
	Sound   bool       `yaml:"sound"`
	Shuffle bool       `yaml:"shuffle"`
}

func Defaults() Prefs {
	c := cmd.DefaultConfig()
	return Prefs{
		Face:    c,
		Sound:   true,
		Shuffle: c.Shuffle.Enabled,
	}
}

type Store struct {
	manager *gdata.Manager // nil means memory only
	prefs   Prefs
}

// Open opens the gdata storage for appName. If that fails the store still works in
// memory and the error is returned alongside it.
func Open(appName string) (*Store, error) {
	m, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		return NewStore(nil), fmt.Errorf("open storage: %w", err)
	}
	return NewStore(m), nil
}

func NewStore(m *gdata.Manager) *Store {
	return &Store{manager: m, prefs: Defaults()}
}

// Persistent reports whether Save writes to disk.
func (s *Store) Persistent() bool { return s.manager != nil }

func (s *Store) Prefs() *Prefs { return &s.prefs }

// Load reads the saved preferences. Missing preferences load the defaults; a broken
// file loads the defaults and reports the error.
func (s *Store) Load() error {
	s.prefs = Defaults()
	if s.manager == nil || !s.manager.ObjectPropExists(prefsObject, prefsProperty) {
		return nil
	}

	data, err := s.manager.LoadObjectProp(prefsObject, prefsProperty)
	if err != nil {
		return fmt.Errorf("load prefs: %w", err)
	}
	p := Defaults()
	if err := yaml.Unmarshal(data, &p); err != nil {
		return fmt.Errorf("unmarshal prefs: %w", err)
	}
	if err := p.Face.Validate(); err != nil {
		return fmt.Errorf("saved prefs: %w", err)
	}
	s.prefs = p
	return nil
}

func (s *Store) Save() error {
	if s.manager == nil {
		return nil
	}
	data, err := yaml.Marshal(&s.prefs)
	if err != nil {
		return fmt.Errorf("marshal prefs: %w", err)
	}
	if err := s.manager.SaveObjectProp(prefsObject, prefsProperty, data); err != nil {
		return fmt.Errorf("save prefs: %w", err)
	}
	return nil
}

// Reset goes back to the defaults and saves them.
func (s *Store) Reset() error {
	s.prefs = Defaults()
	return s.Save()
}
