package data

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"ebiten-caves/generation"
	"ebiten-caves/meshing"
)

// NoiseParams configures a Perlin surface decoration.
type NoiseParams struct {
	Base      float64 `json:"base"`
	Amplitude float64 `json:"amplitude"`
	Frequency float64 `json:"frequency"`
	Seed      int64   `json:"seed"`
}

// HeightMap builds the height map these parameters describe.
func (n *NoiseParams) HeightMap() generation.HeightMap {
	return generation.PerlinHeight(n.Base, n.Amplitude, n.Frequency, n.Seed)
}

// Preset is a named, complete parameter set for generating and meshing one
// cave, as stored in a JSON preset file.
type Preset struct {
	Name        string `json:"name"`
	Description string `json:"description"`

	Generation generation.Config `json:"generation"`

	WallHeight float64      `json:"wallHeight"`
	Style      string       `json:"style"` // "isometric" or "enclosed"
	FloorNoise *NoiseParams `json:"floorNoise,omitempty"`
}

// CaveStyle resolves the preset's style name.
func (p *Preset) CaveStyle() (meshing.CaveStyle, error) {
	switch p.Style {
	case "", "isometric":
		return meshing.StyleIsometric, nil
	case "enclosed":
		return meshing.StyleEnclosed, nil
	}
	return 0, fmt.Errorf("preset '%s' has unknown style %q", p.Name, p.Style)
}

// MeshOptions builds the meshing options the preset describes.
func (p *Preset) MeshOptions() (meshing.CaveOptions, error) {
	style, err := p.CaveStyle()
	if err != nil {
		return meshing.CaveOptions{}, err
	}
	opts := meshing.CaveOptions{
		Style:      style,
		WallHeight: p.WallHeight,
	}
	if p.FloorNoise != nil {
		opts.FloorHeight = meshing.HeightFunc(p.FloorNoise.HeightMap())
	}
	return opts, nil
}

// validate checks the preset beyond its embedded generation config.
func (p *Preset) validate() error {
	if p.Name == "" {
		return fmt.Errorf("preset name cannot be empty")
	}
	if err := p.Generation.Validate(); err != nil {
		return err
	}
	if p.WallHeight <= 0 {
		return fmt.Errorf("preset '%s' wall height %g must be positive", p.Name, p.WallHeight)
	}
	if _, err := p.CaveStyle(); err != nil {
		return err
	}
	return nil
}

// PresetManager holds all loaded generation presets.
type PresetManager struct {
	Presets map[string]*Preset
}

// NewPresetManager creates an empty preset manager.
func NewPresetManager() *PresetManager {
	return &PresetManager{
		Presets: make(map[string]*Preset),
	}
}

// LoadPresetsFromDirectory loads every JSON preset file in a directory.
func (m *PresetManager) LoadPresetsFromDirectory(dirPath string) error {
	files, err := os.ReadDir(dirPath)
	if err != nil {
		return fmt.Errorf("failed to read preset directory: %w", err)
	}

	for _, file := range files {
		if filepath.Ext(file.Name()) != ".json" {
			continue
		}
		fullPath := filepath.Join(dirPath, file.Name())
		if err := m.LoadPresetFromFile(fullPath); err != nil {
			return fmt.Errorf("failed to load preset from %s: %w", file.Name(), err)
		}
	}
	return nil
}

// LoadPresetFromFile loads and validates a single preset file.
func (m *PresetManager) LoadPresetFromFile(filePath string) error {
	raw, err := os.ReadFile(filePath)
	if err != nil {
		return err
	}

	var preset Preset
	if err := json.Unmarshal(raw, &preset); err != nil {
		return err
	}
	if err := preset.validate(); err != nil {
		return fmt.Errorf("invalid preset in %s: %w", filePath, err)
	}

	m.Presets[preset.Name] = &preset
	return nil
}

// GetPreset returns a preset by name.
func (m *PresetManager) GetPreset(name string) (*Preset, bool) {
	preset, ok := m.Presets[name]
	return preset, ok
}

// Names lists the loaded preset names.
func (m *PresetManager) Names() []string {
	names := make([]string, 0, len(m.Presets))
	for name := range m.Presets {
		names = append(names, name)
	}
	return names
}
