// Package formats provides pluggable level file format parsers.
// Level files describe geometry in tiles; parsers convert to world pixels.
package formats

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// DefaultTileSize is used when a level file omits tile_size.
const DefaultTileSize = 16

// YAMLLevel represents the YAML structure for a level file.
type YAMLLevel struct {
	ID        string            `yaml:"id"`
	Name      string            `yaml:"name"`
	TileSize  int               `yaml:"tile_size,omitempty"`
	Size      YAMLSize          `yaml:"size"`
	Spawn     *YAMLPoint        `yaml:"spawn"`
	Blockers  []YAMLRect        `yaml:"blockers"`
	Enemies   []YAMLEnemy       `yaml:"enemies,omitempty"`
	ItemBoxes []YAMLPoint       `yaml:"item_boxes,omitempty"`
	Finish    *YAMLRect         `yaml:"finish,omitempty"`
	Metadata  map[string]string `yaml:"metadata,omitempty"`
}

// YAMLSize represents level dimensions in tiles.
type YAMLSize struct {
	W int `yaml:"w"`
	H int `yaml:"h"`
}

// YAMLPoint is a tile position (top-left corner).
type YAMLPoint struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// YAMLRect is a tile rectangle.
type YAMLRect struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	W float64 `yaml:"w"`
	H float64 `yaml:"h"`
}

// YAMLEnemy places an enemy of a named kind.
type YAMLEnemy struct {
	Kind string  `yaml:"kind"`
	X    float64 `yaml:"x"`
	Y    float64 `yaml:"y"`
	Dir  string  `yaml:"dir,omitempty"` // "left" (default) or "right"
}

// Rect is a pixel rectangle.
type Rect struct {
	X, Y, W, H float64
}

// Point is a pixel position.
type Point struct {
	X, Y float64
}

// Enemy is a parsed enemy placement in pixels.
type Enemy struct {
	Kind      string
	X, Y      float64
	FaceRight bool
}

// Level represents a parsed level in world pixels.
type Level struct {
	ID        string
	Name      string
	TileSize  int
	Width     float64
	Height    float64
	Spawn     *Point
	Blockers  []Rect
	Enemies   []Enemy
	ItemBoxes []Point
	Finish    *Rect
	Metadata  map[string]string
}

// ParseYAML parses a YAML level file.
func ParseYAML(data []byte) (Level, error) {
	var yl YAMLLevel
	if err := yaml.Unmarshal(data, &yl); err != nil {
		return Level{}, fmt.Errorf("yaml unmarshal: %w", err)
	}

	ts := yl.TileSize
	if ts <= 0 {
		ts = DefaultTileSize
	}
	s := float64(ts)

	level := Level{
		ID:       yl.ID,
		Name:     yl.Name,
		TileSize: ts,
		Width:    float64(yl.Size.W) * s,
		Height:   float64(yl.Size.H) * s,
		Metadata: yl.Metadata,
	}

	if yl.Spawn != nil {
		level.Spawn = &Point{X: yl.Spawn.X * s, Y: yl.Spawn.Y * s}
	}

	for _, b := range yl.Blockers {
		level.Blockers = append(level.Blockers, Rect{X: b.X * s, Y: b.Y * s, W: b.W * s, H: b.H * s})
	}

	for _, e := range yl.Enemies {
		switch e.Dir {
		case "", "left", "right":
		default:
			return Level{}, fmt.Errorf("enemy %q: invalid dir %q", e.Kind, e.Dir)
		}
		level.Enemies = append(level.Enemies, Enemy{
			Kind:      e.Kind,
			X:         e.X * s,
			Y:         e.Y * s,
			FaceRight: e.Dir == "right",
		})
	}

	for _, p := range yl.ItemBoxes {
		level.ItemBoxes = append(level.ItemBoxes, Point{X: p.X * s, Y: p.Y * s})
	}

	if yl.Finish != nil {
		f := yl.Finish
		level.Finish = &Rect{X: f.X * s, Y: f.Y * s, W: f.W * s, H: f.H * s}
	}

	return level, nil
}

// FormatExtensions returns supported file extensions.
func FormatExtensions() []string {
	return []string{".yaml", ".yml"}
}
