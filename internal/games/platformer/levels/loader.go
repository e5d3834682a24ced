// Package levels loads platformer level geometry.
// This package depends on physics but the simulation only sees Level values.
package levels

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/games/platformer/levels/formats"
	"github.com/vovakirdan/tui-platformer/internal/physics"
)

//go:embed data/*.yaml
var embedded embed.FS

var (
	// ErrNotFound is returned when no level has the requested ID.
	ErrNotFound = errors.New("levels: level not found")
	// ErrNoSpawn is returned for a level without a player spawn point.
	ErrNoSpawn = errors.New("levels: missing player spawn")
	// ErrUnknownEnemy is returned for an enemy kind absent from the config.
	ErrUnknownEnemy = errors.New("levels: unknown enemy kind")
	// ErrBadGeometry is returned for non-positive sizes or geometry outside the level.
	ErrBadGeometry = errors.New("levels: bad geometry")
)

// EnemySpawn places an enemy of a configured kind. X/Y is the top-left corner.
type EnemySpawn struct {
	Kind string
	X, Y float64
	Dir  physics.Direction
}

// Level represents a complete level definition in world pixels.
type Level struct {
	ID        string
	Name      string
	TileSize  int
	Width     float64
	Height    float64
	SpawnX    float64 // Player top-left
	SpawnY    float64
	Blockers  []core.RectF
	Enemies   []EnemySpawn
	ItemBoxes []core.RectF // Position only; size comes from config
	Finish    core.RectF   // Zero when the level has no goal
	Metadata  map[string]string
	FilePath  string
}

// Bounds returns the level rectangle.
func (l *Level) Bounds() core.RectF {
	return core.NewRectF(0, 0, l.Width, l.Height)
}

// HasFinish reports whether the level defines a goal area.
func (l *Level) HasFinish() bool {
	return l.Finish.W > 0 && l.Finish.H > 0
}

// Validate checks geometry, and enemy kinds when kinds is non-nil.
func (l *Level) Validate(kinds map[string]config.EnemyKind) error {
	if l.Width <= 0 || l.Height <= 0 {
		return fmt.Errorf("%w: level %q has size %vx%v", ErrBadGeometry, l.ID, l.Width, l.Height)
	}

	bounds := l.Bounds()
	inside := func(r core.RectF) bool {
		return r.W > 0 && r.H > 0 &&
			r.Left() >= bounds.Left() && r.Right() <= bounds.Right() &&
			r.Top() >= bounds.Top() && r.Bottom() <= bounds.Bottom()
	}

	for i, b := range l.Blockers {
		if !inside(b) {
			return fmt.Errorf("%w: level %q blocker %d at %v", ErrBadGeometry, l.ID, i, b)
		}
	}
	for i, b := range l.ItemBoxes {
		if b.X < 0 || b.Y < 0 || b.X >= l.Width || b.Y >= l.Height {
			return fmt.Errorf("%w: level %q item box %d at %v,%v", ErrBadGeometry, l.ID, i, b.X, b.Y)
		}
	}
	if l.HasFinish() && !inside(l.Finish) {
		return fmt.Errorf("%w: level %q finish at %v", ErrBadGeometry, l.ID, l.Finish)
	}
	if l.SpawnX < 0 || l.SpawnY < 0 || l.SpawnX >= l.Width || l.SpawnY >= l.Height {
		return fmt.Errorf("%w: level %q spawn at %v,%v", ErrBadGeometry, l.ID, l.SpawnX, l.SpawnY)
	}

	for i, e := range l.Enemies {
		if e.X < 0 || e.Y < 0 || e.X >= l.Width || e.Y >= l.Height {
			return fmt.Errorf("%w: level %q enemy %d at %v,%v", ErrBadGeometry, l.ID, i, e.X, e.Y)
		}
		if kinds == nil {
			continue
		}
		if _, ok := kinds[e.Kind]; !ok {
			return fmt.Errorf("%w: %q in level %q", ErrUnknownEnemy, e.Kind, l.ID)
		}
	}
	return nil
}

// FromParsed converts a parsed level into a Level and validates its geometry.
func FromParsed(p formats.Level, filePath string) (Level, error) {
	if p.Spawn == nil {
		return Level{}, fmt.Errorf("%w: level %q", ErrNoSpawn, p.ID)
	}

	lvl := Level{
		ID:       p.ID,
		Name:     p.Name,
		TileSize: p.TileSize,
		Width:    p.Width,
		Height:   p.Height,
		SpawnX:   p.Spawn.X,
		SpawnY:   p.Spawn.Y,
		Metadata: p.Metadata,
		FilePath: filePath,
	}
	if lvl.Name == "" {
		lvl.Name = lvl.ID
	}

	for _, b := range p.Blockers {
		lvl.Blockers = append(lvl.Blockers, core.NewRectF(b.X, b.Y, b.W, b.H))
	}
	for _, e := range p.Enemies {
		dir := physics.Left
		if e.FaceRight {
			dir = physics.Right
		}
		lvl.Enemies = append(lvl.Enemies, EnemySpawn{Kind: e.Kind, X: e.X, Y: e.Y, Dir: dir})
	}
	for _, b := range p.ItemBoxes {
		lvl.ItemBoxes = append(lvl.ItemBoxes, core.NewRectF(b.X, b.Y, 0, 0))
	}
	if p.Finish != nil {
		lvl.Finish = core.NewRectF(p.Finish.X, p.Finish.Y, p.Finish.W, p.Finish.H)
	}

	if err := lvl.Validate(nil); err != nil {
		return Level{}, err
	}
	return lvl, nil
}

// Loader handles loading levels from a directory, or from the built-in
// set when Root is empty.
type Loader struct {
	Root string
}

// NewLoader creates a new level loader.
func NewLoader(root string) *Loader {
	return &Loader{Root: root}
}

// Embedded returns a loader over the built-in levels.
func Embedded() *Loader {
	return &Loader{}
}

func (l *Loader) fsys() (fs.FS, string) {
	if l.Root == "" {
		return embedded, "data"
	}
	return os.DirFS(l.Root), "."
}

// LoadAll recursively scans and loads all level files.
// Invalid files are skipped. Returns levels sorted by ID.
func (l *Loader) LoadAll() ([]Level, error) {
	fsys, root := l.fsys()
	var levels []Level

	err := fs.WalkDir(fsys, root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !isSupportedExtension(strings.ToLower(path.Ext(p))) {
			return nil
		}

		level, err := l.load(fsys, p)
		if err != nil {
			// Skip invalid files
			return nil
		}

		levels = append(levels, level)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("levels: walking %s: %w", l.describe(), err)
	}

	sort.Slice(levels, func(i, j int) bool {
		return levels[i].ID < levels[j].ID
	})

	return levels, nil
}

// LoadFile loads a single level file from disk, independent of Root.
func (l *Loader) LoadFile(filePath string) (Level, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return Level{}, fmt.Errorf("levels: reading file %s: %w", filePath, err)
	}
	return parse(data, filePath)
}

// LoadByID loads a specific level by ID.
func (l *Loader) LoadByID(id string) (Level, error) {
	levels, err := l.LoadAll()
	if err != nil {
		return Level{}, err
	}

	for _, lvl := range levels {
		if lvl.ID == id {
			return lvl, nil
		}
	}

	return Level{}, fmt.Errorf("%w: %s", ErrNotFound, id)
}

// ListIDs returns all level IDs in sorted order.
func (l *Loader) ListIDs() ([]string, error) {
	levels, err := l.LoadAll()
	if err != nil {
		return nil, err
	}

	ids := make([]string, len(levels))
	for i, lvl := range levels {
		ids[i] = lvl.ID
	}
	return ids, nil
}

func (l *Loader) load(fsys fs.FS, p string) (Level, error) {
	data, err := fs.ReadFile(fsys, p)
	if err != nil {
		return Level{}, fmt.Errorf("levels: reading file %s: %w", p, err)
	}
	if l.Root != "" {
		p = filepath.Join(l.Root, filepath.FromSlash(p))
	}
	return parse(data, p)
}

func (l *Loader) describe() string {
	if l.Root == "" {
		return "embedded levels"
	}
	return l.Root
}

func parse(data []byte, filePath string) (Level, error) {
	ext := strings.ToLower(filepath.Ext(filePath))
	parsed, err := parseByExtension(data, ext)
	if err != nil {
		return Level{}, fmt.Errorf("levels: parsing file %s: %w", filePath, err)
	}
	return FromParsed(parsed, filePath)
}

// isSupportedExtension checks if extension is supported.
func isSupportedExtension(ext string) bool {
	for _, supported := range formats.FormatExtensions() {
		if ext == supported {
			return true
		}
	}
	return false
}

// parseByExtension routes to the correct parser.
func parseByExtension(data []byte, ext string) (formats.Level, error) {
	switch ext {
	case ".yaml", ".yml":
		return formats.ParseYAML(data)
	default:
		return formats.Level{}, fmt.Errorf("unsupported extension: %s", ext)
	}
}
