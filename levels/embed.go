package levels

import (
	"embed"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"path"
	"strings"
)

//go:embed maps/*.csv
var MapsFS embed.FS

// DefaultMapDir is the embedded map directory.
const DefaultMapDir = "maps"

// Empty marks a cell with no placement.
const Empty = "-1"

var ErrLayoutMismatch = errors.New("levels: layer dimensions differ")

// Layer names one of the four parallel grids of a map.
type Layer string

const (
	LayerBoundary Layer = "boundary"
	LayerGrass    Layer = "grass"
	LayerObject   Layer = "object"
	LayerEntities Layer = "entities"
)

// Layers lists the grids in build order.
var Layers = []Layer{LayerBoundary, LayerGrass, LayerObject, LayerEntities}

var layerFiles = map[Layer]string{
	LayerBoundary: "map_FloorBlocks.csv",
	LayerGrass:    "map_Grass.csv",
	LayerObject:   "map_Objects.csv",
	LayerEntities: "map_Entities.csv",
}

// Layout is one grid of cell codes, row-major.
type Layout [][]string

// Map is the four layers of a level, all with the same dimensions.
type Map struct {
	Rows   int
	Cols   int
	layers map[Layer]Layout
}

// NewMap validates that every layer has the same shape.
func NewMap(layers map[Layer]Layout) (*Map, error) {
	m := &Map{Rows: -1, layers: make(map[Layer]Layout, len(Layers))}
	for _, name := range Layers {
		layout, ok := layers[name]
		if !ok {
			return nil, fmt.Errorf("levels: missing layer %s", name)
		}
		rows, cols := len(layout), 0
		if rows > 0 {
			cols = len(layout[0])
		}
		if m.Rows < 0 {
			m.Rows, m.Cols = rows, cols
		} else if rows != m.Rows || cols != m.Cols {
			return nil, fmt.Errorf("%w: %s is %dx%d, want %dx%d", ErrLayoutMismatch, name, rows, cols, m.Rows, m.Cols)
		}
		m.layers[name] = layout
	}
	return m, nil
}

// Layout returns one layer.
func (m *Map) Layout(name Layer) Layout {
	if m == nil {
		return nil
	}
	return m.layers[name]
}

// Each calls fn for every non-empty cell of a layer in row-major order.
func (m *Map) Each(name Layer, fn func(row, col int, code string)) {
	for r, row := range m.Layout(name) {
		for c, code := range row {
			if code == Empty {
				continue
			}
			fn(r, c, code)
		}
	}
}

// LoadMap reads the four CSV layers from dir in fsys.
func LoadMap(fsys fs.FS, dir string) (*Map, error) {
	layers := make(map[Layer]Layout, len(Layers))
	for _, name := range Layers {
		p := path.Join(dir, layerFiles[name])
		f, err := fsys.Open(p)
		if err != nil {
			return nil, fmt.Errorf("levels: open %s: %w", p, err)
		}
		layout, err := ParseLayout(f)
		_ = f.Close()
		if err != nil {
			return nil, fmt.Errorf("levels: parse %s: %w", p, err)
		}
		layers[name] = layout
	}
	return NewMap(layers)
}

// LoadDefault reads the embedded map.
func LoadDefault() (*Map, error) {
	return LoadMap(MapsFS, DefaultMapDir)
}

// ParseLayout reads a CSV grid. Rows must all have the same width.
func ParseLayout(r io.Reader) (Layout, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	records, err := cr.ReadAll()
	if err != nil {
		return nil, err
	}
	layout := make(Layout, 0, len(records))
	for _, rec := range records {
		row := make([]string, len(rec))
		for i, cell := range rec {
			row[i] = strings.TrimSpace(cell)
		}
		layout = append(layout, row)
	}
	return layout, nil
}
