// internal/defs/level.go
package defs

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"go-td-sim/internal/config"
	"go-td-sim/pkg/geom"
)

var ErrBadLevel = errors.New("invalid level")

// Level is the static map a game is played on: the enemy path and the buildable spots.
// Spots are the top-left corners of grid cells.
type Level struct {
	Name  string
	Path  *geom.Path
	Spots []geom.Point
}

type levelFile struct {
	Name  string       `json:"name"`
	Path  []geom.Point `json:"path"`
	Spots []geom.Point `json:"spots"`
}

// DefaultLevel returns the level compiled into the binary.
func DefaultLevel() (*Level, error) {
	data, err := dataFS.ReadFile("data/level.json")
	if err != nil {
		return nil, fmt.Errorf("failed to read embedded level: %w", err)
	}
	return ParseLevel(data)
}

// LoadLevel reads a level file from disk.
func LoadLevel(path string) (*Level, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read level file: %w", err)
	}
	return ParseLevel(data)
}

// ParseLevel decodes and validates a level.
func ParseLevel(data []byte) (*Level, error) {
	var lf levelFile
	if err := json.Unmarshal(data, &lf); err != nil {
		return nil, fmt.Errorf("failed to unmarshal level: %w", err)
	}
	path, err := geom.NewPath(lf.Path)
	if err != nil {
		return nil, fmt.Errorf("%w %q: %w", ErrBadLevel, lf.Name, err)
	}

	field := geom.Rect{Max: geom.Point{X: config.PlayfieldW, Y: config.PlayfieldH}}
	seen := make(map[geom.Point]bool, len(lf.Spots))
	for _, spot := range lf.Spots {
		if !field.Contains(spot) {
			return nil, fmt.Errorf("%w %q: spot (%g,%g) outside the playfield", ErrBadLevel, lf.Name, spot.X, spot.Y)
		}
		if seen[spot] {
			return nil, fmt.Errorf("%w %q: duplicate spot (%g,%g)", ErrBadLevel, lf.Name, spot.X, spot.Y)
		}
		seen[spot] = true
	}

	return &Level{Name: lf.Name, Path: path, Spots: lf.Spots}, nil
}

// SpotCenter returns the centre of the cell whose top-left corner is spot.
func SpotCenter(spot geom.Point) geom.Point {
	return spot.Add(config.TileSize/2, config.TileSize/2)
}

// SpotAt returns the index of the spot whose cell contains p.
func (l *Level) SpotAt(p geom.Point) (int, bool) {
	for i, spot := range l.Spots {
		cell := geom.Rect{Min: spot, Max: spot.Add(config.TileSize, config.TileSize)}
		if cell.Contains(p) {
			return i, true
		}
	}
	return -1, false
}
