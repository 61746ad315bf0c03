// internal/defs/loader.go
package defs

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

//go:embed data/*.json
var dataFS embed.FS

var (
	ErrMissingTower = errors.New("missing tower definition")
	ErrMissingEnemy = errors.New("missing enemy definition")
	ErrBadTowerDef  = errors.New("invalid tower definition")
)

// Library is the set of tower and enemy definitions a game runs with.
type Library struct {
	Towers  map[TowerKind]TowerDefinition
	Enemies map[EnemyKind]EnemyDefinition
}

// Tower returns the definition for kind.
func (l *Library) Tower(kind TowerKind) (TowerDefinition, bool) {
	def, ok := l.Towers[kind]
	return def, ok
}

// Enemy returns the definition for kind.
func (l *Library) Enemy(kind EnemyKind) (EnemyDefinition, bool) {
	def, ok := l.Enemies[kind]
	return def, ok
}

// DefaultLibrary loads the definitions compiled into the binary.
func DefaultLibrary() (*Library, error) {
	towers, err := dataFS.ReadFile("data/towers.json")
	if err != nil {
		return nil, fmt.Errorf("failed to read embedded tower definitions: %w", err)
	}
	enemies, err := dataFS.ReadFile("data/enemies.json")
	if err != nil {
		return nil, fmt.Errorf("failed to read embedded enemy definitions: %w", err)
	}
	return ParseLibrary(towers, enemies)
}

// LoadLibrary reads towers.json and enemies.json from dir.
func LoadLibrary(dir string) (*Library, error) {
	towers, err := os.ReadFile(filepath.Join(dir, "towers.json"))
	if err != nil {
		return nil, fmt.Errorf("failed to read tower definitions file: %w", err)
	}
	enemies, err := os.ReadFile(filepath.Join(dir, "enemies.json"))
	if err != nil {
		return nil, fmt.Errorf("failed to read enemy definitions file: %w", err)
	}
	return ParseLibrary(towers, enemies)
}

// ParseLibrary decodes both tables and checks that every variant is defined.
func ParseLibrary(towerData, enemyData []byte) (*Library, error) {
	var towerDefs []TowerDefinition
	if err := json.Unmarshal(towerData, &towerDefs); err != nil {
		return nil, fmt.Errorf("failed to unmarshal tower definitions: %w", err)
	}
	var enemyDefs []EnemyDefinition
	if err := json.Unmarshal(enemyData, &enemyDefs); err != nil {
		return nil, fmt.Errorf("failed to unmarshal enemy definitions: %w", err)
	}

	lib := &Library{
		Towers:  make(map[TowerKind]TowerDefinition, len(towerDefs)),
		Enemies: make(map[EnemyKind]EnemyDefinition, len(enemyDefs)),
	}
	for _, def := range towerDefs {
		if err := validateTower(def); err != nil {
			return nil, err
		}
		lib.Towers[def.ID] = def
	}
	for _, def := range enemyDefs {
		lib.Enemies[def.ID] = def
	}

	for _, kind := range TowerKinds {
		if _, ok := lib.Towers[kind]; !ok {
			return nil, fmt.Errorf("%w: %s", ErrMissingTower, kind)
		}
	}
	for _, kind := range EnemyKinds {
		if _, ok := lib.Enemies[kind]; !ok {
			return nil, fmt.Errorf("%w: %s", ErrMissingEnemy, kind)
		}
	}
	return lib, nil
}

func validateTower(def TowerDefinition) error {
	if def.Cost <= 0 || def.UpgradeCost <= 0 {
		return fmt.Errorf("%w: %s: costs must be positive", ErrBadTowerDef, def.ID)
	}
	if def.UpgradeCostMultiplier < 1 {
		return fmt.Errorf("%w: %s: upgrade cost multiplier below 1", ErrBadTowerDef, def.ID)
	}
	if def.ID != TowerSupport && def.FireRate <= 0 {
		return fmt.Errorf("%w: %s: fire rate must be positive", ErrBadTowerDef, def.ID)
	}
	return nil
}
