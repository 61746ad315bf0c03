// internal/event/types.go
package event

import (
	"go-td-sim/internal/defs"
	"go-td-sim/internal/types"
)

const (
	WaveStarted    EventType = "WaveStarted"
	WaveEnded      EventType = "WaveEnded"      // Волна закончилась
	TowerPlaced    EventType = "TowerPlaced"    // Башня построена
	TowerUpgraded  EventType = "TowerUpgraded"
	TowerRemoved   EventType = "TowerRemoved"   // Башня продана
	EnemyDestroyed EventType = "EnemyDestroyed" // Враг уничтожен
	EnemyLeaked    EventType = "EnemyLeaked"    // Враг дошёл до конца пути
	GameOver       EventType = "GameOver"
)

// AllTypes lists every event type the simulation emits.
var AllTypes = []EventType{
	WaveStarted, WaveEnded, TowerPlaced, TowerUpgraded, TowerRemoved,
	EnemyDestroyed, EnemyLeaked, GameOver,
}

type WaveStartedData struct {
	Wave    int
	Enemies int
}

type WaveEndedData struct {
	Wave  int
	Bonus int
}

type TowerData struct {
	TowerID types.EntityID
	Kind    defs.TowerKind
	Level   int
	Money   int // paid on placement or upgrade, refunded on sale
}

type EnemyData struct {
	EnemyID types.EntityID
	Kind    defs.EnemyKind
	Bounty  int // zero for leaks
}

type GameOverData struct {
	Wave int
}
