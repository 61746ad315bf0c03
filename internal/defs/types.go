// internal/defs/types.go
package defs

// TowerKind is the closed set of tower variants.
type TowerKind string

const (
	TowerCannon  TowerKind = "CANNON"
	TowerFrost   TowerKind = "FROST"
	TowerRocket  TowerKind = "ROCKET"
	TowerLaser   TowerKind = "LASER"
	TowerSupport TowerKind = "SUPPORT"
)

// TowerKinds lists every tower variant in build-menu order.
var TowerKinds = []TowerKind{TowerCannon, TowerFrost, TowerRocket, TowerLaser, TowerSupport}

// EnemyKind is the closed set of enemy variants.
type EnemyKind string

const (
	EnemyBasic  EnemyKind = "BASIC"
	EnemyRunner EnemyKind = "RUNNER"
	EnemyTank   EnemyKind = "TANK"
	EnemyFlying EnemyKind = "FLYING"
	EnemyHealer EnemyKind = "HEALER"
)

// EnemyKinds lists every enemy variant.
var EnemyKinds = []EnemyKind{EnemyBasic, EnemyRunner, EnemyTank, EnemyFlying, EnemyHealer}
