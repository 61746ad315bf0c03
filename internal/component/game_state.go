package component

// GameState — фаза игры
type GameState int

const (
	BuildState GameState = iota // between waves, towers can be placed
	WaveState                   // enemies are on the field
	GameOverState
)

func (s GameState) String() string {
	switch s {
	case BuildState:
		return "BUILD"
	case WaveState:
		return "WAVE"
	case GameOverState:
		return "GAME OVER"
	default:
		return "UNKNOWN"
	}
}
