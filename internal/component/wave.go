// internal/component/wave.go
package component

// Wave — состояние текущей волны.
type Wave struct {
	Number     int // last wave started, 0 before the first
	InProgress bool
	Spawned    int
}
