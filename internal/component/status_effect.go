// internal/component/status_effect.go
package component

// SlowStatus indicates that an enemy is slowed. Duration is counted in ticks.
type SlowStatus struct {
	Active         bool
	TicksRemaining int
}

// ApplySlow halves speed on first application and refreshes the duration on every one.
// Re-applying extends the slow, it never stacks.
func (e *Enemy) ApplySlow(durationTicks int) {
	if !e.Slow.Active {
		e.Slow.Active = true
		e.Speed = e.OriginalSpeed / 2
	}
	e.Slow.TicksRemaining = durationTicks
}

func (s *SlowStatus) tick(e *Enemy) {
	if !s.Active {
		return
	}
	s.TicksRemaining--
	if s.TicksRemaining <= 0 {
		s.Active = false
		e.Speed = e.OriginalSpeed
	}
}
