package composer

// registerState is the per-note register switching state machine.
//
// Transition table:
//
//	run >= maxRun           -> uniform among the other two registers, run resets
//	otherwise, p(stay)      -> keep current
//	otherwise               -> uniform among all three
//	history ends in maxRun copies of the candidate -> uniform among the other two
type registerState struct {
	current RegisterID
	run     int          // consecutive notes drawn from current
	history []RegisterID // registers of the last maxRun notes, oldest first
	maxRun  int
}

func newRegisterState(start RegisterID, maxRun int) *registerState {
	return &registerState{
		current: start,
		maxRun:  max(maxRun, 1),
	}
}

// next picks the register for the coming note
func (s *registerState) next(stay float64, rng Rand) RegisterID {
	var reg RegisterID
	switch {
	case s.run >= s.maxRun:
		reg = choice(rng, others(s.current))
		s.run = 0
	case chance(rng, stay):
		reg = s.current
	default:
		reg = choice(rng, []RegisterID{Low, Middle, High})
	}

	if s.saturated(reg) {
		reg = choice(rng, others(reg))
	}
	return reg
}

// saturated reports whether another note from reg would exceed maxRun
func (s *registerState) saturated(reg RegisterID) bool {
	if len(s.history) < s.maxRun {
		return false
	}
	for _, r := range s.history {
		if r != reg {
			return false
		}
	}
	return true
}

// push records the register of an emitted note
func (s *registerState) push(reg RegisterID) {
	s.history = append(s.history, reg)
	if len(s.history) > s.maxRun {
		s.history = s.history[len(s.history)-s.maxRun:]
	}
}

// advance updates the run counter after a regular step
func (s *registerState) advance(reg RegisterID) {
	if reg == s.current {
		s.run++
		return
	}
	s.run = 1
	s.current = reg
}

// last returns the register of the previous note, -1 before the first
func (s *registerState) last() RegisterID {
	if len(s.history) == 0 {
		return -1
	}
	return s.history[len(s.history)-1]
}
