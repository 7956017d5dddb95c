package composer

import "moodgen/mood"

// Melody is the principal line and the register each pitch was drawn from
type Melody struct {
	Pitches   []int
	Registers []RegisterID
}

func (m *Melody) add(pitch int, reg RegisterID) {
	m.Pitches = append(m.Pitches, pitch)
	m.Registers = append(m.Registers, reg)
}

// Len returns the number of notes
func (m Melody) Len() int {
	return len(m.Pitches)
}

// truncate cuts any overshoot at the end
func (m Melody) truncate(n int) Melody {
	if len(m.Pitches) > n {
		m.Pitches = m.Pitches[:n]
		m.Registers = m.Registers[:n]
	}
	return m
}

// GenerateMelody walks the registers and scale tones of set, producing
// exactly length pitches.
func GenerateMelody(rule mood.RegisterRule, set *RegisterSet, length int, rng Rand) Melody {
	if length <= 0 {
		return Melody{Pitches: []int{}, Registers: []RegisterID{}}
	}
	var m Melody
	switch rule.Mode {
	case mood.RegisterProbabilistic:
		m = probabilisticMelody(rule, set, length, rng)
	default:
		m = segmentedMelody(rule, set, length, rng)
	}
	return m.truncate(length)
}

// segmentedMelody changes register every SegmentSize notes and favors small
// intervals inside a segment.
func segmentedMelody(rule mood.RegisterRule, set *RegisterSet, length int, rng Rand) Melody {
	var m Melody
	size := max(rule.SegmentSize, 1)
	segments := (length + size - 1) / size

	prev := choice(rng, set.Bands())
	for seg := 0; seg < segments; seg++ {
		current := choice(rng, others(prev))
		prev = current
		band := set.Band(current)

		prevNote, started := 0, false
		for i := 0; i < size && m.Len() < length; i++ {
			var note int
			if !started {
				note = choice(rng, band.Pitches)
			} else if near := within(band.Pitches, prevNote, rule.MaxInterval); len(near) > 0 {
				note = choice(rng, near)
			} else {
				note = choice(rng, band.Pitches)
			}

			if m.Len() > 0 && chance(rng, rule.PassingTone) {
				step := -1
				if chance(rng, 0.5) {
					step = 1
				}
				if band.Contains(note + step) {
					m.add(note+step, current)
				}
			}

			m.add(note, current)
			prevNote, started = note, true
		}
	}
	return m
}

// probabilisticMelody switches register per note. A high note may be followed
// by a forced low note, which can overshoot length by one.
func probabilisticMelody(rule mood.RegisterRule, set *RegisterSet, length int, rng Rand) Melody {
	var m Melody
	st := newRegisterState(choice(rng, set.Bands()), rule.MaxRun)

	for i := 0; i < length; i++ {
		reg := st.next(rule.StayProbability, rng)
		band := set.Band(reg)
		note := choice(rng, band.Pitches)
		if rule.AvoidRepeats {
			note = avoidTriple(m.Pitches, note, band, rng)
		}

		if rule.ForceLowAfterHigh && st.last() == High && i+1 < length {
			m.add(note, reg)
			st.push(reg)

			low := set.Band(Low)
			next := choice(rng, low.Pitches)
			if rule.AvoidRepeats {
				next = avoidTriple(m.Pitches, next, low, rng)
			}
			m.add(next, Low)
			st.push(Low)
			continue
		}

		m.add(note, reg)
		st.push(reg)
		st.advance(reg)
	}
	return m
}

// within returns the pitches at most interval semitones from ref
func within(pitches []int, ref, interval int) []int {
	var out []int
	for _, p := range pitches {
		d := p - ref
		if d < 0 {
			d = -d
		}
		if d <= interval {
			out = append(out, p)
		}
	}
	return out
}

// avoidTriple replaces note when it would be the third identical pitch in a row
func avoidTriple(melody []int, note int, band *Register, rng Rand) int {
	n := len(melody)
	if n < 2 || melody[n-1] != note || melody[n-2] != note {
		return note
	}
	var options []int
	for _, p := range band.Pitches {
		if p != note {
			options = append(options, p)
		}
	}
	if len(options) == 0 {
		return note
	}
	return choice(rng, options)
}
