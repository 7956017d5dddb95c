package composer

import "moodgen/mood"

// Harmonize offsets each melody note by table[i mod 4]. A candidate outside
// the register set falls back to the original note, so the result always has
// the same length as the input.
func Harmonize(melody []int, table mood.OffsetTable, set *RegisterSet) []int {
	out := make([]int, len(melody))
	for i, note := range melody {
		candidate := note + table.At(i)
		if set.Contains(candidate) {
			out[i] = candidate
		} else {
			out[i] = note
		}
	}
	return out
}

// DoubleOctave transposes each note by shift semitones. The transposition is
// kept only while it stays within bound (a floor for downward shifts, a
// ceiling for upward ones) and inside the register set.
func DoubleOctave(melody []int, shift, bound int, set *RegisterSet) []int {
	out := make([]int, len(melody))
	for i, note := range melody {
		candidate := note + shift
		inBound := candidate >= bound
		if shift > 0 {
			inBound = candidate <= bound
		}
		if inBound && set.Contains(candidate) {
			out[i] = candidate
		} else {
			out[i] = note
		}
	}
	return out
}
