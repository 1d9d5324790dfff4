package enigma

// schedule holds the rotor offsets in force for each letter of a batch.
// The stepping of the right and middle rotors depends only on their
// starting offsets and the batch length, so it can be worked out before any
// letter is enciphered.
type schedule struct {
	right    []byte
	middle   []byte
	leftTurn []bool
}

func (s *schedule) grow(n int) {
	if cap(s.right) < n {
		s.right = make([]byte, n)
		s.middle = make([]byte, n)
		s.leftTurn = make([]bool, n)
	}
	s.right = s.right[:n]
	s.middle = s.middle[:n]
	s.leftTurn = s.leftTurn[:n]
}

// plan fills m.sched for n letters starting from the current rotor state and
// returns the right and middle offsets the machine ends in.
func (m *Machine) plan(n int) (int, int) {
	middle, right := &m.rotors[Middle], &m.rotors[Right]
	m.sched.grow(n)
	rOff, mOff := right.Offset(), middle.Offset()
	for t := 0; t < n; t++ {
		turn := false
		if middle.NotchAt(mOff) {
			mOff = next(mOff)
			turn = true
		} else if right.NotchAt(rOff) {
			mOff = next(mOff)
		}
		rOff = next(rOff)
		m.sched.right[t] = byte(rOff)
		m.sched.middle[t] = byte(mOff)
		m.sched.leftTurn[t] = turn
	}
	return rOff, mOff
}

// EncryptBatch produces exactly what Encrypt produces, and leaves the machine
// in the same state, but runs each rotor over the whole batch in turn from a
// precomputed schedule instead of stepping letter by letter.
func (m *Machine) EncryptBatch(dst, src []byte) {
	n := len(src)
	dst = dst[:n]
	rEnd, mEnd := m.plan(n)
	left, middle, right := &m.rotors[Left], &m.rotors[Middle], &m.rotors[Right]

	copy(dst, src)
	m.plugboard.Apply(dst)
	for t, c := range dst {
		dst[t] = right.ForwardAt(c, int(m.sched.right[t]))
	}
	for t, c := range dst {
		dst[t] = middle.ForwardAt(c, int(m.sched.middle[t]))
	}
	for t, c := range dst {
		if m.sched.leftTurn[t] {
			left.Turnover()
			m.updateCombined()
		}
		dst[t] = m.combined[c]
	}
	for t, c := range dst {
		dst[t] = middle.BackwardAt(c, int(m.sched.middle[t]))
	}
	for t, c := range dst {
		dst[t] = right.BackwardAt(c, int(m.sched.right[t]))
	}
	m.plugboard.Apply(dst)

	right.SetOffset(rEnd)
	middle.SetOffset(mEnd)
}

func next(offset int) int {
	if offset++; offset >= 26 {
		return 0
	}
	return offset
}
