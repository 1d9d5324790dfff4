package analysis

import (
	"math"

	"github.com/bgallie/enigma/analysis/fitness"
	"github.com/bgallie/enigma/cryptors"
	"github.com/bgallie/enigma/cryptors/enigma"
	"github.com/bgallie/enigma/cryptors/plugboard"
	"github.com/bgallie/enigma/cryptors/reflector"
	"github.com/bgallie/enigma/cryptors/rotor"
)

// Common rotor pool sizes: the three rotors of the first service machines,
// the five of the army and air force, and all eight of the navy.
const (
	PoolThree = 3
	PoolFive  = 5
	PoolEight = 8
)

// Triples lists every ordered choice of three different rotors from ids
// 1 to poolSize, in lexicographic order.  Pools larger than the catalog are
// cut to it.
func Triples(poolSize int) [][3]int {
	if poolSize > rotor.MaxID {
		poolSize = rotor.MaxID
	}
	var triples [][3]int
	for l := 1; l <= poolSize; l++ {
		for m := 1; m <= poolSize; m++ {
			if m == l {
				continue
			}
			for r := 1; r <= poolSize; r++ {
				if r == l || r == m {
					continue
				}
				triples = append(triples, [3]int{l, m, r})
			}
		}
	}
	return triples
}

// FindRotorConfiguration tries every rotor order from the pool with every
// starting position, ring settings all at 01 and the plugboard base.  It
// returns the best key found for each rotor order, best first.  Within a
// rotor order the right rotor's position is tried outermost and the left
// rotor's innermost, and the first of equally scoring keys is kept.  A pool
// of fewer than three rotors gives an empty list.
func (a *Analyzer) FindRotorConfiguration(ct []byte, poolSize int, base plugboard.Plugboard, f fitness.Function) []ScoredKey {
	triples := Triples(poolSize)
	if _, err := reflector.Lookup(a.reflector); err != nil {
		a.log.Error("rotor search not run", "err", err)
		return []ScoredKey{}
	}
	if !a.checkText("rotor search", ct) {
		return []ScoredKey{}
	}
	a.log.Info("searching rotor orders", "orders", len(triples), "letters", len(ct), "workers", a.Workers())

	units := make([]best, len(triples))
	a.run(len(triples), func(i int) {
		s, err := enigma.NewSweeper(enigma.Key{Rotors: triples[i], Plugboard: base, Reflector: a.reflector})
		if err != nil {
			return
		}
		u := &units[i]
		key := s.Key()
		for right := 0; right < cryptors.AlphabetSize; right++ {
			s.Sweep(ct, right, func(pos [3]int, plain []byte) {
				score := f.Score(plain)
				if !u.found || score > u.Score {
					key.Positions = pos
					u.offer(key, score)
				}
			})
		}
		a.log.Debug("rotor order searched", "key", u.Key, "score", u.Score)
	})

	ranked := make([]ScoredKey, 0, len(units))
	for _, u := range units {
		if u.found {
			ranked = append(ranked, u.ScoredKey)
		}
	}
	SortScored(ranked)
	if len(ranked) > 0 {
		a.log.Info("rotor search done", "best", ranked[0].Key, "score", ranked[0].Score)
	}
	return ranked
}

// Rescore returns key with the score f gives its decryption of ct.  A key
// that cannot be loaded, or ciphertext that is not all letter indices,
// scores minus infinity.
func (a *Analyzer) Rescore(key enigma.Key, ct []byte, f fitness.Function) ScoredKey {
	if cryptors.CheckIndices(ct) != nil {
		return ScoredKey{Key: key, Score: math.Inf(-1)}
	}
	var s scorer
	return ScoredKey{Key: key, Score: s.score(key, ct, f)}
}

// FindStartingPositions keeps key's rotors, rings and plugboard and tries
// all 26x26x26 starting positions.  It returns the best key found, or key
// itself if nothing scores strictly better.
func (a *Analyzer) FindStartingPositions(key enigma.Key, ct []byte, f fitness.Function) ScoredKey {
	b := best{ScoredKey: a.Rescore(key, ct, f), found: true}
	if !a.checkText("position search", ct) {
		return b.ScoredKey
	}
	if _, err := enigma.NewSweeper(key); err != nil {
		a.log.Error("position search not run", "key", key, "err", err)
		return b.ScoredKey
	}

	units := make([]best, cryptors.AlphabetSize)
	a.run(len(units), func(right int) {
		s, _ := enigma.NewSweeper(key)
		u := &units[right]
		k := key
		s.Sweep(ct, right, func(pos [3]int, plain []byte) {
			score := f.Score(plain)
			if !u.found || score > u.Score {
				k.Positions = pos
				u.offer(k, score)
			}
		})
	})
	b.reduce(units)
	a.log.Info("position search done", "key", b.Key, "score", b.Score)
	return b.ScoredKey
}

// FindRingSettings searches the right and middle ring settings jointly.
// Away from a notch only the difference between a rotor's position and its
// ring setting matters, so for each right ring setting the right rotor's
// offset is held where key has it while the middle ring setting and the
// middle and left positions are searched exhaustively.  The left ring
// setting is left alone: the left rotor's notch is never used, so its ring
// setting and position together only select an offset, and every offset is
// tried through the position.  The result is the best key found, or key
// itself if nothing scores strictly better.
func (a *Analyzer) FindRingSettings(key enigma.Key, ct []byte, f fitness.Function) ScoredKey {
	b := best{ScoredKey: a.Rescore(key, ct, f), found: true}
	if !a.checkText("ring search", ct) {
		return b.ScoredKey
	}
	if err := key.Validate(); err != nil {
		a.log.Error("ring search not run", "key", key, "err", err)
		return b.ScoredKey
	}
	rightOffset := offsetOf(key.Positions[enigma.Right], key.Rings[enigma.Right])

	units := make([]best, cryptors.AlphabetSize)
	a.run(len(units), func(rightRing int) {
		u := &units[rightRing]
		k := key
		k.Rings[enigma.Right] = rightRing
		rightPos := positionOf(rightOffset, rightRing)
		k.Positions[enigma.Right] = rightPos
		for middleRing := 0; middleRing < cryptors.AlphabetSize; middleRing++ {
			k.Rings[enigma.Middle] = middleRing
			s, err := enigma.NewSweeper(k)
			if err != nil {
				return
			}
			s.Sweep(ct, rightPos, func(pos [3]int, plain []byte) {
				score := f.Score(plain)
				if !u.found || score > u.Score {
					k.Positions = pos
					u.offer(k, score)
				}
			})
		}
		a.log.Debug("right ring searched", "ring", rightRing+1, "score", u.Score)
	})
	b.reduce(units)
	a.log.Info("ring search done", "key", b.Key, "score", b.Score)
	return b.ScoredKey
}

// FindRingSettingsSequential is a much faster approximation of
// FindRingSettings.  It tries each right ring setting with the right
// rotor's offset held, keeps the best, and then does the same for the
// middle rotor.  Because the two rotors are set one at a time it can miss
// the best pair when their notches interact.
func (a *Analyzer) FindRingSettingsSequential(key enigma.Key, ct []byte, f fitness.Function) ScoredKey {
	b := best{ScoredKey: a.Rescore(key, ct, f), found: true}
	if !a.checkText("sequential ring search", ct) {
		return b.ScoredKey
	}
	if err := key.Validate(); err != nil {
		a.log.Error("ring search not run", "key", key, "err", err)
		return b.ScoredKey
	}
	var s scorer
	for _, slot := range []int{enigma.Right, enigma.Middle} {
		k := b.Key
		offset := offsetOf(k.Positions[slot], k.Rings[slot])
		for ring := 0; ring < cryptors.AlphabetSize; ring++ {
			k.Rings[slot] = ring
			k.Positions[slot] = positionOf(offset, ring)
			b.offer(k, s.score(k, ct, f))
		}
	}
	a.log.Info("sequential ring search done", "key", b.Key, "score", b.Score)
	return b.ScoredKey
}

func offsetOf(position, ring int) int {
	return (position - ring + cryptors.AlphabetSize) % cryptors.AlphabetSize
}

func positionOf(offset, ring int) int {
	return (offset + ring) % cryptors.AlphabetSize
}

// Best returns the first key with the highest score, or a key scoring minus
// infinity for an empty list.
func Best(keys []ScoredKey) ScoredKey {
	b := best{ScoredKey: ScoredKey{Score: math.Inf(-1)}}
	for _, k := range keys {
		b.offer(k.Key, k.Score)
	}
	return b.ScoredKey
}
