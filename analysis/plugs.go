package analysis

import (
	"github.com/bgallie/enigma/analysis/fitness"
	"github.com/bgallie/enigma/cryptors"
	"github.com/bgallie/enigma/cryptors/enigma"
)

// FindPlugs adds up to maxPlugs plugboard pairs to key by hill climbing.
// Each round tries every pair of letters not yet plugged and commits the
// single pair that improves the score most.  When no pair improves it the
// key is final: the next round would try the same pairs against the same
// key.  Plugs already on key's plugboard are kept.  The score of the result
// is never lower than the score of key.
func (a *Analyzer) FindPlugs(key enigma.Key, maxPlugs int, ct []byte, f fitness.Function) ScoredKey {
	cur := a.Rescore(key, ct, f)
	if !a.checkText("plug search", ct) {
		return cur
	}
	if err := key.Validate(); err != nil {
		a.log.Error("plug search not run", "key", key, "err", err)
		return cur
	}

	units := make([]best, cryptors.AlphabetSize)
	for round := 0; round < maxPlugs && cur.Plugboard.Free() >= 2; round++ {
		base := cur.Key
		for i := range units {
			units[i] = best{}
		}
		a.run(len(units), func(first int) {
			u := &units[first]
			var s scorer
			if base.Plugboard.IsPlugged(byte(first)) {
				return
			}
			for second := first + 1; second < cryptors.AlphabetSize; second++ {
				pb, err := base.Plugboard.With(byte(first), byte(second))
				if err != nil {
					continue
				}
				k := base
				k.Plugboard = pb
				u.offer(k, s.score(k, ct, f))
			}
		})

		b := best{ScoredKey: cur, found: true}
		b.reduce(units)
		if b.Key == cur.Key {
			a.log.Debug("no plug improves the score", "round", round+1, "score", cur.Score)
			break
		}
		cur = b.ScoredKey
		a.log.Debug("plug added", "round", round+1, "plugs", cur.Plugboard.String(), "score", cur.Score)
	}
	a.log.Info("plug search done", "key", cur.Key, "score", cur.Score)
	return cur
}
