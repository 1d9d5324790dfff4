package analysis

import (
	"github.com/bgallie/enigma/analysis/fitness"
	"github.com/bgallie/enigma/cryptors"
	"github.com/bgallie/enigma/cryptors/enigma"
	"github.com/bgallie/enigma/cryptors/plugboard"
)

// Pipeline describes a full attack: which scorer drives each stage and how
// far each stage goes.
type Pipeline struct {
	// PoolSize is the number of rotors the key may have been drawn from.
	PoolSize int
	// Top is how many of the best rotor orders go on to the ring search.
	Top int
	// MaxPlugs bounds the plug search.  Zero skips it.
	MaxPlugs int
	// Plugboard holds plugs known in advance; it is used from the start.
	Plugboard plugboard.Plugboard
	// SequentialRings selects FindRingSettingsSequential for the ring stage.
	SequentialRings bool
	// RefineRings repeats the ring search once the plug search has added
	// plugs.  Unknown plugs garble the text the first ring search scores,
	// which can move the middle rotor's turnover by a letter or two.
	RefineRings bool

	RotorFitness fitness.Function
	RingFitness  fitness.Function
	PlugFitness  fitness.Function
}

// Result holds what each stage of a Pipeline found.
type Result struct {
	// Rotors is every rotor order ranked by the rotor search.
	Rotors []ScoredKey
	// Rings is the ring search result for each of the top rotor orders,
	// best first.
	Rings []ScoredKey
	// Key is the final key after the plug search.
	Key ScoredKey
	// Refined reports whether the second ring search changed Key.
	Refined bool
	// Plaintext is ct decrypted under Key.
	Plaintext []byte
}

// Run carries ct through the rotor, ring and plug searches in turn.  With
// no rotor orders to try, or ciphertext that is not all letter indices,
// the result holds a key with empty rotors and no plaintext.
func (a *Analyzer) Run(ct []byte, p Pipeline) Result {
	var res Result
	if !a.checkText("analysis", ct) {
		return res
	}
	res.Rotors = a.FindRotorConfiguration(ct, p.PoolSize, p.Plugboard, p.RotorFitness)
	if len(res.Rotors) == 0 {
		return res
	}

	top := p.Top
	if top < 1 {
		top = 1
	}
	if top > len(res.Rotors) {
		top = len(res.Rotors)
	}
	for _, cand := range res.Rotors[:top] {
		var refined ScoredKey
		if p.SequentialRings {
			refined = a.FindRingSettingsSequential(cand.Key, ct, p.RingFitness)
		} else {
			refined = a.FindRingSettings(cand.Key, ct, p.RingFitness)
		}
		res.Rings = append(res.Rings, refined)
	}
	SortScored(res.Rings)

	res.Key = res.Rings[0]
	if p.MaxPlugs > 0 {
		res.Key = a.FindPlugs(res.Key.Key, p.MaxPlugs, ct, p.PlugFitness)
		if p.RefineRings && res.Key.Plugboard != res.Rings[0].Plugboard {
			res.Key, res.Refined = a.refineRings(res.Key, ct, p)
		}
	}

	var s scorer
	if plain, ok := s.decrypt(res.Key.Key, ct); ok {
		res.Plaintext = append([]byte(nil), plain...)
	}
	a.log.Info("analysis done", "key", res.Key.Key, "plaintext", cryptors.Letters(res.Plaintext))
	return res
}

// refineRings runs the ring search again from key, whose plugboard is now
// filled in.  The result replaces key only if PlugFitness scores it strictly
// higher, so the final score never drops.
func (a *Analyzer) refineRings(key ScoredKey, ct []byte, p Pipeline) (ScoredKey, bool) {
	var found ScoredKey
	if p.SequentialRings {
		found = a.FindRingSettingsSequential(key.Key, ct, p.RingFitness)
	} else {
		found = a.FindRingSettings(key.Key, ct, p.RingFitness)
	}
	cand := a.Rescore(found.Key, ct, p.PlugFitness)
	if cand.Score <= key.Score {
		a.log.Debug("ring settings kept", "key", key.Key, "score", key.Score)
		return key, false
	}
	a.log.Info("ring settings refined", "key", cand.Key, "score", cand.Score)
	return cand, true
}

// Decrypt returns ct decrypted under key.  An index in ct outside 0-25 is
// reported as cryptors.ErrInvalidLetter.
func Decrypt(key enigma.Key, ct []byte) ([]byte, error) {
	if err := cryptors.CheckIndices(ct); err != nil {
		return nil, err
	}
	m, err := enigma.New(key)
	if err != nil {
		return nil, err
	}
	plain := make([]byte, len(ct))
	m.EncryptBatch(plain, ct)
	return plain, nil
}
