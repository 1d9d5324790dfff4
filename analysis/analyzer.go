// Package analysis recovers Enigma keys from ciphertext alone.  The search
// is split into stages, each solving one part of the key while holding the
// rest fixed: rotor order and starting positions, ring settings, and the
// plugboard.  Every stage is driven by a fitness.Function supplied by the
// caller.
//
// The stages never fail on valid input.  In the worst case they return the
// key they were given with its score.  Ciphertext must be letter indices
// 0-25; anything else is logged and the stage returns the key it was given
// scoring minus infinity.
package analysis

import (
	"fmt"
	"io"
	"log/slog"
	"math"
	"runtime"
	"sort"
	"sync"

	"github.com/bgallie/enigma/analysis/fitness"
	"github.com/bgallie/enigma/cryptors"
	"github.com/bgallie/enigma/cryptors/enigma"
)

// ScoredKey is a candidate key together with the score its decryption got.
type ScoredKey struct {
	enigma.Key
	Score float64
}

func (s ScoredKey) String() string {
	return fmt.Sprintf("%s (%.6g)", s.Key, s.Score)
}

// SortScored orders keys best first.  Keys with equal scores keep their
// relative order.
func SortScored(keys []ScoredKey) {
	sort.SliceStable(keys, func(i, j int) bool {
		return keys[i].Score > keys[j].Score
	})
}

// Analyzer runs the search stages.  Its zero value is not usable; create
// one with New.  An Analyzer holds no state between calls and may be used
// from several goroutines.
type Analyzer struct {
	workers   int
	reflector byte
	log       *slog.Logger
}

// Option configures an Analyzer.
type Option func(*Analyzer)

// WithWorkers sets how many goroutines share a stage.  One or fewer runs
// every stage on the calling goroutine.  The results do not depend on it.
func WithWorkers(n int) Option {
	return func(a *Analyzer) {
		a.workers = n
	}
}

// WithReflector sets the reflector assumed by FindRotorConfiguration.
func WithReflector(name byte) Option {
	return func(a *Analyzer) {
		a.reflector = name
	}
}

// WithLogger sets the logger that receives stage summaries (Info) and
// per unit progress (Debug).
func WithLogger(log *slog.Logger) Option {
	return func(a *Analyzer) {
		if log != nil {
			a.log = log
		}
	}
}

// New returns an Analyzer using every CPU, reflector B and no logging,
// changed by opts.
func New(opts ...Option) *Analyzer {
	a := &Analyzer{
		workers:   runtime.NumCPU(),
		reflector: enigma.DefaultReflector,
		log:       slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Workers returns the number of goroutines a stage is spread over.
func (a *Analyzer) Workers() int {
	if a.workers < 1 {
		return 1
	}
	return a.workers
}

// checkText reports whether ct holds only letter indices, logging the
// error if not.
func (a *Analyzer) checkText(stage string, ct []byte) bool {
	if err := cryptors.CheckIndices(ct); err != nil {
		a.log.Error(stage+" not run", "err", err)
		return false
	}
	return true
}

// run calls unit for every index in [0, n).  Units are independent and each
// writes only its own result slot, so they can run in any order; callers
// reduce the slots in index order afterwards.
func (a *Analyzer) run(n int, unit func(i int)) {
	workers := a.Workers()
	if workers > n {
		workers = n
	}
	if workers <= 1 {
		for i := 0; i < n; i++ {
			unit(i)
		}
		return
	}

	jobs := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				unit(i)
			}
		}()
	}
	for i := 0; i < n; i++ {
		jobs <- i
	}
	close(jobs)
	wg.Wait()
}

// best keeps the first of the highest scoring keys offered to it.
type best struct {
	ScoredKey
	found bool
}

func (b *best) offer(key enigma.Key, score float64) {
	if !b.found || score > b.Score {
		b.ScoredKey = ScoredKey{Key: key, Score: score}
		b.found = true
	}
}

// reduce folds per unit results into b in unit order.  Every unit result
// must beat b strictly, so the earliest unit wins a tie, exactly as a
// sequential scan would.
func (b *best) reduce(units []best) {
	for _, u := range units {
		if u.found {
			b.offer(u.Key, u.Score)
		}
	}
}

// scorer decrypts ciphertext under one key after another, reusing its
// machine and buffer.  Each goroutine needs its own.
type scorer struct {
	machine enigma.Machine
	buf     []byte
}

// decrypt returns the decryption of ct under key, or false if key cannot
// be loaded.  The result is overwritten by the next call.
func (s *scorer) decrypt(key enigma.Key, ct []byte) ([]byte, bool) {
	if err := s.machine.Load(key); err != nil {
		return nil, false
	}
	if cap(s.buf) < len(ct) {
		s.buf = make([]byte, len(ct))
	}
	s.buf = s.buf[:len(ct)]
	s.machine.EncryptBatch(s.buf, ct)
	return s.buf, true
}

func (s *scorer) score(key enigma.Key, ct []byte, f fitness.Function) float64 {
	plain, ok := s.decrypt(key, ct)
	if !ok {
		return math.Inf(-1)
	}
	return f.Score(plain)
}
