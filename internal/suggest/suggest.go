// Package suggest implements the search-as-you-type flow of the actor search page: input is debounced, and a new
// input cancels the previous query, so that stale results never overwrite newer ones.
package suggest

import (
	"context"
	"errors"
	"github.com/clambin/actorsearch/internal/server"
	"log/slog"
	"strings"
	"sync"
	"time"
)

const (
	DefaultDelay     = 500 * time.Millisecond
	DefaultMinLength = 3
)

type Source interface {
	Suggest(ctx context.Context, query string) ([]server.PersonSummary, error)
}

// Result holds the suggestions for a query.
type Result struct {
	Query       string
	Suggestions []server.PersonSummary
}

// Suggester turns a stream of inputs into suggestions. Only the latest input produces a Result.
type Suggester struct {
	Source    Source
	Delay     time.Duration
	MinLength int
	Logger    *slog.Logger

	results chan Result
	once    sync.Once
	lock    sync.Mutex
	seq     uint64
	cancel  context.CancelFunc
}

func New(source Source, logger *slog.Logger) *Suggester {
	return &Suggester{
		Source:    source,
		Delay:     DefaultDelay,
		MinLength: DefaultMinLength,
		Logger:    logger,
	}
}

// Results returns the channel on which results are published. Results are dropped if the receiver can't keep up.
func (s *Suggester) Results() <-chan Result {
	s.once.Do(func() { s.results = make(chan Result, 1) })
	return s.results
}

// Input handles a new value of the input field. Any pending or in-flight query is cancelled. Input shorter than
// MinLength clears the suggestions right away.
func (s *Suggester) Input(text string) {
	query := strings.TrimSpace(text)

	s.lock.Lock()
	defer s.lock.Unlock()
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
	s.seq++

	if len([]rune(query)) < s.MinLength {
		s.publish(Result{Query: query})
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	seq := s.seq
	timer := time.AfterFunc(s.Delay, func() { s.run(ctx, seq, query) })
	s.cancel = func() {
		timer.Stop()
		cancel()
	}
}

// Close cancels any outstanding query.
func (s *Suggester) Close() {
	s.lock.Lock()
	defer s.lock.Unlock()
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
	s.seq++
}

func (s *Suggester) run(ctx context.Context, seq uint64, query string) {
	if !s.current(seq) {
		return
	}
	suggestions, err := s.Source.Suggest(ctx, query)
	if err != nil {
		if !errors.Is(err, context.Canceled) {
			s.Logger.Debug("suggestion failed", "query", query, "err", err)
		}
		return
	}

	s.lock.Lock()
	defer s.lock.Unlock()
	if seq != s.seq {
		// superseded by newer input
		return
	}
	s.publish(Result{Query: query, Suggestions: suggestions})
}

func (s *Suggester) current(seq uint64) bool {
	s.lock.Lock()
	defer s.lock.Unlock()
	return seq == s.seq
}

// publish replaces any unread result, as it's out of date. Caller must hold the lock.
func (s *Suggester) publish(r Result) {
	s.Results()
	select {
	case <-s.results:
	default:
	}
	s.results <- r
}
