// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"cmp"
	"context"
	"slices"
	"sync"
	"time"

	"github.com/MKhiriev/go-dabria/internal/logger"
	"github.com/MKhiriev/go-dabria/models"
)

// DefaultAutosaveDelay is used when the configured delay is not positive.
const DefaultAutosaveDelay = 500 * time.Millisecond

const resultsBuffer = 64

// SaveResult reports the outcome of one autosave. Content is the text that
// was submitted, so a caller can keep showing it when Err is set.
type SaveResult struct {
	UserID  string
	Page    int
	Content string
	Entry   models.Entry
	Err     error
}

type pendingSave struct {
	userID  string
	page    int
	content string
	due     time.Time
	seq     uint64
}

// Autosaver debounces page edits and writes them through a ContentSaver.
//
// Each page holds at most one pending save: a new Submit replaces the text
// and restarts the delay. Saves run one at a time, oldest submission first,
// so an edit can never be overwritten by an earlier one.
type Autosaver struct {
	saver  ContentSaver
	delay  time.Duration
	logger *logger.Logger
	now    func() time.Time

	mu      sync.Mutex
	pending map[string]pendingSave
	seq     uint64

	// saveMu keeps the worker and Flush from saving at the same time.
	saveMu sync.Mutex

	wake    chan struct{}
	results chan SaveResult

	runMu  sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewAutosaver creates an Autosaver that is idle until Start is called.
// Submitted pages are still written by Flush and Stop.
func NewAutosaver(saver ContentSaver, delay time.Duration, log *logger.Logger) *Autosaver {
	if delay <= 0 {
		delay = DefaultAutosaveDelay
	}
	if log == nil {
		log = logger.Nop()
	}

	return &Autosaver{
		saver:   saver,
		delay:   delay,
		logger:  log,
		now:     time.Now,
		pending: make(map[string]pendingSave),
		wake:    make(chan struct{}, 1),
		results: make(chan SaveResult, resultsBuffer),
	}
}

// Start implements Worker. It stops any previously running loop, then
// launches a goroutine that writes each page once its delay has passed.
func (a *Autosaver) Start(ctx context.Context) {
	a.halt()

	a.runMu.Lock()
	loopCtx, cancel := context.WithCancel(ctx)
	a.cancel = cancel
	a.wg.Add(1)
	a.runMu.Unlock()

	go a.run(loopCtx)
}

// Stop implements Worker. It stops the loop, waits for an in-flight save and
// then writes everything still pending. Safe to call when not running.
func (a *Autosaver) Stop() {
	a.halt()
	a.Flush(context.Background())
}

// Submit schedules content to be written on page, replacing any pending text
// for the same page.
func (a *Autosaver) Submit(userID string, page int, content string) {
	a.mu.Lock()
	a.seq++
	a.pending[models.UserIDAndPage(userID, page)] = pendingSave{
		userID:  userID,
		page:    page,
		content: content,
		due:     a.now().Add(a.delay),
		seq:     a.seq,
	}
	a.mu.Unlock()

	select {
	case a.wake <- struct{}{}:
	default:
	}
}

// Flush writes all pending pages now, without waiting for their delay, and
// returns the outcome of every write it made. The results are also delivered
// on Results. Pages not yet written when ctx ends stay pending.
func (a *Autosaver) Flush(ctx context.Context) []SaveResult {
	return a.saveDue(ctx, time.Time{})
}

// Pending returns the number of pages waiting to be written.
func (a *Autosaver) Pending() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return len(a.pending)
}

// Results delivers one SaveResult per write attempt. Results that nobody
// receives are dropped once the buffer is full.
func (a *Autosaver) Results() <-chan SaveResult {
	return a.results
}

func (a *Autosaver) halt() {
	a.runMu.Lock()
	cancel := a.cancel
	a.cancel = nil
	a.runMu.Unlock()

	if cancel != nil {
		cancel()
	}
	a.wg.Wait()
}

func (a *Autosaver) run(ctx context.Context) {
	defer a.wg.Done()

	timer := time.NewTimer(a.delay)
	timer.Stop()
	defer timer.Stop()

	for {
		var fire <-chan time.Time
		if due, ok := a.nextDue(); ok {
			timer.Reset(max(due.Sub(a.now()), 0))
			fire = timer.C
		}

		select {
		case <-ctx.Done():
			return
		case <-a.wake:
		case <-fire:
			// an in-flight save finishes even if Stop is called meanwhile
			a.saveDue(context.WithoutCancel(ctx), a.now())
		}
		timer.Stop()
	}
}

func (a *Autosaver) nextDue() (time.Time, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()

	var earliest time.Time
	for _, p := range a.pending {
		if earliest.IsZero() || p.due.Before(earliest) {
			earliest = p.due
		}
	}
	return earliest, !earliest.IsZero()
}

// saveDue writes the pending pages due at or before now, or all of them when
// now is zero.
func (a *Autosaver) saveDue(ctx context.Context, now time.Time) []SaveResult {
	a.saveMu.Lock()
	defer a.saveMu.Unlock()

	var results []SaveResult
	for _, p := range a.takeDue(now) {
		if ctx.Err() != nil {
			a.restore(p)
			continue
		}

		entry, err := a.saver.SaveContent(ctx, p.userID, p.page, p.content)
		if err != nil {
			a.logger.Warn().Err(err).
				Str("func", "Autosaver.saveDue").
				Str("user_id", p.userID).
				Int("page", p.page).
				Msg("autosave failed")
		}

		result := SaveResult{
			UserID:  p.userID,
			Page:    p.page,
			Content: p.content,
			Entry:   entry,
			Err:     err,
		}
		results = append(results, result)
		a.publish(result)
	}
	return results
}

func (a *Autosaver) takeDue(now time.Time) []pendingSave {
	a.mu.Lock()
	defer a.mu.Unlock()

	var due []pendingSave
	for key, p := range a.pending {
		if now.IsZero() || !p.due.After(now) {
			due = append(due, p)
			delete(a.pending, key)
		}
	}
	slices.SortFunc(due, func(x, y pendingSave) int {
		return cmp.Compare(x.seq, y.seq)
	})
	return due
}

// restore puts p back unless a newer edit of the page arrived meanwhile.
func (a *Autosaver) restore(p pendingSave) {
	a.mu.Lock()
	defer a.mu.Unlock()

	key := models.UserIDAndPage(p.userID, p.page)
	if _, newer := a.pending[key]; !newer {
		a.pending[key] = p
	}
}

func (a *Autosaver) publish(r SaveResult) {
	select {
	case a.results <- r:
	default:
		a.logger.Warn().
			Str("func", "Autosaver.publish").
			Str("user_id", r.UserID).
			Int("page", r.Page).
			Msg("save result dropped, nobody is reading results")
	}
}
