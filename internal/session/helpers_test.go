package session_test

import (
	"context"
	"log/slog"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/HeidiChen0/Archool/internal/catalog"
	"github.com/HeidiChen0/Archool/internal/events"
	"github.com/HeidiChen0/Archool/internal/metrics"
	"github.com/HeidiChen0/Archool/internal/review"
	"github.com/HeidiChen0/Archool/internal/session"
)

var fixedNow = time.Date(2025, 3, 14, 15, 9, 26, 0, time.UTC)

// fakeAssistant records calls. When gated, the n-th TrendSummary call (from 1)
// reports on started and waits for releases[n] before returning texts[n-1].
type fakeAssistant struct {
	mu           sync.Mutex
	summaryCalls int
	names        []string
	comments     [][]string
	texts        []string
	analysis     string
	drafts       []string
	draftTypes   []string

	started  chan int
	releases map[int]chan struct{}
}

func (f *fakeAssistant) TrendSummary(ctx context.Context, comments []string, entityName string) string {
	f.mu.Lock()
	f.summaryCalls++
	n := f.summaryCalls
	f.names = append(f.names, entityName)
	f.comments = append(f.comments, comments)
	release := f.releases[n]
	text := "summary"
	if n <= len(f.texts) {
		text = f.texts[n-1]
	}
	f.mu.Unlock()

	if f.started != nil {
		f.started <- n
	}
	if release != nil {
		<-release
	}
	return text
}

func (f *fakeAssistant) AnalyzeDraft(ctx context.Context, draft string, targetType string) string {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.drafts = append(f.drafts, draft)
	f.draftTypes = append(f.draftTypes, targetType)
	return f.analysis
}

func (f *fakeAssistant) calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.summaryCalls
}

func gatedAssistant(texts ...string) *fakeAssistant {
	releases := make(map[int]chan struct{}, len(texts))
	for i := range texts {
		releases[i+1] = make(chan struct{})
	}
	return &fakeAssistant{
		texts:    texts,
		started:  make(chan int, len(texts)),
		releases: releases,
	}
}

type recordingPublisher struct {
	mu     sync.Mutex
	events []events.Event
	err    error
}

func (p *recordingPublisher) Publish(ctx context.Context, event events.Event) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.err != nil {
		return p.err
	}
	p.events = append(p.events, event)
	return nil
}

func (p *recordingPublisher) Close() error { return nil }

func (p *recordingPublisher) types() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]string, 0, len(p.events))
	for _, e := range p.events {
		out = append(out, e.Type)
	}
	return out
}

type fixture struct {
	catalog   *catalog.Catalog
	reviews   review.Repository
	assistant *fakeAssistant
	publisher *recordingPublisher
	ctrl      *session.Controller
	store     *session.Store
	sess      *session.Session
}

func newFixture(t *testing.T, assistant *fakeAssistant) *fixture {
	t.Helper()

	if assistant == nil {
		assistant = &fakeAssistant{}
	}
	f := &fixture{
		catalog:   catalog.New(),
		reviews:   review.NewMemoryRepository(),
		assistant: assistant,
		publisher: &recordingPublisher{},
		store:     session.NewStore(time.Hour),
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	f.ctrl = session.NewController(f.catalog, f.reviews, f.assistant, f.publisher, metrics.NewMock(), logger)
	f.ctrl.SetClock(func() time.Time { return fixedNow })
	f.sess = f.store.Create()
	return f
}
