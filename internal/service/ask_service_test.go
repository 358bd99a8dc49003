package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"voxdocs/internal/models"
	"voxdocs/internal/repository"
	"voxdocs/pkg/config"

	"go.uber.org/zap"
)

type fakeCache struct {
	mu       sync.Mutex
	entries  map[string]*models.CacheEntry
	inserted chan *models.CacheEntry
	accessed chan string
}

func newFakeCache() *fakeCache {
	return &fakeCache{
		entries:  make(map[string]*models.CacheEntry),
		inserted: make(chan *models.CacheEntry, 4),
		accessed: make(chan string, 4),
	}
}

func (f *fakeCache) Lookup(_ context.Context, key string) (*models.CacheEntry, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if entry, ok := f.entries[key]; ok {
		return entry, nil
	}
	return nil, repository.ErrCacheMiss
}

func (f *fakeCache) Insert(_ context.Context, entry *models.CacheEntry) error {
	f.mu.Lock()
	f.entries[entry.Key] = entry
	f.mu.Unlock()
	f.inserted <- entry
	return nil
}

func (f *fakeCache) RecordAccess(_ context.Context, key string, _ models.ProcessingMetrics, _ bool) error {
	f.accessed <- key
	return nil
}

type fakeQuick struct {
	response string
	matched  bool
	calls    int
}

func (f *fakeQuick) Match(string) (string, bool) {
	f.calls++
	return f.response, f.matched
}

type fakeResponder struct {
	answer string
	err    error
	calls  int
}

func (f *fakeResponder) GenerateGroundedAnswer(context.Context, string) (string, error) {
	f.calls++
	return f.answer, f.err
}

type fakeSynth struct {
	audioURL string
	err      error
	calls    int
}

func (f *fakeSynth) SynthesizeDataURL(context.Context, string) (string, error) {
	f.calls++
	return f.audioURL, f.err
}

func newTestAskService(cache *fakeCache, quick *fakeQuick, responder *fakeResponder, synth *fakeSynth) *AskService {
	return NewAskService(cache, quick, responder, synth, &config.CacheConfig{
		TTL:          30 * 24 * time.Hour,
		WriteTimeout: time.Second,
	}, zap.NewNop())
}

func waitForInsert(t *testing.T, cache *fakeCache) *models.CacheEntry {
	t.Helper()
	select {
	case entry := <-cache.inserted:
		return entry
	case <-time.After(2 * time.Second):
		t.Fatal("Timed out waiting for the async cache write")
		return nil
	}
}

func TestProcessMissThenHit(t *testing.T) {
	cache := newFakeCache()
	quick := &fakeQuick{}
	responder := &fakeResponder{answer: "Bubble.io is a no-code app builder."}
	synth := &fakeSynth{audioURL: "data:audio/mpeg;base64,AAAA"}
	svc := newTestAskService(cache, quick, responder, synth)

	first, err := svc.Process(context.Background(), "What is Bubble.io?")
	if err != nil {
		t.Fatalf("First request failed: %v", err)
	}
	if first.Metrics.CacheHit {
		t.Error("First request should be a cache miss")
	}
	if responder.calls != 1 || synth.calls != 1 {
		t.Errorf("Expected one generation and one synthesis, got %d and %d", responder.calls, synth.calls)
	}

	entry := waitForInsert(t, cache)
	if entry.Response != first.Response || entry.AudioURL != first.AudioURL {
		t.Error("Cached entry does not match the returned response")
	}
	if remaining := time.Until(entry.ExpiresAt); remaining < 29*24*time.Hour {
		t.Errorf("Entry should live about 30 days, has %v", remaining)
	}

	second, err := svc.Process(context.Background(), "What is Bubble.io?")
	if err != nil {
		t.Fatalf("Second request failed: %v", err)
	}
	if !second.Metrics.CacheHit {
		t.Error("Second request should be a cache hit")
	}
	if second.Response != first.Response || second.AudioURL != first.AudioURL {
		t.Error("Cache hit returned a different response")
	}
	if responder.calls != 1 || synth.calls != 1 {
		t.Errorf("Hit must not re-invoke generation or synthesis, got %d and %d", responder.calls, synth.calls)
	}

	select {
	case <-cache.accessed:
	case <-time.After(2 * time.Second):
		t.Fatal("Timed out waiting for the async metrics update")
	}
}

func TestProcessQuickResponseSkipsGeneration(t *testing.T) {
	cache := newFakeCache()
	quick := &fakeQuick{response: "Hello! Ask me about Bubble.", matched: true}
	responder := &fakeResponder{}
	synth := &fakeSynth{audioURL: "data:audio/mpeg;base64,AAAA"}
	svc := newTestAskService(cache, quick, responder, synth)

	result, err := svc.Process(context.Background(), "hello")
	if err != nil {
		t.Fatalf("Process() error = %v", err)
	}
	if responder.calls != 0 {
		t.Error("Quick response must bypass generation")
	}
	if result.Response != quick.response {
		t.Errorf("Expected the quick response, got %q", result.Response)
	}
	waitForInsert(t, cache)
}

func TestProcessInvalidInput(t *testing.T) {
	svc := newTestAskService(newFakeCache(), &fakeQuick{}, &fakeResponder{}, &fakeSynth{})

	for _, text := range []string{"", "   "} {
		if _, err := svc.Process(context.Background(), text); !errors.Is(err, ErrInvalidInput) {
			t.Errorf("Process(%q) error = %v, want ErrInvalidInput", text, err)
		}
	}
}

func TestProcessGenerationFailureAborts(t *testing.T) {
	cache := newFakeCache()
	responder := &fakeResponder{err: ErrGeneration}
	synth := &fakeSynth{audioURL: "data:audio/mpeg;base64,AAAA"}
	svc := newTestAskService(cache, &fakeQuick{}, responder, synth)

	_, err := svc.Process(context.Background(), "How do plugins work?")
	if !errors.Is(err, ErrGeneration) {
		t.Fatalf("Expected ErrGeneration, got %v", err)
	}
	if synth.calls != 0 {
		t.Error("Synthesis must not run after a generation failure")
	}
}

func TestProcessSynthesisFailureDiscardsText(t *testing.T) {
	cache := newFakeCache()
	responder := &fakeResponder{answer: "A perfectly good answer."}
	synth := &fakeSynth{err: ErrSynthesis}
	svc := newTestAskService(cache, &fakeQuick{}, responder, synth)

	result, err := svc.Process(context.Background(), "How do plugins work?")
	if !errors.Is(err, ErrSynthesis) {
		t.Fatalf("Expected ErrSynthesis, got %v", err)
	}
	if result != nil {
		t.Error("No text-only response may be returned when synthesis fails")
	}

	select {
	case entry := <-cache.inserted:
		t.Errorf("Nothing should be cached after a synthesis failure, got %+v", entry)
	case <-time.After(100 * time.Millisecond):
	}
}

func TestProcessCacheLookupFailureTreatedAsMiss(t *testing.T) {
	cache := newFakeCache()
	quick := &fakeQuick{}
	responder := &fakeResponder{answer: "Generated anyway."}
	synth := &fakeSynth{audioURL: "data:audio/mpeg;base64,AAAA"}

	broken := &brokenLookupCache{fakeCache: cache}
	svc := NewAskService(broken, quick, responder, synth, &config.CacheConfig{
		TTL:          30 * 24 * time.Hour,
		WriteTimeout: time.Second,
	}, zap.NewNop())

	result, err := svc.Process(context.Background(), "Does a broken cache fail requests?")
	if err != nil {
		t.Fatalf("A broken cache must not fail the request: %v", err)
	}
	if responder.calls != 1 {
		t.Error("Expected generation on lookup failure")
	}
	if result.Metrics.CacheHit {
		t.Error("Lookup failure must not count as a hit")
	}
}

type brokenLookupCache struct {
	*fakeCache
}

func (b *brokenLookupCache) Lookup(context.Context, string) (*models.CacheEntry, error) {
	return nil, errors.New("connection reset")
}
