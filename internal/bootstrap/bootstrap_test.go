package bootstrap

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/orbitscale/orbitscale/internal/metric"
)

type opLog struct {
	mu  sync.Mutex
	ops []string
}

func (l *opLog) record(op string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.ops = append(l.ops, op)
}

func (l *opLog) snapshot() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]string(nil), l.ops...)
}

type settingsStub struct {
	mu sync.Mutex

	firstAppStart    bool
	firstAppStartErr error
	clearFlagErr     error
	fileLogging      bool
	fileLoggingErr   error

	ops *opLog
}

func (s *settingsStub) FirstAppStart(_ context.Context) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.firstAppStart, s.firstAppStartErr
}

func (s *settingsStub) SetFirstAppStart(_ context.Context, v bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.clearFlagErr != nil {
		return s.clearFlagErr
	}
	s.ops.record("clear_flag")
	s.firstAppStart = v
	return nil
}

func (s *settingsStub) FileLoggingEnabled(_ context.Context) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.fileLogging, s.fileLoggingErr
}

type typeStoreStub struct {
	mu        sync.Mutex
	insertErr error
	inserted  [][]metric.MetricType
	ops       *opLog
}

func (s *typeStoreStub) BulkInsert(_ context.Context, types []metric.MetricType) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.insertErr != nil {
		return s.insertErr
	}
	s.ops.record("bulk_insert")
	s.inserted = append(s.inserted, append([]metric.MetricType(nil), types...))
	return nil
}

func (s *typeStoreStub) insertCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.inserted)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func noopLoggerInit(_ context.Context, _ bool) (*slog.Logger, error) {
	return discardLogger(), nil
}

func TestSeedFreshInstall(t *testing.T) {
	t.Parallel()

	ops := &opLog{}
	settings := &settingsStub{firstAppStart: true, ops: ops}
	store := &typeStoreStub{ops: ops}

	c := New(settings, store, noopLoggerInit, discardLogger())
	c.Run(t.Context())
	c.Wait()

	if got := store.insertCount(); got != 1 {
		t.Fatalf("bulk insert ran %d times, want 1", got)
	}
	if diff := cmp.Diff(metric.DefaultTypes(), store.inserted[0]); diff != "" {
		t.Errorf("seeded dataset differs from provider output (-want +got):\n%s", diff)
	}
	if settings.firstAppStart {
		t.Error("first start flag still raised after successful seed")
	}

	// write-then-clear ordering
	want := []string{"bulk_insert", "clear_flag"}
	if diff := cmp.Diff(want, ops.snapshot()); diff != "" {
		t.Errorf("operation order (-want +got):\n%s", diff)
	}
}

func TestSeedSecondLaunch(t *testing.T) {
	t.Parallel()

	ops := &opLog{}
	settings := &settingsStub{firstAppStart: false, ops: ops}
	store := &typeStoreStub{ops: ops}

	c := New(settings, store, noopLoggerInit, discardLogger())
	c.Run(t.Context())
	c.Wait()

	if got := store.insertCount(); got != 0 {
		t.Errorf("bulk insert ran %d times on second launch, want 0", got)
	}
	if len(ops.snapshot()) != 0 {
		t.Errorf("unexpected writes on second launch: %v", ops.snapshot())
	}
}

func TestSeedRetryAfterWriteFailure(t *testing.T) {
	t.Parallel()

	ops := &opLog{}
	settings := &settingsStub{firstAppStart: true, ops: ops}
	store := &typeStoreStub{insertErr: errors.New("disk full"), ops: ops}

	c := New(settings, store, noopLoggerInit, discardLogger())
	c.Run(t.Context())
	c.Wait()

	if !settings.firstAppStart {
		t.Fatal("first start flag cleared after a failed seed write")
	}
	for _, op := range ops.snapshot() {
		if op == "clear_flag" {
			t.Fatal("flag cleared despite seed write failure")
		}
	}

	// Next start with healthy storage completes the seed.
	store.mu.Lock()
	store.insertErr = nil
	store.mu.Unlock()

	retry := New(settings, store, noopLoggerInit, discardLogger())
	retry.Run(t.Context())
	retry.Wait()

	if got := store.insertCount(); got != 1 {
		t.Errorf("bulk insert ran %d times on retry, want 1", got)
	}
	if settings.firstAppStart {
		t.Error("first start flag still raised after successful retry")
	}
}

func TestSeedFlagClearFailure(t *testing.T) {
	t.Parallel()

	ops := &opLog{}
	settings := &settingsStub{firstAppStart: true, clearFlagErr: errors.New("io error"), ops: ops}
	store := &typeStoreStub{ops: ops}

	c := New(settings, store, noopLoggerInit, discardLogger())
	c.Run(t.Context())
	c.Wait()

	if got := store.insertCount(); got != 1 {
		t.Fatalf("bulk insert ran %d times, want 1", got)
	}
	if !settings.firstAppStart {
		t.Fatal("flag cleared despite clear failing")
	}

	// The redundant retry on the next start is expected and must land the
	// terminal state once the flag write recovers.
	settings.mu.Lock()
	settings.clearFlagErr = nil
	settings.mu.Unlock()

	retry := New(settings, store, noopLoggerInit, discardLogger())
	retry.Run(t.Context())
	retry.Wait()

	if got := store.insertCount(); got != 2 {
		t.Errorf("bulk insert ran %d times across both starts, want 2", got)
	}
	if settings.firstAppStart {
		t.Error("first start flag still raised after recovery")
	}
}

func TestLoggingFallbackOnReadFailure(t *testing.T) {
	t.Parallel()

	var fallbackBuf bytes.Buffer
	fallback := slog.New(slog.NewJSONHandler(&fallbackBuf, nil))

	settings := &settingsStub{fileLogging: true, fileLoggingErr: errors.New("settings corrupt"), ops: &opLog{}}
	store := &typeStoreStub{ops: &opLog{}}

	var mu sync.Mutex
	var gotEnabled []bool
	loggerInit := func(_ context.Context, enabled bool) (*slog.Logger, error) {
		mu.Lock()
		defer mu.Unlock()
		gotEnabled = append(gotEnabled, enabled)
		return discardLogger(), nil
	}

	c := New(settings, store, loggerInit, fallback)
	c.Run(t.Context())
	c.Wait()

	mu.Lock()
	defer mu.Unlock()
	if len(gotEnabled) != 1 {
		t.Fatalf("logger init called %d times, want 1", len(gotEnabled))
	}
	if gotEnabled[0] {
		t.Error("logger initialized with file logging enabled despite read failure, want false")
	}
	if !strings.Contains(fallbackBuf.String(), "file logging flag") {
		t.Errorf("read failure not reported on the fallback channel, got: %s", fallbackBuf.String())
	}
}

func TestLoggerInitFailureDoesNotBlockSeeding(t *testing.T) {
	t.Parallel()

	ops := &opLog{}
	settings := &settingsStub{firstAppStart: true, ops: ops}
	store := &typeStoreStub{ops: ops}

	loggerInit := func(_ context.Context, _ bool) (*slog.Logger, error) {
		return nil, errors.New("log file unwritable")
	}

	c := New(settings, store, loggerInit, discardLogger())
	c.Run(t.Context())
	c.Wait()

	if got := store.insertCount(); got != 1 {
		t.Errorf("bulk insert ran %d times with logging init broken, want 1", got)
	}
	if settings.firstAppStart {
		t.Error("first start flag still raised")
	}
}

func TestPanicIsolation(t *testing.T) {
	t.Parallel()

	ops := &opLog{}
	settings := &settingsStub{firstAppStart: true, ops: ops}
	store := &typeStoreStub{ops: ops}

	var mu sync.Mutex
	loggerInitRan := false
	loggerInit := func(_ context.Context, _ bool) (*slog.Logger, error) {
		mu.Lock()
		defer mu.Unlock()
		loggerInitRan = true
		return discardLogger(), nil
	}

	c := New(settings, store, loggerInit, discardLogger(),
		WithDefaults(func() []metric.MetricType {
			panic("provider exploded")
		}))
	c.Run(t.Context())
	c.Wait()

	mu.Lock()
	defer mu.Unlock()
	if !loggerInitRan {
		t.Error("logging task did not complete after sibling task panicked")
	}
	if !settings.firstAppStart {
		t.Error("flag cleared despite the seeding task panicking")
	}
}

func TestRunIsOncePerProcess(t *testing.T) {
	t.Parallel()

	ops := &opLog{}
	settings := &settingsStub{firstAppStart: true, ops: ops}
	store := &typeStoreStub{ops: ops}

	c := New(settings, store, noopLoggerInit, discardLogger())

	var wg sync.WaitGroup
	for range 4 {
		wg.Go(func() {
			c.Run(t.Context())
		})
	}
	wg.Wait()
	c.Wait()

	if got := store.insertCount(); got != 1 {
		t.Errorf("bulk insert ran %d times across concurrent Run calls, want 1", got)
	}
}
