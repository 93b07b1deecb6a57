package watch

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestRun_RecomputesOnWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "survey.toml")
	if err := os.WriteFile(path, []byte("section = \"a\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	calls := make(chan struct{}, 16)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go func() {
		done <- Run(ctx, []string{path}, func() error {
			calls <- struct{}{}
			return nil
		})
	}()

	select {
	case <-calls:
	case <-time.After(2 * time.Second):
		t.Fatal("initial compute never ran")
	}

	// Outside the debounce window of the initial state.
	time.Sleep(300 * time.Millisecond)
	if err := os.WriteFile(path, []byte("section = \"b\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case <-calls:
	case <-time.After(2 * time.Second):
		t.Fatal("no recompute after write")
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Fatal(err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("watcher did not stop on cancel")
	}
}

func TestRun_IgnoresUnwatchedFiles(t *testing.T) {
	dir := t.TempDir()
	watched := filepath.Join(dir, "survey.toml")
	other := filepath.Join(dir, "notes.txt")
	if err := os.WriteFile(watched, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	calls := make(chan struct{}, 16)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go Run(ctx, []string{watched}, func() error {
		calls <- struct{}{}
		return nil
	})

	<-calls // initial compute

	time.Sleep(300 * time.Millisecond)
	if err := os.WriteFile(other, []byte("y"), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case <-calls:
		t.Fatal("recompute triggered by unwatched file")
	case <-time.After(500 * time.Millisecond):
	}
}

func TestRun_KeepsRunningOnRecomputeError(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "survey.toml")
	if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	calls := make(chan struct{}, 16)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go Run(ctx, []string{path}, func() error {
		calls <- struct{}{}
		return os.ErrInvalid
	})

	<-calls // initial compute fails, watcher must survive

	time.Sleep(300 * time.Millisecond)
	if err := os.WriteFile(path, []byte("y"), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case <-calls:
	case <-time.After(2 * time.Second):
		t.Fatal("watcher died after recompute error")
	}
}
