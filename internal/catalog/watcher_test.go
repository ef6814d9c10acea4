package catalog

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/Iron-Ham/facetdrawer/internal/errors"
)

func waitReload(t *testing.T, w *Watcher) Reload {
	t.Helper()
	select {
	case r, ok := <-w.Events():
		if !ok {
			t.Fatal("events channel closed")
		}
		return r
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for reload")
	}
	return Reload{}
}

func TestWatcher_ReloadsOnWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "catalog.yaml")
	if err := os.WriteFile(path, []byte(shopYAML), 0644); err != nil {
		t.Fatal(err)
	}

	w, err := NewWatcher(path, nil)
	if err != nil {
		t.Fatalf("NewWatcher() error: %v", err)
	}
	w.SetDebounce(50 * time.Millisecond)
	w.Start()
	defer w.Stop()

	updated := `categories: [{id: color, label: Colour, options: [Red, Blue, Green]}]`
	if err := os.WriteFile(path, []byte(updated), 0644); err != nil {
		t.Fatal(err)
	}

	r := waitReload(t, w)
	if r.Err != nil {
		t.Fatalf("reload error: %v", r.Err)
	}
	color, ok := r.Catalog.Category("color")
	if !ok || color.Label != "Colour" || len(color.Options) != 3 {
		t.Errorf("reloaded category = %+v", color)
	}

	if err := os.WriteFile(path, []byte("categories: []"), 0644); err != nil {
		t.Fatal(err)
	}
	r = waitReload(t, w)
	if !errors.Is(r.Err, errors.ErrCatalogEmpty) {
		t.Errorf("expected ErrCatalogEmpty, got %v", r.Err)
	}
}

func TestWatcher_IgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "catalog.yaml")
	if err := os.WriteFile(path, []byte(shopYAML), 0644); err != nil {
		t.Fatal(err)
	}

	w, err := NewWatcher(path, nil)
	if err != nil {
		t.Fatal(err)
	}
	w.SetDebounce(50 * time.Millisecond)
	w.Start()
	defer w.Stop()

	if err := os.WriteFile(filepath.Join(dir, "other.txt"), []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	select {
	case r := <-w.Events():
		t.Errorf("unexpected reload: %+v", r)
	case <-time.After(300 * time.Millisecond):
	}
}

func TestWatcher_StopClosesChannels(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "catalog.yaml")
	if err := os.WriteFile(path, []byte(shopYAML), 0644); err != nil {
		t.Fatal(err)
	}

	w, err := NewWatcher(path, nil)
	if err != nil {
		t.Fatal(err)
	}
	w.Start()
	w.Stop()
	w.Stop() // idempotent

	if _, ok := <-w.Events(); ok {
		t.Error("expected events channel to be closed after Stop")
	}
	if _, ok := <-w.Errors(); ok {
		t.Error("expected errors channel to be closed after Stop")
	}
}

func TestSendLatest_KeepsNewest(t *testing.T) {
	ch := make(chan error, 1)
	stop := make(chan struct{})

	first := errors.New("first")
	second := errors.New("second")
	sendLatest(ch, first, stop)
	sendLatest(ch, second, stop)

	if got := <-ch; got != second {
		t.Errorf("received %v, want %v", got, second)
	}
	select {
	case extra := <-ch:
		t.Errorf("unexpected extra value %v", extra)
	default:
	}
}
