package store

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"testing"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(t.TempDir())
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	return s
}

func TestPutGetRoundTrip(t *testing.T) {
	s := newTestStore(t)

	data := []byte(`{"choice":"accepted"}`)
	if err := s.Put("consent", data); err != nil {
		t.Fatalf("Put: %v", err)
	}
	got, ok := s.Get("consent")
	if !ok {
		t.Fatal("expected hit")
	}
	if string(got) != string(data) {
		t.Errorf("got %s, want %s", got, data)
	}
}

func TestGetMissingKey(t *testing.T) {
	s := newTestStore(t)
	if _, ok := s.Get("nope"); ok {
		t.Error("expected miss")
	}
	if s.Has("nope") {
		t.Error("Has(nope) = true")
	}
}

func TestPutRejectsInvalidJSON(t *testing.T) {
	s := newTestStore(t)
	if err := s.Put("k", []byte("{not json")); err == nil {
		t.Error("expected error for invalid JSON")
	}
}

func TestPutOverwrites(t *testing.T) {
	s := newTestStore(t)
	_ = s.Put("k", []byte(`1`))
	_ = s.Put("k", []byte(`2`))
	got, _ := s.Get("k")
	if string(got) != "2" {
		t.Errorf("got %s, want 2", got)
	}
}

func TestDelete(t *testing.T) {
	s := newTestStore(t)
	_ = s.Put("k", []byte(`true`))
	if err := s.Delete("k"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if s.Has("k") {
		t.Error("key survived Delete")
	}
	if err := s.Delete("k"); err != nil {
		t.Errorf("Delete of missing key: %v", err)
	}
}

func TestPersistsAcrossOpen(t *testing.T) {
	dir := t.TempDir()
	s1, _ := Open(dir)
	if err := s1.Put("k", []byte(`"v"`)); err != nil {
		t.Fatalf("Put: %v", err)
	}

	s2, err := Open(dir)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	got, ok := s2.Get("k")
	if !ok || string(got) != `"v"` {
		t.Errorf("after reopen got %s, %v", got, ok)
	}
}

func TestCorruptEntryIsMiss(t *testing.T) {
	s := newTestStore(t)
	_ = s.Put("k", []byte(`1`))
	if err := os.WriteFile(s.path("k"), []byte("garbage"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, ok := s.Get("k"); ok {
		t.Error("corrupt entry returned a hit")
	}
}

func TestKeys(t *testing.T) {
	s := newTestStore(t)
	for _, k := range []string{"b", "a", "with/slash"} {
		_ = s.Put(k, []byte(`0`))
	}
	_ = os.WriteFile(filepath.Join(s.Dir(), "stray.txt"), []byte("x"), 0o644)

	keys, err := s.Keys()
	if err != nil {
		t.Fatalf("Keys: %v", err)
	}
	sort.Strings(keys)
	if strings.Join(keys, ",") != "a,b,with/slash" {
		t.Errorf("Keys = %v", keys)
	}
}

func TestNoTempFilesLeft(t *testing.T) {
	s := newTestStore(t)
	for i := 0; i < 10; i++ {
		_ = s.Put("k", []byte(`1`))
	}
	entries, _ := os.ReadDir(s.Dir())
	for _, e := range entries {
		if strings.HasPrefix(e.Name(), ".tmp-") {
			t.Errorf("leftover temp file %s", e.Name())
		}
	}
}

func TestConcurrentPuts(t *testing.T) {
	s := newTestStore(t)
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = s.Put("shared", []byte(`"x"`))
			s.Get("shared")
		}()
	}
	wg.Wait()
	if !s.Has("shared") {
		t.Error("shared key missing after concurrent puts")
	}
}

func TestTypedRoundTrip(t *testing.T) {
	s := newTestStore(t)
	type pref struct {
		Choice string `json:"choice"`
	}
	if err := PutTyped(s, "pref", pref{Choice: "declined"}); err != nil {
		t.Fatalf("PutTyped: %v", err)
	}
	got, ok := GetTyped[pref](s, "pref")
	if !ok || got.Choice != "declined" {
		t.Errorf("GetTyped = %+v, %v", got, ok)
	}
	if _, ok := GetTyped[int](s, "pref"); ok {
		t.Error("GetTyped[int] decoded a struct")
	}
}

func TestHashKeyIsStable(t *testing.T) {
	if hashKey("consent") != hashKey("consent") {
		t.Error("hashKey not deterministic")
	}
	if len(hashKey("consent")) != 16 {
		t.Errorf("hashKey length = %d, want 16", len(hashKey("consent")))
	}
}

func TestOpenEmptyDir(t *testing.T) {
	if _, err := Open(""); err == nil {
		t.Error("Open(\"\") = nil error")
	}
}
