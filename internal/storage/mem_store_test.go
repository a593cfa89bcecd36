package storage

import (
	"context"
	"testing"
)

func TestMemStoreRoundTrip(t *testing.T) {
	s := NewMemStore()
	ctx := context.Background()

	if _, ok := s.Read(ctx, "missing"); ok {
		t.Error("read of absent key reported ok")
	}

	if !s.Write(ctx, "doc", map[string]int{"a": 1}) {
		t.Fatal("write refused")
	}
	raw, ok := s.Read(ctx, "doc")
	if !ok {
		t.Fatal("read after write failed")
	}
	if string(raw) != `{"a":1}` {
		t.Errorf("raw = %s", raw)
	}

	if !s.Remove(ctx, "doc") {
		t.Error("remove refused")
	}
	if _, ok := s.Read(ctx, "doc"); ok {
		t.Error("key survives removal")
	}
}

func TestMemStoreReadReturnsCopy(t *testing.T) {
	s := NewMemStore()
	ctx := context.Background()
	s.Write(ctx, "doc", []int{1, 2, 3})

	raw, _ := s.Read(ctx, "doc")
	for i := range raw {
		raw[i] = 'x'
	}

	again, _ := s.Read(ctx, "doc")
	if string(again) != "[1,2,3]" {
		t.Errorf("stored bytes were mutated through the returned slice: %s", again)
	}
}

func TestReadJSON(t *testing.T) {
	s := NewMemStore()
	ctx := context.Background()

	var out []string
	if ReadJSON(ctx, s, "missing", &out) {
		t.Error("ReadJSON of absent key reported ok")
	}

	s.Write(ctx, "list", []string{"a", "b"})
	if !ReadJSON(ctx, s, "list", &out) {
		t.Fatal("ReadJSON failed")
	}
	if len(out) != 2 || out[0] != "a" {
		t.Errorf("out = %v", out)
	}

	s.Write(ctx, "list", "not-a-list")
	var broken []string
	if ReadJSON(ctx, s, "list", &broken) {
		t.Error("ReadJSON decoded mismatched shape")
	}
}
