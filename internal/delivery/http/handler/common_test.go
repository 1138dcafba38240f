package handler

import (
	"testing"
	"time"
)

func TestViewRegistry_DropIdle(t *testing.T) {
	r := newViewRegistry[int]()
	r.get("a", func() int { return 1 })
	r.get("b", func() int { return 2 })

	if dropped := r.dropIdle(time.Now().Add(-time.Minute)); len(dropped) != 0 {
		t.Fatalf("fresh entries must survive, dropped %v", dropped)
	}

	dropped := r.dropIdle(time.Now().Add(time.Minute))
	if len(dropped) != 2 {
		t.Fatalf("expected both entries dropped, got %v", dropped)
	}
	if _, ok := r.peek("a"); ok {
		t.Fatalf("dropped entry must be gone")
	}
}

func TestViewRegistry_AccessRefreshesIdleClock(t *testing.T) {
	r := newViewRegistry[int]()
	r.get("a", func() int { return 1 })

	cutoff := time.Now()
	time.Sleep(5 * time.Millisecond)
	if _, ok := r.peek("a"); !ok {
		t.Fatalf("entry must exist")
	}
	if dropped := r.dropIdle(cutoff); len(dropped) != 0 {
		t.Fatalf("touched entry must survive a cutoff older than the touch, dropped %v", dropped)
	}
}
