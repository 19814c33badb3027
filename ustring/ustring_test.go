package ustring

import (
	"fmt"
	"sync"
	"testing"
)

func TestInternStable(t *testing.T) {
	a := Intern("hello")
	b := Intern("hello")
	if a != b {
		t.Errorf("same contents interned to different handles: %d vs %d", a, b)
	}
	if c := Intern("world"); c == a {
		t.Errorf("distinct contents share handle %d", a)
	}
}

func TestStringRoundTrip(t *testing.T) {
	for _, s := range []string{"", "x", "a longer interned string", "3.25"} {
		u := Intern(s)
		if got := u.String(); got != s {
			t.Errorf("Intern(%q).String() = %q", s, got)
		}
	}
}

func TestUnknownHandle(t *testing.T) {
	// A handle never produced by Intern resolves to nothing.
	var u UString = 0xdeadbeef
	if got := u.String(); got != "" {
		t.Errorf("unknown handle resolved to %q", got)
	}
	if _, ok := FromHash(0xdeadbeef); ok {
		t.Error("FromHash reported an unknown hash as known")
	}
}

func TestFromHash(t *testing.T) {
	u := Intern("resolvable")
	got, ok := FromHash(u.Hash())
	if !ok {
		t.Fatal("FromHash did not find an interned hash")
	}
	if got != u {
		t.Errorf("FromHash = %d, want %d", got, u)
	}
}

func TestCount(t *testing.T) {
	before := Count()
	Intern("count-probe-a")
	Intern("count-probe-b")
	Intern("count-probe-a")
	if got := Count(); got != before+2 {
		t.Errorf("Count = %d, want %d", got, before+2)
	}
}

func TestConcurrentIntern(t *testing.T) {
	var wg sync.WaitGroup
	handles := make([][]UString, 8)
	for g := range handles {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			hs := make([]UString, 100)
			for i := range hs {
				hs[i] = Intern(fmt.Sprintf("concurrent-%d", i))
			}
			handles[g] = hs
		}(g)
	}
	wg.Wait()

	for g := 1; g < len(handles); g++ {
		for i, h := range handles[g] {
			if h != handles[0][i] {
				t.Fatalf("goroutine %d got handle %d for string %d, goroutine 0 got %d", g, h, i, handles[0][i])
			}
		}
	}
}
