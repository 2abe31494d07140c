package buffer

import "testing"

func TestLine_InsertAt_ClampsIndex(t *testing.T) {
	l := NewLine("bb")

	if got := l.InsertAt(-3, 'a'); got != 0 {
		t.Fatalf("insert index below range: got %d, want %d", got, 0)
	}
	if got := l.InsertAt(99, 'c'); got != 3 {
		t.Fatalf("insert index above range: got %d, want %d", got, 3)
	}
	if got := l.String(); got != "abbc" {
		t.Fatalf("line after inserts: got %q, want %q", got, "abbc")
	}
}

func TestLine_RemoveAt_ClampsIndex(t *testing.T) {
	l := NewLine("abc")

	r, ok := l.RemoveAt(42)
	if !ok || r != 'c' {
		t.Fatalf("remove above range: got (%q,%v), want ('c',true)", r, ok)
	}
	r, ok = l.RemoveAt(-1)
	if !ok || r != 'a' {
		t.Fatalf("remove below range: got (%q,%v), want ('a',true)", r, ok)
	}
	if got := l.String(); got != "b" {
		t.Fatalf("line after removals: got %q, want %q", got, "b")
	}
}

func TestLine_RemoveAt_EmptyIsNoop(t *testing.T) {
	var l Line
	if _, ok := l.RemoveAt(0); ok {
		t.Fatalf("remove on empty line reported success")
	}
	if l.Len() != 0 {
		t.Fatalf("empty line length changed: got %d", l.Len())
	}
}

func TestLine_Slice(t *testing.T) {
	l := NewLine("héllo")
	if got := string(l.Slice(1, 3)); got != "él" {
		t.Fatalf("slice [1,3): got %q, want %q", got, "él")
	}
	if got := string(l.Slice(3, 99)); got != "lo" {
		t.Fatalf("slice clamped end: got %q, want %q", got, "lo")
	}
	if got := l.Slice(4, 2); len(got) != 0 {
		t.Fatalf("inverted slice: got %q, want empty", string(got))
	}

	// Slice returns a copy.
	s := l.Slice(0, 1)
	s[0] = 'X'
	if got := l.String(); got != "héllo" {
		t.Fatalf("line mutated through slice: got %q", got)
	}
}
