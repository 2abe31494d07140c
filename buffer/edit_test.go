package buffer

import "testing"

func TestInsertChar_MiddleOfLine(t *testing.T) {
	b := New("a", "bb", "ccc")

	next, ok := b.InsertChar(1, 1, 'X')
	if !ok {
		t.Fatalf("InsertChar reported no change")
	}
	if got := b.Lines()[1]; got != "bXb" {
		t.Fatalf("line after insert: got %q, want %q", got, "bXb")
	}
	if next != (Pos{Row: 1, Col: 2}) {
		t.Fatalf("next pos: got %v, want (1,2)", next)
	}
}

func TestInsertChar_ClampsColumn(t *testing.T) {
	b := New("ab")

	next, ok := b.InsertChar(0, 50, 'c')
	if !ok || next != (Pos{Row: 0, Col: 3}) {
		t.Fatalf("insert past end: got (%v,%v), want ((0,3),true)", next, ok)
	}
	next, ok = b.InsertChar(0, -4, '_')
	if !ok || next != (Pos{Row: 0, Col: 1}) {
		t.Fatalf("insert before start: got (%v,%v), want ((0,1),true)", next, ok)
	}
	if got := b.Text(); got != "_abc" {
		t.Fatalf("text: got %q, want %q", got, "_abc")
	}
}

func TestInsertChar_RowOutOfRangeIsNoop(t *testing.T) {
	b := New("ab")
	v := b.Version()
	if _, ok := b.InsertChar(3, 0, 'x'); ok {
		t.Fatalf("insert on missing row reported ok")
	}
	if b.Version() != v {
		t.Fatalf("version changed on no-op insert")
	}
}

func TestInsertString(t *testing.T) {
	b := New("ad")
	next, ok := b.InsertString(0, 1, "bc")
	if !ok || next != (Pos{Row: 0, Col: 3}) {
		t.Fatalf("InsertString: got (%v,%v), want ((0,3),true)", next, ok)
	}
	if got := b.Text(); got != "abcd" {
		t.Fatalf("text: got %q, want %q", got, "abcd")
	}

	if _, ok := b.InsertString(0, 0, ""); ok {
		t.Fatalf("empty InsertString reported ok")
	}
}

func TestRemoveCharBefore_ColumnZeroIsNoop(t *testing.T) {
	b := New("a", "bb")
	v := b.Version()

	next, ok := b.RemoveCharBefore(1, 0)
	if ok {
		t.Fatalf("backspace at column 0 reported a change")
	}
	if next != (Pos{Row: 1, Col: 0}) {
		t.Fatalf("next pos: got %v, want (1,0)", next)
	}
	if got := b.Text(); got != "a\nbb" {
		t.Fatalf("text changed: got %q", got)
	}
	if b.Version() != v {
		t.Fatalf("version changed on no-op backspace")
	}
}

func TestRemoveCharBefore_ClampsColumn(t *testing.T) {
	b := New("abc")
	next, ok := b.RemoveCharBefore(0, 10)
	if !ok || next != (Pos{Row: 0, Col: 2}) {
		t.Fatalf("backspace past end: got (%v,%v), want ((0,2),true)", next, ok)
	}
	if got := b.Text(); got != "ab" {
		t.Fatalf("text: got %q, want %q", got, "ab")
	}
}

func TestInsertThenRemove_RoundTrip(t *testing.T) {
	for k := 0; k <= 3; k++ {
		b := New("ccc")
		next, ok := b.InsertChar(0, k, 'Z')
		if !ok {
			t.Fatalf("k=%d: insert failed", k)
		}
		if _, ok := b.RemoveCharBefore(0, next.Col); !ok {
			t.Fatalf("k=%d: remove failed", k)
		}
		if got := b.Text(); got != "ccc" {
			t.Fatalf("k=%d: round trip: got %q, want %q", k, got, "ccc")
		}
	}
}
