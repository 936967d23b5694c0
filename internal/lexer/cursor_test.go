package lexer

import "testing"

func TestCursorPeekDoesNotAdvance(t *testing.T) {
	cur := NewCursor([]byte("abc"))

	if got := cur.PeekOrConsume(1, true); got != 'a' {
		t.Fatalf("peek stride 1: want 'a', got %q", got)
	}
	if got := cur.PeekOrConsume(3, true); got != 'c' {
		t.Fatalf("peek stride 3: want 'c', got %q", got)
	}
	if cur.Pos() != 0 {
		t.Fatalf("peeking moved the cursor to %d", cur.Pos())
	}
}

func TestCursorConsumeAdvancesByStride(t *testing.T) {
	cur := NewCursor([]byte("abcd"))

	if got := cur.PeekOrConsume(2, false); got != 'b' {
		t.Fatalf("consume stride 2: want 'b', got %q", got)
	}
	if cur.Pos() != 2 {
		t.Fatalf("consume stride 2: want pos 2, got %d", cur.Pos())
	}
	if got := cur.Next(); got != 'c' {
		t.Fatalf("next: want 'c', got %q", got)
	}
}

func TestCursorBoundaryTransition(t *testing.T) {
	cur := NewCursor([]byte("ab"))
	cur.Next()
	cur.Next()

	// The first read past the end returns the sentinel without the
	// position ever exceeding the text length.
	if got := cur.Next(); got != EndOfText {
		t.Fatalf("want sentinel, got %q", got)
	}
	if cur.Pos() != 2 {
		t.Fatalf("position moved past text length: %d", cur.Pos())
	}
	for i := 0; i < 3; i++ {
		if got := cur.Next(); got != EndOfText {
			t.Fatalf("exhausted cursor returned %q", got)
		}
	}
	if cur.Pos() != 2 {
		t.Fatalf("exhausted cursor advanced to %d", cur.Pos())
	}
}

func TestCursorOverlongConsumeClampsToEnd(t *testing.T) {
	cur := NewCursor([]byte("ab"))

	if got := cur.PeekOrConsume(5, false); got != EndOfText {
		t.Fatalf("want sentinel, got %q", got)
	}
	if cur.Pos() != 2 {
		t.Fatalf("want pos clamped to 2, got %d", cur.Pos())
	}
}

func TestCursorIllegalStridePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("stride 0 did not panic")
		}
	}()

	NewCursor([]byte("a")).PeekOrConsume(0, true)
}

func TestCursorSetTextRequiresReposition(t *testing.T) {
	cur := NewCursor([]byte("abc"))
	cur.Next()
	cur.Next()

	cur.SetText([]byte("xyz"))
	cur.SetPos(0)

	if got := cur.Next(); got != 'x' {
		t.Fatalf("after SetText: want 'x', got %q", got)
	}
}
