package cursor

import "testing"

func TestMove(t *testing.T) {
	tests := []struct {
		name       string
		margin     int
		initial    int
		delta      int
		len        int
		height     int
		wantPos    int
		wantOffset int
	}{
		{"down within bounds", 2, 0, 1, 10, 5, 1, 0},
		{"down scrolls with margin", 2, 0, 3, 10, 5, 3, 1},
		{"up clamps to 0", 2, 2, -5, 10, 5, 0, 0},
		{"down clamps to last", 2, 0, 50, 10, 5, 9, 5},
		{"no margin", 0, 0, 5, 10, 5, 5, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New(tt.margin)
			c.Jump(tt.initial, tt.len, tt.height)
			c.Move(tt.delta, tt.len, tt.height)
			if c.Pos() != tt.wantPos {
				t.Errorf("pos = %d, want %d", c.Pos(), tt.wantPos)
			}
			if c.Offset() != tt.wantOffset {
				t.Errorf("offset = %d, want %d", c.Offset(), tt.wantOffset)
			}
		})
	}
}

func TestMoveEmptyList(t *testing.T) {
	c := New(2)
	c.Move(3, 0, 5)
	if c.Pos() != 0 || c.Offset() != 0 {
		t.Errorf("empty list moved cursor to %d/%d", c.Pos(), c.Offset())
	}
}

func TestJumpStartEnd(t *testing.T) {
	c := New(1)
	c.JumpEnd(20, 5)
	if c.Pos() != 19 {
		t.Errorf("JumpEnd pos = %d, want 19", c.Pos())
	}
	if c.Offset() != 15 {
		t.Errorf("JumpEnd offset = %d, want 15", c.Offset())
	}

	c.JumpStart()
	if c.Pos() != 0 || c.Offset() != 0 {
		t.Errorf("JumpStart = %d/%d, want 0/0", c.Pos(), c.Offset())
	}
}

func TestClampToBounds(t *testing.T) {
	c := New(0)
	c.Jump(8, 10, 5)

	if !c.ClampToBounds(3, 5) {
		t.Error("shrinking below cursor should report a change")
	}
	if c.Pos() != 2 {
		t.Errorf("pos = %d, want 2", c.Pos())
	}
	if c.Offset() != 0 {
		t.Errorf("offset = %d, want 0", c.Offset())
	}

	if c.ClampToBounds(3, 5) {
		t.Error("cursor already in bounds should not report a change")
	}

	if !c.ClampToBounds(0, 5) {
		t.Error("emptying the list should report a change")
	}
	if c.Pos() != 0 {
		t.Errorf("pos = %d, want 0", c.Pos())
	}
}

func TestVisibleRange(t *testing.T) {
	c := New(0)
	c.Jump(7, 10, 4)

	start, end := c.VisibleRange(10, 4)
	if start != 4 || end != 8 {
		t.Errorf("VisibleRange = [%d,%d), want [4,8)", start, end)
	}

	start, end = c.VisibleRange(0, 4)
	if start != 0 || end != 0 {
		t.Errorf("empty VisibleRange = [%d,%d), want [0,0)", start, end)
	}
}

func TestHandleKey(t *testing.T) {
	c := New(0)
	if !c.HandleKey("j", 5, 5) || c.Pos() != 1 {
		t.Errorf("j: pos = %d, want 1", c.Pos())
	}
	if !c.HandleKey("G", 5, 5) || c.Pos() != 4 {
		t.Errorf("G: pos = %d, want 4", c.Pos())
	}
	if !c.HandleKey("k", 5, 5) || c.Pos() != 3 {
		t.Errorf("k: pos = %d, want 3", c.Pos())
	}
	if !c.HandleKey("g", 5, 5) || c.Pos() != 0 {
		t.Errorf("g: pos = %d, want 0", c.Pos())
	}
	if c.HandleKey("x", 5, 5) {
		t.Error("x should not be handled")
	}
}
