package bracken

import "testing"

func TestButtonBitMapping(t *testing.T) {
	// The single-button index order and the bitmask bit order disagree on
	// middle vs right; the mapping must preserve that swap.
	tests := []struct {
		button MouseButton
		want   ButtonBits
	}{
		{MouseButtonLeft, BitLeft},
		{MouseButtonMiddle, BitMiddle},
		{MouseButtonRight, BitRight},
		{MouseButtonAux1, BitAux1},
		{MouseButtonAux2, BitAux2},
	}
	for _, tt := range tests {
		if got := buttonBit(tt.button); got != tt.want {
			t.Errorf("buttonBit(%d) = %05b, want %05b", tt.button, got, tt.want)
		}
	}
	if buttonBit(MouseButton(9)) != 0 {
		t.Error("unknown button should map to no bits")
	}
}

func TestCursorButtonTableConsistent(t *testing.T) {
	for _, b := range cursorButtons {
		if buttonBit(b.button) != b.bit {
			t.Errorf("cursorButtons entry for button %d carries bit %05b, want %05b",
				b.button, b.bit, buttonBit(b.button))
		}
	}
}

func TestCursorSourceImplementsInputSource(t *testing.T) {
	var _ InputSource = NewCursorSource()
}
