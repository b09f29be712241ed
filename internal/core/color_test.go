package core

import "testing"

func TestRGBNearest(t *testing.T) {
	tests := []struct {
		in       RGB
		expected Color
	}{
		{RGB{0, 255, 0}, ColorBrightGreen},
		{RGB{255, 215, 0}, ColorGold},
		{RGB{250, 5, 5}, ColorBrightRed},
		{RGB{120, 130, 125}, ColorGray},
	}

	for _, tc := range tests {
		if got := tc.in.Nearest(); got != tc.expected {
			t.Errorf("%+v.Nearest() = %d, expected %d", tc.in, got, tc.expected)
		}
	}
}

func TestRGBOf(t *testing.T) {
	if got := RGBOf(ColorGold); got != (RGB{255, 215, 0}) {
		t.Errorf("RGBOf(ColorGold) = %+v", got)
	}
	if got := RGBOf(ColorDefault); got != (RGB{229, 229, 229}) {
		t.Errorf("RGBOf(ColorDefault) = %+v", got)
	}
}
