package perft

import (
	"testing"

	"github.com/hailam/bitperft/internal/board"
	"github.com/hailam/bitperft/internal/fenio"
)

func init() {
	board.Init()
}

func TestCountStartingPosition(t *testing.T) {
	tests := []struct {
		depth    int
		expected int64
	}{
		{1, 20},
		{2, 400},
		{3, 8902},
		{4, 197281},
	}

	for _, tc := range tests {
		pos, err := fenio.Parse(fenio.StartFEN)
		if err != nil {
			t.Fatalf("fenio.Parse: %v", err)
		}
		got := Count(pos, tc.depth)
		if got != tc.expected {
			t.Errorf("Count(depth=%d) = %d, want %d", tc.depth, got, tc.expected)
		}
	}
}

// TestDivideMatchesCount checks that a Divide report's per-move counts sum
// to the same total Count would report, and that it carries one entry per
// legal root move at the starting position (20 at depth 1).
func TestDivideMatchesCount(t *testing.T) {
	pos, err := fenio.Parse(fenio.StartFEN)
	if err != nil {
		t.Fatalf("fenio.Parse: %v", err)
	}

	entries := Divide(pos, 2)
	if len(entries) != 20 {
		t.Fatalf("expected 20 root moves from the starting position, got %d", len(entries))
	}

	var total int64
	for _, e := range entries {
		total += e.Nodes
	}
	if total != 400 {
		t.Errorf("sum of Divide(depth=2) entries = %d, want 400", total)
	}
}
