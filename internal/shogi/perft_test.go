package shogi

import "testing"

func TestPerftInitial(t *testing.T) {
	want := []uint64{1, 30, 900, 25470}
	depth := len(want) - 1
	if testing.Short() {
		depth = 2
	}
	p := NewInitialPosition()
	for d := 0; d <= depth; d++ {
		got, err := Perft(p, d)
		if err != nil {
			t.Fatalf("perft(%d): %v", d, err)
		}
		if got != want[d] {
			t.Fatalf("perft(%d) mismatch: got=%d want=%d", d, got, want[d])
		}
	}
}

func TestDivideSumsToPerft(t *testing.T) {
	p := NewInitialPosition()
	entries, err := Divide(p, 2)
	if err != nil {
		t.Fatalf("divide: %v", err)
	}
	if len(entries) != 30 {
		t.Fatalf("root moves: got=%d want=30", len(entries))
	}
	var sum uint64
	for _, e := range entries {
		if e.Nodes != 30 {
			t.Fatalf("%s: got=%d want=30", e.Move.USI(), e.Nodes)
		}
		sum += e.Nodes
	}
	if sum != 900 {
		t.Fatalf("divide sum: got=%d want=900", sum)
	}
}
