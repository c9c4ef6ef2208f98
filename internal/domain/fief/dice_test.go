package fief

import "testing"

func TestSeededDice_Deterministic(t *testing.T) {
	a := NewDice(99)
	b := NewDice(99)
	for i := 0; i < 50; i++ {
		if ra, rb := a.Roll(100), b.Roll(100); ra != rb {
			t.Fatalf("same seed diverged at %d: %d vs %d", i, ra, rb)
		}
	}
}

func TestSeededDice_Ranges(t *testing.T) {
	d := NewDice(1)
	for i := 0; i < 1000; i++ {
		if v := d.Roll(6); v < 1 || v > 6 {
			t.Fatalf("roll out of range: %d", v)
		}
		if v := d.Between(5, 15); v < 5 || v > 15 {
			t.Fatalf("between out of range: %d", v)
		}
		if v := d.Index(10); v < 0 || v > 9 {
			t.Fatalf("index out of range: %d", v)
		}
	}
	if v := d.Between(7, 7); v != 7 {
		t.Fatalf("degenerate range got=%d want=7", v)
	}
	if v := d.Roll(1); v != 1 {
		t.Fatalf("one-sided roll got=%d want=1", v)
	}
}

func TestSeededDice_ChanceExtremes(t *testing.T) {
	d := NewDice(3)
	for i := 0; i < 100; i++ {
		if d.Chance(0) {
			t.Fatal("0% chance fired")
		}
		if !d.Chance(100) {
			t.Fatal("100% chance missed")
		}
	}
}

func TestSeededDice_ShufflePermutes(t *testing.T) {
	d := NewDice(5)
	vals := []int{0, 1, 2, 3, 4, 5, 6, 7}
	d.Shuffle(len(vals), func(i, j int) { vals[i], vals[j] = vals[j], vals[i] })

	seen := map[int]bool{}
	for _, v := range vals {
		seen[v] = true
	}
	if len(seen) != 8 {
		t.Fatalf("shuffle lost elements: %v", vals)
	}
}
