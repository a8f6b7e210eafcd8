package antlr

import (
	"sort"
	"testing"
)

func setOf(pairs ...int) *IntervalSet {
	if len(pairs)%2 != 0 {
		panic("setOf needs start/stop pairs")
	}
	s := NewIntervalSet()
	for i := 0; i < len(pairs); i += 2 {
		s.AddRange(pairs[i], pairs[i+1])
	}
	return s
}

func checkCanonical(t *testing.T, s *IntervalSet) {
	t.Helper()
	ivs := s.Intervals()
	for i, iv := range ivs {
		if iv.Stop < iv.Start {
			t.Fatalf("interval %d is empty: %v", i, iv)
		}
		if i > 0 && ivs[i-1].Stop+1 >= iv.Start {
			t.Fatalf("intervals %d and %d overlap or touch: %v, %v", i-1, i, ivs[i-1], iv)
		}
	}
}

func TestIntervalLength(t *testing.T) {
	tests := []struct {
		start, stop int
		want        int
	}{
		{0, 0, 1},
		{3, 7, 5},
		{5, 4, 0},
	}
	for _, tt := range tests {
		if got := NewInterval(tt.start, tt.stop).Length(); got != tt.want {
			t.Fatalf("Length(%d..%d) = %d, want %d", tt.start, tt.stop, got, tt.want)
		}
	}
}

func TestIntervalSetAddMergesAdjacentAndOverlapping(t *testing.T) {
	tests := []struct {
		name string
		add  [][2]int
		want [][2]int
	}{
		{"disjoint", [][2]int{{1, 3}, {7, 9}}, [][2]int{{1, 3}, {7, 9}}},
		{"adjacent", [][2]int{{1, 3}, {4, 6}}, [][2]int{{1, 6}}},
		{"overlap", [][2]int{{1, 5}, {3, 9}}, [][2]int{{1, 9}}},
		{"contained", [][2]int{{1, 9}, {3, 5}}, [][2]int{{1, 9}}},
		{"bridge", [][2]int{{1, 2}, {6, 8}, {3, 5}}, [][2]int{{1, 8}}},
		{"out of order", [][2]int{{7, 9}, {1, 3}}, [][2]int{{1, 3}, {7, 9}}},
		{"swallow several", [][2]int{{1, 2}, {4, 5}, {7, 8}, {0, 10}}, [][2]int{{0, 10}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewIntervalSet()
			for _, r := range tt.add {
				s.AddRange(r[0], r[1])
			}
			checkCanonical(t, s)
			got := s.Intervals()
			if len(got) != len(tt.want) {
				t.Fatalf("got %v, want %v", got, tt.want)
			}
			for i, w := range tt.want {
				if got[i].Start != w[0] || got[i].Stop != w[1] {
					t.Fatalf("interval %d = %v, want %v", i, got[i], w)
				}
			}
		})
	}
}

func TestIntervalSetContainsAgreesWithToList(t *testing.T) {
	s := setOf(2, 5, 9, 9, 20, 30)
	list := s.ToList()
	for v := 0; v <= 35; v++ {
		i := sort.SearchInts(list, v)
		inList := i < len(list) && list[i] == v
		if got := s.Contains(v); got != inList {
			t.Fatalf("Contains(%d) = %v, list membership %v", v, got, inList)
		}
	}
}

func TestIntervalSetAlgebraLaws(t *testing.T) {
	a := setOf(1, 5, 10, 20)
	b := setOf(3, 12, 18, 25)
	vocab := setOf(0, 30)

	if !a.Union(b).Equals(b.Union(a)) {
		t.Fatal("union is not commutative")
	}
	if !a.Intersection(b).Equals(b.Intersection(a)) {
		t.Fatal("intersection is not commutative")
	}

	diff := a.Subtract(b)
	checkCanonical(t, diff)
	for _, v := range diff.ToList() {
		if !a.Contains(v) {
			t.Fatalf("A \\ B contains %d, missing from A", v)
		}
	}
	if got := diff.Intersection(b); got.Length() != 0 {
		t.Fatalf("(A \\ B) ∩ B = %v, want empty", got)
	}

	roundTrip := a.Complement(vocab).Complement(vocab)
	if !roundTrip.Equals(a.Intersection(vocab)) {
		t.Fatalf("complement round trip = %v, want %v", roundTrip, a.Intersection(vocab))
	}
}

func TestIntervalSetSubtract(t *testing.T) {
	tests := []struct {
		name        string
		left, right *IntervalSet
		want        *IntervalSet
	}{
		{"split middle", setOf(1, 10), setOf(4, 6), setOf(1, 3, 7, 10)},
		{"clip left", setOf(1, 10), setOf(0, 3), setOf(4, 10)},
		{"clip right", setOf(1, 10), setOf(8, 12), setOf(1, 7)},
		{"cover all", setOf(5, 6), setOf(1, 20), NewIntervalSet()},
		{"no overlap", setOf(1, 3), setOf(5, 9), setOf(1, 3)},
		{"one right spans two lefts", setOf(1, 4, 8, 12), setOf(3, 9), setOf(1, 2, 10, 12)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.left.Subtract(tt.right)
			checkCanonical(t, got)
			if !got.Equals(tt.want) {
				t.Fatalf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIntervalSetMinMaxLength(t *testing.T) {
	s := setOf(3, 5, 9, 9, 12, 14)
	if got := s.Min(); got != 3 {
		t.Fatalf("Min = %d, want 3", got)
	}
	if got := s.Max(); got != 14 {
		t.Fatalf("Max = %d, want 14", got)
	}
	if got := s.Length(); got != 7 {
		t.Fatalf("Length = %d, want 7", got)
	}
}

func TestIntervalSetReadOnlyRejectsMutation(t *testing.T) {
	s := setOf(1, 3)
	s.SetReadOnly(true)

	func() {
		defer func() {
			if recover() == nil {
				t.Fatal("AddRange on read-only set did not panic")
			}
		}()
		s.AddRange(5, 7)
	}()

	func() {
		defer func() {
			if recover() == nil {
				t.Fatal("thawing a read-only set did not panic")
			}
		}()
		s.SetReadOnly(false)
	}()
}

func TestIntervalSetEmptyMinPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("Min of empty set did not panic")
		}
	}()
	NewIntervalSet().Min()
}
