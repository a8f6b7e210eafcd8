package antlr

import (
	"sort"
	"strconv"
	"strings"
)

// IntervalPoolMaxValue bounds the table of preallocated single-code-point
// intervals. Lookups above it allocate normally.
const IntervalPoolMaxValue = 1000

// Interval is an inclusive range of code points. Stop < Start means empty.
type Interval struct {
	Start int
	Stop  int
}

var singletonIntervals = func() []Interval {
	pool := make([]Interval, IntervalPoolMaxValue+1)
	for i := range pool {
		pool[i] = Interval{Start: i, Stop: i}
	}
	return pool
}()

// NewInterval returns the interval [start, stop], both bounds inclusive.
func NewInterval(start, stop int) Interval {
	if start == stop && start >= 0 && start <= IntervalPoolMaxValue {
		return singletonIntervals[start]
	}
	return Interval{Start: start, Stop: stop}
}

// Length is the number of code points in the interval.
func (i Interval) Length() int {
	if i.Stop < i.Start {
		return 0
	}
	return i.Stop - i.Start + 1
}

func (i Interval) Contains(v int) bool {
	return v >= i.Start && v <= i.Stop
}

func (i Interval) String() string {
	if i.Start == i.Stop {
		return strconv.Itoa(i.Start)
	}
	return strconv.Itoa(i.Start) + ".." + strconv.Itoa(i.Stop)
}

// IntervalSet is a set of code points stored as sorted, disjoint,
// non-adjacent intervals. A set starts out mutable; once marked read-only
// every mutation panics.
type IntervalSet struct {
	intervals []Interval
	readOnly  bool
}

// NewIntervalSet returns an empty mutable set.
func NewIntervalSet() *IntervalSet {
	return &IntervalSet{}
}

// NewIntervalSetOf returns a set holding the single range [start, stop].
func NewIntervalSetOf(start, stop int) *IntervalSet {
	s := NewIntervalSet()
	s.AddRange(start, stop)
	return s
}

func (s *IntervalSet) checkMutable() {
	if s.readOnly {
		panic("interval set: mutation of read-only set")
	}
}

// SetReadOnly freezes the set. The transition is one-way: thawing a frozen
// set panics.
func (s *IntervalSet) SetReadOnly(readOnly bool) {
	if s.readOnly && !readOnly {
		panic("interval set: cannot thaw read-only set")
	}
	s.readOnly = readOnly
}

func (s *IntervalSet) IsReadOnly() bool {
	return s.readOnly
}

// AddOne adds the single code point v.
func (s *IntervalSet) AddOne(v int) {
	s.AddInterval(NewInterval(v, v))
}

// AddRange adds every code point in [start, stop].
func (s *IntervalSet) AddRange(start, stop int) {
	s.AddInterval(NewInterval(start, stop))
}

// AddInterval inserts addition in sorted position, merging it with any
// overlapping or adjacent neighbors so the canonical form holds.
func (s *IntervalSet) AddInterval(addition Interval) {
	s.checkMutable()
	if addition.Length() == 0 {
		return
	}
	pos := sort.Search(len(s.intervals), func(i int) bool {
		return s.intervals[i].Start > addition.Start
	})
	// The predecessor may absorb the addition or merge with it.
	if pos > 0 && s.intervals[pos-1].Stop+1 >= addition.Start {
		pos--
		if addition.Stop <= s.intervals[pos].Stop {
			return
		}
		addition = Interval{Start: s.intervals[pos].Start, Stop: addition.Stop}
	} else {
		s.intervals = append(s.intervals, Interval{})
		copy(s.intervals[pos+1:], s.intervals[pos:])
	}
	s.intervals[pos] = addition
	// Swallow successors covered by or adjacent to the grown interval.
	end := pos + 1
	for end < len(s.intervals) && s.intervals[end].Start <= addition.Stop+1 {
		if s.intervals[end].Stop > s.intervals[pos].Stop {
			s.intervals[pos].Stop = s.intervals[end].Stop
		}
		end++
	}
	s.intervals = append(s.intervals[:pos+1], s.intervals[end:]...)
}

// AddSet adds every interval of other to s.
func (s *IntervalSet) AddSet(other *IntervalSet) *IntervalSet {
	if other != nil {
		for _, iv := range other.intervals {
			s.AddInterval(iv)
		}
	}
	return s
}

// Contains reports whether v is a member of the set.
func (s *IntervalSet) Contains(v int) bool {
	n := len(s.intervals)
	lo, hi := 0, n-1
	for lo <= hi {
		mid := (lo + hi) / 2
		iv := s.intervals[mid]
		switch {
		case iv.Stop < v:
			lo = mid + 1
		case iv.Start > v:
			hi = mid - 1
		default:
			return true
		}
	}
	return false
}

// Length is the total number of code points in the set.
func (s *IntervalSet) Length() int {
	n := 0
	for _, iv := range s.intervals {
		n += iv.Length()
	}
	return n
}

// Min returns the smallest member. Panics on an empty set.
func (s *IntervalSet) Min() int {
	if len(s.intervals) == 0 {
		panic("interval set: min of empty set")
	}
	return s.intervals[0].Start
}

// Max returns the largest member. Panics on an empty set.
func (s *IntervalSet) Max() int {
	if len(s.intervals) == 0 {
		panic("interval set: max of empty set")
	}
	return s.intervals[len(s.intervals)-1].Stop
}

// Union returns a new mutable set holding every member of s and other.
func (s *IntervalSet) Union(other *IntervalSet) *IntervalSet {
	out := NewIntervalSet()
	out.AddSet(s)
	out.AddSet(other)
	return out
}

// Intersection returns a new set holding the members common to s and other.
func (s *IntervalSet) Intersection(other *IntervalSet) *IntervalSet {
	out := NewIntervalSet()
	if other == nil {
		return out
	}
	i, j := 0, 0
	for i < len(s.intervals) && j < len(other.intervals) {
		a, b := s.intervals[i], other.intervals[j]
		lo, hi := a.Start, a.Stop
		if b.Start > lo {
			lo = b.Start
		}
		if b.Stop < hi {
			hi = b.Stop
		}
		if lo <= hi {
			out.AddRange(lo, hi)
		}
		if a.Stop < b.Stop {
			i++
		} else {
			j++
		}
	}
	return out
}

// Subtract returns a new set holding the members of s not in other. Both
// inputs are walked once; each interval of s splits at most into the pieces
// left of and right of the current interval of other.
func (s *IntervalSet) Subtract(other *IntervalSet) *IntervalSet {
	out := NewIntervalSet()
	if other == nil || len(other.intervals) == 0 {
		return out.AddSet(s)
	}
	j := 0
	for _, iv := range s.intervals {
		start := iv.Start
		for j < len(other.intervals) && start <= iv.Stop {
			r := other.intervals[j]
			if r.Stop < start {
				j++
				continue
			}
			if r.Start > iv.Stop {
				break
			}
			if r.Start > start {
				out.AddRange(start, r.Start-1)
			}
			start = r.Stop + 1
			if start > iv.Stop {
				break
			}
			j++
		}
		if start <= iv.Stop {
			out.AddRange(start, iv.Stop)
		}
	}
	return out
}

// Complement returns vocabulary \ s.
func (s *IntervalSet) Complement(vocabulary *IntervalSet) *IntervalSet {
	return vocabulary.Subtract(s)
}

// ComplementRange returns [minVocab, maxVocab] \ s.
func (s *IntervalSet) ComplementRange(minVocab, maxVocab int) *IntervalSet {
	return s.Complement(NewIntervalSetOf(minVocab, maxVocab))
}

// Intervals exposes the sorted backing intervals. Callers must not mutate.
func (s *IntervalSet) Intervals() []Interval {
	return s.intervals
}

// ToList enumerates the members in ascending order.
func (s *IntervalSet) ToList() []int {
	out := make([]int, 0, s.Length())
	for _, iv := range s.intervals {
		for v := iv.Start; v <= iv.Stop; v++ {
			out = append(out, v)
		}
	}
	return out
}

// Equals reports structural equality.
func (s *IntervalSet) Equals(other *IntervalSet) bool {
	if other == nil || len(s.intervals) != len(other.intervals) {
		return false
	}
	for i, iv := range s.intervals {
		if iv != other.intervals[i] {
			return false
		}
	}
	return true
}

func (s *IntervalSet) String() string {
	if len(s.intervals) == 0 {
		return "{}"
	}
	var sb strings.Builder
	if s.Length() > 1 {
		sb.WriteByte('{')
	}
	for i, iv := range s.intervals {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(iv.String())
	}
	if s.Length() > 1 {
		sb.WriteByte('}')
	}
	return sb.String()
}
