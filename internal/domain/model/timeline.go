package model

// NoDecade is the sentinel index for a decade label that is not part of the
// timeline. Callers treat it as "not comparable" rather than an error.
const NoDecade = -1

// Timeline is the externally supplied, chronologically ordered decade
// sequence. Every ordering decision in the engine — consecutive pairs,
// first/last appearance, absence gaps — goes through the positional index,
// never lexical comparison of the labels.
type Timeline struct {
	decades []string
	index   map[string]int
}

// NewTimeline builds a timeline from labels already in chronological order.
// Duplicate labels keep their first position.
func NewTimeline(decades []string) *Timeline {
	t := &Timeline{
		decades: make([]string, 0, len(decades)),
		index:   make(map[string]int, len(decades)),
	}
	for _, d := range decades {
		if _, ok := t.index[d]; ok {
			continue
		}
		t.index[d] = len(t.decades)
		t.decades = append(t.decades, d)
	}
	return t
}

// Index returns the position of decade in the sequence, or NoDecade when the
// label is unknown.
func (t *Timeline) Index(decade string) int {
	i, ok := t.index[decade]
	if !ok {
		return NoDecade
	}
	return i
}

// At returns the label at position i, or "" when out of range.
func (t *Timeline) At(i int) string {
	if i < 0 || i >= len(t.decades) {
		return ""
	}
	return t.decades[i]
}

// Len returns the number of decades in the sequence.
func (t *Timeline) Len() int {
	return len(t.decades)
}

// Decades returns a copy of the ordered labels.
func (t *Timeline) Decades() []string {
	out := make([]string, len(t.decades))
	copy(out, t.decades)
	return out
}

// Pair is a chronologically consecutive (from, to) decade pair.
type Pair struct {
	From string
	To   string
}

// ConsecutivePairs enumerates every adjacent decade pair in order.
func (t *Timeline) ConsecutivePairs() []Pair {
	if len(t.decades) < 2 {
		return nil
	}
	pairs := make([]Pair, 0, len(t.decades)-1)
	for i := 1; i < len(t.decades); i++ {
		pairs = append(pairs, Pair{From: t.decades[i-1], To: t.decades[i]})
	}
	return pairs
}
