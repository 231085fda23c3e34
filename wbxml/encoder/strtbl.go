package encoder

import "sort"

// tableOverhead is the fixed cost (in bytes) of adding one more
// candidate entry to the emitted string table: the NUL terminator plus
// the machinery of referencing it back with a mb_u32 offset instead of
// an inline STR_I. A candidate that is not forced earns its place only
// when it occurs at least twice and its length exceeds this.
const tableOverhead = 2

// stringTable is the encoder-side string table built during the
// pre-pass over a Tree, per spec.md §4.5: an ordered list of
// (string, offset, refcount), built once and emitted once.
type stringTable struct {
	order   []string
	offsets map[string]uint32
	counts  map[string]int
	blob    []byte
	enabled bool
}

func newStringTable(enabled bool) *stringTable {
	return &stringTable{
		offsets: map[string]uint32{},
		counts:  map[string]int{},
		enabled: enabled,
	}
}

// count records one occurrence of s as a candidate for inclusion.
// Literal tag/attribute names are always counted so the "string table
// disabled yet a literal is needed" failure can be detected up front.
func (st *stringTable) count(s string) {
	if s == "" {
		return
	}
	if _, seen := st.counts[s]; !seen {
		st.order = append(st.order, s)
	}
	st.counts[s]++
}

// finalize selects which counted strings are worth placing in the
// table (count >= 2 and long enough to pay for the reference overhead,
// or forced) and assigns each a byte offset, in first-seen order for
// determinism (spec.md §4.5, §8's "string-table references resolve").
func (st *stringTable) finalize(forced map[string]bool) {
	if !st.enabled {
		return
	}
	for _, s := range st.order {
		if !forced[s] && !(st.counts[s] >= 2 && len(s) > tableOverhead) {
			continue
		}
		if _, already := st.offsets[s]; already {
			continue
		}
		st.offsets[s] = uint32(len(st.blob))
		st.blob = append(st.blob, []byte(s)...)
		st.blob = append(st.blob, 0x00)
	}
}

// offsetOf returns s's assigned offset in the table and whether it has
// one.
func (st *stringTable) offsetOf(s string) (uint32, bool) {
	off, ok := st.offsets[s]
	return off, ok
}

// sortedKeys is a small test helper kept here because the pre-pass
// itself never needs to enumerate the map, only look entries up.
func (st *stringTable) sortedKeys() []string {
	keys := make([]string, 0, len(st.offsets))
	for k := range st.offsets {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
