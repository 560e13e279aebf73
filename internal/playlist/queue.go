package playlist

// Run is a frozen copy of the staged entries with a cursor. A run is what
// actually plays: edits to the staging playlist after PlayAll do not reach it.
type Run struct {
	entries      []Entry
	currentIndex int // -1 before the first entry
}

func newRun(entries []Entry) *Run {
	snapshot := make([]Entry, len(entries))
	copy(snapshot, entries)
	return &Run{entries: snapshot, currentIndex: -1}
}

// Current returns the entry at the cursor, or nil.
func (r *Run) Current() *Entry {
	if r.currentIndex < 0 || r.currentIndex >= len(r.entries) {
		return nil
	}
	return &r.entries[r.currentIndex]
}

// CurrentIndex returns the cursor position (-1 if not started).
func (r *Run) CurrentIndex() int {
	return r.currentIndex
}

// HasNext returns true if there's an entry after the current one.
func (r *Run) HasNext() bool {
	return r.currentIndex < len(r.entries)-1
}

// Next advances the cursor and returns the new entry, or nil at the end.
func (r *Run) Next() *Entry {
	if !r.HasNext() {
		return nil
	}
	r.currentIndex++
	return r.Current()
}

// Len returns the number of entries in the run.
func (r *Run) Len() int {
	return len(r.entries)
}
