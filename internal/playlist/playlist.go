package playlist

// Entry is a staged clip. It is a value snapshot taken when the clip is
// added: later changes to the catalogue do not affect it.
type Entry struct {
	Transcription string
	File          string // path relative to the sound root
}

// Playlist holds an ordered collection of entries.
type Playlist struct {
	entries []Entry
}

// NewPlaylist creates a new empty playlist.
func NewPlaylist() *Playlist {
	return &Playlist{
		entries: make([]Entry, 0),
	}
}

// Add appends entries to the playlist.
func (p *Playlist) Add(entries ...Entry) {
	p.entries = append(p.entries, entries...)
}

// Remove removes the entry at the given index.
// Returns false if index is out of bounds.
func (p *Playlist) Remove(index int) bool {
	if index < 0 || index >= len(p.entries) {
		return false
	}
	p.entries = append(p.entries[:index], p.entries[index+1:]...)
	return true
}

// Clear removes all entries from the playlist.
func (p *Playlist) Clear() {
	p.entries = p.entries[:0]
}

// Entries returns a copy of all entries.
func (p *Playlist) Entries() []Entry {
	result := make([]Entry, len(p.entries))
	copy(result, p.entries)
	return result
}

// Entry returns the entry at the given index, or nil if out of bounds.
func (p *Playlist) Entry(index int) *Entry {
	if index < 0 || index >= len(p.entries) {
		return nil
	}
	return &p.entries[index]
}

// Len returns the number of entries.
func (p *Playlist) Len() int {
	return len(p.entries)
}

// Move moves the entry at fromIndex to toIndex.
// Returns false if either index is out of bounds.
func (p *Playlist) Move(fromIndex, toIndex int) bool {
	if fromIndex < 0 || fromIndex >= len(p.entries) {
		return false
	}
	if toIndex < 0 || toIndex >= len(p.entries) {
		return false
	}
	if fromIndex == toIndex {
		return true
	}

	e := p.entries[fromIndex]
	p.entries = append(p.entries[:fromIndex], p.entries[fromIndex+1:]...)
	p.entries = append(p.entries[:toIndex], append([]Entry{e}, p.entries[toIndex:]...)...)
	return true
}
