package model

// BrowserModel tracks the image files of the current folder and the
// position of the open file within them, for next/previous navigation.
// The zero value is an empty listing. Not concurrency-safe.
type BrowserModel struct {
	entries []string
	index   int
}

// SetEntries replaces the folder listing and positions the cursor on
// current. If current is missing from the listing (for example a file whose
// folder scan raced a deletion) it is appended so navigation still works.
func (m *BrowserModel) SetEntries(entries []string, current string) {
	m.entries = entries
	m.index = -1
	for i, e := range m.entries {
		if e == current {
			m.index = i
			break
		}
	}
	if m.index < 0 && current != "" {
		m.entries = append(m.entries, current)
		m.index = len(m.entries) - 1
	}
	if m.index < 0 {
		m.index = 0
	}
}

// Len returns the number of entries.
func (m *BrowserModel) Len() int { return len(m.entries) }

// Current returns the path under the cursor, or "" when empty.
func (m *BrowserModel) Current() string {
	if len(m.entries) == 0 {
		return ""
	}
	return m.entries[m.index]
}

// Position returns the 1-based cursor position and the entry count.
func (m *BrowserModel) Position() (int, int) {
	if len(m.entries) == 0 {
		return 0, 0
	}
	return m.index + 1, len(m.entries)
}

// Next advances the cursor, wrapping at the end, and returns the new path.
func (m *BrowserModel) Next() string {
	if len(m.entries) == 0 {
		return ""
	}
	m.index = (m.index + 1) % len(m.entries)
	return m.entries[m.index]
}

// Prev moves the cursor back, wrapping at the start, and returns the new path.
func (m *BrowserModel) Prev() string {
	if len(m.entries) == 0 {
		return ""
	}
	m.index = (m.index - 1 + len(m.entries)) % len(m.entries)
	return m.entries[m.index]
}

// Neighbors returns the wrap-around next and previous paths without moving
// the cursor. Used to warm the image cache ahead of navigation.
func (m *BrowserModel) Neighbors() []string {
	n := len(m.entries)
	if n < 2 {
		return nil
	}
	next := m.entries[(m.index+1)%n]
	prev := m.entries[(m.index-1+n)%n]
	if next == prev {
		return []string{next}
	}
	return []string{next, prev}
}
