package inventory

import (
	"fmt"
	"time"
)

// JournalEntry is one timestamped record of an add operation.
type JournalEntry struct {
	ID      string
	At      time.Time
	Message string
}

func (e JournalEntry) String() string {
	return fmt.Sprintf("%s: %s", e.At.Format(time.RFC3339), e.Message)
}

// Journal is the in-memory action log. It records successful add operations
// for the lifetime of the process and is never persisted.
type Journal struct {
	entries []JournalEntry
}

func NewJournal() *Journal {
	return &Journal{}
}

// Append records an entry. The caller supplies the id; timestamps are taken
// at append time.
func (j *Journal) Append(id, message string) JournalEntry {
	entry := JournalEntry{
		ID:      id,
		At:      time.Now().UTC(),
		Message: message,
	}
	j.entries = append(j.entries, entry)
	return entry
}

// Entries returns a copy of the recorded entries in append order.
func (j *Journal) Entries() []JournalEntry {
	return append([]JournalEntry(nil), j.entries...)
}

func (j *Journal) Len() int {
	return len(j.entries)
}
