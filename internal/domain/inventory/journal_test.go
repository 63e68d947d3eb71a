package inventory

import "testing"

func TestJournal_AppendOrder(t *testing.T) {
	j := NewJournal()

	j.Append("id-1", "Added 10 of apple")
	j.Append("id-2", "Added 15 of banana")

	entries := j.Entries()
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].Message != "Added 10 of apple" || entries[1].Message != "Added 15 of banana" {
		t.Errorf("unexpected order: %v", entries)
	}
	if entries[0].At.IsZero() {
		t.Error("expected timestamp on entry")
	}
}

func TestJournal_EntriesReturnsCopy(t *testing.T) {
	j := NewJournal()
	j.Append("id-1", "Added 10 of apple")

	entries := j.Entries()
	entries[0].Message = "tampered"

	if j.Entries()[0].Message != "Added 10 of apple" {
		t.Error("Entries should return an independent copy")
	}
}
