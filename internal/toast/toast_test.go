package toast

import "testing"

func TestPushAssignsUniqueIDs(t *testing.T) {
	t.Parallel()

	q := NewQueue()
	first := q.Push("Saved", VariantInfo)
	second := q.Push("Saved", VariantInfo)

	if first.ID == second.ID {
		t.Fatal("expected distinct toast ids")
	}
	if q.Len() != 2 {
		t.Fatalf("expected 2 toasts, got %d", q.Len())
	}
}

func TestRemoveIsIdempotent(t *testing.T) {
	t.Parallel()

	q := NewQueue()
	saved := q.Push("Saved", VariantInfo)

	q.Remove(saved.ID)
	if q.Len() != 0 {
		t.Fatalf("expected empty queue, got %d", q.Len())
	}

	q.Remove(saved.ID)
	if q.Len() != 0 {
		t.Fatalf("second removal mutated the queue: %d", q.Len())
	}
}

func TestRemoveKeepsInsertionOrder(t *testing.T) {
	t.Parallel()

	q := NewQueue()
	first := q.Push("first", VariantInfo)
	middle := q.Push("middle", VariantError)
	last := q.Push("last", VariantInfo)

	q.Remove(middle.ID)

	active := q.Active()
	if len(active) != 2 {
		t.Fatalf("expected 2 toasts, got %d", len(active))
	}
	if active[0].ID != first.ID || active[1].ID != last.ID {
		t.Fatal("removal disturbed display order")
	}
}
