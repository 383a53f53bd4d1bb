// Package toast manages the transient notification queue. Each toast carries
// its own expiry; firing the timer and dismissing by hand share one
// idempotent removal path.
package toast

import (
	"time"

	"github.com/google/uuid"
)

// Timeout is how long a toast stays visible. Severity does not change it.
const Timeout = 3 * time.Second

type Variant int

const (
	VariantInfo Variant = iota
	VariantError
)

type Toast struct {
	ID      uuid.UUID
	Title   string
	Variant Variant
}

// Queue holds active toasts in insertion order.
type Queue struct {
	toasts []Toast
}

func NewQueue() *Queue {
	return &Queue{}
}

// Push appends a toast and returns it so the caller can schedule its expiry
// timer keyed by ID.
func (q *Queue) Push(title string, variant Variant) Toast {
	t := Toast{
		ID:      uuid.New(),
		Title:   title,
		Variant: variant,
	}
	q.toasts = append(q.toasts, t)
	return t
}

// Remove drops the toast with the given id. Removing an id that is no longer
// present is a no-op, so a timer firing after a manual dismissal is harmless.
func (q *Queue) Remove(id uuid.UUID) {
	for i, t := range q.toasts {
		if t.ID == id {
			q.toasts = append(q.toasts[:i], q.toasts[i+1:]...)
			return
		}
	}
}

// Active returns the toasts in display order.
func (q *Queue) Active() []Toast {
	return q.toasts
}

func (q *Queue) Len() int {
	return len(q.toasts)
}
