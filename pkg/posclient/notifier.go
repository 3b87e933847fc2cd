package posclient

import (
	"sync"
	"time"
)

type ToastKind string

const (
	ToastSuccess ToastKind = "success"
	ToastError   ToastKind = "error"
	ToastWarning ToastKind = "warning"
)

const ToastTTL = 3 * time.Second

type Toast struct {
	ID        int
	Kind      ToastKind
	Message   string
	ExpiresAt time.Time
}

// Notifier keeps the transient messages shown after an action. Toasts expire
// on their own after ToastTTL.
type Notifier struct {
	mu     sync.Mutex
	now    func() time.Time
	nextID int
	toasts []Toast
}

func NewNotifier() *Notifier {
	return &Notifier{now: time.Now}
}

// WithClock replaces the time source, mostly for tests.
func (n *Notifier) WithClock(now func() time.Time) *Notifier {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.now = now
	return n
}

func (n *Notifier) Push(kind ToastKind, message string) Toast {
	n.mu.Lock()
	defer n.mu.Unlock()

	n.nextID++
	t := Toast{
		ID:        n.nextID,
		Kind:      kind,
		Message:   message,
		ExpiresAt: n.now().Add(ToastTTL),
	}
	n.toasts = append(n.toasts, t)
	return t
}

func (n *Notifier) Success(message string) Toast { return n.Push(ToastSuccess, message) }
func (n *Notifier) Error(message string) Toast   { return n.Push(ToastError, message) }
func (n *Notifier) Warning(message string) Toast { return n.Push(ToastWarning, message) }

// Dismiss removes a toast before it expires.
func (n *Notifier) Dismiss(id int) {
	n.mu.Lock()
	defer n.mu.Unlock()

	for i, t := range n.toasts {
		if t.ID == id {
			n.toasts = append(n.toasts[:i], n.toasts[i+1:]...)
			return
		}
	}
}

// Active returns the toasts still visible, oldest first, and forgets the
// expired ones.
func (n *Notifier) Active() []Toast {
	n.mu.Lock()
	defer n.mu.Unlock()

	now := n.now()
	live := n.toasts[:0]
	for _, t := range n.toasts {
		if now.Before(t.ExpiresAt) {
			live = append(live, t)
		}
	}
	n.toasts = live
	return append([]Toast(nil), live...)
}
