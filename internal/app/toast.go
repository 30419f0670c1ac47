package app

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
)

// maxToasts bounds the transient notification stack; pushing beyond it
// drops the oldest entry.
const maxToasts = 3

// Toast is one transient notification. The uuid identity lets the timed
// expiry remove exactly the toast it was scheduled for, even after the
// stack has shifted.
type Toast struct {
	ID   uuid.UUID
	Text string
}

// toastExpiredMsg re-enters the update loop when a toast's TTL elapses, so
// removal happens on the same single-writer path as every other mutation.
type toastExpiredMsg struct {
	ID uuid.UUID
}

// pushToast appends a toast and returns the command that expires it.
func (m *Model) pushToast(text string) tea.Cmd {
	t := Toast{ID: uuid.New(), Text: text}
	m.toasts = append(m.toasts, t)
	if len(m.toasts) > maxToasts {
		m.toasts = m.toasts[len(m.toasts)-maxToasts:]
	}

	ttl := time.Duration(m.cfg.ToastSeconds) * time.Second
	return tea.Tick(ttl, func(time.Time) tea.Msg {
		return toastExpiredMsg{ID: t.ID}
	})
}

// removeToast drops the toast with the given identity. A toast already
// evicted by the cap is a no-op.
func (m *Model) removeToast(id uuid.UUID) {
	for i, t := range m.toasts {
		if t.ID == id {
			m.toasts = append(m.toasts[:i], m.toasts[i+1:]...)
			return
		}
	}
}
