// Package modals defines the overlay contract used by the chat screen and the
// shared option/selection state of dialog boxes.
package modals

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Modal is an overlay that takes all key input until it is done.
type Modal interface {
	Update(msg tea.Msg) tea.Cmd
	ViewRegion(width, height int) string
	Done() bool
}

// ModalOption is one choice in a dialog. OnSelect may return a command for
// the update loop; nil is allowed.
type ModalOption struct {
	Label    string
	OnSelect func() tea.Cmd
}

// BaseModal carries the message, options and selection shared by dialogs.
type BaseModal struct {
	Message  string
	Options  []ModalOption
	Selected int
	done     bool
}

// Close marks the modal as finished.
func (b *BaseModal) Close() { b.done = true }

// Done reports whether the modal has been closed.
func (b *BaseModal) Done() bool { return b.done }

// Prev moves the selection back, wrapping around.
func (b *BaseModal) Prev() {
	if len(b.Options) == 0 {
		return
	}
	b.Selected = (b.Selected + len(b.Options) - 1) % len(b.Options)
}

// Next moves the selection forward, wrapping around.
func (b *BaseModal) Next() {
	if len(b.Options) == 0 {
		return
	}
	b.Selected = (b.Selected + 1) % len(b.Options)
}

// Choose runs the selected option and closes the modal.
func (b *BaseModal) Choose() tea.Cmd {
	if b.Selected < 0 || b.Selected >= len(b.Options) {
		return nil
	}
	b.Close()
	if fn := b.Options[b.Selected].OnSelect; fn != nil {
		return fn()
	}
	return nil
}
