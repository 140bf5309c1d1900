// composite.go - CompositeChatViewState is the chat screen: chat list, message
// thread and composer side by side, with a modal stack on top.

package chat

import (
	"fmt"
	"log/slog"
	"time"

	"chatflow/src/components/chatwindow"
	"chatflow/src/components/input"
	"chatflow/src/components/modals"
	"chatflow/src/components/modals/dialogs"
	"chatflow/src/components/sidebar"
	"chatflow/src/models"
	"chatflow/src/services/chatstore"
	"chatflow/src/types"

	tea "github.com/charmbracelet/bubbletea"
)

// FocusType names the pane that receives keys.
type FocusType int

const (
	FocusList FocusType = iota
	FocusThread
	FocusInput
)

func (f FocusType) String() string {
	switch f {
	case FocusList:
		return "list"
	case FocusThread:
		return "thread"
	default:
		return "input"
	}
}

const defaultStatusTTL = 3 * time.Second

// LogoutRequestedMsg is emitted once the user confirmed signing out. The root
// app clears the profile and resets the session.
type LogoutRequestedMsg struct{}

type statusExpiredMsg struct{ seq int }

// CompositeChatViewState holds the panes of the chat screen. All chat state
// lives in the session; the panes only keep cursors.
type CompositeChatViewState struct {
	Session *chatstore.Session
	User    *models.User
	Sidebar *sidebar.SidebarModel
	Window  *chatwindow.ChatWindowModel
	Input   *input.InputModel
	Focus   FocusType

	ModalStack []modals.Modal

	now       func() time.Time
	logger    *slog.Logger
	status    string
	statusSeq int
	statusTTL time.Duration
	width     int
	height    int
}

var _ types.ViewState = (*CompositeChatViewState)(nil)

// Option configures the chat screen.
type Option func(*CompositeChatViewState)

// WithClock sets the time source used for relative ages.
func WithClock(now func() time.Time) Option {
	return func(c *CompositeChatViewState) { c.now = now }
}

// WithStatusTTL sets how long a status line stays in the footer.
func WithStatusTTL(d time.Duration) Option {
	return func(c *CompositeChatViewState) { c.statusTTL = d }
}

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *CompositeChatViewState) { c.logger = logger }
}

// WithWindowOptions passes options to the thread pane, e.g. a clipboard stub.
func WithWindowOptions(opts ...chatwindow.Option) Option {
	return func(c *CompositeChatViewState) {
		c.Window = chatwindow.NewChatWindowModel(c.Session, opts...)
	}
}

// NewCompositeChatViewState builds the chat screen for user over session.
func NewCompositeChatViewState(session *chatstore.Session, user *models.User, opts ...Option) *CompositeChatViewState {
	c := &CompositeChatViewState{
		Session: session,
		User:    user,
		Input:   input.New("Type a message..."),
		Focus:   FocusList,
		now:     time.Now,
		logger:  slog.Default(),
		width:   100,
		height:  30,

		statusTTL: defaultStatusTTL,
	}
	c.Window = chatwindow.NewChatWindowModel(session)
	for _, opt := range opts {
		opt(c)
	}
	c.Sidebar = sidebar.NewSidebarModel(session, c.now)
	c.applyFocus()
	c.layout()
	return c
}

func (c *CompositeChatViewState) ViewType() types.ViewType { return types.ChatStateType }

func (c *CompositeChatViewState) Init() tea.Cmd { return nil }

// Status returns the transient status line, empty when none is shown.
func (c *CompositeChatViewState) Status() string { return c.status }

// PushModal pushes a modal onto the stack; it takes all keys until done.
func (c *CompositeChatViewState) PushModal(m modals.Modal) {
	c.ModalStack = append(c.ModalStack, m)
}

// TopModal returns the active modal, or nil.
func (c *CompositeChatViewState) TopModal() modals.Modal {
	if len(c.ModalStack) == 0 {
		return nil
	}
	return c.ModalStack[len(c.ModalStack)-1]
}

// popDone drops finished modals. A modal may push another while closing, so
// the whole stack is filtered rather than just the top.
func (c *CompositeChatViewState) popDone() {
	kept := c.ModalStack[:0]
	for _, m := range c.ModalStack {
		if !m.Done() {
			kept = append(kept, m)
		}
	}
	c.ModalStack = kept
}

// inputVisible reports whether the composer is shown: only with a selected chat.
func (c *CompositeChatViewState) inputVisible() bool {
	_, ok := c.Session.SelectedChat()
	return ok
}

// SetFocus moves key focus to f, falling back to the list when the composer is hidden.
func (c *CompositeChatViewState) SetFocus(f FocusType) {
	c.Focus = f
	c.applyFocus()
}

func (c *CompositeChatViewState) applyFocus() {
	if c.Focus == FocusInput && !c.inputVisible() {
		c.Focus = FocusList
	}
	c.Sidebar.Focused = c.Focus == FocusList
	c.Window.Focused = c.Focus == FocusThread
	if c.Focus == FocusInput {
		c.Input.Focus()
	} else {
		c.Input.Blur()
	}
}

func (c *CompositeChatViewState) cycleFocus(step int) {
	n := 2
	if c.inputVisible() {
		n = 3
	}
	c.SetFocus(FocusType((int(c.Focus) + step + n) % n))
}

func (c *CompositeChatViewState) setStatus(text string) tea.Cmd {
	c.status = text
	c.statusSeq++
	seq := c.statusSeq
	return tea.Tick(c.statusTTL, func(time.Time) tea.Msg { return statusExpiredMsg{seq: seq} })
}

// Update routes keys to the active modal or the focused pane and handles the
// requests the panes emit.
func (c *CompositeChatViewState) Update(msg tea.Msg) (types.ViewState, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		c.width, c.height = msg.Width, msg.Height
		c.layout()
		return c, nil
	case statusExpiredMsg:
		if msg.seq == c.statusSeq {
			c.status = ""
		}
		return c, nil
	case sidebar.ChatSelectedMsg:
		c.logger.Debug("chat selected", "chat_id", msg.ChatID)
		c.SetFocus(FocusInput)
		return c, nil
	case sidebar.DeleteChatRequestMsg:
		c.confirmDelete(msg)
		return c, nil
	case chatwindow.ClearChatRequestMsg:
		c.confirmClear(msg)
		return c, nil
	case chatwindow.PinToggledMsg:
		if msg.Pinned {
			return c, c.setStatus("Message pinned")
		}
		return c, c.setStatus("Message unpinned")
	case chatwindow.CopiedMsg:
		if msg.Err != nil {
			c.logger.Warn("clipboard write failed", "message_id", msg.MessageID, "error", msg.Err)
			return c, c.setStatus("Could not copy message")
		}
		return c, c.setStatus("Copied to clipboard")
	case tea.KeyMsg:
		return c, c.handleKey(msg)
	}
	return c, nil
}

func (c *CompositeChatViewState) handleKey(key tea.KeyMsg) tea.Cmd {
	if top := c.TopModal(); top != nil {
		cmd := top.Update(key)
		c.popDone()
		c.applyFocus()
		return cmd
	}

	switch key.String() {
	case "ctrl+p":
		c.PushModal(dialogs.NewPinnedModal(c.Session, c.now))
		return nil
	case "ctrl+o":
		c.PushModal(c.userMenu())
		return nil
	case "ctrl+l":
		c.confirmLogout()
		return nil
	case "tab":
		c.cycleFocus(1)
		return nil
	case "shift+tab":
		c.cycleFocus(-1)
		return nil
	}

	switch c.Focus {
	case FocusInput:
		return c.handleInputKey(key)
	case FocusThread:
		if key.String() == "?" {
			c.showHelp()
			return nil
		}
		if key.String() == "esc" {
			c.SetFocus(FocusList)
			return nil
		}
		return c.Window.Update(key)
	default:
		if key.String() == "?" {
			c.showHelp()
			return nil
		}
		return c.Sidebar.Update(key)
	}
}

func (c *CompositeChatViewState) handleInputKey(key tea.KeyMsg) tea.Cmd {
	switch key.String() {
	case "enter":
		sent, ok := c.Session.SendMessage(c.Input.Value())
		if !ok {
			return nil
		}
		c.logger.Debug("message sent", "chat_id", sent.ChatID, "message_id", sent.ID)
		c.Input.Reset()
		return nil
	case "esc":
		c.SetFocus(FocusList)
		return nil
	}
	c.Input.Update(key)
	return nil
}

func (c *CompositeChatViewState) confirmDelete(req sidebar.DeleteChatRequestMsg) {
	c.PushModal(dialogs.NewYesNoModal("Delete chat",
		fmt.Sprintf("Delete %q and all of its messages?", req.Name),
		func() tea.Cmd {
			c.Session.DeleteChat(req.ChatID)
			c.logger.Info("chat deleted", "chat_id", req.ChatID)
			c.applyFocus()
			return c.setStatus("Chat deleted")
		}))
}

func (c *CompositeChatViewState) confirmClear(req chatwindow.ClearChatRequestMsg) {
	c.PushModal(dialogs.NewYesNoModal("Clear messages",
		fmt.Sprintf("Remove every message in %q, pinned ones included?", req.Name),
		func() tea.Cmd {
			c.Session.ClearMessages(req.ChatID)
			c.logger.Info("chat cleared", "chat_id", req.ChatID)
			return c.setStatus("Messages cleared")
		}))
}

func (c *CompositeChatViewState) confirmLogout() {
	c.PushModal(dialogs.NewYesNoModal("Sign out", "Sign out of ChatFlow?", func() tea.Cmd {
		return func() tea.Msg { return LogoutRequestedMsg{} }
	}))
}

func (c *CompositeChatViewState) showHelp() {
	c.PushModal(dialogs.NewHelpModal("Keyboard shortcuts", c.GetControlSets()))
}

func (c *CompositeChatViewState) userMenu() *dialogs.MenuModal {
	title, email := "Account", ""
	if c.User != nil {
		title, email = c.User.Username, c.User.Email
	}
	return dialogs.NewMenuModal(title, email, []modals.ModalOption{
		{Label: "Pinned messages", OnSelect: func() tea.Cmd {
			c.PushModal(dialogs.NewPinnedModal(c.Session, c.now))
			return nil
		}},
		{Label: "Keyboard shortcuts", OnSelect: func() tea.Cmd {
			c.showHelp()
			return nil
		}},
		{Label: "Sign out", OnSelect: func() tea.Cmd {
			c.confirmLogout()
			return nil
		}},
	})
}

// chatControlSet holds the bindings available anywhere on the chat screen.
var chatControlSet = types.ControlSet{Controls: []types.ControlType{
	{Name: "switch pane", Key: "tab"},
	{Name: "pinned", Key: "ctrl+p"},
	{Name: "account", Key: "ctrl+o"},
	{Name: "sign out", Key: "ctrl+l"},
	{Name: "help", Key: "?"},
}}

// GetControlSets returns the focused pane's bindings followed by the screen's.
func (c *CompositeChatViewState) GetControlSets() []types.ControlSet {
	var pane types.ControlSet
	switch c.Focus {
	case FocusList:
		pane = c.Sidebar.GetControlSet()
	case FocusThread:
		pane = c.Window.GetControlSet()
	case FocusInput:
		pane = c.Input.GetControlSet()
		pane.Controls = append([]types.ControlType{{Name: "send", Key: "enter"}, {Name: "back", Key: "esc"}}, pane.Controls...)
	}
	return []types.ControlSet{pane, chatControlSet, types.GlobalControlSet}
}
