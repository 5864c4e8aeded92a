package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/jask/signup/internal/config"
	"github.com/jask/signup/internal/form"
	"github.com/jask/signup/internal/service"
)

// App renders one sign-up session and forwards key events into it. Bubbletea
// calls Update serially, which is the single execution context sessions need.
type App struct {
	sessions *service.SessionService
	session  *form.Session
	inputs   [len(form.Fields)]textinput.Model
	cfg      config.Config
	log      *zap.Logger
	state    appState
	status   string
	result   form.Submission
}

type appState string

const (
	viewForm appState = "form"
	viewDone appState = "done"
)

// New opens a session on sessions and focuses the first field.
func New(cfg config.Config, sessions *service.SessionService, log *zap.Logger) (*App, error) {
	if log == nil {
		log = zap.NewNop()
	}
	a := &App{sessions: sessions, cfg: cfg, log: log}
	for i, id := range form.Fields {
		in := textinput.New()
		in.Prompt = ""
		in.Placeholder = id.Title()
		in.CharLimit = 256
		if id.Secret() {
			in.EchoMode = textinput.EchoPassword
			in.EchoCharacter = '•'
		}
		a.inputs[i] = in
	}
	if err := a.start(); err != nil {
		return nil, err
	}
	return a, nil
}

// Session exposes the live session for inspection.
func (a *App) Session() *form.Session {
	return a.session
}

func (a *App) start() error {
	sess, err := a.sessions.Open()
	if err != nil {
		return err
	}
	a.session = sess
	a.state = viewForm
	a.status = ""
	a.result = form.Submission{}
	for i := range a.inputs {
		a.inputs[i].Reset()
	}
	a.session.OnFocusChanged(form.Username)
	a.syncFocus()
	return nil
}

func (a *App) Init() tea.Cmd {
	return textinput.Blink
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	m, ok := msg.(tea.KeyMsg)
	if !ok {
		return a, a.updateFocused(msg)
	}
	if a.state == viewDone {
		return a.handleDoneKey(m)
	}
	switch m.String() {
	case "ctrl+c", "esc":
		_ = a.sessions.Close(a.session.ID())
		return a, tea.Quit
	case "tab", "down":
		a.moveFocus(1)
		return a, nil
	case "shift+tab", "up":
		a.moveFocus(-1)
		return a, nil
	case "enter":
		a.session.OnCommit()
		return a, a.syncFocus()
	case "ctrl+s":
		a.submit()
		return a, nil
	case "ctrl+r":
		a.session.Reset()
		for i := range a.inputs {
			a.inputs[i].Reset()
		}
		a.session.OnFocusChanged(form.Username)
		a.status = "form cleared"
		return a, a.syncFocus()
	}
	return a, a.updateFocused(msg)
}

func (a *App) handleDoneKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.String() {
	case "n":
		if err := a.start(); err != nil {
			a.status = "error: " + err.Error()
		}
		return a, nil
	case "q", "ctrl+c", "esc", "enter":
		return a, tea.Quit
	}
	return a, nil
}

// updateFocused feeds msg to the focused input and reports any text change.
func (a *App) updateFocused(msg tea.Msg) tea.Cmd {
	id := a.session.Focus()
	if a.state != viewForm || !id.Valid() {
		return nil
	}
	i := indexOf(id)
	before := a.inputs[i].Value()
	var cmd tea.Cmd
	a.inputs[i], cmd = a.inputs[i].Update(msg)
	if after := a.inputs[i].Value(); after != before {
		a.session.OnTextChanged(id, after)
		a.status = ""
	}
	return cmd
}

func (a *App) moveFocus(dir int) {
	cur := a.session.Focus()
	var next form.FieldID
	switch {
	case !cur.Valid() && dir > 0:
		next = form.Fields[0]
	case !cur.Valid():
		next = form.Fields[len(form.Fields)-1]
	default:
		n := len(form.Fields)
		next = form.Fields[(indexOf(cur)+dir+n)%n]
	}
	a.session.OnFocusChanged(next)
	a.syncFocus()
}

// syncFocus mirrors the session's focus onto the input widgets.
func (a *App) syncFocus() tea.Cmd {
	var cmd tea.Cmd
	focused := a.session.Focus()
	for i, id := range form.Fields {
		if id == focused {
			cmd = a.inputs[i].Focus()
		} else {
			a.inputs[i].Blur()
		}
	}
	return cmd
}

func (a *App) submit() {
	id := a.session.ID()
	sub, err := a.sessions.Submit(id)
	if err != nil {
		var verr *form.ValidationError
		if errors.As(err, &verr) {
			names := make([]string, 0, len(verr.Invalid))
			for _, f := range verr.Invalid {
				names = append(names, strings.ToLower(f.Title()))
			}
			a.status = "fix: " + strings.Join(names, ", ")
			return
		}
		a.status = "error: " + err.Error()
		a.log.Error("submit failed", zap.Error(err))
		return
	}
	a.result = sub
	a.state = viewDone
	a.log.Info("signed up", zap.Stringer("session", id))
}

func (a *App) View() string {
	if a.state == viewDone {
		return a.renderDone()
	}
	return a.renderForm()
}

func (a *App) renderForm() string {
	snap := a.session.Snapshot()
	var b strings.Builder
	b.WriteString(titleStyle.Render("Sign up"))
	b.WriteString("\n\n")
	for i, id := range form.Fields {
		label := labelStyle
		if snap.Focus == id {
			label = focusLabel
		}
		b.WriteString(label.Render(id.Title()))
		b.WriteString(a.inputs[i].View())
		b.WriteString("\n")
		if msg, ok := snap.Messages[id]; ok {
			b.WriteString(errorStyle.Render(msg))
			b.WriteString("\n")
		}
		if id == form.Email && a.cfg.UI.ShowHints && snap.Suggestion != "" {
			b.WriteString(hintStyle.Render(fmt.Sprintf("did you mean %s?", snap.Suggestion)))
			b.WriteString("\n")
		}
	}
	b.WriteString("\n")
	button := buttonDisabled
	if snap.FormValid {
		button = buttonEnabled
	}
	b.WriteString(button.Render("Sign up"))
	b.WriteString("\n\n")
	if a.status != "" {
		b.WriteString(statusStyle.Render(a.status))
		b.WriteString("\n")
	}
	b.WriteString(helpStyle.Render("tab/shift+tab: move  enter: next  ctrl+s: sign up  ctrl+r: clear  esc: quit"))
	return b.String()
}

func (a *App) renderDone() string {
	var b strings.Builder
	b.WriteString(successStyle.Render("Successfully signed up"))
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "%s  %s\n", labelStyle.Render("Username"), a.result.Username)
	fmt.Fprintf(&b, "%s  %s\n\n", labelStyle.Render("Email"), a.result.Email)
	if a.status != "" {
		b.WriteString(statusStyle.Render(a.status))
		b.WriteString("\n")
	}
	b.WriteString(helpStyle.Render("n: new form  q: quit"))
	return b.String()
}

func indexOf(id form.FieldID) int {
	for i, f := range form.Fields {
		if f == id {
			return i
		}
	}
	return -1
}
