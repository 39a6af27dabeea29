package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-vocab-trainer/internal/service"
)

type LoginModel struct {
	auth   service.ClientAuthService
	ctx    context.Context
	cancel context.CancelFunc

	inputs     []textinput.Model
	focus      int
	submitting bool
}

func NewLoginModel(parent context.Context, auth service.ClientAuthService) *LoginModel {
	inputs := make([]textinput.Model, 2)
	for i := range inputs {
		inputs[i] = textinput.New()
		inputs[i].Width = 32
	}
	inputs[0].Placeholder = "username"
	inputs[1].Placeholder = "password"
	inputs[1].EchoMode = textinput.EchoPassword
	inputs[1].EchoCharacter = '*'
	inputs[0].Focus()

	ctx, cancel := context.WithCancel(parent)
	return &LoginModel{auth: auth, ctx: ctx, cancel: cancel, inputs: inputs}
}

func (m *LoginModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *LoginModel) Close() {
	m.cancel()
}

func (m *LoginModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loginResultMsg:
		m.submitting = false
		m.reset()
		if msg.err != nil && m.ctx.Err() == nil {
			return m, showError(loginErrorText(msg.err))
		}
		return m, nil

	case tea.KeyMsg:
		if m.submitting {
			return m, nil
		}
		switch {
		case key.Matches(msg, keys.nextField):
			m.setFocus((m.focus + 1) % len(m.inputs))
			return m, nil
		case key.Matches(msg, keys.prevField):
			m.setFocus((m.focus + len(m.inputs) - 1) % len(m.inputs))
			return m, nil
		case key.Matches(msg, keys.enter):
			if m.focus < len(m.inputs)-1 {
				m.setFocus(m.focus + 1)
				return m, nil
			}
			return m, m.submit()
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m *LoginModel) submit() tea.Cmd {
	username := strings.TrimSpace(m.inputs[0].Value())
	password := m.inputs[1].Value()
	m.submitting = true

	ctx, auth := m.ctx, m.auth
	return func() tea.Msg {
		return loginResultMsg{err: auth.Authenticate(ctx, username, password)}
	}
}

// reset clears both fields; they never keep values between attempts.
func (m *LoginModel) reset() {
	for i := range m.inputs {
		m.inputs[i].Reset()
	}
	m.setFocus(0)
}

func (m *LoginModel) setFocus(i int) {
	m.inputs[m.focus].Blur()
	m.focus = i
	m.inputs[m.focus].Focus()
}

func (m *LoginModel) View() string {
	var b strings.Builder
	b.WriteString("Username: " + m.inputs[0].View() + "\n")
	b.WriteString("Password: " + m.inputs[1].View())
	if m.submitting {
		b.WriteString("\n\n" + disabledStyle.Render("signing in..."))
	}
	return renderPage("SIGN IN", b.String(), "tab: next field • enter: sign in")
}
