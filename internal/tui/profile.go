package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-vocab-trainer/internal/app"
	"github.com/MKhiriev/go-vocab-trainer/internal/service"
	"github.com/MKhiriev/go-vocab-trainer/models"
)

type profileModel struct {
	ctx    context.Context
	cancel context.CancelFunc

	profiles  service.ClientProfileService
	session   service.ClientSessionService
	buildInfo models.AppBuildInfo

	profile    models.UserProfile
	loaded     bool
	loggingOut bool
}

func newProfileModel(parent context.Context, profiles service.ClientProfileService, session service.ClientSessionService, buildInfo models.AppBuildInfo) *profileModel {
	ctx, cancel := context.WithCancel(parent)
	return &profileModel{
		ctx:       ctx,
		cancel:    cancel,
		profiles:  profiles,
		session:   session,
		buildInfo: buildInfo,
	}
}

func (m *profileModel) Init() tea.Cmd {
	ctx, profiles := m.ctx, m.profiles
	return func() tea.Msg {
		profile, err := profiles.Get(ctx)
		return profileLoadedMsg{profile: profile, err: err}
	}
}

func (m *profileModel) Close() {
	m.cancel()
}

func (m *profileModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case profileLoadedMsg:
		if m.ctx.Err() != nil {
			return m, nil
		}
		if msg.err != nil {
			return m, showError(app.MsgHTTPError)
		}
		m.profile = msg.profile
		m.loaded = true
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.refresh):
			return m, m.Init()
		case key.Matches(msg, keys.logout):
			if m.loggingOut {
				return m, nil
			}
			m.loggingOut = true
			// logout must finish even though this page is closed right after
			session := m.session
			return m, func() tea.Msg {
				return loggedOutMsg{err: session.Logout(context.WithoutCancel(m.ctx))}
			}
		}
	}
	return m, nil
}

func (m *profileModel) View() string {
	var b strings.Builder

	if m.loaded {
		b.WriteString("Name:  " + m.profile.DisplayName() + "\n")
		b.WriteString("Email: " + m.profile.Email + "\n")
	} else {
		b.WriteString(app.MsgLoading + "\n")
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("Build version: ") + m.buildInfo.BuildVersion() + "\n")
	b.WriteString(helpStyle.Render("Build date:    ") + m.buildInfo.BuildDate() + "\n")
	b.WriteString(helpStyle.Render("Build commit:  ") + m.buildInfo.BuildCommit())

	return renderPage("PROFILE", b.String(), "l: log out • r: refresh • tab: dictionaries")
}
