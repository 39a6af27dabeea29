package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// page is a screen owned by the router. Close releases whatever the page
// started, in-flight requests included.
type page interface {
	tea.Model
	Close()
}

type pageFactory func(ctx context.Context, args RouteArgs) page

// RootModel is the TUI router:
// 1) keeps the active page and closes it on navigation
// 2) handles global ctrl+c quit and tab switching
// 3) shows the blocking error overlay
// 4) finishes the flow on sign-in and sign-out
// 5) delegates all other messages to the active page
type RootModel struct {
	ctx       context.Context
	factories map[string]pageFactory
	tabs      []string

	current     page
	currentName string
	overlay     *errorOverlayModel

	quitByUser bool
	signedIn   bool
	loggedOut  bool
	logoutErr  error
}

// NewRootModel registers the page factories and opens startPage.
func NewRootModel(ctx context.Context, factories map[string]pageFactory, tabs []string, startPage string) RootModel {
	r := RootModel{ctx: ctx, factories: factories, tabs: tabs}
	r.open(startPage, RouteArgs{})
	return r
}

func (r *RootModel) open(name string, args RouteArgs) bool {
	factory, ok := r.factories[name]
	if !ok {
		return false
	}
	if r.current != nil {
		r.current.Close()
	}
	r.current = factory(r.ctx, args)
	r.currentName = name
	return true
}

func (r RootModel) Init() tea.Cmd {
	if r.current == nil {
		return nil
	}
	return r.current.Init()
}

func (r RootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if key.Matches(keyMsg, keys.quit) {
			r.quitByUser = true
			r.closeCurrent()
			return r, tea.Quit
		}

		if r.overlay != nil {
			if key.Matches(keyMsg, keys.enter, keys.esc) {
				r.overlay = nil
			}
			return r, nil
		}

		if next, ok := r.tabSwitch(keyMsg); ok {
			return r, func() tea.Msg { return NavigateTo{Page: next} }
		}
	}

	switch msg := msg.(type) {
	case errorMsg:
		r.overlay = &errorOverlayModel{message: msg.text}
		if msg.bell {
			return r, ringBell
		}
		return r, nil

	case NavigateTo:
		if !r.open(msg.Page, msg.Args) {
			return r, nil
		}
		r.overlay = nil
		return r, r.current.Init()

	case loginResultMsg:
		if msg.err == nil {
			r.signedIn = true
			r.closeCurrent()
			return r, tea.Quit
		}

	case loggedOutMsg:
		// the session is cleared in memory even when storage failed
		r.loggedOut = true
		r.logoutErr = msg.err
		r.closeCurrent()
		return r, tea.Quit
	}

	if r.current == nil {
		return r, nil
	}

	updated, cmd := r.current.Update(msg)
	if p, ok := updated.(page); ok {
		r.current = p
	}
	return r, cmd
}

func (r RootModel) View() string {
	if r.overlay != nil {
		return r.overlay.View()
	}
	if r.current == nil {
		return renderPage("VOCABULARY TRAINER", "", "")
	}
	if r.isTab(r.currentName) {
		return renderTabs(r.currentName) + "\n" + r.current.View()
	}
	return r.current.View()
}

func (r *RootModel) closeCurrent() {
	if r.current != nil {
		r.current.Close()
	}
}

func (r RootModel) isTab(name string) bool {
	for _, t := range r.tabs {
		if t == name {
			return true
		}
	}
	return false
}

// tabSwitch returns the tab to open for tab/shift+tab. Pages that are
// editing text keep the key.
func (r RootModel) tabSwitch(msg tea.KeyMsg) (string, bool) {
	if len(r.tabs) < 2 || !r.isTab(r.currentName) {
		return "", false
	}
	if e, ok := r.current.(interface{ Editing() bool }); ok && e.Editing() {
		return "", false
	}

	idx := 0
	for i, t := range r.tabs {
		if t == r.currentName {
			idx = i
		}
	}

	switch {
	case key.Matches(msg, keys.tab):
		return r.tabs[(idx+1)%len(r.tabs)], true
	case key.Matches(msg, keys.backtab):
		return r.tabs[(idx-1+len(r.tabs))%len(r.tabs)], true
	}
	return "", false
}
