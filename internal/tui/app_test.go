package tui

import (
	"bytes"
	"context"
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type pageSet struct {
	opened []*fakePage
}

func (s *pageSet) factories(names ...string) map[string]pageFactory {
	f := make(map[string]pageFactory, len(names))
	for _, name := range names {
		f[name] = func(context.Context, RouteArgs) page {
			p := &fakePage{name: name}
			s.opened = append(s.opened, p)
			return p
		}
	}
	return f
}

func (s *pageSet) last() *fakePage {
	return s.opened[len(s.opened)-1]
}

func newTestRoot(s *pageSet) RootModel {
	return NewRootModel(context.Background(),
		s.factories(pageDictionaries, pageProfile, pageWords),
		[]string{pageDictionaries, pageProfile},
		pageDictionaries)
}

func update(r RootModel, msg tea.Msg) (RootModel, tea.Cmd) {
	m, cmd := r.Update(msg)
	return m.(RootModel), cmd
}

func TestRootModel_NavigateClosesCurrentPage(t *testing.T) {
	s := &pageSet{}
	r := newTestRoot(s)
	first := s.last()

	r, _ = update(r, NavigateTo{Page: pageWords, Args: RouteArgs{DictionaryID: 3}})

	assert.Equal(t, 1, first.closed)
	assert.Equal(t, pageWords, r.currentName)
	assert.Equal(t, pageWords, r.View())
}

func TestRootModel_UnknownPageIsIgnored(t *testing.T) {
	s := &pageSet{}
	r := newTestRoot(s)

	r, _ = update(r, NavigateTo{Page: "nowhere"})

	assert.Equal(t, pageDictionaries, r.currentName)
	assert.Zero(t, s.last().closed)
}

func TestRootModel_ErrorOverlayBlocksKeys(t *testing.T) {
	s := &pageSet{}
	r := newTestRoot(s)
	p := s.last()

	r, cmd := update(r, errorMsg{text: "Add error!"})
	assert.Nil(t, cmd)
	assert.Contains(t, r.View(), "Add error!")

	r, _ = update(r, keyPress("d"))
	assert.Empty(t, p.seen, "keys must not reach the page under the overlay")

	r, _ = update(r, keyPress("esc"))
	assert.Nil(t, r.overlay)
	assert.NotContains(t, r.View(), "Add error!")
	assert.Contains(t, r.View(), pageDictionaries)
}

func TestRootModel_DestructiveErrorRingsBell(t *testing.T) {
	var buf bytes.Buffer
	prev := bellOut
	bellOut = &buf
	t.Cleanup(func() { bellOut = prev })

	r := newTestRoot(&pageSet{})
	_, cmd := update(r, errorMsg{text: "Delete error!", bell: true})
	exec(t, cmd)

	assert.Equal(t, "\a", buf.String())
}

func TestRootModel_CtrlCQuits(t *testing.T) {
	s := &pageSet{}
	r := newTestRoot(s)

	r, cmd := update(r, keyPress("ctrl+c"))

	assert.True(t, r.quitByUser)
	assert.Equal(t, 1, s.last().closed)
	assert.Equal(t, tea.Quit(), exec(t, cmd))
}

func TestRootModel_TabSwitchesTabs(t *testing.T) {
	s := &pageSet{}
	r := newTestRoot(s)

	_, cmd := update(r, keyPress("tab"))
	assert.Equal(t, NavigateTo{Page: pageProfile}, exec(t, cmd))

	_, cmd = update(r, keyPress("shift+tab"))
	assert.Equal(t, NavigateTo{Page: pageProfile}, exec(t, cmd))
}

func TestRootModel_TabStaysWithEditingPage(t *testing.T) {
	s := &pageSet{}
	r := newTestRoot(s)
	s.last().edit = true

	_, cmd := update(r, keyPress("tab"))

	assert.Nil(t, cmd)
	require.Len(t, s.last().seen, 1)
}

func TestRootModel_TabIgnoredOutsideTabs(t *testing.T) {
	s := &pageSet{}
	r := newTestRoot(s)
	r, _ = update(r, NavigateTo{Page: pageWords})

	_, cmd := update(r, keyPress("tab"))

	assert.Nil(t, cmd)
}

func TestRootModel_LoginResult(t *testing.T) {
	t.Run("success quits signed in", func(t *testing.T) {
		s := &pageSet{}
		r := newTestRoot(s)

		r, cmd := update(r, loginResultMsg{})

		assert.True(t, r.signedIn)
		assert.Equal(t, tea.Quit(), exec(t, cmd))
	})

	t.Run("failure goes to the page", func(t *testing.T) {
		s := &pageSet{}
		r := newTestRoot(s)

		r, _ = update(r, loginResultMsg{err: errors.New("bad")})

		assert.False(t, r.signedIn)
		assert.Len(t, s.last().seen, 1)
	})
}

func TestRootModel_LoggedOut(t *testing.T) {
	s := &pageSet{}
	r := newTestRoot(s)
	storageErr := errors.New("disk")

	r, cmd := update(r, loggedOutMsg{err: storageErr})

	assert.True(t, r.loggedOut)
	assert.ErrorIs(t, r.logoutErr, storageErr)
	assert.Equal(t, 1, s.last().closed)
	assert.Equal(t, tea.Quit(), exec(t, cmd))
}
