package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-vocab-trainer/internal/app"
	"github.com/MKhiriev/go-vocab-trainer/internal/controller"
	"github.com/MKhiriev/go-vocab-trainer/internal/service"
	"github.com/MKhiriev/go-vocab-trainer/models"
)

type dictionariesModel struct {
	list    *controller.DictionaryList
	spinner spinner.Model

	cursor    int
	adding    bool
	nameInput textinput.Model
	busy      bool
}

func newDictionariesModel(ctx context.Context, dictionaries service.ClientDictionaryService) *dictionariesModel {
	input := textinput.New()
	input.Placeholder = "dictionary name"
	input.Width = 32

	return &dictionariesModel{
		list:      controller.NewDictionaryList(ctx, dictionaries),
		spinner:   spinner.New(spinner.WithSpinner(spinner.Dot)),
		nameInput: input,
	}
}

func (m *dictionariesModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.load())
}

func (m *dictionariesModel) Close() {
	m.list.Close()
}

// Editing keeps tab inside the name input while adding.
func (m *dictionariesModel) Editing() bool {
	return m.adding
}

func (m *dictionariesModel) load() tea.Cmd {
	list := m.list
	return func() tea.Msg {
		return dictionariesLoadedMsg{err: list.Load()}
	}
}

func (m *dictionariesModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		if !m.list.Loaded() || m.list.Loading() {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
		return m, nil

	case dictionariesLoadedMsg:
		if stale(msg.err) {
			return m, nil
		}
		m.cursor = clampCursor(m.cursor, m.list.Len())
		if msg.err != nil {
			return m, showError(app.MsgHTTPError)
		}
		return m, nil

	case dictionaryCreatedMsg:
		m.busy = false
		if stale(msg.err) {
			return m, nil
		}
		if msg.err != nil {
			return m, showError(app.MsgAddError)
		}
		m.cursor = m.list.Len() - 1
		return m, nil

	case dictionaryDeletedMsg:
		m.busy = false
		if stale(msg.err) {
			return m, nil
		}
		m.cursor = clampCursor(m.cursor, m.list.Len())
		if msg.err != nil {
			return m, showDestructiveError(app.MsgDeleteError)
		}
		return m, nil

	case tea.KeyMsg:
		if m.adding {
			return m.updateAdding(msg)
		}
		return m.updateBrowsing(msg)
	}
	return m, nil
}

func (m *dictionariesModel) updateAdding(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.esc):
		m.stopAdding()
		return m, nil
	case key.Matches(msg, keys.enter):
		name := strings.TrimSpace(m.nameInput.Value())
		if name == "" || m.busy {
			return m, nil
		}
		m.stopAdding()
		m.busy = true
		list := m.list
		return m, func() tea.Msg {
			_, err := list.Create(name)
			return dictionaryCreatedMsg{err: err}
		}
	}

	var cmd tea.Cmd
	m.nameInput, cmd = m.nameInput.Update(msg)
	return m, cmd
}

func (m *dictionariesModel) stopAdding() {
	m.adding = false
	m.nameInput.Reset()
	m.nameInput.Blur()
}

func (m *dictionariesModel) updateBrowsing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	items := m.list.Items()

	switch {
	case key.Matches(msg, keys.up):
		m.cursor = clampCursor(m.cursor-1, len(items))
	case key.Matches(msg, keys.down):
		m.cursor = clampCursor(m.cursor+1, len(items))
	case key.Matches(msg, keys.add):
		m.adding = true
		return m, m.nameInput.Focus()
	case key.Matches(msg, keys.refresh):
		if m.list.Loading() {
			return m, nil
		}
		return m, tea.Batch(m.spinner.Tick, m.load())
	case key.Matches(msg, keys.delete):
		if len(items) == 0 || m.busy {
			return m, nil
		}
		m.busy = true
		id, list := items[m.cursor].ID, m.list
		return m, func() tea.Msg {
			return dictionaryDeletedMsg{err: list.Delete(id)}
		}
	case key.Matches(msg, keys.enter):
		if len(items) == 0 {
			return m, nil
		}
		d := items[m.cursor]
		return m, navigate(pageWords, RouteArgs{DictionaryID: d.ID, DictionaryName: d.Name})
	case key.Matches(msg, keys.train):
		if len(items) == 0 || !items[m.cursor].Trainable() {
			return m, nil
		}
		d := items[m.cursor]
		return m, navigate(pageTraining, RouteArgs{DictionaryID: d.ID, DictionaryName: d.Name, Back: pageDictionaries})
	}
	return m, nil
}

func (m *dictionariesModel) View() string {
	var b strings.Builder

	items := m.list.Items()
	switch {
	case !m.list.Loaded() && m.list.Loading():
		b.WriteString(m.spinner.View() + " " + app.MsgLoading)
	case len(items) == 0:
		b.WriteString(app.MsgEmptyList)
	default:
		for i, d := range items {
			row := fmt.Sprintf("%-28s %4d words  %s %s",
				fitText(d.Name, 28), d.WordCount, d.CreatedDate(), d.CreatedTime())
			if i == m.cursor {
				row = selectedStyle.Render(row)
			}
			b.WriteString(cursorMark(i == m.cursor) + row + "\n")
		}
		if m.list.Loading() {
			b.WriteString(m.spinner.View() + " refreshing")
		}
	}

	if m.adding {
		b.WriteString("\n\nNew dictionary: " + m.nameInput.View())
		return renderPage("DICTIONARIES", b.String(), m.addingHelp())
	}
	return renderPage("DICTIONARIES", b.String(), m.browsingHelp(items))
}

func (m *dictionariesModel) addingHelp() string {
	create := "enter: create"
	if strings.TrimSpace(m.nameInput.Value()) == "" {
		create = disabledStyle.Render(create)
	}
	return create + " • esc: cancel"
}

func (m *dictionariesModel) browsingHelp(items []models.Dictionary) string {
	train := "t: train"
	if len(items) == 0 || !items[m.cursor].Trainable() {
		train = disabledStyle.Render(train)
	}
	return "↑/↓: move • enter: words • " + train + " • a: add • d: delete • r: refresh • tab: profile"
}

func navigate(page string, args RouteArgs) tea.Cmd {
	return func() tea.Msg { return NavigateTo{Page: page, Args: args} }
}
