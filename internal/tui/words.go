package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-vocab-trainer/internal/app"
	"github.com/MKhiriev/go-vocab-trainer/internal/controller"
	"github.com/MKhiriev/go-vocab-trainer/internal/service"
	"github.com/MKhiriev/go-vocab-trainer/models"
)

const statusTTL = 2 * time.Second

// writeClipboard is swapped in tests; CI machines have no clipboard.
var writeClipboard = clipboard.WriteAll

type wordsModel struct {
	args    RouteArgs
	list    *controller.WordList
	spinner spinner.Model

	cursor int
	adding bool
	inputs []textinput.Model
	focus  int
	busy   bool
	status string
}

func newWordsModel(ctx context.Context, words service.ClientWordService, args RouteArgs) *wordsModel {
	inputs := make([]textinput.Model, 2)
	for i := range inputs {
		inputs[i] = textinput.New()
		inputs[i].Width = 28
	}
	inputs[0].Placeholder = "word"
	inputs[1].Placeholder = "translation"

	return &wordsModel{
		args:    args,
		list:    controller.NewWordList(ctx, words, args.DictionaryID),
		spinner: spinner.New(spinner.WithSpinner(spinner.Dot)),
		inputs:  inputs,
	}
}

func (m *wordsModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.load())
}

func (m *wordsModel) Close() {
	m.list.Close()
}

func (m *wordsModel) Editing() bool {
	return m.adding
}

func (m *wordsModel) load() tea.Cmd {
	list := m.list
	return func() tea.Msg {
		return wordsLoadedMsg{err: list.Load()}
	}
}

func (m *wordsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		if m.list.Loading() || !m.list.Loaded() {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
		return m, nil

	case wordsLoadedMsg:
		if stale(msg.err) {
			return m, nil
		}
		m.cursor = clampCursor(m.cursor, m.list.Len())
		if msg.err != nil {
			return m, showError(app.MsgHTTPError)
		}
		return m, nil

	case wordCreatedMsg:
		m.busy = false
		if stale(msg.err) {
			return m, nil
		}
		if msg.err != nil {
			return m, showError(app.MsgAddError)
		}
		m.cursor = m.list.Len() - 1
		return m, nil

	case wordDeletedMsg:
		m.busy = false
		if stale(msg.err) {
			return m, nil
		}
		m.cursor = clampCursor(m.cursor, m.list.Len())
		if msg.err != nil {
			return m, showDestructiveError(app.MsgDeleteError)
		}
		return m, nil

	case copiedMsg:
		if msg.err != nil {
			m.status = "clipboard unavailable"
		} else {
			m.status = "copied"
		}
		return m, tea.Tick(statusTTL, func(time.Time) tea.Msg { return clearStatusMsg{} })

	case clearStatusMsg:
		m.status = ""
		return m, nil

	case tea.KeyMsg:
		if m.adding {
			return m.updateAdding(msg)
		}
		return m.updateBrowsing(msg)
	}
	return m, nil
}

func (m *wordsModel) updateAdding(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.esc):
		m.stopAdding()
		return m, nil
	case key.Matches(msg, keys.nextField, keys.prevField):
		m.inputs[m.focus].Blur()
		m.focus = (m.focus + 1) % len(m.inputs)
		return m, m.inputs[m.focus].Focus()
	case key.Matches(msg, keys.enter):
		if m.focus == 0 {
			m.inputs[0].Blur()
			m.focus = 1
			return m, m.inputs[1].Focus()
		}
		if m.busy {
			return m, nil
		}
		draft := controller.WordDraft{
			SourceText: strings.TrimSpace(m.inputs[0].Value()),
			TargetText: strings.TrimSpace(m.inputs[1].Value()),
		}
		// both inputs are cleared whatever the outcome
		m.stopAdding()
		m.busy = true
		list := m.list
		return m, func() tea.Msg {
			_, err := list.Create(draft)
			return wordCreatedMsg{err: err}
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m *wordsModel) stopAdding() {
	m.adding = false
	for i := range m.inputs {
		m.inputs[i].Reset()
		m.inputs[i].Blur()
	}
	m.focus = 0
}

func (m *wordsModel) updateBrowsing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	items := m.list.Items()

	switch {
	case key.Matches(msg, keys.esc):
		return m, navigate(pageDictionaries, RouteArgs{})
	case key.Matches(msg, keys.up):
		m.cursor = clampCursor(m.cursor-1, len(items))
	case key.Matches(msg, keys.down):
		m.cursor = clampCursor(m.cursor+1, len(items))
	case key.Matches(msg, keys.add):
		m.adding = true
		return m, m.inputs[0].Focus()
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
			return wordDeletedMsg{err: list.Delete(id)}
		}
	case key.Matches(msg, keys.enter, keys.edit):
		if len(items) == 0 {
			return m, nil
		}
		args := m.args
		args.WordID = items[m.cursor].ID
		return m, navigate(pageWordUpdate, args)
	case key.Matches(msg, keys.copy):
		if len(items) == 0 {
			return m, nil
		}
		text := pairText(items[m.cursor])
		return m, func() tea.Msg {
			return copiedMsg{err: writeClipboard(text)}
		}
	case key.Matches(msg, keys.train):
		if len(items) == 0 {
			return m, nil
		}
		args := m.args
		args.Back = pageWords
		return m, navigate(pageTraining, args)
	}
	return m, nil
}

func pairText(w models.Word) string {
	return w.SourceText + " - " + w.TargetText
}

func (m *wordsModel) View() string {
	var b strings.Builder

	items := m.list.Items()
	switch {
	case !m.list.Loaded() && m.list.Loading():
		b.WriteString(m.spinner.View() + " " + app.MsgLoading)
	case len(items) == 0:
		b.WriteString(app.MsgEmptyList)
	default:
		for i, w := range items {
			row := fmt.Sprintf("%-26s %s", fitText(w.SourceText, 26), fitText(w.TargetText, 26))
			if i == m.cursor {
				row = selectedStyle.Render(row)
			}
			b.WriteString(cursorMark(i == m.cursor) + row + "\n")
		}
	}

	if m.adding {
		b.WriteString("\n\nWord:        " + m.inputs[0].View())
		b.WriteString("\nTranslation: " + m.inputs[1].View())
	}
	if m.status != "" {
		b.WriteString("\n\n" + helpStyle.Render(m.status))
	}

	title := "WORDS: " + fitText(m.args.DictionaryName, 40)
	if m.adding {
		return renderPage(title, b.String(), "tab: next field • enter: add • esc: cancel")
	}

	train := "t: train"
	if len(items) == 0 {
		train = disabledStyle.Render(train)
	}
	return renderPage(title, b.String(),
		"↑/↓: move • enter/e: edit • a: add • d: delete • c: copy • "+train+" • esc: back")
}
