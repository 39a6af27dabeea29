package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-vocab-trainer/internal/app"
	"github.com/MKhiriev/go-vocab-trainer/internal/controller"
	"github.com/MKhiriev/go-vocab-trainer/internal/service"
)

type wordUpdateModel struct {
	args   RouteArgs
	editor *controller.WordEditor

	inputs []textinput.Model
	focus  int
	loaded bool
	saving bool
}

func newWordUpdateModel(ctx context.Context, words service.ClientWordService, args RouteArgs) *wordUpdateModel {
	inputs := make([]textinput.Model, 2)
	for i := range inputs {
		inputs[i] = textinput.New()
		inputs[i].Width = 32
	}

	return &wordUpdateModel{
		args:   args,
		editor: controller.NewWordEditor(ctx, words),
		inputs: inputs,
	}
}

func (m *wordUpdateModel) Init() tea.Cmd {
	editor, id := m.editor, m.args.WordID
	return func() tea.Msg {
		word, err := editor.Load(id)
		return wordLoadedMsg{word: word, err: err}
	}
}

func (m *wordUpdateModel) Close() {
	m.editor.Close()
}

func (m *wordUpdateModel) back(dictionaryID int64) tea.Cmd {
	args := m.args
	args.WordID = 0
	if dictionaryID != 0 {
		args.DictionaryID = dictionaryID
	}
	return navigate(pageWords, args)
}

func (m *wordUpdateModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case wordLoadedMsg:
		if stale(msg.err) {
			return m, nil
		}
		if msg.err != nil {
			return m, showError(app.MsgReadError)
		}
		m.loaded = true
		m.inputs[0].SetValue(msg.word.SourceText)
		m.inputs[1].SetValue(msg.word.TargetText)
		m.focus = 0
		return m, m.inputs[0].Focus()

	case wordSavedMsg:
		m.saving = false
		if stale(msg.err) {
			return m, nil
		}
		if msg.err != nil {
			return m, showError(app.MsgSaveError)
		}
		return m, m.back(msg.dictionaryID)

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.esc):
			return m, m.back(0)
		case !m.loaded || m.saving:
			return m, nil
		case key.Matches(msg, keys.nextField, keys.prevField):
			m.inputs[m.focus].Blur()
			m.focus = (m.focus + 1) % len(m.inputs)
			return m, m.inputs[m.focus].Focus()
		case key.Matches(msg, keys.enter):
			return m, m.save()
		}

		var cmd tea.Cmd
		m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *wordUpdateModel) save() tea.Cmd {
	m.editor.SetSource(strings.TrimSpace(m.inputs[0].Value()))
	m.editor.SetTarget(strings.TrimSpace(m.inputs[1].Value()))
	m.saving = true

	editor := m.editor
	return func() tea.Msg {
		dictionaryID, err := editor.Save()
		return wordSavedMsg{dictionaryID: dictionaryID, err: err}
	}
}

func (m *wordUpdateModel) View() string {
	if !m.loaded {
		return renderPage("EDIT WORD", app.MsgLoading, "esc: back")
	}

	data := "Word:        " + m.inputs[0].View() + "\n" +
		"Translation: " + m.inputs[1].View()
	if m.saving {
		data += "\n\n" + disabledStyle.Render("saving...")
	}
	return renderPage("EDIT WORD", data, "tab: next field • enter: save • esc: back")
}
