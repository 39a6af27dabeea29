package tui

import (
	"context"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-vocab-trainer/internal/app"
	"github.com/MKhiriev/go-vocab-trainer/internal/controller"
	"github.com/MKhiriev/go-vocab-trainer/internal/service"
)

type trainingModel struct {
	args  RouteArgs
	quiz  *controller.Quiz
	delay time.Duration

	answer textinput.Model
	loaded bool
	// round invalidates advance ticks scheduled for an earlier word.
	round    int
	revealed string
}

func newTrainingModel(ctx context.Context, words service.ClientWordService, args RouteArgs, delay time.Duration, rnd *rand.Rand) *trainingModel {
	answer := textinput.New()
	answer.Placeholder = "translation"
	answer.Width = 32

	return &trainingModel{
		args:   args,
		quiz:   controller.NewQuiz(ctx, words, args.DictionaryID, rnd),
		delay:  delay,
		answer: answer,
	}
}

func (m *trainingModel) Init() tea.Cmd {
	quiz := m.quiz
	return func() tea.Msg {
		return quizLoadedMsg{err: quiz.Load()}
	}
}

func (m *trainingModel) Close() {
	m.quiz.Close()
}

func (m *trainingModel) back() tea.Cmd {
	if m.args.Back == pageWords {
		args := m.args
		args.Back = ""
		return navigate(pageWords, args)
	}
	return navigate(pageDictionaries, RouteArgs{})
}

func (m *trainingModel) next() {
	if _, err := m.quiz.Next(); err != nil {
		return
	}
	m.round++
	m.revealed = ""
	m.answer.Reset()
}

func (m *trainingModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case quizLoadedMsg:
		if stale(msg.err) {
			return m, nil
		}
		if msg.err != nil {
			return m, showError(app.MsgHTTPError)
		}
		m.loaded = true
		return m, m.answer.Focus()

	case quizAdvanceMsg:
		if msg.round == m.round && m.quiz.Solved() {
			m.next()
		}
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.esc):
			return m, m.back()
		case !m.loaded || m.quiz.Empty():
			return m, nil
		case key.Matches(msg, keys.reveal):
			m.revealed = m.quiz.Reveal()
			return m, nil
		case key.Matches(msg, keys.next):
			m.next()
			return m, nil
		}

		if m.quiz.Solved() {
			return m, nil
		}

		var cmd tea.Cmd
		m.answer, cmd = m.answer.Update(msg)
		if m.quiz.Answer(strings.TrimSpace(m.answer.Value())) {
			round := m.round
			advance := tea.Tick(m.delay, func(time.Time) tea.Msg { return quizAdvanceMsg{round: round} })
			return m, tea.Batch(cmd, advance)
		}
		return m, cmd
	}
	return m, nil
}

func (m *trainingModel) View() string {
	title := "TRAINING: " + fitText(m.args.DictionaryName, 40)
	if !m.loaded {
		return renderPage(title, app.MsgLoading, "esc: back")
	}
	if m.quiz.Empty() {
		return renderPage(title, app.MsgEmptyList, "esc: back")
	}

	word, _ := m.quiz.Current()

	var b strings.Builder
	b.WriteString(titleStyle.Render(word.SourceText) + "\n\n")

	input := m.answer.View()
	switch {
	case m.quiz.Solved():
		input = matchStyle.Render(m.answer.Value())
	case m.answer.Value() != "":
		input = mismatchStyle.Render(input)
	}
	b.WriteString("Answer: " + input)

	if m.revealed != "" {
		b.WriteString("\n\n" + helpStyle.Render("Answer is: ") + m.revealed)
	}

	return renderPage(title, b.String(), "type the translation • ctrl+r: show answer • enter/ctrl+n: next • esc: back")
}
