package tui

import "github.com/MKhiriev/go-vocab-trainer/models"

// Page names used in [NavigateTo].
const (
	pageLogin        = "login"
	pageDictionaries = "dictionaries"
	pageProfile      = "profile"
	pageWords        = "words"
	pageWordUpdate   = "word-update"
	pageTraining     = "training"
)

// NavigateTo asks the router to close the current page and open Page.
type NavigateTo struct {
	Page string
	Args RouteArgs
}

// RouteArgs is the only state passed between pages.
type RouteArgs struct {
	DictionaryID   int64
	DictionaryName string
	WordID         int64
	// Back is the page esc returns to, when it is not the default one.
	Back string
}

// errorMsg opens the blocking error overlay. bell rings the terminal bell
// first; it is set for failed destructive actions.
type errorMsg struct {
	text string
	bell bool
}

type loginResultMsg struct{ err error }

type loggedOutMsg struct{ err error }

type dictionariesLoadedMsg struct{ err error }

type dictionaryCreatedMsg struct{ err error }

type dictionaryDeletedMsg struct{ err error }

type wordsLoadedMsg struct{ err error }

type wordCreatedMsg struct{ err error }

type wordDeletedMsg struct{ err error }

type wordLoadedMsg struct {
	word models.Word
	err  error
}

type wordSavedMsg struct {
	dictionaryID int64
	err          error
}

type quizLoadedMsg struct{ err error }

type quizAdvanceMsg struct{ round int }

type profileLoadedMsg struct {
	profile models.UserProfile
	err     error
}

type copiedMsg struct{ err error }

type clearStatusMsg struct{}
