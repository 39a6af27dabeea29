package tui

import (
	"context"
	"errors"
	"math/rand/v2"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-vocab-trainer/internal/app"
	"github.com/MKhiriev/go-vocab-trainer/internal/mock"
	"github.com/MKhiriev/go-vocab-trainer/internal/service"
	"github.com/MKhiriev/go-vocab-trainer/models"
)

func TestLoginModel_FailedAttempts(t *testing.T) {
	tests := []struct {
		name    string
		authErr error
		want    string
	}{
		{"rejected credentials", service.ErrInvalidCredentials, app.MsgLoginError},
		{"server unreachable", service.ErrServerUnavailable, app.MsgServerConnectionError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			auth := mock.NewMockClientAuthService(ctrl)
			auth.EXPECT().Authenticate(gomock.Any(), "bob", "secret").Return(tt.authErr)

			m := NewLoginModel(context.Background(), auth)
			defer m.Close()

			typeText(m, "bob")
			m.Update(keyPress("enter"))
			typeText(m, "secret")

			_, cmd := m.Update(keyPress("enter"))
			result := exec(t, cmd)
			require.IsType(t, loginResultMsg{}, result)
			assert.True(t, m.submitting)

			_, cmd = m.Update(result)
			assert.Equal(t, errorMsg{text: tt.want}, exec(t, cmd))
			assert.Empty(t, m.inputs[0].Value())
			assert.Empty(t, m.inputs[1].Value())
			assert.Equal(t, 0, m.focus)
		})
	}
}

func TestLoginModel_SuccessClearsInputs(t *testing.T) {
	ctrl := gomock.NewController(t)
	auth := mock.NewMockClientAuthService(ctrl)
	auth.EXPECT().Authenticate(gomock.Any(), "bob", "pw").Return(nil)

	m := NewLoginModel(context.Background(), auth)
	m.inputs[0].SetValue("bob")
	m.inputs[1].SetValue("pw")
	m.setFocus(1)

	_, cmd := m.Update(keyPress("enter"))
	_, cmd = m.Update(exec(t, cmd))

	assert.Nil(t, cmd)
	assert.Empty(t, m.inputs[0].Value())
	assert.Empty(t, m.inputs[1].Value())
}

func loadedDictionaries(t *testing.T, svc *mock.MockClientDictionaryService, items []models.Dictionary) *dictionariesModel {
	t.Helper()
	svc.EXPECT().List(gomock.Any()).Return(items, nil)

	m := newDictionariesModel(context.Background(), svc)
	t.Cleanup(m.Close)

	_, cmd := m.Update(exec(t, m.load()))
	assert.Nil(t, cmd)
	return m
}

func TestDictionariesModel_EmptyList(t *testing.T) {
	ctrl := gomock.NewController(t)
	m := loadedDictionaries(t, mock.NewMockClientDictionaryService(ctrl), nil)

	assert.Contains(t, m.View(), app.MsgEmptyList)
}

func TestDictionariesModel_RowsShowCountAndCreation(t *testing.T) {
	ctrl := gomock.NewController(t)
	created := time.Date(2024, 3, 9, 14, 5, 7, 0, time.UTC)
	m := loadedDictionaries(t, mock.NewMockClientDictionaryService(ctrl), []models.Dictionary{
		{ID: 1, Name: "Travel", WordCount: 12, CreatedAt: created},
	})

	view := m.View()
	assert.Contains(t, view, "Travel")
	assert.Contains(t, view, "12 words")
	assert.Contains(t, view, "2024-03-09 14:05:07")
}

func TestDictionariesModel_LoadFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mock.NewMockClientDictionaryService(ctrl)
	svc.EXPECT().List(gomock.Any()).Return(nil, errors.New("boom"))

	m := newDictionariesModel(context.Background(), svc)
	defer m.Close()

	_, cmd := m.Update(exec(t, m.load()))
	assert.Equal(t, errorMsg{text: app.MsgHTTPError}, exec(t, cmd))
}

func TestDictionariesModel_CreateDisabledForEmptyName(t *testing.T) {
	ctrl := gomock.NewController(t)
	m := loadedDictionaries(t, mock.NewMockClientDictionaryService(ctrl), nil)

	m.Update(keyPress("a"))
	require.True(t, m.Editing())

	_, cmd := m.Update(keyPress("enter"))
	assert.Nil(t, cmd)
	assert.True(t, m.adding)
}

func TestDictionariesModel_CreateClearsInputAndAppends(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mock.NewMockClientDictionaryService(ctrl)
	m := loadedDictionaries(t, svc, nil)
	svc.EXPECT().Create(gomock.Any(), "Travel").Return(models.Dictionary{ID: 7, Name: "Travel"}, nil)

	m.Update(keyPress("a"))
	typeText(m, "Travel")
	_, cmd := m.Update(keyPress("enter"))

	assert.False(t, m.adding)
	assert.Empty(t, m.nameInput.Value())

	_, cmd = m.Update(exec(t, cmd))
	assert.Nil(t, cmd)
	assert.Equal(t, 1, m.list.Len())
	assert.Equal(t, 0, m.cursor)
}

func TestDictionariesModel_DeleteFailureRingsBell(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mock.NewMockClientDictionaryService(ctrl)
	m := loadedDictionaries(t, svc, []models.Dictionary{{ID: 1, Name: "A"}, {ID: 2, Name: "B"}})
	svc.EXPECT().Delete(gomock.Any(), int64(1)).Return(errors.New("boom"))

	_, cmd := m.Update(keyPress("d"))
	_, cmd = m.Update(exec(t, cmd))

	assert.Equal(t, errorMsg{text: app.MsgDeleteError, bell: true}, exec(t, cmd))
	assert.Equal(t, 2, m.list.Len())
}

func TestDictionariesModel_Navigation(t *testing.T) {
	ctrl := gomock.NewController(t)
	m := loadedDictionaries(t, mock.NewMockClientDictionaryService(ctrl), []models.Dictionary{
		{ID: 1, Name: "Empty"},
		{ID: 2, Name: "Travel", WordCount: 3},
	})

	_, cmd := m.Update(keyPress("t"))
	assert.Nil(t, cmd, "training is disabled for a dictionary without words")

	_, cmd = m.Update(keyPress("enter"))
	assert.Equal(t, NavigateTo{Page: pageWords, Args: RouteArgs{DictionaryID: 1, DictionaryName: "Empty"}}, exec(t, cmd))

	m.Update(keyPress("down"))
	_, cmd = m.Update(keyPress("t"))
	assert.Equal(t, NavigateTo{Page: pageTraining, Args: RouteArgs{DictionaryID: 2, DictionaryName: "Travel", Back: pageDictionaries}}, exec(t, cmd))
}

func TestDictionariesModel_StaleResultIgnored(t *testing.T) {
	ctrl := gomock.NewController(t)
	m := newDictionariesModel(context.Background(), mock.NewMockClientDictionaryService(ctrl))
	m.Close()

	msg := exec(t, m.load())
	_, cmd := m.Update(msg)

	assert.Nil(t, cmd)
}

func loadedWords(t *testing.T, svc *mock.MockClientWordService, items []models.Word) *wordsModel {
	t.Helper()
	svc.EXPECT().List(gomock.Any(), int64(4)).Return(items, nil)

	m := newWordsModel(context.Background(), svc, RouteArgs{DictionaryID: 4, DictionaryName: "Travel"})
	t.Cleanup(m.Close)

	m.Update(exec(t, m.load()))
	return m
}

func TestWordsModel_AddClearsInputsOnFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mock.NewMockClientWordService(ctrl)
	m := loadedWords(t, svc, nil)
	svc.EXPECT().Create(gomock.Any(), int64(4), "кот", "cat").Return(models.Word{}, errors.New("boom"))

	m.Update(keyPress("a"))
	typeText(m, "кот")
	m.Update(keyPress("enter"))
	typeText(m, "cat")
	_, cmd := m.Update(keyPress("enter"))

	assert.Empty(t, m.inputs[0].Value())
	assert.Empty(t, m.inputs[1].Value())

	_, cmd = m.Update(exec(t, cmd))
	assert.Equal(t, errorMsg{text: app.MsgAddError}, exec(t, cmd))
	assert.Zero(t, m.list.Len())
}

func TestWordsModel_CopyPair(t *testing.T) {
	var copied string
	prev := writeClipboard
	writeClipboard = func(text string) error {
		copied = text
		return nil
	}
	t.Cleanup(func() { writeClipboard = prev })

	ctrl := gomock.NewController(t)
	m := loadedWords(t, mock.NewMockClientWordService(ctrl), []models.Word{
		{ID: 1, DictionaryID: 4, SourceText: "кот", TargetText: "cat"},
	})

	_, cmd := m.Update(keyPress("c"))
	m.Update(exec(t, cmd))

	assert.Equal(t, "кот - cat", copied)
	assert.Contains(t, m.View(), "copied")

	m.Update(clearStatusMsg{})
	assert.NotContains(t, m.View(), "copied")
}

func TestWordsModel_OpenUpdateAndBack(t *testing.T) {
	ctrl := gomock.NewController(t)
	m := loadedWords(t, mock.NewMockClientWordService(ctrl), []models.Word{
		{ID: 9, DictionaryID: 4, SourceText: "кот", TargetText: "cat"},
	})

	_, cmd := m.Update(keyPress("e"))
	assert.Equal(t, NavigateTo{Page: pageWordUpdate, Args: RouteArgs{DictionaryID: 4, DictionaryName: "Travel", WordID: 9}}, exec(t, cmd))

	_, cmd = m.Update(keyPress("esc"))
	assert.Equal(t, NavigateTo{Page: pageDictionaries}, exec(t, cmd))
}

func TestWordUpdateModel_SaveReturnsToWords(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mock.NewMockClientWordService(ctrl)
	original := models.Word{ID: 9, DictionaryID: 4, SourceText: "кот", TargetText: "cat"}
	svc.EXPECT().Get(gomock.Any(), int64(9)).Return(original, nil)
	svc.EXPECT().Update(gomock.Any(), models.Word{ID: 9, DictionaryID: 4, SourceText: "кошка", TargetText: "cat"}).
		Return(models.Word{ID: 9, DictionaryID: 4, SourceText: "кошка", TargetText: "cat"}, nil)

	m := newWordUpdateModel(context.Background(), svc, RouteArgs{DictionaryID: 4, DictionaryName: "Travel", WordID: 9})
	defer m.Close()

	m.Update(exec(t, m.Init()))
	require.Equal(t, "кот", m.inputs[0].Value())
	require.Equal(t, "cat", m.inputs[1].Value())

	m.inputs[0].SetValue("кошка")
	_, cmd := m.Update(keyPress("enter"))
	_, cmd = m.Update(exec(t, cmd))

	assert.Equal(t, NavigateTo{Page: pageWords, Args: RouteArgs{DictionaryID: 4, DictionaryName: "Travel"}}, exec(t, cmd))
}

func TestWordUpdateModel_LoadFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mock.NewMockClientWordService(ctrl)
	svc.EXPECT().Get(gomock.Any(), int64(9)).Return(models.Word{}, errors.New("boom"))

	m := newWordUpdateModel(context.Background(), svc, RouteArgs{WordID: 9})
	defer m.Close()

	_, cmd := m.Update(exec(t, m.Init()))
	assert.Equal(t, errorMsg{text: app.MsgReadError}, exec(t, cmd))

	_, cmd = m.Update(keyPress("enter"))
	assert.Nil(t, cmd, "nothing to save before a successful load")
}

func newLoadedTraining(t *testing.T, words []models.Word) *trainingModel {
	t.Helper()
	ctrl := gomock.NewController(t)
	svc := mock.NewMockClientWordService(ctrl)
	svc.EXPECT().List(gomock.Any(), int64(4)).Return(words, nil)

	m := newTrainingModel(context.Background(), svc, RouteArgs{DictionaryID: 4, DictionaryName: "Travel"},
		time.Second, rand.New(rand.NewPCG(1, 2)))
	t.Cleanup(m.Close)

	m.Update(exec(t, m.Init()))
	return m
}

func TestTrainingModel_MatchSchedulesAdvance(t *testing.T) {
	m := newLoadedTraining(t, []models.Word{{ID: 1, SourceText: "кот", TargetText: "Cat"}})

	typeText(m, "ca")
	assert.False(t, m.quiz.Solved())

	_, cmd := m.Update(keyPress("T"))
	require.NotNil(t, cmd)
	assert.True(t, m.quiz.Solved())

	// an advance scheduled for an earlier round is ignored
	m.Update(quizAdvanceMsg{round: m.round - 1})
	assert.True(t, m.quiz.Solved())

	m.Update(quizAdvanceMsg{round: m.round})
	assert.False(t, m.quiz.Solved())
	assert.Empty(t, m.answer.Value())
}

func TestTrainingModel_RevealAndNext(t *testing.T) {
	m := newLoadedTraining(t, []models.Word{{ID: 1, SourceText: "кот", TargetText: "cat"}})

	m.Update(keyPress("ctrl+r"))
	assert.Contains(t, m.View(), "cat")
	assert.False(t, m.quiz.Solved())

	round := m.round
	m.Update(keyPress("ctrl+n"))
	assert.Equal(t, round+1, m.round)
	assert.Empty(t, m.revealed)
}

func TestTrainingModel_EmptyDictionary(t *testing.T) {
	m := newLoadedTraining(t, nil)

	_, cmd := m.Update(keyPress("ctrl+n"))

	assert.Nil(t, cmd)
	assert.Contains(t, m.View(), app.MsgEmptyList)
}

func TestTrainingModel_BackToOrigin(t *testing.T) {
	m := newLoadedTraining(t, nil)
	_, cmd := m.Update(keyPress("esc"))
	assert.Equal(t, NavigateTo{Page: pageDictionaries}, exec(t, cmd))

	m.args.Back = pageWords
	_, cmd = m.Update(keyPress("esc"))
	assert.Equal(t, NavigateTo{Page: pageWords, Args: RouteArgs{DictionaryID: 4, DictionaryName: "Travel"}}, exec(t, cmd))
}

func TestProfileModel(t *testing.T) {
	ctrl := gomock.NewController(t)
	profiles := mock.NewMockClientProfileService(ctrl)
	session := mock.NewMockClientSessionService(ctrl)
	profiles.EXPECT().Get(gomock.Any()).Return(models.UserProfile{
		ID: 5, FirstName: "Ada", LastName: "Lovelace", Email: "ada@example.com",
	}, nil)
	session.EXPECT().Logout(gomock.Any()).Return(nil)

	m := newProfileModel(context.Background(), profiles, session, models.NewAppBuildInfo("1.2.0", "", "abc123"))

	m.Update(exec(t, m.Init()))
	view := m.View()
	assert.Contains(t, view, "Lovelace Ada")
	assert.Contains(t, view, "ada@example.com")
	assert.Contains(t, view, "1.2.0")
	assert.Contains(t, view, "N/A")
	assert.Contains(t, view, "abc123")

	_, cmd := m.Update(keyPress("l"))
	msg := exec(t, cmd)
	m.Close()
	assert.Equal(t, loggedOutMsg{}, msg)

	_, cmd = m.Update(keyPress("l"))
	assert.Nil(t, cmd, "logout runs once")
}

func TestProfileModel_LoadFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	profiles := mock.NewMockClientProfileService(ctrl)
	profiles.EXPECT().Get(gomock.Any()).Return(models.UserProfile{}, errors.New("boom"))

	m := newProfileModel(context.Background(), profiles, mock.NewMockClientSessionService(ctrl), models.NewAppBuildInfo("", "", ""))
	defer m.Close()

	_, cmd := m.Update(exec(t, m.Init()))
	assert.Equal(t, errorMsg{text: app.MsgHTTPError}, exec(t, cmd))
	assert.Contains(t, m.View(), app.MsgLoading)
}

var _ tea.Model = (*trainingModel)(nil)
