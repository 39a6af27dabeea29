// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui renders the terminal screens of the vocabulary client with
// Bubble Tea. It holds no business state of its own: lists, the word editor
// and the quiz live in package controller, the session in package service.
package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-vocab-trainer/internal/logger"
	"github.com/MKhiriev/go-vocab-trainer/internal/service"
	"github.com/MKhiriev/go-vocab-trainer/models"
)

type TUI struct {
	services  *service.ClientServices
	buildInfo models.AppBuildInfo
	quizDelay time.Duration
	logger    *logger.Logger

	programOptions []tea.ProgramOption
}

func New(services *service.ClientServices, buildInfo models.AppBuildInfo, quizDelay time.Duration, logger *logger.Logger) *TUI {
	return &TUI{
		services:       services,
		buildInfo:      buildInfo,
		quizDelay:      quizDelay,
		logger:         logger,
		programOptions: []tea.ProgramOption{tea.WithAltScreen()},
	}
}

// LoginFlow shows the login screen until the session is signed in. It
// returns [ErrUserQuit] when the user leaves instead.
func (t *TUI) LoginFlow(ctx context.Context) error {
	factories := map[string]pageFactory{
		pageLogin: func(ctx context.Context, _ RouteArgs) page {
			return NewLoginModel(ctx, t.services.Auth)
		},
	}

	result, err := t.run(NewRootModel(ctx, factories, nil, pageLogin))
	if err != nil {
		return err
	}
	if result.quitByUser || !result.signedIn {
		return ErrUserQuit
	}
	return nil
}

// MainLoop runs the signed-in screens. logout is true when the user signed
// out; false with a nil error means the user quit.
func (t *TUI) MainLoop(ctx context.Context) (logout bool, err error) {
	result, err := t.run(NewRootModel(ctx, t.mainPages(), []string{pageDictionaries, pageProfile}, pageDictionaries))
	if err != nil {
		return false, err
	}
	if result.logoutErr != nil {
		t.logger.Warn().Err(result.logoutErr).Msg("stored session was not fully removed on logout")
	}
	return result.loggedOut, nil
}

func (t *TUI) mainPages() map[string]pageFactory {
	return map[string]pageFactory{
		pageDictionaries: func(ctx context.Context, _ RouteArgs) page {
			return newDictionariesModel(ctx, t.services.Dictionaries)
		},
		pageProfile: func(ctx context.Context, _ RouteArgs) page {
			return newProfileModel(ctx, t.services.Profile, t.services.Session, t.buildInfo)
		},
		pageWords: func(ctx context.Context, args RouteArgs) page {
			return newWordsModel(ctx, t.services.Words, args)
		},
		pageWordUpdate: func(ctx context.Context, args RouteArgs) page {
			return newWordUpdateModel(ctx, t.services.Words, args)
		},
		pageTraining: func(ctx context.Context, args RouteArgs) page {
			return newTrainingModel(ctx, t.services.Words, args, t.quizDelay, nil)
		},
	}
}

func (t *TUI) run(root RootModel) (RootModel, error) {
	finalModel, err := tea.NewProgram(root, t.programOptions...).Run()
	if err != nil {
		t.logger.Err(err).Msg("tui program failed")
		return RootModel{}, err
	}

	result, ok := finalModel.(RootModel)
	if !ok {
		return RootModel{}, tea.ErrProgramKilled
	}
	return result, nil
}
