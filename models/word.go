// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Word is a native-language / foreign-language pair that belongs to exactly
// one Dictionary.
type Word struct {
	ID           int64  `json:"id"`
	DictionaryID int64  `json:"dictionary"`
	SourceText   string `json:"word_rus"`
	TargetText   string `json:"word_eng"`
}

// GetID returns the server-assigned identifier.
func (w Word) GetID() int64 {
	return w.ID
}

// NewWordRequest is the body of the create-word call.
type NewWordRequest struct {
	DictionaryID int64  `json:"dictionary"`
	SourceText   string `json:"word_rus"`
	TargetText   string `json:"word_eng"`
}
