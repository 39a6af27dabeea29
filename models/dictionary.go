// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Dictionary is a named collection of word pairs owned by one user.
// ID, WordCount and CreatedAt are assigned by the server.
type Dictionary struct {
	ID        int64     `json:"id"`
	Owner     int64     `json:"owner"`
	Name      string    `json:"dictionary_name"`
	WordCount int       `json:"get_words_count"`
	CreatedAt time.Time `json:"date_created"`
}

// GetID returns the server-assigned identifier.
func (d Dictionary) GetID() int64 {
	return d.ID
}

// Trainable reports whether the dictionary has at least one word according to
// the server-supplied counter. The counter is not updated by local mutations.
func (d Dictionary) Trainable() bool {
	return d.WordCount > 0
}

// CreatedDate returns the creation date as YYYY-MM-DD.
func (d Dictionary) CreatedDate() string {
	if d.CreatedAt.IsZero() {
		return "-"
	}
	return d.CreatedAt.Format(time.DateOnly)
}

// CreatedTime returns the creation time of day as HH:MM:SS.
func (d Dictionary) CreatedTime() string {
	if d.CreatedAt.IsZero() {
		return "-"
	}
	return d.CreatedAt.Format(time.TimeOnly)
}

// NewDictionaryRequest is the body of the create-dictionary call.
type NewDictionaryRequest struct {
	Owner int64  `json:"owner"`
	Name  string `json:"dictionary_name"`
}
