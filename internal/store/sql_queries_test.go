// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func Test_buildGetValueQuery(t *testing.T) {
	query, args, err := buildGetValueQuery("api-token")
	require.NoError(t, err)

	require.Equal(t, "SELECT value FROM secure_store WHERE name = ?", query)
	require.Equal(t, []any{"api-token"}, args)
}

func Test_buildUpsertValueQuery(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	query, args, err := buildUpsertValueQuery("user-id", "sealed", now)
	require.NoError(t, err)

	q := strings.ToLower(query)
	require.Contains(t, q, "insert into secure_store (name,value,updated_at) values (?,?,?)")
	require.Contains(t, q, "on conflict(name) do update")
	// placeholder format should be "?" (SQLite), never $N
	require.NotContains(t, query, "$1")
	require.Equal(t, []any{"user-id", "sealed", now}, args)
}

func Test_buildDeleteValueQuery(t *testing.T) {
	query, args, err := buildDeleteValueQuery("user-id")
	require.NoError(t, err)

	require.Equal(t, "DELETE FROM secure_store WHERE name = ?", query)
	require.Equal(t, []any{"user-id"}, args)
}
