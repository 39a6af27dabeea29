// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
)

const secureStoreTable = "secure_store"

// SQLite takes "?" placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Question)

func buildGetValueQuery(key string) (string, []any, error) {
	query, args, err := psql.
		Select("value").
		From(secureStoreTable).
		Where(sq.Eq{"name": key}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildUpsertValueQuery(key, value string, now time.Time) (string, []any, error) {
	query, args, err := psql.
		Insert(secureStoreTable).
		Columns("name", "value", "updated_at").
		Values(key, value, now.UTC()).
		Suffix("ON CONFLICT(name) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildDeleteValueQuery(key string) (string, []any, error) {
	query, args, err := psql.
		Delete(secureStoreTable).
		Where(sq.Eq{"name": key}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}
