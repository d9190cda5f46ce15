// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"time"

	sq "github.com/Masterminds/squirrel"
)

const sessionMetadataTable = "session_metadata"

func buildGetValueQuery(key string) (string, []any, error) {
	return sq.Select("value").
		From(sessionMetadataTable).
		Where(sq.Eq{"key": key}).
		Limit(1).
		ToSql()
}

func buildSetValueQuery(key, value string, at time.Time) (string, []any, error) {
	return sq.Insert(sessionMetadataTable).
		Options("OR REPLACE").
		Columns("key", "value", "updated_at").
		Values(key, value, at.UTC()).
		ToSql()
}

func buildRemoveValueQuery(key string) (string, []any, error) {
	return sq.Delete(sessionMetadataTable).
		Where(sq.Eq{"key": key}).
		ToSql()
}
