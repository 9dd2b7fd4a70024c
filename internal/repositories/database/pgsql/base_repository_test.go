package pgsql

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestIsSchemaDrift(t *testing.T) {
	testCases := []struct {
		name     string
		err      error
		expected bool
	}{
		{name: "nil error", err: nil, expected: false},
		{name: "plain error", err: errors.New("connection refused"), expected: false},
		{name: "undefined table", err: &pgconn.PgError{Code: "42P01"}, expected: true},
		{name: "undefined column", err: &pgconn.PgError{Code: "42703"}, expected: true},
		{name: "unique violation", err: &pgconn.PgError{Code: "23505"}, expected: false},
		// Row iteration surfaces execution errors wrapped; errors.As must
		// still find the PgError inside.
		{name: "wrapped undefined table", err: fmt.Errorf("closing rows: %w", &pgconn.PgError{Code: "42P01"}), expected: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, isSchemaDrift(tc.err))
		})
	}
}

func TestIsUniqueViolation(t *testing.T) {
	assert.True(t, isUniqueViolation(&pgconn.PgError{Code: "23505"}))
	assert.False(t, isUniqueViolation(&pgconn.PgError{Code: "42P01"}))
	assert.False(t, isUniqueViolation(errors.New("not a pg error")))
}
