package errs

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsUndefinedColumn(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil error", nil, false},
		{"sqlstate form", errors.New(`ERROR: column "sort_order" does not exist (SQLSTATE 42703)`), true},
		{"message form", errors.New(`column projects.sort_order does not exist`), true},
		{"wrapped", fmt.Errorf("ordered read: %w", errors.New("SQLSTATE 42703")), true},
		{"undefined table instead", errors.New(`ERROR: relation "projects" does not exist (SQLSTATE 42P01)`), false},
		{"unrelated", errors.New("connection refused"), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, IsUndefinedColumn(tc.err))
		})
	}
}

func TestIsUndefinedTable(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil error", nil, false},
		{"sqlstate form", errors.New(`ERROR: relation "projects" does not exist (SQLSTATE 42P01)`), true},
		{"message form", errors.New(`relation "portfolio_settings" does not exist`), true},
		{"wrapped", fmt.Errorf("settings read: %w", errors.New("SQLSTATE 42P01")), true},
		{"undefined column instead", errors.New(`ERROR: column "sort_order" does not exist (SQLSTATE 42703)`), false},
		{"unrelated", errors.New("duplicate key value violates unique constraint"), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, IsUndefinedTable(tc.err))
		})
	}
}
