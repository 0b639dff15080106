// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package httperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithCode(t *testing.T) {
	t.Parallel()

	t.Run("nil error returns nil", func(t *testing.T) {
		t.Parallel()
		assert.Nil(t, WithCode(nil, http.StatusBadRequest))
	})

	t.Run("wraps error with code", func(t *testing.T) {
		t.Parallel()
		sentinel := errors.New("boom")
		err := WithCode(sentinel, http.StatusBadGateway)

		require.Error(t, err)
		assert.Equal(t, "boom", err.Error())
		assert.Equal(t, http.StatusBadGateway, Code(err))
		assert.True(t, errors.Is(err, sentinel))
	})

	t.Run("code survives further wrapping", func(t *testing.T) {
		t.Parallel()
		err := fmt.Errorf("listing skills: %w", New("denied", http.StatusForbidden))
		assert.Equal(t, http.StatusForbidden, Code(err))
	})
}

func TestCode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "nil error", err: nil, want: http.StatusOK},
		{name: "plain error", err: errors.New("x"), want: http.StatusInternalServerError},
		{name: "coded error", err: New("x", http.StatusNotFound), want: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, Code(tt.err))
		})
	}
}

func TestIsAuthError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want bool
	}{
		{name: "nil", err: nil, want: false},
		{name: "plain error", err: errors.New("x"), want: false},
		{name: "401", err: New("unauthorized", http.StatusUnauthorized), want: true},
		{name: "403", err: New("forbidden", http.StatusForbidden), want: true},
		{name: "404", err: New("not found", http.StatusNotFound), want: false},
		{name: "500", err: New("server error", http.StatusInternalServerError), want: false},
		{name: "wrapped 401", err: fmt.Errorf("sync: %w", New("unauthorized", http.StatusUnauthorized)), want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, IsAuthError(tt.err))
		})
	}
}

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := Errorf(http.StatusServiceUnavailable, "upload failed: %s", "503 Service Unavailable")
	assert.Equal(t, "upload failed: 503 Service Unavailable", err.Error())
	assert.Equal(t, http.StatusServiceUnavailable, Code(err))
	assert.False(t, IsAuthError(err))
}
