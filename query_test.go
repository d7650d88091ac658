package ruddr

import (
	"errors"
	"testing"

	oaerrors "github.com/go-openapi/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuery_KeepsInsertionOrder(t *testing.T) {
	q := &query{}
	q.set("b", "2")
	q.set("a", "1")
	q.set("skipped", "")
	q.int("n", 42)

	assert.Equal(t, "b=2&a=1&n=42", q.String())
}

func TestQuery_EscapesText(t *testing.T) {
	q := &query{}
	q.text("nameContains", "a&b=c d")
	q.text("code", "")

	assert.Equal(t, "nameContains=a%26b%3Dc+d", q.String())
}

func TestQuery_SkipsZeroScalars(t *testing.T) {
	q := &query{}
	q.id("memberId", Identifier{})
	q.date("date", Date{})

	assert.Empty(t, q.String())
}

func TestNewListQuery(t *testing.T) {
	tests := []struct {
		name string
		opts ListOptions
		want string
	}{
		{"default limit", ListOptions{}, "limit=100"},
		{"explicit limit", ListOptions{Limit: 1}, "limit=1"},
		{"max limit", ListOptions{Limit: MaxLimit}, "limit=100"},
		{
			"cursor",
			ListOptions{Limit: 50, StartingAfter: Identifier{value: "b3a100b0-8e71-4f39-9d96-32f11838aa8c"}},
			"limit=50&startingAfter=b3a100b0-8e71-4f39-9d96-32f11838aa8c",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q, err := newListQuery(tt.opts)
			require.NoError(t, err)
			assert.Equal(t, tt.want, q.String())
		})
	}
}

func TestNewListQuery_LimitOutOfRange(t *testing.T) {
	for _, limit := range []int{-1, MaxLimit + 1} {
		q, err := newListQuery(ListOptions{Limit: limit})

		assert.Nil(t, q)
		assert.ErrorIs(t, err, ErrValidation)

		var verr *oaerrors.Validation
		require.True(t, errors.As(err, &verr), "cause should be a validation error")
		assert.Equal(t, "limit", verr.Name)
		assert.Equal(t, "query", verr.In)
	}
}

func TestScalarCheck_WrapsValidation(t *testing.T) {
	_, err := ParseDate("2024-02-30")

	var verr *oaerrors.Validation
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "date", verr.Name)
}
