package booking

import (
	"testing"

	"rentora/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewQuote(t *testing.T) {
	t.Run("three day rental", func(t *testing.T) {
		q, err := NewQuote("2024-01-01", "2024-01-04")
		require.NoError(t, err)
		assert.Equal(t, 3, q.DayTotal)
		assert.Equal(t, "2024-01-01", q.DateIn)
		assert.Equal(t, "2024-01-04", q.DateOut)
	})

	t.Run("single day", func(t *testing.T) {
		q, err := NewQuote("2024-01-01", "2024-01-02")
		require.NoError(t, err)
		assert.Equal(t, 1, q.DayTotal)
	})

	t.Run("equal dates rejected", func(t *testing.T) {
		_, err := NewQuote("2024-01-01", "2024-01-01")
		assert.ErrorIs(t, err, ErrDateOrder)
	})

	t.Run("reversed dates rejected", func(t *testing.T) {
		_, err := NewQuote("2024-01-04", "2024-01-01")
		assert.ErrorIs(t, err, ErrDateOrder)
	})

	t.Run("rfc3339 timestamps truncate to dates", func(t *testing.T) {
		q, err := NewQuote("2024-01-01T08:00:00Z", "2024-01-03T09:30:00Z")
		require.NoError(t, err)
		assert.Equal(t, "2024-01-01", q.DateIn)
		assert.Equal(t, "2024-01-03", q.DateOut)
		// 2d1.5h rounds up to 3 days.
		assert.Equal(t, 3, q.DayTotal)
	})

	t.Run("garbage date", func(t *testing.T) {
		_, err := NewQuote("not-a-date", "2024-01-04")
		assert.Error(t, err)
		_, err = NewQuote("2024-01-01", "04/01/2024")
		assert.Error(t, err)
	})
}

func TestQuoteTotal(t *testing.T) {
	q, err := NewQuote("2024-01-01", "2024-01-04")
	require.NoError(t, err)
	assert.Equal(t, int64(600000), q.Total(100000, 2))
	assert.Equal(t, int64(300000), q.Total(100000, 1))
}

func TestValidatePayment(t *testing.T) {
	cases := []struct {
		name    string
		method  string
		bank    string
		wantErr error
	}{
		{"cash without bank", models.PaymentCash, "", nil},
		{"cash with bank", models.PaymentCash, "bca", ErrBankForbidden},
		{"transfer with bank", models.PaymentTransfer, "mandiri", nil},
		{"transfer without bank", models.PaymentTransfer, "", ErrBankRequired},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidatePayment(tc.method, tc.bank)
			if tc.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tc.wantErr)
			}
		})
	}
}
