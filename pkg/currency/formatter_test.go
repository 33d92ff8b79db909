package currency

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFormat(t *testing.T) {
	cases := []struct {
		amount float64
		want   string
	}{
		{1450, "1,450"},
		{1300.0, "1,300"},
		{999, "999"},
		{0, "0"},
		{1234567, "1,234,567"},
		{1449.6, "1,450"},
		{-1450, "-1,450"},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, Format(tc.amount), "amount=%v", tc.amount)
	}
}
