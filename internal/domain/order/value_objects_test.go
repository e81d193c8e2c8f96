//go:build unit

package order_test

import (
	"strings"
	"testing"

	"kartly-api/internal/domain/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCustomerName(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  string
		errIs error
	}{
		{name: "minimum length", input: "Ab", want: "Ab"},
		{name: "maximum length", input: strings.Repeat("a", 100), want: strings.Repeat("a", 100)},
		{name: "trims surrounding whitespace", input: "  Priya Sharma  ", want: "Priya Sharma"},
		{name: "single character rejected", input: "A", errIs: order.ErrInvalidCustomerName},
		{name: "whitespace only rejected", input: "   ", errIs: order.ErrInvalidCustomerName},
		{name: "too long rejected", input: strings.Repeat("a", 101), errIs: order.ErrInvalidCustomerName},
		{name: "empty rejected", input: "", errIs: order.ErrInvalidCustomerName},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := order.NewCustomerName(tc.input)
			if tc.errIs != nil {
				require.ErrorIs(t, err, tc.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got.Value())
		})
	}
}

func TestNewEmail(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  string
		errIs error
	}{
		{name: "plain address", input: "user@example.com", want: "user@example.com"},
		{name: "lower-cased", input: "User@Example.COM", want: "user@example.com"},
		{name: "trimmed", input: " user@example.com ", want: "user@example.com"},
		{name: "missing at sign", input: "userexample.com", errIs: order.ErrInvalidEmail},
		{name: "missing tld", input: "user@example", errIs: order.ErrInvalidEmail},
		{name: "contains whitespace", input: "us er@example.com", errIs: order.ErrInvalidEmail},
		{name: "empty", input: "", errIs: order.ErrInvalidEmail},
		{name: "over 255 characters", input: strings.Repeat("a", 250) + "@ex.com", errIs: order.ErrInvalidEmail},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := order.NewEmail(tc.input)
			if tc.errIs != nil {
				require.ErrorIs(t, err, tc.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got.Value())
		})
	}
}

func TestNewPhone(t *testing.T) {
	cases := []struct {
		name  string
		input string
		errIs error
	}{
		{name: "ten digits", input: "9876543210"},
		{name: "nine digits", input: "987654321", errIs: order.ErrInvalidPhone},
		{name: "eleven digits", input: "98765432100", errIs: order.ErrInvalidPhone},
		{name: "letters", input: "98765abcde", errIs: order.ErrInvalidPhone},
		{name: "with dashes", input: "987-654-3210", errIs: order.ErrInvalidPhone},
		{name: "empty", input: "", errIs: order.ErrInvalidPhone},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := order.NewPhone(tc.input)
			if tc.errIs != nil {
				require.ErrorIs(t, err, tc.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.input, got.Value())
		})
	}
}

func TestNewAddress(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  string
		errIs error
	}{
		{name: "minimum length", input: "12 MG Road", want: "12 MG Road"},
		{name: "maximum length", input: strings.Repeat("a", 500), want: strings.Repeat("a", 500)},
		{name: "trimmed", input: "  12 MG Road, Bengaluru  ", want: "12 MG Road, Bengaluru"},
		{name: "nine characters rejected", input: "12 MG Rd.", errIs: order.ErrInvalidAddress},
		{name: "over 500 rejected", input: strings.Repeat("a", 501), errIs: order.ErrInvalidAddress},
		{name: "whitespace padding does not satisfy minimum", input: "  short  ", errIs: order.ErrInvalidAddress},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := order.NewAddress(tc.input)
			if tc.errIs != nil {
				require.ErrorIs(t, err, tc.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got.Value())
		})
	}
}
