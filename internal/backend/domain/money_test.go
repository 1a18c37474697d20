package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseMoney(t *testing.T) {
	t.Parallel()

	type testCase struct {
		name  string
		input string

		expected    Money
		expectedErr error
	}

	tests := []testCase{
		{name: "whole dollars", input: "25", expected: Money(2500)},
		{name: "dollars and cents", input: "25.37", expected: Money(2537)},
		{name: "single cent", input: "0.01", expected: Money(1)},
		{name: "zero", input: "0", expected: Money(0)},
		{name: "trailing zeros", input: "10.50", expected: Money(1050)},
		{name: "sub-cent precision rejected", input: "0.001", expectedErr: &InvalidArgumentsError{}},
		{name: "not a number", input: "ten", expectedErr: &InvalidArgumentsError{}},
		{name: "empty string", input: "", expectedErr: &InvalidArgumentsError{}},
	}

	for _, tc := range tests {
		tt := tc
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			result, err := ParseMoney(tt.input)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestMoney_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "25.00", Money(2500).String())
	assert.Equal(t, "0.01", Money(1).String())
	assert.Equal(t, "0.00", Money(0).String())
	assert.Equal(t, "1234.56", Money(123456).String())
}
