package value

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name      string
		raw       string
		expectErr bool
		expected  complex128
	}{
		{name: "integer", raw: "42", expected: 42},
		{name: "negative integer", raw: "-7", expected: -7},
		{name: "float", raw: "3.25", expected: 3.25},
		{name: "exponent", raw: "1.5e3", expected: 1500},
		{name: "complex with j suffix", raw: "3+4j", expected: 3 + 4i},
		{name: "complex with i suffix", raw: "3+4i", expected: 3 + 4i},
		{name: "complex negative imaginary", raw: "2.5-1j", expected: 2.5 - 1i},
		{name: "pure imaginary", raw: "4j", expected: 4i},
		{name: "surrounding whitespace", raw: " 12 ", expected: 12},
		{name: "error - empty", raw: "", expectErr: true},
		{name: "error - word", raw: "banana", expectErr: true},
		{name: "error - opcode", raw: "dup", expectErr: true},
		{name: "error - j in the middle", raw: "3j4", expectErr: true},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			v, err := Parse(tc.raw)
			if tc.expectErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, v.Cmplx())
		})
	}
}

func TestString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "42", Real(42).String())
	assert.Equal(t, "3.25", Real(3.25).String())
	assert.Equal(t, "3+4i", Complex(3+4i).String())
	assert.Equal(t, "2.5-1i", Complex(2.5-1i).String())
}

func TestArithmetic(t *testing.T) {
	t.Parallel()

	assert.Equal(t, Real(7), Real(3).Add(Real(4)))
	assert.Equal(t, Real(-1), Real(3).Sub(Real(4)))
	assert.Equal(t, Real(12), Real(3).Mul(Real(4)))
	assert.Equal(t, Real(-3), Real(3).Neg())

	q, err := Real(10).Div(Real(4))
	require.NoError(t, err)
	assert.Equal(t, Real(2.5), q)

	inv, err := Real(4).Inv()
	require.NoError(t, err)
	assert.Equal(t, Real(0.25), inv)

	// Complex arithmetic goes through the same helpers.
	sum := Complex(1 + 2i).Add(Complex(3 - 1i))
	assert.Equal(t, complex128(4+1i), sum.Cmplx())
}

func TestDivisionByZero(t *testing.T) {
	t.Parallel()

	_, err := Real(5).Div(Real(0))
	require.ErrorIs(t, err, ErrDivisionByZero)

	_, err = Real(0).Inv()
	require.ErrorIs(t, err, ErrDivisionByZero)
}
