package token

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/rpncalc/internal/value"
)

type fakeOpcodes map[string]struct{}

func (f fakeOpcodes) Has(opcode string) bool {
	_, ok := f[opcode]
	return ok
}

func TestClassify(t *testing.T) {
	t.Parallel()

	reg := fakeOpcodes{"+": {}, "dup": {}, "**": {}}

	testCases := []struct {
		name     string
		raw      string
		expected Kind
		invalid  bool
	}{
		{name: "registered opcode", raw: "dup", expected: Opcode},
		{name: "registered symbol", raw: "+", expected: Opcode},
		{name: "integer", raw: "42", expected: Number},
		{name: "negative float", raw: "-2.5", expected: Number},
		{name: "complex", raw: "1+2j", expected: Number},
		{name: "unknown word", raw: "banana", invalid: true},
		{name: "unregistered operator-looking token", raw: "//", invalid: true},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			tok, err := Classify(tc.raw, reg)
			if tc.invalid {
				var invalidErr *InvalidTokenError
				require.ErrorAs(t, err, &invalidErr)
				assert.Equal(t, tc.raw, invalidErr.Text)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, tok.Kind)
			assert.Equal(t, tc.raw, tok.Text)
		})
	}
}

func TestClassify_OpcodeWinsOverNumber(t *testing.T) {
	t.Parallel()

	// A group may register an opcode that would also parse as a number;
	// the registry answer takes precedence.
	reg := fakeOpcodes{"42": {}}
	tok, err := Classify("42", reg)
	require.NoError(t, err)
	assert.Equal(t, Opcode, tok.Kind)
}

func TestNum(t *testing.T) {
	t.Parallel()

	tok := Num(value.Real(3.5))
	assert.Equal(t, Number, tok.Kind)
	assert.Equal(t, "3.5", tok.Text)
	assert.Equal(t, value.Real(3.5), tok.Value)
}
