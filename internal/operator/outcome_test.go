package operator

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/rpncalc/internal/value"
)

func TestOutcomeVariants(t *testing.T) {
	t.Parallel()

	none := None()
	assert.False(t, none.Failed())
	assert.Empty(t, none.Values())
	assert.NoError(t, none.Err())

	single := Single(value.Real(7))
	assert.False(t, single.Failed())
	assert.Equal(t, []value.Value{value.Real(7)}, single.Values())

	multi := Multi(value.Real(1), value.Real(2))
	assert.False(t, multi.Failed())
	assert.Equal(t, []value.Value{value.Real(1), value.Real(2)}, multi.Values())
}

func TestOutcomeFailure(t *testing.T) {
	t.Parallel()

	cause := errors.New("boom")
	fail := Fail(cause)
	require.True(t, fail.Failed())
	assert.ErrorIs(t, fail.Err(), cause)
	assert.Empty(t, fail.Values())

	failf := Failf("bad operand %d", 3)
	require.True(t, failf.Failed())
	assert.EqualError(t, failf.Err(), "bad operand 3")
}
