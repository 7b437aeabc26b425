package registry

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/rpncalc/internal/operator"
	"github.com/vk/rpncalc/internal/value"
)

func singleSpec(opcode string, arity int) operator.Spec {
	return operator.Spec{
		Opcode: opcode,
		Arity:  arity,
		Compute: func(args []value.Value) operator.Outcome {
			return operator.None()
		},
	}
}

func TestNew_InstallsStandardSet(t *testing.T) {
	t.Parallel()

	r := New()
	for _, opcode := range []string{"+", "-", "*", "/", "drop", "swap", "dup"} {
		def, ok := r.Lookup(opcode)
		require.True(t, ok, "standard opcode %q should be registered", opcode)
		assert.Equal(t, operator.StdGroup, def.Group)
		assert.NotNil(t, def.Compute)
	}
	assert.Equal(t, 7, r.Len())
}

func TestRegisterGroup_LookupAndEvict(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	r := New()

	require.NoError(t, r.RegisterGroup(ctx, "ext", []operator.Spec{singleSpec("**", 2)}))

	def, ok := r.Lookup("**")
	require.True(t, ok)
	assert.Equal(t, "ext", def.Group)
	assert.Equal(t, 2, def.Arity)

	require.NoError(t, r.EvictGroup(ctx, "ext"))
	_, ok = r.Lookup("**")
	assert.False(t, ok)
}

func TestEvictGroup_StdIsProtected(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	r := New()

	err := r.EvictGroup(ctx, "std")
	var protectedErr *ProtectedGroupError
	require.ErrorAs(t, err, &protectedErr)
	assert.Equal(t, "std", protectedErr.Group)

	// Registry is unchanged: all standard opcodes remain.
	assert.Equal(t, 7, r.Len())
	assert.True(t, r.Has("+"))
	assert.True(t, r.Has("dup"))
}

func TestEvictGroup_UnknownGroupIsNoop(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	r := New()

	require.NoError(t, r.EvictGroup(ctx, "doesnotexist"))
	assert.Equal(t, 7, r.Len())

	// Idempotent: evicting twice is still fine.
	require.NoError(t, r.RegisterGroup(ctx, "ext", []operator.Spec{singleSpec("**", 2)}))
	require.NoError(t, r.EvictGroup(ctx, "ext"))
	require.NoError(t, r.EvictGroup(ctx, "ext"))
	assert.False(t, r.Has("**"))
}

func TestRegisterGroup_LastWriteWins(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	r := New()

	marker := 0
	override := operator.Spec{
		Opcode: "dup",
		Arity:  1,
		Compute: func(args []value.Value) operator.Outcome {
			marker++
			return operator.Multi(args[0], args[0])
		},
	}
	require.NoError(t, r.RegisterGroup(ctx, "ext", []operator.Spec{override}))

	def, ok := r.Lookup("dup")
	require.True(t, ok)
	assert.Equal(t, "ext", def.Group, "the override should shadow the standard definition")

	def.Compute([]value.Value{value.Real(1)})
	assert.Equal(t, 1, marker, "execution must use the new definition exclusively")

	// Evicting the override's group removes the opcode entirely; the old
	// definition is gone, not resurrected.
	require.NoError(t, r.EvictGroup(ctx, "ext"))
	assert.False(t, r.Has("dup"))
}

func TestRegisterGroup_RejectsDefectiveGroupWholly(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	r := New()

	specs := []operator.Spec{
		singleSpec("ok", 1),
		{Opcode: "", Arity: 1, Compute: nil}, // two defects in one spec
		{Opcode: "bad-arity", Arity: -1, Compute: singleSpec("x", 0).Compute},
	}

	err := r.RegisterGroup(ctx, "broken", specs)
	var specErr *GroupSpecError
	require.ErrorAs(t, err, &specErr)
	assert.Equal(t, "broken", specErr.Group)
	assert.Len(t, specErr.Problems, 3)

	// Nothing from the group registered, not even the valid spec.
	assert.False(t, r.Has("ok"))
	assert.False(t, r.Has("bad-arity"))
	assert.Equal(t, 7, r.Len())
}

func TestAll_PreservesFirstRegistrationOrder(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	r := New()

	require.NoError(t, r.RegisterGroup(ctx, "a", []operator.Spec{singleSpec("one", 0), singleSpec("two", 0)}))
	require.NoError(t, r.RegisterGroup(ctx, "b", []operator.Spec{singleSpec("one", 2)})) // redefines "one"

	var opcodes []string
	for _, def := range r.All() {
		opcodes = append(opcodes, def.Opcode)
	}
	require.Len(t, opcodes, 9)
	assert.Equal(t, []string{"+", "-", "*", "/", "drop", "swap", "dup", "one", "two"}, opcodes)

	// The redefinition kept its slot but carries the new group and arity.
	def, ok := r.Lookup("one")
	require.True(t, ok)
	assert.Equal(t, "b", def.Group)
	assert.Equal(t, 2, def.Arity)
}
