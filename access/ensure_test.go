package access

import (
	"testing"

	"github.com/0xalexb/hjarta-conf/document"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnsureType(t *testing.T) {
	t.Parallel()

	parent := document.NewObject(document.Member{Key: "k", Value: document.Bool(true)})

	require.NoError(t, ensureType(document.Bool(true), document.KindBool, parent, "k"))

	err := ensureType(document.Bool(true), document.KindString, parent, "k")
	require.ErrorIs(t, err, ErrTypeMismatch)

	var keyErr *KeyError

	require.ErrorAs(t, err, &keyErr)
	assert.Equal(t, document.KindString, keyErr.Expected)
	assert.Equal(t, document.KindBool, keyErr.Actual)
	assert.Equal(t, `Key 'k' in object '{"k":true}' has invalid type`, keyErr.Error())
}

func TestDecoders(t *testing.T) {
	t.Parallel()

	_, ok := asString(document.Int(1))
	assert.False(t, ok)

	i64, ok := asInt64(document.Int(-3))
	assert.True(t, ok)
	assert.Equal(t, int64(-3), i64)

	_, ok = asInt(document.Int64(3))
	assert.False(t, ok)

	_, ok = asFloat64(document.Int(3))
	assert.False(t, ok)

	_, ok = asObject(document.Array{})
	assert.False(t, ok)
}
