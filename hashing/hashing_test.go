package hashing

import (
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errBoom = errors.New("boom")

type failing struct{}

func (failing) UpdateHash(io.Writer) error { return errBoom }

func TestSha256(t *testing.T) {
	t.Parallel()

	sum, err := Sha256(String("hello"))
	require.NoError(t, err)
	assert.Equal(t, "2cf24dba5fb0a30e26e83b2ac5b9e29e1b161e5c1fa7425e73043362938b9824", sum)

	_, err = Sha256(failing{})
	require.ErrorIs(t, err, errBoom)
}

func TestXXH3(t *testing.T) {
	t.Parallel()

	a, err := XXH3(Int64s{1, 2, 3})
	require.NoError(t, err)

	b, err := XXH3(Int64s{1, 2, 3})
	require.NoError(t, err)

	c, err := XXH3(Int64s{3, 2, 1})
	require.NoError(t, err)

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)

	_, err = XXH3(failing{})
	require.ErrorIs(t, err, errBoom)
}

func TestInt64s_Empty(t *testing.T) {
	t.Parallel()

	empty, err := XXH3(Int64s{})
	require.NoError(t, err)

	nilSum, err := XXH3(Int64s(nil))
	require.NoError(t, err)

	assert.Equal(t, empty, nilSum)
}
