// SPDX-License-Identifier: MIT
package storekey_test

import (
	"testing"

	"github.com/katalvlaran/hyperbase/element"
	"github.com/katalvlaran/hyperbase/permutation"
	"github.com/katalvlaran/hyperbase/storekey"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVertexKey(t *testing.T) {
	a := element.Atom("graphbrain/1")
	assert.Equal(t, "vgraphbrain/1", string(storekey.VertexKey(a)))
}

func TestRootPrefixAndBareKey(t *testing.T) {
	assert.Equal(t, "vgraphbrain/", string(storekey.RootPrefix("graphbrain")))
	assert.Equal(t, "vgraphbrain", string(storekey.RootBareKey("graphbrain")))
}

func TestPermKeyRoundTripsThroughDecode(t *testing.T) {
	edge := element.Edge{element.Atom("is"), element.Atom("graphbrain/1"), element.Atom("great/1")}
	for k := 0; k < 6; k++ {
		rotated, err := permutation.Permutate([]element.Element(edge), k)
		require.NoError(t, err)

		key, err := storekey.PermKey(rotated, k, 3)
		require.NoError(t, err)

		rendering, gotK, err := storekey.DecodePermKey(key)
		require.NoError(t, err)
		assert.Equal(t, k, gotK)
		assert.Equal(t, element.Render(element.Edge(rotated)), rendering)
	}
}

func TestPermKeyK0IsCanonicalRendering(t *testing.T) {
	edge := element.Edge{element.Atom("is"), element.Atom("graphbrain/1"), element.Atom("great/1")}
	rotated, err := permutation.Permutate([]element.Element(edge), 0)
	require.NoError(t, err)
	key, err := storekey.PermKey(rotated, 0, 3)
	require.NoError(t, err)
	assert.Equal(t, "p(is graphbrain/1 great/1)|0", string(key))
}

func TestPermScanPrefix(t *testing.T) {
	got := storekey.PermScanPrefix([]string{"is", "graphbrain/1"})
	assert.Equal(t, "p(is graphbrain/1 ", string(got))

	assert.Equal(t, "p(", string(storekey.PermScanPrefix(nil)))
}

func TestDecodePermKeyRejectsMalformed(t *testing.T) {
	_, _, err := storekey.DecodePermKey([]byte("vfoo"))
	assert.ErrorIs(t, err, storekey.ErrBadKey)

	_, _, err = storekey.DecodePermKey([]byte("p(a b)"))
	assert.ErrorIs(t, err, storekey.ErrBadKey)
}
