// SPDX-License-Identifier: MIT
package attribute_test

import (
	"context"
	"errors"
	"testing"

	"github.com/katalvlaran/hyperbase/attribute"
	"github.com/katalvlaran/hyperbase/element"
	"github.com/katalvlaran/hyperbase/kvbackend/memkv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreGetSetIncDecDegree(t *testing.T) {
	ctx := context.Background()
	s := attribute.New(memkv.New())
	a := element.Atom("graphbrain/1")

	d, err := s.Degree(ctx, a)
	require.NoError(t, err)
	assert.Equal(t, int64(0), d)

	require.NoError(t, s.Set(ctx, a, "label", "hello"))
	str, err := s.GetStr(ctx, a, "label", "")
	require.NoError(t, err)
	assert.Equal(t, "hello", str)

	require.NoError(t, s.Inc(ctx, a, attribute.DegreeField))
	require.NoError(t, s.Inc(ctx, a, attribute.DegreeField))
	require.NoError(t, s.Dec(ctx, a, attribute.DegreeField))

	d, err = s.Degree(ctx, a)
	require.NoError(t, err)
	assert.Equal(t, int64(1), d)
}

func TestStoreMissingRecordReturnsDefaults(t *testing.T) {
	ctx := context.Background()
	s := attribute.New(memkv.New())
	a := element.Atom("unseen/1")

	i, err := s.GetInt(ctx, a, "x", 9)
	require.NoError(t, err)
	assert.Equal(t, int64(9), i)
}

func TestStoreGetWrongKindReturnsErrWrongType(t *testing.T) {
	ctx := context.Background()
	s := attribute.New(memkv.New())
	a := element.Atom("graphbrain/1")

	require.NoError(t, s.Set(ctx, a, "label", "hello"))

	i, err := s.GetInt(ctx, a, "label", 42)
	assert.Equal(t, int64(42), i)
	require.Error(t, err)
	assert.True(t, errors.Is(err, attribute.ErrWrongType))

	f, err := s.GetFloat(ctx, a, "label", 1.5)
	assert.Equal(t, 1.5, f)
	require.Error(t, err)
	assert.True(t, errors.Is(err, attribute.ErrWrongType))

	require.NoError(t, s.Set(ctx, a, "count", 7))
	str, err := s.GetStr(ctx, a, "count", "fallback")
	assert.Equal(t, "fallback", str)
	require.Error(t, err)
	assert.True(t, errors.Is(err, attribute.ErrWrongType))
}
