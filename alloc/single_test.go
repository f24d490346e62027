// File: alloc/single_test.go
// Author: momentics <momentics@gmail.com>

package alloc_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/momentics/silo/api"
)

func TestAllocNUMA_PinsToNode(t *testing.T) {
	mgr, platform, _ := newTestManager(t)

	ptr, err := mgr.AllocNUMA(2*unit, 1)
	require.NoError(t, err)
	require.NotZero(t, ptr)
	assert.Equal(t, 1, platform.NodeOf(ptr))
	assert.True(t, platform.Mapped(ptr+uintptr(2*unit)-1))

	mgr.FreeNUMA(ptr, 2*unit)
	assert.Zero(t, platform.MappedCount())
}

func TestAllocNUMA_InvalidNode(t *testing.T) {
	mgr, platform, _ := newTestManager(t)

	_, err := mgr.AllocNUMA(unit, -1)
	require.ErrorIs(t, err, api.ErrInvalidNUMANode)
	_, err = mgr.AllocNUMA(unit, 4)
	require.ErrorIs(t, err, api.ErrInvalidNUMANode)
	assert.Zero(t, platform.Calls)
}

func TestFreeNUMA_NilPointerIsNoop(t *testing.T) {
	mgr, platform, _ := newTestManager(t)
	mgr.FreeNUMA(0, unit)
	assert.Zero(t, platform.MappedCount())
}
