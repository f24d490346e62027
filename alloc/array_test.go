// File: alloc/array_test.go
// Author: momentics <momentics@gmail.com>
//
// Multi-node array allocator tests against the fake collaborators.

package alloc_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/momentics/silo/alloc"
	"github.com/momentics/silo/api"
	"github.com/momentics/silo/fake"
)

const unit = 4096

func newTestManager(t *testing.T, opts ...alloc.Option) (*alloc.Manager, *fake.Platform, *fake.Registry) {
	t.Helper()
	platform := fake.NewPlatform(unit)
	reg := fake.NewRegistry()
	base := []alloc.Option{
		alloc.WithPlatformMemory(platform),
		alloc.WithTopology(&fake.Topology{NodeCount: 4}),
		alloc.WithRegistry(reg),
	}
	return alloc.NewManager(append(base, opts...)...), platform, reg
}

// TestAllocateArray_TailPadding is the canonical two-piece scenario: 4096
// and 1 byte against a 4096-byte unit. The one-byte piece rounds to zero and
// is then padded back to a full unit so the array covers the request.
func TestAllocateArray_TailPadding(t *testing.T) {
	mgr, platform, reg := newTestManager(t)

	pieces := []api.PieceRequest{
		{Size: 4096, Node: 0},
		{Size: 1, Node: 1},
	}
	base, err := mgr.AllocateArray(pieces)
	require.NoError(t, err)
	require.NotZero(t, base)

	assert.Equal(t, 4096, pieces[0].Size)
	assert.Equal(t, 4096, pieces[1].Size)

	layout, ok := reg.Lookup(base)
	require.True(t, ok)
	require.Len(t, layout, 2)
	assert.Equal(t, base, layout[0].Ptr)
	assert.Equal(t, base+uintptr(layout[0].Size), layout[1].Ptr)
	assert.True(t, platform.Mapped(base))
	assert.True(t, platform.Mapped(base+8191))
}

func TestAllocateArray_ContiguityAndCoverage(t *testing.T) {
	mgr, platform, reg := newTestManager(t)

	pieces := []api.PieceRequest{
		{Size: 10000, Node: 0},
		{Size: 3000, Node: 1},
		{Size: 70000, Node: 2},
	}
	requested := 0
	for _, p := range pieces {
		requested += p.Size
	}

	base, err := mgr.AllocateArray(pieces)
	require.NoError(t, err)

	layout, ok := reg.Lookup(base)
	require.True(t, ok)
	require.Len(t, layout, len(pieces))

	actual := 0
	cursor := base
	for i, p := range layout {
		assert.Equalf(t, cursor, p.Ptr, "piece %d must start where piece %d ends", i, i-1)
		assert.Zerof(t, p.Size%unit, "piece %d size %d not unit-aligned", i, p.Size)
		assert.Equalf(t, p.Size, pieces[i].Size, "piece %d mutated size mismatch", i)
		cursor += uintptr(p.Size)
		actual += p.Size
	}
	assert.GreaterOrEqual(t, actual, requested, "committed bytes must cover the request")
	assert.True(t, platform.Mapped(cursor-1))
	assert.False(t, platform.Mapped(cursor))
}

// TestAllocateArray_InvalidNode verifies that a bad node anywhere in the
// request aborts before any platform call and before any size is rewritten.
func TestAllocateArray_InvalidNode(t *testing.T) {
	mgr, platform, reg := newTestManager(t)

	pieces := []api.PieceRequest{
		{Size: 5000, Node: 0},
		{Size: 5000, Node: 9},
	}
	base, err := mgr.AllocateArray(pieces)
	require.ErrorIs(t, err, api.ErrInvalidNUMANode)
	assert.Zero(t, base)
	assert.Zero(t, platform.Calls, "no memory call may be issued")
	assert.Equal(t, 5000, pieces[0].Size, "sizes must stay untouched on validation failure")
	assert.Zero(t, reg.Submits)
}

func TestAllocateArray_ZeroCoverage(t *testing.T) {
	mgr, platform, _ := newTestManager(t)

	pieces := []api.PieceRequest{
		{Size: 1, Node: 0},
		{Size: unit/2 - 1, Node: 1},
	}
	_, err := mgr.AllocateArray(pieces)
	require.ErrorIs(t, err, api.ErrZeroCoverage)
	assert.Zero(t, platform.Calls)
}

func TestAllocateArray_EmptyRequest(t *testing.T) {
	mgr, _, _ := newTestManager(t)
	_, err := mgr.AllocateArray(nil)
	require.ErrorIs(t, err, api.ErrZeroCoverage)
}

// TestAllocateArray_RollbackOnCommitFailure injects a failure on the third
// commit of a three-piece array and verifies nothing stays mapped.
func TestAllocateArray_RollbackOnCommitFailure(t *testing.T) {
	mgr, platform, reg := newTestManager(t, alloc.WithProbeAttempts(1))
	platform.FailCommit = 3

	pieces := []api.PieceRequest{
		{Size: unit, Node: 0},
		{Size: unit, Node: 1},
		{Size: unit, Node: 2},
	}
	base, err := mgr.AllocateArray(pieces)
	require.ErrorIs(t, err, api.ErrCommitFailed)
	assert.Zero(t, base)
	assert.Zero(t, platform.MappedCount(), "every committed piece must be rolled back")
	assert.Zero(t, reg.Submits)
}

// TestAllocateArray_RetryAfterCommitFailure lets the second commit fail once;
// the bounded retry loop must land the array on the next probe round.
func TestAllocateArray_RetryAfterCommitFailure(t *testing.T) {
	mgr, platform, reg := newTestManager(t)
	platform.FailCommit = 2

	pieces := []api.PieceRequest{
		{Size: unit, Node: 0},
		{Size: unit, Node: 1},
	}
	base, err := mgr.AllocateArray(pieces)
	require.NoError(t, err)

	layout, ok := reg.Lookup(base)
	require.True(t, ok)
	require.Len(t, layout, 2)
	assert.Equal(t, base+uintptr(unit), layout[1].Ptr)
	assert.Equal(t, 2, platform.MappedCount())
}

// TestAllocateArray_ProbeRaceRetried simulates another mapper stealing the
// probed range between probe release and the first fixed-address commit.
func TestAllocateArray_ProbeRaceRetried(t *testing.T) {
	mgr, platform, reg := newTestManager(t)
	platform.StealProbeOnce = true

	pieces := []api.PieceRequest{
		{Size: unit, Node: 0},
		{Size: unit, Node: 1},
	}
	base, err := mgr.AllocateArray(pieces)
	require.NoError(t, err)

	layout, ok := reg.Lookup(base)
	require.True(t, ok)
	cursor := base
	for _, p := range layout {
		require.Equal(t, cursor, p.Ptr)
		cursor += uintptr(p.Size)
	}
}

func TestAllocateArray_MutatesRequestedSizes(t *testing.T) {
	mgr, platform, _ := newTestManager(t)

	// 6000 rounds down to 4096, then tail padding restores coverage.
	pieces := []api.PieceRequest{{Size: 6000, Node: 0}}
	base, err := mgr.AllocateArray(pieces)
	require.NoError(t, err)
	assert.Equal(t, 2*unit, pieces[0].Size)
	assert.True(t, platform.Mapped(base+uintptr(2*unit)-1))
}

func TestFree_ReleasesEveryPiece(t *testing.T) {
	mgr, platform, reg := newTestManager(t)

	pieces := []api.PieceRequest{
		{Size: unit, Node: 0},
		{Size: 3 * unit, Node: 1},
	}
	base, err := mgr.AllocateArray(pieces)
	require.NoError(t, err)
	require.Equal(t, 2, platform.MappedCount())

	require.NoError(t, mgr.Free(base))
	assert.Zero(t, platform.MappedCount())
	assert.Zero(t, reg.Len())

	err = mgr.Free(base)
	assert.ErrorIs(t, err, api.ErrNotTracked)
}
