package attrib

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/joshuapare/stylekit/pkg/types"
)

func TestIntern_SharesIdenticalPairs(t *testing.T) {
	s := New()

	a1 := s.Intern(3, []byte("red"))
	a2 := s.Intern(3, []byte("red"))
	require.NotEqual(t, None, a1)
	require.Equal(t, a1, a2)
	require.Equal(t, 2, s.Refs(a1), "both interns share one refcount")
	require.Equal(t, 1, s.Len())

	// Same bytes, different property: distinct attribute.
	b := s.Intern(4, []byte("red"))
	require.NotEqual(t, a1, b)

	// Same property, different bytes: distinct attribute.
	c := s.Intern(3, []byte("blue"))
	require.NotEqual(t, a1, c)
	require.Equal(t, 3, s.Len())
}

func TestIntern_CopiesInput(t *testing.T) {
	s := New()
	buf := []byte("10px")
	h := s.Intern(1, buf)
	buf[0] = 'X'

	require.Equal(t, []byte("10px"), s.Data(h))
	require.Equal(t, types.PropertyID(1), s.ID(h))
	require.Equal(t, h, s.Intern(1, []byte("10px")))
}

func TestRelease_KeepsSharedHandleAlive(t *testing.T) {
	s := New()
	a1 := s.Intern(7, []byte{1, 2, 3})
	a2 := s.Intern(7, []byte{1, 2, 3})

	s.Release(a1)
	require.Equal(t, 1, s.Refs(a2))
	require.Equal(t, []byte{1, 2, 3}, s.Data(a2), "other reference still valid")

	s.Release(a2)
	require.Equal(t, 0, s.Len())
	require.Panics(t, func() { s.Data(a2) }, "reclaimed handle is no longer live")
}

func TestRelease_BelowZeroPanics(t *testing.T) {
	s := New()
	h := s.Intern(1, []byte("x"))
	s.Release(h)
	require.Panics(t, func() { s.Release(h) })
}

func TestNone_IsInert(t *testing.T) {
	s := New()
	require.NotPanics(t, func() {
		s.AddRef(None)
		s.Release(None)
	})
	require.Equal(t, 0, s.Refs(None))
}

func TestIntern_ReusesReclaimedSlot(t *testing.T) {
	s := New()
	h1 := s.Intern(1, []byte("a"))
	s.Release(h1)

	h2 := s.Intern(2, []byte("b"))
	require.Equal(t, h1, h2, "slot reclaimed at refcount zero is reused")
	require.Equal(t, types.PropertyID(2), s.ID(h2))

	// The old content no longer resolves to the recycled slot.
	h3 := s.Intern(1, []byte("a"))
	require.NotEqual(t, h2, h3)
}

func TestFlush_TrimsFreeTail(t *testing.T) {
	s := New()
	keep := s.Intern(1, []byte("keep"))
	tmp1 := s.Intern(2, []byte("tmp1"))
	tmp2 := s.Intern(3, []byte("tmp2"))
	s.Release(tmp1)
	s.Release(tmp2)

	before := s.Stats()
	require.Equal(t, 4, before.Slots)
	require.Equal(t, 2, before.FreeSlots)

	require.Equal(t, 2, s.Flush())
	after := s.Stats()
	require.Equal(t, 2, after.Slots)
	require.Equal(t, 0, after.FreeSlots)
	require.Equal(t, 1, after.Live)
	require.Equal(t, 4, after.Bytes)
	require.Equal(t, []byte("keep"), s.Data(keep), "flush never moves live handles")

	// Growth after a flush continues densely.
	next := s.Intern(4, []byte("next"))
	require.Equal(t, Handle(2), next)
}

func TestIntern_OutOfRangeIDPanics(t *testing.T) {
	s := New()
	require.Panics(t, func() { s.Intern(types.MaxPropertyIDs, nil) })
}
