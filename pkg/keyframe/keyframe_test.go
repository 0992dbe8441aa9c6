package keyframe_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/joshuapare/stylekit/internal/testutil"
	"github.com/joshuapare/stylekit/pkg/keyframe"
	"github.com/joshuapare/stylekit/pkg/registry"
	"github.com/joshuapare/stylekit/pkg/stylecache"
	"github.com/joshuapare/stylekit/pkg/types"
)

func TestPropertyView_CloneMoveRelease(t *testing.T) {
	c := testutil.NewCache(t)
	p := testutil.Prop(t, c, "opacity", "0.5")

	v := keyframe.NewPropertyView(c, registry.Opacity, p)
	c.PropertyRelease(p)
	require.Equal(t, registry.Opacity, v.ID())

	clone := v.Clone()
	require.Equal(t, v.Property(), clone.Property())

	moved := v.Move()
	require.True(t, v.IsZero(), "the source is emptied")
	require.NotPanics(t, v.Release, "releasing an empty view does nothing")

	got, err := moved.Value()
	require.NoError(t, err)
	require.Equal(t, "0.5", got.String())

	moved.Release()
	require.True(t, moved.IsZero())
	require.Equal(t, 1, c.Stats().Attributes, "the clone still holds the property")

	clone.Release()
	testutil.RequireBalanced(t, c)
}

func TestAnimationKey_Ownership(t *testing.T) {
	c := testutil.NewCache(t)
	p := testutil.Prop(t, c, "width", "10px")

	k := keyframe.AnimationKey{Time: 0.25, Prop: keyframe.NewPropertyView(c, registry.Width, p)}
	c.PropertyRelease(p)

	dup := k.Clone()
	taken := k.Move()
	require.Equal(t, float32(0.25), taken.Time)
	require.True(t, k.Prop.IsZero())

	k.Release()
	taken.Release()
	dup.Release()
	testutil.RequireBalanced(t, c)
}

func TestKeyframe_SortedByTime(t *testing.T) {
	c := testutil.NewCache(t)
	p := testutil.Prop(t, c, "width", "1px")
	defer c.PropertyRelease(p)

	var f keyframe.Keyframe
	for _, tm := range []float32{0.5, 0, 1, 0.5} {
		f.Insert(keyframe.AnimationKey{Time: tm, Prop: keyframe.NewPropertyView(c, registry.Width, p)})
	}
	require.Equal(t, []float32{0, 0.5, 0.5, 1}, f.Times())
	require.Equal(t, 4, f.Len())
	f.Release()
	require.Equal(t, 0, f.Len())
}

func TestSet_Add(t *testing.T) {
	c := testutil.NewCache(t)
	animatable := registry.Default().Animatable()
	s := keyframe.NewSet(c, &animatable)

	from := testutil.Props(t, c, "opacity", "0", "width", "0px")
	to := testutil.Props(t, c, "opacity", "1")
	require.NoError(t, s.Add("fade", []float32{0}, from))
	require.NoError(t, s.Add("fade", []float32{0.5, 1}, to))
	c.ReleaseVector(from)
	c.ReleaseVector(to)

	kfs, ok := s.Get("fade")
	require.True(t, ok)
	require.Equal(t, []types.PropertyID{registry.Opacity, registry.Width}, kfs.IDs().IDs())
	require.Equal(t, []float32{0, 0.5, 1}, kfs[registry.Opacity].Times())

	last := kfs[registry.Opacity].At(2)
	v, err := last.Prop.Value()
	require.NoError(t, err)
	require.Equal(t, "1", v.String())

	_, ok = s.Get("missing")
	require.False(t, ok)
	require.Equal(t, []string{"fade"}, s.Names())

	s.Release()
	require.Equal(t, 0, s.Len())
	testutil.RequireBalanced(t, c)
}

func TestSet_AddErrors(t *testing.T) {
	c := testutil.NewCache(t)
	animatable := registry.Default().Animatable()
	s := keyframe.NewSet(c, &animatable)

	vec := testutil.Props(t, c, "opacity", "1")
	defer c.ReleaseVector(vec)

	require.ErrorIs(t, s.Add("x", []float32{1.5}, vec), keyframe.ErrTime)
	require.ErrorIs(t, s.Add("x", []float32{-0.1}, vec), keyframe.ErrTime)

	display := testutil.Props(t, c, "display", "block")
	defer c.ReleaseVector(display)
	require.ErrorIs(t, s.Add("x", []float32{0}, display), keyframe.ErrNotAnimatable)

	times := make([]float32, types.MaxKeyframesPerProperty+1)
	require.ErrorIs(t, s.Add("x", times, vec), keyframe.ErrTooManyKeys)

	require.Equal(t, 0, s.Len(), "failed adds leave the set unchanged")
	require.NoError(t, s.Add("empty", []float32{0}, stylecache.PropertyVector{{}}))
	require.Equal(t, 0, s.Len(), "nothing to add")
}

func TestSet_Merge(t *testing.T) {
	c := testutil.NewCache(t)
	a := keyframe.NewSet(c, nil)
	b := keyframe.NewSet(c, nil)

	red := testutil.Props(t, c, "color", "red")
	blue := testutil.Props(t, c, "color", "blue")
	require.NoError(t, a.Add("pulse", []float32{0}, red))
	require.NoError(t, a.Add("only-a", []float32{1}, red))
	require.NoError(t, b.Add("pulse", []float32{0, 1}, blue))
	c.ReleaseVector(red)
	c.ReleaseVector(blue)

	a.Merge(b)
	a.Merge(a)
	require.Equal(t, []string{"only-a", "pulse"}, a.Names())
	pulse, _ := a.Get("pulse")
	require.Equal(t, 2, pulse[registry.Color].Len(), "the merged-in set wins")

	b.Release()
	pulse, _ = a.Get("pulse")
	v, err := pulse[registry.Color].At(0).Prop.Value()
	require.NoError(t, err)
	require.Equal(t, "#0000ff", v.String(), "a holds its own references")

	require.Panics(t, func() { a.Merge(keyframe.NewSet(testutil.NewCache(t), nil)) })

	a.Release()
	testutil.RequireBalanced(t, c)
}
