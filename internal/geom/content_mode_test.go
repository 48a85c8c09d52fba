package geom

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAspectFit_WideSourceIntoSquare(t *testing.T) {
	got := AspectFit(NewRect(0, 0, 200, 100), NewRect(0, 0, 100, 100))
	require.Equal(t, NewRect(0, 25, 100, 50), got)
}

func TestAspectFit_TallSourceIntoSquare(t *testing.T) {
	got := AspectFit(NewRect(0, 0, 100, 200), NewRect(0, 0, 100, 100))
	require.Equal(t, NewRect(25, 0, 50, 100), got)
}

func TestAspectFit_NeverExceedsDestination(t *testing.T) {
	cases := []struct {
		from, to Rect
	}{
		{NewRect(0, 0, 640, 480), NewRect(0, 0, 320, 568)},
		{NewRect(0, 0, 1, 3), NewRect(10, 20, 300, 300)},
		{NewRect(0, 0, 4000, 3000), NewRect(0, 0, 1024, 768)},
	}
	for _, c := range cases {
		got := AspectFit(c.from, c.to)
		assert.GreaterOrEqual(t, got.MinX(), c.to.MinX())
		assert.GreaterOrEqual(t, got.MinY(), c.to.MinY())
		assert.LessOrEqual(t, got.MaxX(), c.to.MaxX())
		assert.LessOrEqual(t, got.MaxY(), c.to.MaxY())
	}
}

func TestAspectFit_RoundsOutward(t *testing.T) {
	// 3:2 into 100x100 gives a height of 66.67 starting at y=16.67
	got := AspectFit(NewRect(0, 0, 3, 2), NewRect(0, 0, 100, 100))
	assert.Equal(t, NewRect(0, 16, 100, 68), got)
}

func TestAspectFill_WideSourceIntoSquare(t *testing.T) {
	got := AspectFill(NewRect(0, 0, 200, 100), NewRect(0, 0, 100, 100))
	require.Equal(t, NewRect(-50, 0, 200, 100), got)
}

func TestAspectFill_TallSourceIntoSquare(t *testing.T) {
	got := AspectFill(NewRect(0, 0, 100, 200), NewRect(0, 0, 100, 100))
	require.Equal(t, NewRect(0, -50, 100, 200), got)
}

func TestAspectFit_OffsetDestination(t *testing.T) {
	got := AspectFit(NewRect(0, 0, 200, 100), NewRect(10, 10, 100, 100))
	assert.Equal(t, NewRect(10, 35, 100, 50), got)
}

func TestAspect_DegenerateSource(t *testing.T) {
	to := NewRect(5, 6, 100, 100)
	assert.True(t, AspectFit(NewRect(0, 0, 100, 0), to).Empty())
	assert.True(t, AspectFill(NewRect(0, 0, 0, 0), to).Empty())
}

func TestBoundsForContentMode(t *testing.T) {
	from := NewRect(0, 0, 200, 100)
	to := NewRect(0, 0, 100, 100)

	assert.Equal(t, AspectFit(from, to), BoundsForContentMode(ScaleAspectFit, from, to))
	assert.Equal(t, AspectFill(from, to), BoundsForContentMode(ScaleAspectFill, from, to))
	assert.Equal(t, from, BoundsForContentMode(ScaleNone, from, to))
	assert.Equal(t, from, BoundsForContentMode(ContentMode(42), from, to))
}

func TestParseContentMode(t *testing.T) {
	for in, want := range map[string]ContentMode{
		"fit":   ScaleAspectFit,
		"FILL":  ScaleAspectFill,
		" none": ScaleNone,
	} {
		got, err := ParseContentMode(in)
		require.NoError(t, err)
		assert.Equal(t, want, got)
		if in == "fit" {
			assert.Equal(t, "fit", got.String())
		}
	}

	_, err := ParseContentMode("stretch")
	require.Error(t, err)
}

func TestRect_Conversions(t *testing.T) {
	r := FromRectangle(image.Rect(2, 3, 12, 23))
	assert.Equal(t, NewRect(2, 3, 10, 20), r)
	assert.Equal(t, image.Rect(2, 3, 12, 23), r.Rectangle())
	assert.InDelta(t, 0.5, r.AspectRatio(), 1e-9)

	assert.Equal(t, image.Rect(0, 0, 3, 3), NewRect(0.2, 0.7, 2.1, 2.2).Rectangle())
}
