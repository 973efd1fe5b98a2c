package canvas

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRejectsEmpty(t *testing.T) {
	for _, size := range [][2]int{{0, 1}, {1, 0}, {-1, 3}, {0, 0}} {
		_, err := New(size[0], size[1])
		assert.ErrorIs(t, err, ErrInvalidSize, "size %v", size)
	}
}

func TestResizeDiscardsContents(t *testing.T) {
	c, err := New(2, 2)
	require.NoError(t, err)
	require.NoError(t, c.Set(1, 1, RGB(1, 2, 3)))

	require.NoError(t, c.Resize(3, 4))
	assert.Equal(t, 3, c.Width())
	assert.Equal(t, 4, c.Height())
	assert.Len(t, c.Raw(), 12)
	for _, p := range c.Raw() {
		assert.Equal(t, Pixel{}, p)
	}

	assert.ErrorIs(t, c.Resize(0, 4), ErrInvalidSize)
	assert.Len(t, c.Raw(), 12, "failed resize keeps the previous storage")
}

func TestSetAtShareOrigin(t *testing.T) {
	c, err := New(3, 2)
	require.NoError(t, err)

	require.NoError(t, c.Set(0, 0, RGB(10, 0, 0)))
	require.NoError(t, c.Set(2, 1, RGB(0, 20, 0)))

	p, err := c.At(0, 0)
	require.NoError(t, err)
	assert.Equal(t, RGB(10, 0, 0), p)

	p, err = c.At(2, 1)
	require.NoError(t, err)
	assert.Equal(t, RGB(0, 20, 0), p)

	// (0,0) is storage index 0, (2,1) is the last pixel of storage row 1.
	assert.Equal(t, RGB(10, 0, 0), c.Raw()[0])
	assert.Equal(t, RGB(0, 20, 0), c.Raw()[5])
}

func TestOutOfBounds(t *testing.T) {
	c, err := New(2, 2)
	require.NoError(t, err)
	require.NoError(t, c.Set(0, 0, RGB(9, 9, 9)))

	for _, xy := range [][2]int{{2, 0}, {0, 2}, {-1, 0}, {0, -1}} {
		_, err := c.At(xy[0], xy[1])
		assert.ErrorIs(t, err, ErrOutOfBounds)
		assert.ErrorIs(t, c.Set(xy[0], xy[1], RGB(1, 1, 1)), ErrOutOfBounds)
	}
	assert.Equal(t, RGB(9, 9, 9), c.Raw()[0], "rejected writes must not alias pixel 0")
}

func TestLegacyAt(t *testing.T) {
	c, err := New(2, 3)
	require.NoError(t, err)
	for i := range c.Raw() {
		c.Raw()[i] = RGB(uint8(i), 0, 0)
	}

	// index (height-y)*width + x
	assert.Equal(t, RGB(4, 0, 0), c.LegacyAt(0, 1))
	assert.Equal(t, RGB(3, 0, 0), c.LegacyAt(1, 2))

	// y == 0 lands past the end of storage and aliases pixel 0.
	assert.Equal(t, RGB(0, 0, 0), c.LegacyAt(1, 0))
	// out of range aliases pixel 0 too.
	assert.Equal(t, RGB(0, 0, 0), c.LegacyAt(5, 1))
}

func TestReplace(t *testing.T) {
	c, err := New(1, 1)
	require.NoError(t, err)

	assert.Error(t, c.Replace(2, 2, make([]Pixel, 3)))
	assert.ErrorIs(t, c.Replace(0, 2, nil), ErrInvalidSize)
	assert.Equal(t, 1, c.Width())

	px := []Pixel{RGB(1, 1, 1), RGB(2, 2, 2)}
	require.NoError(t, c.Replace(2, 1, px))
	assert.Equal(t, 2, c.Width())
	assert.Equal(t, px, c.Raw())
}

func TestFillTestPattern(t *testing.T) {
	c, err := New(20, 20)
	require.NoError(t, err)
	c.FillTestPattern()

	at := func(x, y int) Pixel {
		p, err := c.At(x, y)
		require.NoError(t, err)
		return p
	}
	assert.Equal(t, BottomLeft, at(0, 0))
	assert.Equal(t, TopLeft, at(0, 19))
	assert.Equal(t, BottomRight, at(19, 0))
	assert.Equal(t, TopRight, at(19, 19))
	assert.Equal(t, Left, at(0, 10))
	assert.Equal(t, Right, at(19, 10))
	assert.Equal(t, Bottom, at(10, 0))
	assert.Equal(t, Top, at(10, 19))

	// gradient: 10/20*127 + 10/20*127
	assert.Equal(t, RGB(126, 126, 126), at(10, 10))
}
