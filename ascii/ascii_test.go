package ascii

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"PictureToAscii/canvas"
)

func TestDefaultRamp(t *testing.T) {
	assert.Equal(t, 65, utf8.RuneCountInString(DefaultRamp))
	assert.Equal(t, '`', []rune(DefaultRamp)[0])
	assert.Equal(t, '$', []rune(DefaultRamp)[64])
}

func TestGlyph(t *testing.T) {
	r, err := NewRenderer()
	require.NoError(t, err)

	tests := []struct {
		pixel canvas.Pixel
		want  rune
	}{
		{canvas.RGB(0, 0, 0), '`'},
		{canvas.RGB(255, 255, 255), '$'},
		{canvas.RGB(20, 20, 20), ';'},   // 20/255*64 = 5.02
		{canvas.RGB(128, 128, 128), 'v'}, // 32.1
		{canvas.RGB(255, 0, 0), '('},     // avg 85 -> 21.3
		{canvas.RGB(0, 0, 255), '('},
	}
	for _, tt := range tests {
		g, err := r.Glyph(tt.pixel)
		require.NoError(t, err)
		assert.Equal(t, string(tt.want), string(g), "pixel %+v", tt.pixel)
	}
}

func TestRenderRowsTopFirst(t *testing.T) {
	c, err := canvas.New(2, 2)
	require.NoError(t, err)
	require.NoError(t, c.Set(0, 1, canvas.RGB(255, 255, 255)))
	require.NoError(t, c.Set(1, 0, canvas.RGB(255, 255, 255)))

	r, err := NewRenderer()
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, r.Render(&buf, c))
	assert.Equal(t, "$$``\n``$$\n", buf.String())
}

func TestRenderOptions(t *testing.T) {
	c, err := canvas.New(3, 1)
	require.NoError(t, err)
	require.NoError(t, c.Set(0, 0, canvas.RGB(0, 0, 0)))
	require.NoError(t, c.Set(1, 0, canvas.RGB(255, 0, 0)))
	require.NoError(t, c.Set(2, 0, canvas.RGB(255, 255, 255)))

	r, err := NewRenderer(WithRamp(" .#"), WithRepeat(1), WithBrightness("max(R, G, B)"))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, r.Render(&buf, c))
	assert.Equal(t, " ##\n", buf.String())
}

func TestBrightnessClamped(t *testing.T) {
	r, err := NewRenderer(WithBrightness("R * 10 - 500"))
	require.NoError(t, err)

	level, err := r.Level(canvas.RGB(10, 0, 0))
	require.NoError(t, err)
	assert.Equal(t, 0.0, level)

	level, err = r.Level(canvas.RGB(200, 0, 0))
	require.NoError(t, err)
	assert.Equal(t, 255.0, level)
}

func TestNewRendererRejects(t *testing.T) {
	_, err := NewRenderer(WithRamp(""))
	assert.ErrorIs(t, err, ErrEmptyRamp)

	_, err = NewRenderer(WithRepeat(0))
	assert.Error(t, err)

	_, err = NewRenderer(WithBrightness("R +"))
	assert.Error(t, err)

	_, err = NewRenderer(WithBrightness("X * 2"))
	assert.Error(t, err)
}

func TestNonNumericBrightness(t *testing.T) {
	r, err := NewRenderer(WithBrightness("R > 10"))
	require.NoError(t, err)

	_, err = r.Glyph(canvas.RGB(20, 0, 0))
	assert.Error(t, err)
}

func TestRenderFile(t *testing.T) {
	c, err := canvas.New(4, 3)
	require.NoError(t, err)
	c.FillTestPattern()

	r, err := NewRenderer()
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "out.txt")
	require.NoError(t, r.RenderFile(path, c))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSuffix(string(data), "\n"), "\n")
	require.Len(t, lines, 3)
	for _, line := range lines {
		assert.Equal(t, 8, utf8.RuneCountInString(line))
	}

	err = r.RenderFile(filepath.Join(t.TempDir(), "missing", "out.txt"), c)
	assert.Error(t, err)
}
