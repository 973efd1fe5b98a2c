package structs

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"PictureToAscii/ascii"
)

func TestGetters(t *testing.T) {
	var c Conversions
	assert.Equal(t, ascii.DefaultRamp, c.GetRamp())
	assert.Equal(t, ascii.DefaultRepeat, c.GetRepeat())
	assert.Equal(t, ascii.DefaultBrightness, c.GetBrightness())

	c = Conversions{Ramp: "ab", Repeat: 4, Brightness: "R"}
	assert.Equal(t, "ab", c.GetRamp())
	assert.Equal(t, 4, c.GetRepeat())
	assert.Equal(t, "R", c.GetBrightness())
}

func TestConversionName(t *testing.T) {
	j := Conversion{Source: "images/cat.photo.bmp"}
	assert.Equal(t, "cat.photo", j.GetName())

	j.Name = "kitty"
	assert.Equal(t, "kitty", j.GetName())
}

func TestOutputs(t *testing.T) {
	c := Conversions{Jobs: []Conversion{{Output: "a.txt"}, {Output: "b.txt"}}}
	assert.Equal(t, []string{"a.txt", "b.txt"}, c.Outputs())
}
