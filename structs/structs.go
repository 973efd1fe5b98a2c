// project/structs/structs.go
package structs

import (
	"path/filepath"
	"strings"

	"PictureToAscii/ascii"
)

// Conversions is the YAML document listing the images to convert and how to
// render them.
type Conversions struct {
	Ramp       string       `yaml:"ramp,omitempty"`
	Repeat     int          `yaml:"repeat,omitempty"`
	Brightness string       `yaml:"brightness,omitempty"`
	Parallel   bool         `yaml:"parallel,omitempty"`
	Jobs       []Conversion `yaml:"jobs"`
}

// Conversion turns one BMP file into one text file.
type Conversion struct {
	Name   string `yaml:"name,omitempty"`
	Source string `yaml:"source"`
	Output string `yaml:"output"`
}

func (c *Conversions) GetRamp() string {
	if c.Ramp == "" {
		return ascii.DefaultRamp
	}
	return c.Ramp
}

func (c *Conversions) GetRepeat() int {
	if c.Repeat == 0 {
		return ascii.DefaultRepeat
	}
	return c.Repeat
}

func (c *Conversions) GetBrightness() string {
	if strings.TrimSpace(c.Brightness) == "" {
		return ascii.DefaultBrightness
	}
	return c.Brightness
}

// Outputs lists the output path of every job.
func (c *Conversions) Outputs() []string {
	out := make([]string, 0, len(c.Jobs))
	for _, j := range c.Jobs {
		out = append(out, j.Output)
	}
	return out
}

// GetName falls back to the source file name without its extension.
func (j *Conversion) GetName() string {
	if j.Name != "" {
		return j.Name
	}
	base := filepath.Base(j.Source)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
