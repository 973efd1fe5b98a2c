package main

import (
	"fmt"
	"log"

	"PictureToAscii/bmp"
	"PictureToAscii/canvas"
)

const (
	testWidth  = 256
	testHeight = 256
)

// generateTestBMP writes the diagnostic border-and-gradient pattern to path.
func generateTestBMP(path string, width, height int) error {
	c, err := canvas.New(width, height)
	if err != nil {
		return fmt.Errorf("failed to create %dx%d test canvas: %w", width, height, err)
	}
	c.FillTestPattern()

	if err := bmp.Save(path, c); err != nil {
		return fmt.Errorf("failed to write test bitmap '%s': %w", path, err)
	}
	log.Printf("Successfully generated %s (%d x %d, %d bytes)", path, width, height, bmp.FileSize(width, height))
	return nil
}
