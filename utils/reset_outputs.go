// reset_outputs.go
package utils

import (
	"errors"
	"log"
	"os"
)

// ResetOutputs removes text files left behind by earlier runs. Missing files
// are fine; other failures are logged and counted but do not stop the reset.
func ResetOutputs(paths []string) (removed int, failed int) {
	log.Printf("Starting output reset for %d path(s)", len(paths))

	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			if !errors.Is(err, os.ErrNotExist) {
				log.Printf("  Warning: Failed to stat '%s': %v", path, err)
				failed++
			}
			continue
		}
		if info.IsDir() {
			log.Printf("  Warning: '%s' is a directory, not removing it", path)
			failed++
			continue
		}

		log.Printf("  Removing previous output: %s", path)
		if err := os.Remove(path); err != nil {
			log.Printf("  Warning: Failed to remove file '%s': %v", path, err)
			failed++
			continue
		}
		removed++
	}

	log.Printf("Removed %d previous output file(s).", removed)
	return removed, failed
}
