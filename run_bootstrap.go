package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"PictureToAscii/config"
	"PictureToAscii/dialogue"
	"PictureToAscii/structs"
)

// --- Bootstrap Function ---

// RunBootstrap scans sourceDir for bitmaps, lets the user pick some and adds
// a conversion for each to the configuration file. Each output sits next to
// its source with a .txt extension.
func RunBootstrap(configPath, sourceDir string, in io.Reader, out io.Writer) error {
	log.Printf("Scanning '%s' directory for bitmap files...", sourceDir)
	entries, err := os.ReadDir(sourceDir)
	if err != nil {
		return fmt.Errorf("failed to read source directory '%s': %w", sourceDir, err)
	}

	var bmpFiles []string
	for _, entry := range entries {
		if !entry.IsDir() && strings.EqualFold(filepath.Ext(entry.Name()), ".bmp") {
			bmpFiles = append(bmpFiles, filepath.Join(sourceDir, entry.Name()))
		}
	}
	sort.Strings(bmpFiles)

	if len(bmpFiles) == 0 {
		log.Printf("No bitmap files found in '%s'. Nothing to bootstrap.", sourceDir)
		return nil
	}

	selected, err := dialogue.ShowSourceFileSelection(in, out, bmpFiles)
	if err != nil {
		return fmt.Errorf("file selection failed: %w", err)
	}
	if len(selected) == 0 {
		log.Println("No files selected for bootstrapping.")
		return nil
	}

	// --- Load existing config ---
	conversions, err := config.LoadConfig(configPath)
	if err != nil {
		return err
	}
	bySource := make(map[string]int)
	for i, job := range conversions.Jobs {
		bySource[filepath.Clean(job.Source)] = i
	}

	for _, source := range selected {
		output := strings.TrimSuffix(source, filepath.Ext(source)) + ".txt"

		if index, exists := bySource[filepath.Clean(source)]; exists {
			log.Printf("Conversion for '%s' already configured. Updating output to '%s'.", source, output)
			conversions.Jobs[index].Output = output
			continue
		}

		job := structs.Conversion{Source: source, Output: output}
		job.Name = job.GetName()
		log.Printf("Adding conversion '%s'.", job.Name)
		conversions.Jobs = append(conversions.Jobs, job)
		bySource[filepath.Clean(source)] = len(conversions.Jobs) - 1
	}

	if err := config.SaveConfig(configPath, conversions); err != nil {
		return err
	}
	log.Println("Configuration file updated.")
	return nil
}
