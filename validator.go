// validator.go
package main

import (
	"fmt"
	"log"
	"path/filepath"
	"strings"

	"PictureToAscii/structs"
	"PictureToAscii/utils"
)

// ValidateConfig checks a conversions document before anything is read or
// written. Problems are logged one by one; the returned error carries the
// count.
func ValidateConfig(cfg *structs.Conversions) error {
	validationErrors := 0

	if len(cfg.Jobs) == 0 {
		log.Printf("ERROR: Validation error: no conversions configured.")
		validationErrors++
	}

	// --- Rendering options ---
	if strings.ContainsAny(cfg.GetRamp(), "\r\n") {
		log.Printf("ERROR: Validation error: ramp must not contain line breaks.")
		validationErrors++
	}
	if cfg.Repeat < 0 {
		log.Printf("ERROR: Validation error: repeat must not be negative, got %d.", cfg.Repeat)
		validationErrors++
	}
	if _, err := utils.CompileBrightness(cfg.GetBrightness()); err != nil {
		log.Printf("ERROR: Validation error: %v", err)
		validationErrors++
	}

	// --- Jobs ---
	outputs := make(map[string]string)
	for i, job := range cfg.Jobs {
		name := job.GetName()
		if strings.TrimSpace(job.Source) == "" {
			log.Printf("ERROR: Validation error in conversion %d: missing 'source'.", i+1)
			validationErrors++
			continue
		}
		if strings.TrimSpace(job.Output) == "" {
			log.Printf("ERROR: Validation error in conversion '%s': missing 'output'.", name)
			validationErrors++
			continue
		}

		source, output := filepath.Clean(job.Source), filepath.Clean(job.Output)
		if source == output {
			log.Printf("ERROR: Validation error in conversion '%s': output would overwrite the source '%s'.", name, job.Source)
			validationErrors++
		}
		if other, exists := outputs[output]; exists {
			log.Printf("ERROR: Validation error in conversion '%s': output '%s' is also written by '%s'.", name, job.Output, other)
			validationErrors++
		} else {
			outputs[output] = name
		}

		if !strings.EqualFold(filepath.Ext(source), ".bmp") {
			log.Printf("Warning: conversion '%s': source '%s' does not have a .bmp extension.", name, job.Source)
		}
	}

	if validationErrors > 0 {
		return fmt.Errorf("found %d validation error(s) in the configuration", validationErrors)
	}
	log.Printf("Configuration validated: %d conversion(s).", len(cfg.Jobs))
	return nil
}
