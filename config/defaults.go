package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"

	"gopkg.in/yaml.v2"

	"PictureToAscii/structs"
)

const DefaultConfigPath = "conversions.yml"

// Defaults are the two conversions the tool runs when no configuration file
// exists.
func Defaults() *structs.Conversions {
	return &structs.Conversions{
		Jobs: []structs.Conversion{
			{
				Name:   "imageToLoad",
				Source: filepath.Join("TestImages", "imageToLoad.bmp"),
				Output: filepath.Join("TestImages", "imageToLoad.txt"),
			},
			{
				Name:   "imageToLoad2",
				Source: filepath.Join("TestImages", "imageToLoad2.bmp"),
				Output: filepath.Join("TestImages", "imageToLoad2.txt"),
			},
		},
	}
}

// LoadConfig reads and parses the conversions file.
func LoadConfig(configPath string) (*structs.Conversions, error) {
	configData, err := os.ReadFile(configPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			log.Printf("Configuration file '%s' not found. Using the default conversions.", configPath)
			return Defaults(), nil
		}
		return nil, fmt.Errorf("failed to read configuration file '%s': %w", configPath, err)
	}

	var conversions structs.Conversions
	err = yaml.UnmarshalStrict(configData, &conversions)
	if err != nil {
		yamlErr, ok := err.(*yaml.TypeError)
		if ok {
			for _, msg := range yamlErr.Errors {
				log.Printf("YAML unmarshal error in %s: %s", configPath, msg)
			}
		}
		return nil, fmt.Errorf("failed to parse configuration file '%s': %w", configPath, err)
	}
	log.Printf("Loaded %d conversion(s) from %s.", len(conversions.Jobs), configPath)
	return &conversions, nil
}

// SaveConfig writes the conversions back to disk, jobs sorted by name.
func SaveConfig(configPath string, conversions *structs.Conversions) error {
	sort.SliceStable(conversions.Jobs, func(i, j int) bool {
		return conversions.Jobs[i].GetName() < conversions.Jobs[j].GetName()
	})

	data, err := yaml.Marshal(conversions)
	if err != nil {
		return fmt.Errorf("failed to marshal configuration: %w", err)
	}
	err = os.WriteFile(configPath, data, 0644)
	if err != nil {
		return fmt.Errorf("failed to write configuration file '%s': %w", configPath, err)
	}
	return nil
}
