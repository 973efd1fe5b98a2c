// project/main.go
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"

	"PictureToAscii/config"
	"PictureToAscii/dialogue"
	"PictureToAscii/utils"
)

func main() {
	// Define flags
	configPath := flag.String("config", config.DefaultConfigPath, "YAML file listing the conversions to run")
	selectJobs := flag.Bool("select", false, "Choose interactively which conversions to run")
	reset := flag.Bool("reset", false, "Remove previous output files before converting")
	parallel := flag.Bool("parallel", false, "Run conversions concurrently (overrides the config file)")
	info := flag.Bool("info", false, "Only print the bitmap headers of each source")
	bootstrapDir := flag.String("bootstrap", "", "Scan a directory for bitmaps and add them to the config file")
	genTest := flag.String("gen-test", "", "Write the diagnostic test pattern to this BMP path and exit")
	genWidth := flag.Int("gen-width", testWidth, "Width of the generated test pattern")
	genHeight := flag.Int("gen-height", testHeight, "Height of the generated test pattern")

	flag.Parse()

	if *genTest != "" {
		if err := generateTestBMP(*genTest, *genWidth, *genHeight); err != nil {
			log.Fatalf("Error generating test bitmap: %v", err)
		}
		return
	}

	if *bootstrapDir != "" {
		if err := RunBootstrap(*configPath, *bootstrapDir, os.Stdin, os.Stdout); err != nil {
			log.Fatalf("Bootstrap failed: %v", err)
		}
		return
	}

	conversions, err := config.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("Error loading configuration: %v", err)
	}
	if *parallel {
		conversions.Parallel = true
	}
	if err := ValidateConfig(conversions); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	if *selectJobs {
		conversions.Jobs, err = dialogue.ShowConversionSelection(os.Stdin, os.Stdout, conversions.Jobs)
		if err != nil {
			log.Fatalf("Selection failed: %v", err)
		}
	}

	if *info {
		if unreadable := InspectSources(conversions); unreadable > 0 {
			log.Printf("%d source(s) could not be read.", unreadable)
		}
		return
	}

	if *reset {
		utils.ResetOutputs(conversions.Outputs())
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	summary, err := RunConversions(ctx, conversions)
	if err != nil {
		log.Fatalf("Error converting: %v", err)
	}
	log.Printf("Done: %d converted, %d skipped, %d failed.", summary.Converted, summary.Skipped, summary.Failed)
}
