package main

import (
	"context"
	"fmt"
	"log"
	"runtime"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"PictureToAscii/ascii"
	"PictureToAscii/bmp"
	"PictureToAscii/canvas"
	"PictureToAscii/structs"
)

// Summary counts how a run went. Skipped images failed to load; failed ones
// loaded but could not be written out.
type Summary struct {
	Converted int
	Skipped   int
	Failed    int
}

func newRenderer(cfg *structs.Conversions) (*ascii.Renderer, error) {
	return ascii.NewRenderer(
		ascii.WithRamp(cfg.GetRamp()),
		ascii.WithRepeat(cfg.GetRepeat()),
		ascii.WithBrightness(cfg.GetBrightness()),
	)
}

// RunConversions converts every configured job. A job that fails does not
// stop the others. Jobs share nothing, so with cfg.Parallel they run
// concurrently, one canvas and renderer each.
func RunConversions(ctx context.Context, cfg *structs.Conversions) (Summary, error) {
	// surface configuration problems once instead of once per job
	if _, err := newRenderer(cfg); err != nil {
		return Summary{}, err
	}

	var converted, skipped, failed atomic.Int64

	g, ctx := errgroup.WithContext(ctx)
	if cfg.Parallel {
		g.SetLimit(runtime.NumCPU())
	} else {
		g.SetLimit(1)
	}

	for _, job := range cfg.Jobs {
		if ctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			c, err := canvas.New(2, 2)
			if err != nil {
				return err
			}
			if err := bmp.Load(job.Source, c); err != nil {
				log.Printf("Skipping '%s': failed to read \"%s\": %v", job.GetName(), job.Source, err)
				skipped.Add(1)
				return nil
			}
			log.Printf("Successfully read \"%s\". Image size: %d x %d", job.Source, c.Width(), c.Height())

			renderer, err := newRenderer(cfg)
			if err != nil {
				return err
			}
			if err := renderer.RenderFile(job.Output, c); err != nil {
				log.Printf("ERROR: conversion '%s' failed: %v", job.GetName(), err)
				failed.Add(1)
				return nil
			}
			log.Printf("Wrote \"%s\".", job.Output)
			converted.Add(1)
			return nil
		})
	}

	err := g.Wait()
	summary := Summary{
		Converted: int(converted.Load()),
		Skipped:   int(skipped.Load()),
		Failed:    int(failed.Load()),
	}
	if err != nil {
		return summary, fmt.Errorf("conversion run aborted: %w", err)
	}
	return summary, nil
}

// InspectSources logs the headers of every job's source without decoding
// pixel data. It returns the number of sources that could not be read.
func InspectSources(cfg *structs.Conversions) int {
	unreadable := 0
	for _, job := range cfg.Jobs {
		typeHeader, infoHeader, err := bmp.ReadHeaders(job.Source)
		if err != nil {
			log.Printf("%s: %v", job.Source, err)
			unreadable++
			continue
		}
		log.Printf("%s: %d x %d, %d bpp, file size %d, pixel data at %d, row size %d",
			job.Source, infoHeader.Width, infoHeader.Height, infoHeader.BitsPerPixel,
			typeHeader.FileSize, typeHeader.OffsetToBitmapData, bmp.RowSize(int(infoHeader.Width)))
	}
	return unreadable
}
