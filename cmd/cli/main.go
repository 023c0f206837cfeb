package main

import (
	"fmt"
	"os"
	"time"

	"github.com/briandowns/spinner"
	"github.com/spf13/cobra"

	"github.com/hailam/zipfix/internal/adapters/factory"
	adapterutils "github.com/hailam/zipfix/internal/adapters/utils"
	"github.com/hailam/zipfix/internal/application"
	"github.com/hailam/zipfix/internal/ports"
)

// Variables to hold flag values
var (
	outDir      string
	seed        uint64
	withSamples bool
	outputPath  string
	sizeStr     string
)

func main() {
	var rootCmd = &cobra.Command{
		Use:   "zipfix",
		Short: "Generates ZIP archive fixtures for testing ZIP tooling.",
		Long: `zipfix is a CLI tool that generates synthetic ZIP fixtures: archives of a
controlled total size with varied entries (text and binary payloads, multiple
directories, stored and deflated compression), plus a deliberately corrupted
archive for error-path testing.

Run without flags it writes 1mb.zip, 10mb.zip and corrupted.zip into the
output directory. With --output and --size it generates a single archive of
the requested size instead.`,
		Args: cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			// --- Composition Root: Initialize Adapters and Core Logic ---
			var fixtureFactory ports.FixtureFactory
			if cmd.Flags().Changed("seed") {
				fixtureFactory = factory.NewSeeded(seed)
			} else {
				fixtureFactory = factory.New()
			}
			sizeParser := adapterutils.NewUtilSizeParser()
			fixtureService := application.NewFixtureService(fixtureFactory, sizeParser)
			// --- End Composition Root ---

			// Single-archive mode: both flags must be given together.
			if outputPath != "" || sizeStr != "" {
				if outputPath == "" || sizeStr == "" {
					fmt.Fprintln(os.Stderr, "Error: --output and --size must be used together")
					cmd.Usage()
					os.Exit(1)
				}
				if err := fixtureService.CreateArchive(outputPath, sizeStr); err != nil {
					fmt.Fprintf(os.Stderr, "Error generating archive: %v\n", err)
					os.Exit(1)
				}
				fmt.Printf("Successfully generated %s with size spec '%s'\n", outputPath, sizeStr)
				return
			}

			spin := spinner.New(spinner.CharSets[14], 120*time.Millisecond)
			spin.Start()
			err := fixtureService.GenerateAll(outDir, withSamples, func(name string) {
				spin.Suffix = " writing " + name
			})
			spin.Stop()
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error generating fixtures: %v\n", err)
				os.Exit(1)
			}
			fmt.Printf("Test fixtures generated in %s\n", outDir)
		},
	}

	// Define flags
	rootCmd.Flags().StringVarP(&outDir, "dir", "d", ".", "Directory to write the fixture set into")
	rootCmd.Flags().Uint64Var(&seed, "seed", 0, "Seed for reproducible fixtures (default: clock-seeded)")
	rootCmd.Flags().BoolVar(&withSamples, "with-samples", false, "Also generate samples.zip with real-format documents")
	rootCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Path for a single archive (used with --size)")
	rootCmd.Flags().StringVarP(&sizeStr, "size", "s", "", "Target size for a single archive (e.g., 500KB, 2MB)")

	// Execute the root command
	if err := rootCmd.Execute(); err != nil {
		// Cobra prints errors automatically, but we exit non-zero
		os.Exit(1)
	}
}
