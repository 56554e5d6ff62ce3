package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"strings"
	"syscall"

	"github.com/MeKo-Tech/voxeltex/internal/pipeline"
	"github.com/MeKo-Tech/voxeltex/internal/sink"
	"github.com/MeKo-Tech/voxeltex/internal/texture"
	"github.com/MeKo-Tech/voxeltex/internal/worker"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate the material texture set",
	Long:  `Generate all material textures (static and animated) into a folder of PNGs or a SQLite texture pack.`,
	RunE:  runGenerate,
}

func init() {
	rootCmd.AddCommand(generateCmd)

	generateCmd.Flags().Int64("seed", 0, "Seed for reproducible output (0 = time-based)")
	generateCmd.Flags().IntP("workers", "w", 0, "Number of parallel workers (default: number of CPUs)")
	generateCmd.Flags().Bool("progress", true, "Show progress bar during generation")
	generateCmd.Flags().Bool("force", false, "Overwrite textures that already exist")
	generateCmd.Flags().String("format", "folder", "Output format: folder or pack")
	generateCmd.Flags().String("output-file", "", "Output file path for pack format (e.g., textures.vtpack)")
	generateCmd.Flags().String("wood-style", "rings", "Wood ring variant: rings or drawn")
	generateCmd.Flags().String("only", "", "Comma-separated material names to generate (default: all)")

	bindFlags := []struct {
		key  string
		flag string
	}{
		{"generate.seed", "seed"},
		{"generate.workers", "workers"},
		{"generate.progress", "progress"},
		{"generate.force", "force"},
		{"generate.format", "format"},
		{"generate.output_file", "output-file"},
		{"generate.wood_style", "wood-style"},
		{"generate.only", "only"},
	}

	for _, bf := range bindFlags {
		if err := viper.BindPFlag(bf.key, generateCmd.Flags().Lookup(bf.flag)); err != nil {
			panic(fmt.Sprintf("failed to bind flag %s: %v", bf.flag, err))
		}
	}
}

func runGenerate(cmd *cobra.Command, args []string) error {
	if logger == nil {
		initLogging()
	}

	outDir := viper.GetString("out-dir")
	seed := viper.GetInt64("generate.seed")
	workers := viper.GetInt("generate.workers")
	showProgress := viper.GetBool("generate.progress")
	force := viper.GetBool("generate.force")
	format := viper.GetString("generate.format")
	outputFile := viper.GetString("generate.output_file")
	woodStyle := viper.GetString("generate.wood_style")
	only := viper.GetString("generate.only")

	if format != "folder" && format != "pack" {
		return fmt.Errorf("invalid format %q: must be 'folder' or 'pack'", format)
	}
	if format == "pack" && outputFile == "" {
		return fmt.Errorf("--output-file is required when using --format=pack")
	}
	if woodStyle != string(texture.WoodRings) && woodStyle != string(texture.WoodDrawn) {
		return fmt.Errorf("invalid wood-style %q: must be 'rings' or 'drawn'", woodStyle)
	}
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	catalog := texture.Catalog(texture.Options{WoodStyle: texture.WoodStyle(woodStyle)})
	tasks, err := selectTasks(catalog, only)
	if err != nil {
		return err
	}

	logger.Info("Starting texture generation",
		"materials", len(tasks),
		"workers", workers,
		"format", format,
		"seed", seed,
		"wood_style", woodStyle,
	)

	var (
		out        sink.Sink
		folder     *sink.Folder
		packWriter *sink.PackWriter
	)
	switch format {
	case "folder":
		folder, err = sink.NewFolder(outDir, force)
		if err != nil {
			return err
		}
		out = folder
	case "pack":
		packWriter, err = sink.NewPackWriter(outputFile, sink.Metadata{
			Name:        "voxeltex",
			Description: "Procedural material textures",
			Version:     "1.0",
			TextureSize: texture.Size,
		})
		if err != nil {
			return fmt.Errorf("failed to create pack writer: %w", err)
		}
		defer func() {
			// Close flushes buffered frames; a failure here loses them
			if err := packWriter.Close(); err != nil {
				logger.Error("Failed to close texture pack", "path", outputFile, "error", err)
			}
		}()
		out = packWriter
	}

	gen, err := pipeline.NewGenerator(out, seed, logger)
	if err != nil {
		return fmt.Errorf("failed to init generator: %w", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		logger.Info("Received interrupt signal, cancelling...")
		cancel()
	}()

	progress := worker.NewProgress(len(tasks), showProgress)

	pool := worker.New(worker.Config{
		Workers:    workers,
		Generator:  gen,
		OnProgress: progress.Callback(),
	})

	results := pool.Run(ctx, tasks)
	progress.Done()

	var failedCount int
	for _, r := range results {
		if r.Err != nil {
			failedCount++
			logger.Error("Material generation failed", "material", r.Task.Material.Name, "error", r.Err)
		}
	}

	logger.Info(progress.Summary())

	if format == "pack" {
		if err := packWriter.Flush(); err != nil {
			return fmt.Errorf("failed to flush pack: %w", err)
		}
		logger.Info("Texture pack written", "path", outputFile)
	} else {
		logger.Info("Texture generation complete",
			"dir", outDir,
			"written", len(folder.Written()),
			"skipped", len(folder.Skipped()),
		)
	}

	if failedCount > 0 {
		return fmt.Errorf("%d materials failed to generate", failedCount)
	}
	return nil
}

// selectTasks builds the task list, optionally restricted to a
// comma-separated set of material names.
func selectTasks(catalog []texture.Material, only string) ([]worker.Task, error) {
	wanted := make(map[string]bool)
	if strings.TrimSpace(only) != "" {
		for _, name := range strings.Split(only, ",") {
			wanted[strings.TrimSpace(name)] = true
		}
	}

	tasks := make([]worker.Task, 0, len(catalog))
	for i, mat := range catalog {
		if len(wanted) > 0 && !wanted[mat.Name] {
			continue
		}
		delete(wanted, mat.Name)
		tasks = append(tasks, worker.Task{Material: mat, Index: i})
	}

	if len(wanted) > 0 {
		unknown := make([]string, 0, len(wanted))
		for name := range wanted {
			unknown = append(unknown, name)
		}
		return nil, fmt.Errorf("unknown materials: %s", strings.Join(unknown, ", "))
	}
	return tasks, nil
}
