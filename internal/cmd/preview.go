package cmd

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"

	"github.com/MeKo-Tech/voxeltex/internal/preview"
	"github.com/MeKo-Tech/voxeltex/internal/sink"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var previewCmd = &cobra.Command{
	Use:   "preview <material>",
	Short: "Render an upscaled preview of one texture",
	Long:  `Decode a generated texture from the output folder or a texture pack and write an upscaled preview PNG next to it.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runPreview,
}

func init() {
	rootCmd.AddCommand(previewCmd)

	previewCmd.Flags().Int("frame", sink.StaticFrame, "Frame index for animated materials (-1 for static)")
	previewCmd.Flags().Int("scale", 8, "Integer upscale factor")
	previewCmd.Flags().String("pack", "", "Read the texture from this pack file instead of the output folder")

	bindFlags := []struct {
		key  string
		flag string
	}{
		{"preview.frame", "frame"},
		{"preview.scale", "scale"},
		{"preview.pack", "pack"},
	}

	for _, bf := range bindFlags {
		if err := viper.BindPFlag(bf.key, previewCmd.Flags().Lookup(bf.flag)); err != nil {
			panic(fmt.Sprintf("failed to bind flag %s: %v", bf.flag, err))
		}
	}
}

func runPreview(cmd *cobra.Command, args []string) error {
	if logger == nil {
		initLogging()
	}

	material := args[0]
	frame := viper.GetInt("preview.frame")
	scale := viper.GetInt("preview.scale")
	packPath := viper.GetString("preview.pack")
	outDir := viper.GetString("out-dir")

	if scale <= 0 {
		return fmt.Errorf("scale must be positive")
	}

	slot := sink.SlotName(material, frame)

	img, err := loadTexture(outDir, packPath, material, frame)
	if err != nil {
		return err
	}

	scaled, err := preview.Upscale(img, scale)
	if err != nil {
		return fmt.Errorf("failed to upscale %s: %w", slot, err)
	}

	path := filepath.Join(outDir, slot+"_preview.png")
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create preview %s: %w", path, err)
	}
	defer file.Close()

	if err := png.Encode(file, scaled); err != nil {
		return fmt.Errorf("failed to encode preview %s: %w", path, err)
	}

	logger.Info("Preview written", "material", material, "path", path, "scale", scale)
	return nil
}

func loadTexture(outDir, packPath, material string, frame int) (image.Image, error) {
	slot := sink.SlotName(material, frame)

	if packPath != "" {
		reader, err := sink.OpenPack(packPath)
		if err != nil {
			return nil, fmt.Errorf("failed to open pack %s: %w", packPath, err)
		}
		defer reader.Close()

		data, err := reader.ReadTexture(material, frame)
		if err != nil {
			return nil, err
		}
		return preview.FromBytes(data)
	}

	return preview.FromFile(filepath.Join(outDir, slot+".png"))
}
