package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/MeKo-Tech/voxeltex/internal/texture"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the material catalog",
	RunE:  runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	catalog := texture.Catalog(texture.Options{})

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "MATERIAL\tFRAMES\tFRAME TIME")
	for _, mat := range catalog {
		duration := "-"
		if mat.Frames > 1 {
			duration = mat.Duration.String()
		}
		fmt.Fprintf(w, "%s\t%d\t%s\n", mat.Name, mat.Frames, duration)
	}
	return w.Flush()
}
