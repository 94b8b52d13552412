package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/carbon-dev/carbon/internal/archive"
	"github.com/carbon-dev/carbon/internal/config"
	"github.com/carbon-dev/carbon/internal/export"
)

var (
	exportOut   string
	exportEntry string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the local archive without opening the TUI",
	Long: `Export writes the locally stored archive as JSON, or a single entry
as readable text with --entry. Only the device-local archive is read;
remote entries are exported from inside the TUI.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := config.ParseEnv()
		if err != nil {
			return fmt.Errorf("reading environment: %w", err)
		}
		dataDir := env.DataDir
		if dataDir == "" {
			dataDir = config.DefaultDataDir()
		}

		device, err := archive.NewDeviceStore(dataDir)
		if err != nil {
			return fmt.Errorf("opening device storage: %w", err)
		}
		entries := device.ReadEntries()

		var blob export.Blob
		if exportEntry != "" {
			found := false
			for _, e := range entries {
				if e.ID == exportEntry {
					blob = export.Entry(e)
					found = true
					break
				}
			}
			if !found {
				return fmt.Errorf("no archived entry with id %q", exportEntry)
			}
		} else {
			blob, err = export.Archive(entries, time.Now())
			if err != nil {
				return fmt.Errorf("building export: %w", err)
			}
		}

		path := filepath.Join(exportOut, blob.Filename)
		if err := os.WriteFile(path, blob.Content, 0644); err != nil {
			return fmt.Errorf("writing export: %w", err)
		}
		fmt.Println(path)
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVar(&exportOut, "out", ".", "Directory to write the export into")
	exportCmd.Flags().StringVar(&exportEntry, "entry", "", "Export a single entry by id as text")
}
