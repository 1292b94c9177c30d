package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var exportFormat string

var exportCmd = &cobra.Command{
	Use:   "export [file]",
	Short: "Write the full box to a file",
	Long: `Export serializes every note, pretty-printed. Without a filename the
export lands in the working directory under a timestamped name.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		session, err := openSession(cmd.Context())
		if err != nil {
			fatal("Failed to open box", err)
		}

		var data []byte
		switch exportFormat {
		case "json":
			data, err = session.Export()
		case "yaml":
			data, err = yaml.Marshal(session.Repository().Notes())
		default:
			fatal("Unknown format", fmt.Errorf("%q (want json or yaml)", exportFormat))
		}
		if err != nil {
			fatal("Failed to serialize notes", err)
		}

		path := exportFilename(args)
		if err := os.WriteFile(path, data, 0644); err != nil {
			fatal("Failed to write export", err)
		}
		fmt.Printf("Exported %d notes to %s\n", session.Repository().Len(), path)
	},
}

func exportFilename(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	stamp := time.Now().Format("20060102-150405")
	ext := exportFormat
	return fmt.Sprintf("cardbox-export-%s.%s", stamp, ext)
}

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.Flags().StringVarP(&exportFormat, "output", "o", "json", "Export format: json or yaml")
}
