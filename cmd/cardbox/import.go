package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var importYes bool

var importCmd = &cobra.Command{
	Use:   "import [file]",
	Short: "Replace the box with a JSON export",
	Long: `Import reads a JSON document whose top level is an array of notes and
replaces the whole box with it. Anything else is rejected without
touching the box.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		data, err := os.ReadFile(args[0])
		if err != nil {
			fatal("Failed to read import file", err)
		}

		session, err := openSession(cmd.Context())
		if err != nil {
			fatal("Failed to open box", err)
		}

		existing := session.Repository().Len()
		if !importYes && !confirm(fmt.Sprintf("Replace %d existing notes with the contents of %s?", existing, args[0])) {
			fmt.Println("Aborted.")
			return
		}

		count, err := session.Import(cmd.Context(), data)
		if err != nil {
			fatal("Import rejected", err)
		}
		fmt.Printf("Imported %d notes.\n", count)
	},
}

func init() {
	rootCmd.AddCommand(importCmd)
	importCmd.Flags().BoolVarP(&importYes, "yes", "y", false, "Skip the confirmation prompt")
}
