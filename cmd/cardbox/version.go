package main

import (
	"fmt"
	"strings"

	"github.com/cardbox-app/cardbox"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of cardbox",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("cardbox version %s\n", strings.TrimSpace(cardbox.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
