package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var colorCmd = &cobra.Command{
	Use:   "color [id]",
	Short: "Cycle a note's color through the palette",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		id := args[0]
		session, err := openSession(cmd.Context())
		if err != nil {
			fatal("Failed to open box", err)
		}

		found, err := session.CycleColor(cmd.Context(), id)
		if err != nil {
			fatal("Failed to cycle color", err)
		}
		if !found {
			fmt.Printf("No note with id %s.\n", id)
			return
		}

		for _, n := range session.Repository().Notes() {
			if n.ID == id {
				fmt.Printf("Color is now %s.\n", n.Color)
				return
			}
		}
	},
}

func init() {
	rootCmd.AddCommand(colorCmd)
}
