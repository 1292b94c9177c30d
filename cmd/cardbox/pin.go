package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var pinCmd = &cobra.Command{
	Use:   "pin [id]",
	Short: "Toggle a note's pinned state",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		id := args[0]
		session, err := openSession(cmd.Context())
		if err != nil {
			fatal("Failed to open box", err)
		}

		found, err := session.TogglePin(cmd.Context(), id)
		if err != nil {
			fatal("Failed to toggle pin", err)
		}
		if !found {
			fmt.Printf("No note with id %s.\n", id)
			return
		}

		for _, n := range session.Repository().Notes() {
			if n.ID == id {
				if n.Pinned {
					fmt.Println("Note pinned.")
				} else {
					fmt.Println("Note unpinned.")
				}
				return
			}
		}
	},
}

func init() {
	rootCmd.AddCommand(pinCmd)
}
