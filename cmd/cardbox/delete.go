package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var deleteYes bool

var deleteCmd = &cobra.Command{
	Use:   "delete [id]",
	Short: "Delete a note from the box",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		id := args[0]
		session, err := openSession(cmd.Context())
		if err != nil {
			fatal("Failed to open box", err)
		}

		if !deleteYes && !confirm(fmt.Sprintf("Delete note %s?", id)) {
			fmt.Println("Aborted.")
			return
		}

		found, err := session.Delete(cmd.Context(), id)
		if err != nil {
			fatal("Failed to delete note", err)
		}
		if !found {
			fmt.Printf("No note with id %s, nothing deleted.\n", id)
			return
		}
		fmt.Println("Note deleted.")
	},
}

func init() {
	rootCmd.AddCommand(deleteCmd)
	deleteCmd.Flags().BoolVarP(&deleteYes, "yes", "y", false, "Skip the confirmation prompt")
}

// confirm asks on stdin; anything but y/yes declines.
func confirm(msg string) bool {
	fmt.Printf("%s [y/N] ", msg)
	reader := bufio.NewReader(os.Stdin)
	line, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes"
}
