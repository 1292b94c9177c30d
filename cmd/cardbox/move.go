package main

import (
	"fmt"

	"github.com/cardbox-app/cardbox"
	"github.com/spf13/cobra"
)

var (
	moveEnd   bool
	moveGroup string
)

var moveCmd = &cobra.Command{
	Use:   "move [id] [target-id]",
	Short: "Reorder a note",
	Long: `With a target id, the two notes swap positions; both must be in the
same section (pinned or not), otherwise nothing moves. With --end the
note goes to the end of its section.`,
	Args: cobra.RangeArgs(1, 2),
	Run: func(cmd *cobra.Command, args []string) {
		id := args[0]
		session, err := openSession(cmd.Context())
		if err != nil {
			fatal("Failed to open box", err)
		}

		if len(args) == 2 {
			swapped, err := session.Reorder(cmd.Context(), id, args[1])
			if err != nil {
				fatal("Failed to move note", err)
			}
			if !swapped {
				fmt.Println("Not moved: notes must exist and share a section.")
				return
			}
			fmt.Println("Notes swapped.")
			return
		}

		if !moveEnd {
			fatal("Nothing to do", fmt.Errorf("pass a target id or --end"))
		}

		group, ok := resolveGroup(session, id)
		if !ok {
			fmt.Printf("No note with id %s.\n", id)
			return
		}

		moved, err := session.ReorderToEnd(cmd.Context(), id, group)
		if err != nil {
			fatal("Failed to move note", err)
		}
		if !moved {
			fmt.Println("Not moved.")
			return
		}
		fmt.Println("Note moved to the end of its section.")
	},
}

// resolveGroup picks the partition for --end: an explicit --group wins,
// otherwise the note's own.
func resolveGroup(session *cardbox.Session, id string) (pinned, found bool) {
	switch moveGroup {
	case "pinned":
		return true, true
	case "others":
		return false, true
	}
	for _, n := range session.Repository().Notes() {
		if n.ID == id {
			return n.Pinned, true
		}
	}
	return false, false
}

func init() {
	rootCmd.AddCommand(moveCmd)
	moveCmd.Flags().BoolVar(&moveEnd, "end", false, "Move to the end of a section")
	moveCmd.Flags().StringVar(&moveGroup, "group", "", "Target section for --end: pinned or others (default: the note's own)")
}
