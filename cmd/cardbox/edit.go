package main

import (
	"fmt"
	"strings"

	"github.com/cardbox-app/cardbox/pkg/core"
	"github.com/spf13/cobra"
)

var (
	editTitle   string
	editContent string
	editItems   []string
)

var editCmd = &cobra.Command{
	Use:   "edit [id]",
	Short: "Edit a note's fields",
	Long: `Edit replaces the note's title and body. For checklist notes pass the
complete item list with --item (repeatable, "x " prefix marks checked);
blank items are dropped. Editing an id that no longer exists is a no-op.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		id := args[0]
		session, err := openSession(cmd.Context())
		if err != nil {
			fatal("Failed to open box", err)
		}

		session.OpenEditor(id)
		defer session.CloseEditor()

		items := make([]core.Item, 0, len(editItems))
		for _, text := range editItems {
			checked := strings.HasPrefix(text, "x ")
			if checked {
				text = strings.TrimPrefix(text, "x ")
			}
			items = append(items, core.Item{Text: text, Checked: checked})
		}

		found, err := session.Edit(cmd.Context(), id, editTitle, editContent, items)
		if err != nil {
			fatal("Failed to edit note", err)
		}
		if !found {
			fmt.Printf("No note with id %s (already deleted?), nothing changed.\n", id)
			return
		}
		fmt.Println("Note updated.")
	},
}

func init() {
	rootCmd.AddCommand(editCmd)
	editCmd.Flags().StringVarP(&editTitle, "title", "t", "", "New title")
	editCmd.Flags().StringVarP(&editContent, "content", "c", "", "New body (plain notes)")
	editCmd.Flags().StringArrayVarP(&editItems, "item", "i", nil, "Checklist item (repeatable, replaces the whole list)")
}
