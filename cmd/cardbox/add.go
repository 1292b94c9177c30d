package main

import (
	"fmt"

	"github.com/cardbox-app/cardbox/pkg/core"
	"github.com/spf13/cobra"
)

var (
	addTitle     string
	addContent   string
	addItems     []string
	addColor     string
	addChecklist bool
)

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a note to the box",
	Long: `Create a text note (--content) or a checklist (--item, repeatable).
An empty submission is refused without touching the box.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		session, err := openSession(cmd.Context())
		if err != nil {
			fatal("Failed to open box", err)
		}

		if addColor != "" && !session.SelectColor(addColor) {
			fatal("Unknown color", fmt.Errorf("%q is not in the palette %v", addColor, core.Palette()))
		}
		session.SetChecklistMode(addChecklist || len(addItems) > 0)

		items := make([]core.Item, 0, len(addItems))
		for _, text := range addItems {
			items = append(items, core.Item{Text: text})
		}

		added, err := session.Add(cmd.Context(), addTitle, addContent, items)
		if err != nil {
			fatal("Failed to add note", err)
		}
		if !added {
			fmt.Println("Not added: note is empty.")
			return
		}
		fmt.Println("Note added.")
	},
}

func init() {
	rootCmd.AddCommand(addCmd)
	addCmd.Flags().StringVarP(&addTitle, "title", "t", "", "Note title")
	addCmd.Flags().StringVarP(&addContent, "content", "c", "", "Note body (plain notes)")
	addCmd.Flags().StringArrayVarP(&addItems, "item", "i", nil, "Checklist item (repeatable; implies a checklist note)")
	addCmd.Flags().StringVar(&addColor, "color", "", "Card color (palette token)")
	addCmd.Flags().BoolVar(&addChecklist, "checklist", false, "Create a checklist note even without items")
}
