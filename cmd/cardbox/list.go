package main

import (
	"os"

	"github.com/spf13/cobra"
)

var (
	listOutput string
	listMatch  string
)

var listCmd = &cobra.Command{
	Use:   "list [query]",
	Short: "List notes, pinned first",
	Long: `List projects the box through the optional search query: a note matches
when its title, checklist items, or body contain the query
(case-insensitive). Notes keep their manual order within each section.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		session, err := openSession(cmd.Context())
		if err != nil {
			fatal("Failed to open box", err)
		}

		query := ""
		if len(args) > 0 {
			query = args[0]
		}
		pinned, others := session.ProjectedView(query)

		if listMatch != "" {
			if pinned, err = filterByTitleGlob(pinned, listMatch); err != nil {
				fatal("Bad --match pattern", err)
			}
			if others, err = filterByTitleGlob(others, listMatch); err != nil {
				fatal("Bad --match pattern", err)
			}
		}

		if listOutput != "" && listOutput != "text" {
			if err := encodeViews(os.Stdout, listOutput, pinned, others); err != nil {
				fatal("Failed to encode output", err)
			}
			return
		}
		renderViews(os.Stdout, pinned, others)
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().StringVarP(&listOutput, "output", "o", "text", "Output format: text, json, or yaml")
	listCmd.Flags().StringVar(&listMatch, "match", "", "Glob pattern on titles (e.g. 'groceries*')")
}
