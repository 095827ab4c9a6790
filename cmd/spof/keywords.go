package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func init() {
	keywordsCmd.Run = listKeywords
	rootCmd.AddCommand(&keywordsCmd)
}

var keywordsCmd = cobra.Command{
	Use:   "keywords",
	Short: "Explain the keywords of the schema",
	Args:  cobra.NoArgs,
}

func listKeywords(cmd *cobra.Command, _ []string) {
	_, sch := loadSchema(cmd, stderrRenderer())
	w := cmd.OutOrStdout()
	for _, el := range sch.Lines() {
		fmt.Fprintf(w, "%s (%s, %s token)\n\t%s\n",
			el.Keyword.Name,
			el.Occurrence,
			el.Format,
			strings.ReplaceAll(el.Help(), "\n", "\n\t"),
		)
	}
}
