// A command line tool to check files against spof schema definitions
package main

import (
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/fractalqb/spof"
)

var rootCmd = struct {
	cobra.Command
	schema  string
	comment string
	color   string
}{
	Command: cobra.Command{
		Use:   "spof",
		Short: "Check keyword based line files against a schema",
		Long: `Check keyword based line files against a schema

Each line of a checked file starts with a keyword followed by the tokens of
the line, separated by whitespace. Comments and empty lines are ignored.

SCHEMA DEFINITION

comment: "#"
lines:
  - keyword: color
    desc: the color of the object
    format: R G B          # shown to users, fixes token count
  - keyword: position
    desc: the position of the object
    format: X Y Z W
    size: [3, 4]           # fixed (default) | undefined | [min, max]
    occurrence: optional   # once (default) | optional | zero-or-more
                           # | one-or-more | <n> | [min, max]`,
		SilenceUsage: true,
	},
	color: "auto",
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&rootCmd.schema, "schema", "s", "",
		"Set the schema definition file (YAML)")
	rootCmd.MarkPersistentFlagRequired("schema")
	flags.StringVarP(&rootCmd.comment, "comment", "c", "",
		"Override the comment marker of the schema definition")
	flags.StringVar(&rootCmd.color, "color", rootCmd.color,
		"Colorize diagnostics: auto, always or never")
}

// loadSchema loads the schema definition given with --schema. Diagnostics
// are rendered and terminate the program.
func loadSchema(cmd *cobra.Command, rnd *renderer) (*spof.Spof, *spof.Schema) {
	def, err := spof.LoadDefinition(rootCmd.schema)
	if err != nil {
		rnd.Error(err)
		os.Exit(1)
	}
	sch, err := def.Schema()
	if err != nil {
		rnd.Error(err)
		os.Exit(1)
	}
	sp := def.Spof()
	if cmd.Flags().Changed("comment") {
		sp.Comment = rootCmd.comment
	}
	return sp, sch
}

func stderrRenderer() *renderer {
	rnd, err := newRenderer(os.Stderr, rootCmd.color)
	if err != nil {
		log.Fatal(err)
	}
	return rnd
}

func main() {
	log.SetFlags(0)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
