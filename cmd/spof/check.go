package main

import (
	"io"
	"log"
	"os"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"

	"github.com/fractalqb/spof"
)

func init() {
	checkCmd.Run = checkFiles
	checkCmd.Flags().IntVarP(&checkCmd.errLimit, "error-limit", "l", 0,
		"Stop after this many errors per file, negative for no limit")
	checkCmd.Flags().BoolVar(&checkCmd.dump, "dump", false,
		"Print the lines of valid files grouped by keyword")
	checkCmd.Flags().BoolVar(&checkCmd.debug, "debug", false,
		"Dump the lines of valid files as Go values")
	rootCmd.AddCommand(&checkCmd.Command)
}

var checkCmd = struct {
	cobra.Command
	errLimit    int
	dump, debug bool
}{
	Command: cobra.Command{
		Use:   "check [file...]",
		Short: "Check files against the schema, reads stdin without files",
	},
}

func checkFiles(cmd *cobra.Command, files []string) {
	rnd := stderrRenderer()
	sp, sch := loadSchema(cmd, rnd)
	sp.ErrorLimit = checkCmd.errLimit
	ok := true
	if len(files) == 0 {
		ok = checkRd(rnd, sp, sch, "stdin", os.Stdin)
	}
	for _, f := range files {
		ok = checkFile(rnd, sp, sch, f) && ok
	}
	if !ok {
		os.Exit(1)
	}
}

func checkFile(rnd *renderer, sp *spof.Spof, sch *spof.Schema, name string) bool {
	f, err := sp.OpenFile(name, sch)
	return report(rnd, name, f, err)
}

func checkRd(rnd *renderer, sp *spof.Spof, sch *spof.Schema, name string, rd io.Reader) bool {
	f, err := sp.Read(name, rd, sch)
	return report(rnd, name, f, err)
}

func report(rnd *renderer, name string, f *spof.File, err error) bool {
	if err != nil {
		rnd.Error(err)
		log.Printf("%s is not valid", name)
		return false
	}
	log.Printf("%s valid", name)
	if checkCmd.dump {
		if err := f.Dump(os.Stdout); err != nil {
			log.Fatal(err)
		}
	}
	if checkCmd.debug {
		spew.Fdump(os.Stdout, table(f))
	}
	return true
}

func table(f *spof.File) map[string]spof.FoundLine {
	res := make(map[string]spof.FoundLine)
	for _, kw := range f.Keywords() {
		res[kw] = f.Lines(kw)
	}
	return res
}
