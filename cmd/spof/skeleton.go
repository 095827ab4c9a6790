package main

import (
	"log"

	"github.com/spf13/cobra"

	"github.com/fractalqb/spof"
)

func init() {
	skeletonCmd.Run = writeSkeleton
	rootCmd.AddCommand(&skeletonCmd)
}

var skeletonCmd = cobra.Command{
	Use:   "skeleton",
	Short: "Write an example file with one line per keyword to stdout",
	Args:  cobra.NoArgs,
}

func writeSkeleton(cmd *cobra.Command, _ []string) {
	sp, sch := loadSchema(cmd, stderrRenderer())
	skel := spof.Skeleton{Comment: sp.Comment}
	if err := skel.Write(cmd.OutOrStdout(), sch); err != nil {
		log.Fatal(err)
	}
}
