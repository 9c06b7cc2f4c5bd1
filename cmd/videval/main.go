package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/videval/videval/internal/build"
)

func main() {
	rootCmd := &cobra.Command{
		Use:     "videval",
		Short:   "Video-performance evaluation backend",
		Long:    "videval — registers YouTube videos for performance evaluation, normalizing any URL form users throw at it.",
		Version: fmt.Sprintf("%s (%s, %s)", build.Version, build.Commit, build.Branch),
	}

	rootCmd.AddCommand(newServeCmd())
	rootCmd.AddCommand(newMigrateCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
