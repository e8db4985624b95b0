package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/example/toolstate/internal/cli"
	"github.com/example/toolstate/internal/version"
)

func main() {
	rootCmd := &cobra.Command{
		Use:     "toolstate",
		Short:   "Toolstate tracker for the compiler CI pipeline",
		Version: version.String(),
		Long: `toolstate tracks the build and test status of auxiliary tools and
documentation books across commits. It reconciles the persisted status
table against freshly recorded statuses, publishes a change summary, and
files issues for regressions.`,
	}

	rootCmd.AddCommand(cli.PublishCmd())
	rootCmd.AddCommand(cli.ValidateMaintainersCmd())
	rootCmd.AddCommand(cli.StatusCmd())
	rootCmd.AddCommand(cli.HistoryCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
