package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/toolstate/internal/config"
	"github.com/example/toolstate/internal/db"
	"github.com/example/toolstate/internal/wire"
)

// HistoryCmd returns the history command group
func HistoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Maintain and query the local index of past toolstate",
	}

	cmd.AddCommand(historyImportCmd())
	cmd.AddCommand(historyShowCmd())

	return cmd
}

func historyImportCmd() *cobra.Command {
	var historyDir, configPath string

	cmd := &cobra.Command{
		Use:   "import",
		Short: "Ingest the per-platform history logs into the local index",
		RunE: func(cmd *cobra.Command, args []string) error {
			registry, err := config.Load(configPath)
			if err != nil {
				return err
			}

			svc, err := wire.HistoryService(registry, historyDir)
			if err != nil {
				return err
			}
			defer db.Close()

			count, err := svc.Import(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Printf("indexed %d status rows\n", count)
			return nil
		},
	}

	cmd.Flags().StringVar(&historyDir, "history-dir", "history", "Directory holding the per-platform history logs")
	cmd.Flags().StringVar(&configPath, "config", "", "Optional TOML registry override file")

	return cmd
}

func historyShowCmd() *cobra.Command {
	var limit int
	var configPath string

	cmd := &cobra.Command{
		Use:   "show <tool>",
		Short: "Show the most recent indexed statuses of a tool",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			registry, err := config.Load(configPath)
			if err != nil {
				return err
			}

			svc, err := wire.HistoryService(registry, "")
			if err != nil {
				return err
			}
			defer db.Close()

			statuses, err := svc.Show(cmd.Context(), args[0], limit)
			if err != nil {
				return err
			}
			if len(statuses) == 0 {
				fmt.Printf("no indexed history for %s\n", args[0])
				return nil
			}

			for _, s := range statuses {
				fmt.Printf("%.10s  %-8s  %s\n", s.Commit, s.Platform, s.Status)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 20, "Maximum number of rows to show")
	cmd.Flags().StringVar(&configPath, "config", "", "Optional TOML registry override file")

	return cmd
}
