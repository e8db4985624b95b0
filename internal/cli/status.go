package cli

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/example/toolstate/internal/adapters/persistence"
	"github.com/example/toolstate/internal/config"
	"github.com/example/toolstate/internal/models"
)

// StatusCmd returns the status command
func StatusCmd() *cobra.Command {
	var statePath, configPath string

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show the current status table",
		RunE: func(cmd *cobra.Command, args []string) error {
			registry, err := config.Load(configPath)
			if err != nil {
				return err
			}

			table, err := persistence.NewStateFile(statePath).Load(cmd.Context())
			if err != nil {
				return err
			}

			for _, entry := range table {
				fmt.Printf("%-16s", entry.Tool)
				for _, platform := range registry.Platforms {
					status, ok := entry.Platforms[platform]
					if !ok {
						continue
					}
					fmt.Printf("  %s: %s", platform, colorStatus(status))
				}
				if entry.Commit != "" {
					fmt.Printf("  (last change %.7s at %s)", entry.Commit, entry.Datetime)
				}
				fmt.Println()
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&statePath, "state", "_data/latest.json", "Path to the status table file")
	cmd.Flags().StringVar(&configPath, "config", "", "Optional TOML registry override file")

	return cmd
}

func colorStatus(status models.Status) string {
	switch status {
	case models.StatusTestPass:
		return color.New(color.FgGreen).Sprint(status)
	case models.StatusTestFail:
		return color.New(color.FgYellow).Sprint(status)
	default:
		return color.New(color.FgRed).Sprint(status)
	}
}
