package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/example/toolstate/internal/config"
	"github.com/example/toolstate/internal/ports/primary"
	"github.com/example/toolstate/internal/wire"
)

// PublishCmd returns the publish command
func PublishCmd() *cobra.Command {
	var statePath, historyDir, configPath string

	cmd := &cobra.Command{
		Use:   "publish <commit> <commit-message> <message-out> <token>",
		Short: "Reconcile the status table against a commit and publish changes",
		Long: `Reconcile the persisted status table against the statuses recorded for
a commit in the per-platform history logs. Improvements and regressions are
summarized in a change message; qualifying regressions file an issue with
the tracker.

With an empty token the run is a dry run: the message is printed but
nothing is written and no issue is filed.

When TOOLSTATE_VALIDATE_MAINTAINERS_REPO is set, maintainer validation
runs for that repository instead and the command exits early.`,
		Args: cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			registry, err := config.Load(configPath)
			if err != nil {
				return err
			}

			if repo := os.Getenv("TOOLSTATE_VALIDATE_MAINTAINERS_REPO"); repo != "" {
				token := os.Getenv("TOOLSTATE_REPO_ACCESS_TOKEN")
				if token == "" {
					fmt.Println("skipping toolstate maintainers validation since no GitHub token is present")
					return nil
				}
				return runMaintainerValidation(cmd.Context(), registry, repo, token)
			}

			commit, commitMsg, outPath, token := args[0], args[1], args[2], args[3]
			tracker := wire.IssueTracker(token, os.Getenv("TOOLSTATE_ISSUES_API_URL"))
			svc := wire.PublishService(registry, statePath, historyDir, tracker)

			result, err := svc.Publish(cmd.Context(), primary.PublishRequest{
				Commit:       commit,
				CommitMsg:    commitMsg,
				Datetime:     time.Now().UTC().Format("2006-01-02T15:04:05Z"),
				DryRun:       token == "",
				SkipMentions: os.Getenv("TOOLSTATE_SKIP_MENTIONS") != "",
			})
			if err != nil {
				return err
			}

			if !result.Changed {
				fmt.Println("<Nothing changed>")
				return nil
			}

			fmt.Println(result.Message)

			if token == "" {
				fmt.Println("Dry run only, not committing anything")
				return nil
			}

			if err := os.WriteFile(outPath, []byte(result.Message), 0644); err != nil {
				return fmt.Errorf("failed to write change message: %w", err)
			}

			if result.Change.Number >= 0 {
				if err := tracker.CommentOnChange(cmd.Context(), result.Change.Number, result.Message); err != nil {
					return fmt.Errorf("failed to comment on PR #%d: %w", result.Change.Number, err)
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&statePath, "state", "_data/latest.json", "Path to the status table file")
	cmd.Flags().StringVar(&historyDir, "history-dir", "history", "Directory holding the per-platform history logs")
	cmd.Flags().StringVar(&configPath, "config", "", "Optional TOML registry override file")

	return cmd
}
