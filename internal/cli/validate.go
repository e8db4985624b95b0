package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/example/toolstate/internal/config"
	"github.com/example/toolstate/internal/wire"
)

// ValidateMaintainersCmd returns the validate-maintainers command
func ValidateMaintainersCmd() *cobra.Command {
	var configPath, token string

	cmd := &cobra.Command{
		Use:   "validate-maintainers <owner/repo>",
		Short: "Verify every configured maintainer is assignable in a repository",
		Long: `Fetch the assignable collaborators of a repository and verify every
maintainer configured for every tracked tool is among them. Any missing
maintainer fails the command with a non-zero exit; this gates CI before
issue assignee lists are relied upon.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if token == "" {
				token = os.Getenv("TOOLSTATE_REPO_ACCESS_TOKEN")
			}
			if token == "" {
				return fmt.Errorf("a GitHub token is required (--token or TOOLSTATE_REPO_ACCESS_TOKEN)")
			}

			registry, err := config.Load(configPath)
			if err != nil {
				return err
			}
			return runMaintainerValidation(cmd.Context(), registry, args[0], token)
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "Optional TOML registry override file")
	cmd.Flags().StringVar(&token, "token", "", "GitHub access token")

	return cmd
}

// runMaintainerValidation prints one error line per missing maintainer and
// terminates the process when any were found.
func runMaintainerValidation(ctx context.Context, registry *config.Registry, repo, token string) error {
	svc := wire.ValidateService(registry, token)
	missing, err := svc.ValidateMaintainers(ctx, repo)
	if err != nil {
		return err
	}
	if len(missing) == 0 {
		return nil
	}

	for _, m := range missing {
		fmt.Printf("error: %s maintainer @%s is not assignable in the %s repo\n", m.Tool, m.Maintainer, repo)
	}
	fmt.Println()
	fmt.Println("  To be assignable, a person needs to be explicitly listed as a")
	fmt.Println("  collaborator in the repository settings. The simple way to")
	fmt.Println("  fix this is to ask someone with 'admin' privileges on the repo")
	fmt.Println("  to add the person or whole team as a collaborator with 'read'")
	fmt.Println("  privileges. Those privileges don't grant any extra permissions")
	fmt.Println("  so it's safe to apply them.")
	fmt.Println()
	fmt.Println("The build will fail due to this.")
	os.Exit(1)
	return nil
}
