package app

import (
	"context"
	"fmt"
	"sort"

	"github.com/example/toolstate/internal/config"
	"github.com/example/toolstate/internal/ports/primary"
	"github.com/example/toolstate/internal/ports/secondary"
)

// ValidateServiceImpl implements the ValidateService interface.
type ValidateServiceImpl struct {
	registry *config.Registry
	collab   secondary.CollaboratorLister
}

// NewValidateService creates a new ValidateService with injected dependencies.
func NewValidateService(registry *config.Registry, collab secondary.CollaboratorLister) *ValidateServiceImpl {
	return &ValidateServiceImpl{
		registry: registry,
		collab:   collab,
	}
}

// ValidateMaintainers checks every configured maintainer against the
// repository's assignable collaborators. Missing maintainers are collected
// across all tools; any transport error aborts the validation.
func (s *ValidateServiceImpl) ValidateMaintainers(ctx context.Context, repo string) ([]primary.MissingMaintainer, error) {
	logins, err := s.collab.AssignableUsers(ctx, repo)
	if err != nil {
		return nil, fmt.Errorf("failed to list assignable users of %s: %w", repo, err)
	}

	assignable := make(map[string]bool, len(logins))
	for _, login := range logins {
		assignable[login] = true
	}

	tools := make([]string, 0, len(s.registry.Tools))
	for tool := range s.registry.Tools {
		tools = append(tools, tool)
	}
	sort.Strings(tools)

	var missing []primary.MissingMaintainer
	for _, tool := range tools {
		for _, maintainer := range s.registry.Tools[tool].Maintainers {
			if !assignable[maintainer] {
				missing = append(missing, primary.MissingMaintainer{
					Tool:       tool,
					Maintainer: maintainer,
				})
			}
		}
	}
	return missing, nil
}

// Ensure ValidateServiceImpl implements the interface.
var _ primary.ValidateService = (*ValidateServiceImpl)(nil)
