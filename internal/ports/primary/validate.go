package primary

import "context"

// MissingMaintainer reports one configured maintainer who is not
// assignable in the validated repository.
type MissingMaintainer struct {
	Tool       string
	Maintainer string
}

// ValidateService checks that every configured maintainer is assignable
// in the target repository. It returns one entry per missing maintainer;
// an empty slice means the configuration is valid.
type ValidateService interface {
	ValidateMaintainers(ctx context.Context, repo string) ([]MissingMaintainer, error)
}
