// Package forge resolves issue patterns against a hosting service and
// queries the referenced issue's status.
package forge

import (
	"context"

	"github.com/sthagen/blocked/pkg/issue"
)

//go:generate go run go.uber.org/mock/mockgen@latest -source=forge.go -destination=mocks/forge.gen.go -package=mocks

// Forge interface defines the methods that all forge implementations must provide.
type Forge interface {
	// Name returns the name of the forge
	Name() string

	// ParseIssueReference parses various issue reference formats into a
	// fully-qualified reference, consulting the local repository remotes
	// for shorthand formats
	ParseIssueReference(pattern string) (*issue.Reference, error)

	// GetIssueStatus performs one status query for the referenced issue
	GetIssueStatus(ctx context.Context, ref *issue.Reference) (issue.Status, error)
}

// RepoCoordinates identifies a repository on a forge. Produced only by
// remote resolution and consumed only by pattern parsing; never cached.
type RepoCoordinates struct {
	Organization string
	Repository   string
}
