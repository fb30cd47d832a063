// Package git provides read-only Git command execution for remote inspection.
package git

//go:generate go run go.uber.org/mock/mockgen@latest -source=git.go -destination=mocks/git.gen.go -package=mocks

// Git interface provides Git command execution capabilities.
type Git interface {
	// IsRepository checks whether workDir is inside a Git repository.
	IsRepository(workDir string) (bool, error)

	// RemoteExists checks if a remote exists.
	RemoteExists(workDir, remoteName string) (bool, error)

	// GetRemoteURL gets the URL of a remote.
	GetRemoteURL(workDir, remoteName string) (string, error)
}

type realGit struct{}

// NewGit creates a new Git instance.
func NewGit() Git {
	return &realGit{}
}
