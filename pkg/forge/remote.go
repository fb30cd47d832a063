package forge

import (
	"fmt"
)

// resolveRemoteCoordinates derives the owning organization and repository
// from the local repository's remotes. The first remote in the preference
// order that exists wins; its URL must match one of the two accepted forms.
func (g *GitHub) resolveRemoteCoordinates() (RepoCoordinates, error) {
	ok, err := g.git.IsRepository(g.workDir)
	if err != nil {
		return RepoCoordinates{}, fmt.Errorf("%w: %w", ErrNoRepository, err)
	}
	if !ok {
		return RepoCoordinates{}, ErrNoRepository
	}

	var remoteName string
	for _, candidate := range g.remotes {
		exists, err := g.git.RemoteExists(g.workDir, candidate)
		if err != nil {
			return RepoCoordinates{}, fmt.Errorf("failed to list remotes: %w", err)
		}
		if exists {
			remoteName = candidate
			break
		}
	}
	if remoteName == "" {
		return RepoCoordinates{}, ErrNoEligibleRemote
	}

	remoteURL, err := g.git.GetRemoteURL(g.workDir, remoteName)
	if err != nil {
		return RepoCoordinates{}, fmt.Errorf("failed to read remote %q: %w", remoteName, err)
	}

	matches := remoteURLPattern.FindStringSubmatch(remoteURL)
	if matches == nil {
		return RepoCoordinates{}, fmt.Errorf("%w: %q", ErrUnparseableRemoteURL, remoteURL)
	}

	// Groups 1-2 capture the HTTPS form, groups 3-4 the SSH form.
	organization, repository := matches[1], matches[2]
	if organization == "" {
		organization, repository = matches[3], matches[4]
	}

	return RepoCoordinates{
		Organization: organization,
		Repository:   repository,
	}, nil
}
