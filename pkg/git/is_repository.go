package git

import (
	"errors"
	"os/exec"
)

// IsRepository checks whether workDir is inside a Git repository.
func (g *realGit) IsRepository(workDir string) (bool, error) {
	cmd := exec.Command("git", "rev-parse", "--git-dir")
	cmd.Dir = workDir

	if err := cmd.Run(); err != nil {
		// Exit errors mean git ran but found no repository.
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return false, nil
		}
		return false, err
	}

	return true, nil
}
