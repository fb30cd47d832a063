package forge

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"regexp"
	"strconv"
	"strings"

	"github.com/google/go-github/v62/github"
	"github.com/sthagen/blocked/pkg/git"
	"github.com/sthagen/blocked/pkg/issue"
)

const (
	// GitHubName is the name identifier for the GitHub forge.
	GitHubName = "github"
	// githubUserAgent identifies this client on every request.
	githubUserAgent = "blocked"
)

// Issue pattern matchers, from most to least specific. Each one is anchored
// so that a more permissive form never shadows a more specific one.
var (
	issueURLPattern       = regexp.MustCompile(`^https?://github\.com/([\w-]+)/([\w-]+)/issues/(\d+)$`)
	ownerRepoIssuePattern = regexp.MustCompile(`^([\w-]+)/([\w-]+)[#/](\d+)$`)
	repoIssuePattern      = regexp.MustCompile(`^([\w-]+)[#/](\d+)$`)
	issueNumberPattern    = regexp.MustCompile(`^#?(\d+)$`)

	// Remote URLs are accepted in two forms: HTTPS (https://host/org/repo.git)
	// and SSH (user@host:org/repo.git).
	remoteURLPattern = regexp.MustCompile(
		`^(?:https://[\w.-]+/([\w-]+)/([\w-]+)\.git|[\w.-]+@[\w.-]+:([\w-]+)/([\w-]+)\.git)$`)
)

// defaultRemotes is the remote preference order when none is configured.
var defaultRemotes = []string{"upstream", "origin"}

// GitHub represents the GitHub forge implementation.
type GitHub struct {
	client  *github.Client
	git     git.Git
	workDir string
	remotes []string
}

// NewGitHubParams contains parameters for creating a GitHub forge instance.
type NewGitHubParams struct {
	// Token authenticates API requests when non-empty; requests are
	// anonymous otherwise.
	Token string
	// APIBaseURL overrides the GitHub API base (GitHub Enterprise, tests).
	APIBaseURL string
	// WorkDir is where remote lookup for shorthand patterns starts.
	// Defaults to the current directory.
	WorkDir string
	// Remotes is the remote preference order. Defaults to upstream, origin.
	Remotes []string
	// Git overrides the git command executor.
	Git git.Git
}

// NewGitHub creates a new GitHub forge instance.
func NewGitHub(params NewGitHubParams) (*GitHub, error) {
	client := github.NewClient(nil)
	if params.Token != "" {
		client = client.WithAuthToken(params.Token)
	}
	client.UserAgent = githubUserAgent

	if params.APIBaseURL != "" {
		base, err := url.Parse(params.APIBaseURL)
		if err != nil || base.Scheme == "" || base.Host == "" {
			return nil, fmt.Errorf("%w: API base %q", issue.ErrEndpointBuild, params.APIBaseURL)
		}
		if !strings.HasSuffix(base.Path, "/") {
			base.Path += "/"
		}
		client.BaseURL = base
	}

	gitExec := params.Git
	if gitExec == nil {
		gitExec = git.NewGit()
	}

	workDir := params.WorkDir
	if workDir == "" {
		workDir = "."
	}

	remotes := params.Remotes
	if len(remotes) == 0 {
		remotes = defaultRemotes
	}

	return &GitHub{
		client:  client,
		git:     gitExec,
		workDir: workDir,
		remotes: remotes,
	}, nil
}

// Name returns the name of the forge.
func (g *GitHub) Name() string {
	return GitHubName
}

// ParseIssueReference parses an issue pattern into a fully-qualified
// reference. Formats are tried from most to least specific:
//
//  1. https://github.com/owner/repo/issues/123
//  2. owner/repo#123 or owner/repo/123
//  3. repo#123 or repo/123 (organization from the local remote)
//  4. #123 or 123 (organization and repository from the local remote)
func (g *GitHub) ParseIssueReference(pattern string) (*issue.Reference, error) {
	pattern = strings.TrimSpace(pattern)

	if matches := issueURLPattern.FindStringSubmatch(pattern); matches != nil {
		if _, err := url.Parse(pattern); err != nil {
			return nil, fmt.Errorf("%w: %q matched the issue URL form but is not a valid URL",
				issue.ErrInvalidReference, pattern)
		}
		return g.buildReference(matches[1], matches[2], matches[3])
	}

	if matches := ownerRepoIssuePattern.FindStringSubmatch(pattern); matches != nil {
		return g.buildReference(matches[1], matches[2], matches[3])
	}

	if matches := repoIssuePattern.FindStringSubmatch(pattern); matches != nil {
		coords, err := g.resolveRemoteCoordinates()
		if err != nil {
			return nil, err
		}
		// The repository name comes from the pattern itself; only the
		// organization is taken from the remote.
		return g.buildReference(coords.Organization, matches[1], matches[2])
	}

	if matches := issueNumberPattern.FindStringSubmatch(pattern); matches != nil {
		coords, err := g.resolveRemoteCoordinates()
		if err != nil {
			return nil, err
		}
		return g.buildReference(coords.Organization, coords.Repository, matches[1])
	}

	return nil, fmt.Errorf("%w: %q", issue.ErrInvalidReference, pattern)
}

// buildReference constructs the fully-qualified reference and its API endpoint.
func (g *GitHub) buildReference(owner, repo, number string) (*issue.Reference, error) {
	issueNumber, err := strconv.Atoi(number)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid issue number %q", issue.ErrInvalidReference, number)
	}

	endpoint, err := url.JoinPath(g.client.BaseURL.String(), "repos", owner, repo, "issues", number)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", issue.ErrEndpointBuild, err)
	}

	return &issue.Reference{
		Owner:      owner,
		Repository: repo,
		Number:     issueNumber,
		APIURL:     endpoint,
	}, nil
}

// GetIssueStatus performs one status query for the referenced issue.
//
// A state reported by the service or a service-level error body both yield
// a Status; transport failures and responses matching neither shape are
// returned as errors. No retry is attempted either way.
func (g *GitHub) GetIssueStatus(ctx context.Context, ref *issue.Reference) (issue.Status, error) {
	ghIssue, _, err := g.client.Issues.Get(ctx, ref.Owner, ref.Repository, ref.Number)
	if err != nil {
		var errResp *github.ErrorResponse
		if errors.As(err, &errResp) && errResp.Message != "" {
			return issue.FailureStatus(errResp.Message), nil
		}
		return issue.Status{}, fmt.Errorf("failed to fetch issue %s: %w", ref.APIURL, err)
	}

	state := ghIssue.GetState()
	if state == "" {
		return issue.Status{}, fmt.Errorf("%w: response carries neither a state nor a message",
			issue.ErrMalformedResponse)
	}

	return issue.KnownStatus(state), nil
}
