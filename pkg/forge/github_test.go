//go:build unit

package forge

import (
	"testing"

	"github.com/sthagen/blocked/pkg/git/mocks"
	"github.com/sthagen/blocked/pkg/issue"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestGitHub(t *testing.T, gitMock *mocks.MockGit) *GitHub {
	t.Helper()
	github, err := NewGitHub(NewGitHubParams{Git: gitMock})
	require.NoError(t, err)
	return github
}

func TestGitHub_Name(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	github := newTestGitHub(t, mocks.NewMockGit(ctrl))
	assert.Equal(t, "github", github.Name())
}

func TestGitHub_ParseIssueReference_FullyQualified(t *testing.T) {
	tests := []struct {
		name     string
		pattern  string
		expected *issue.Reference
	}{
		{
			name:    "issue URL",
			pattern: "https://github.com/serde-rs/serde/issues/423",
			expected: &issue.Reference{
				Owner:      "serde-rs",
				Repository: "serde",
				Number:     423,
				APIURL:     "https://api.github.com/repos/serde-rs/serde/issues/423",
			},
		},
		{
			name:    "issue URL over plain HTTP",
			pattern: "http://github.com/serde-rs/serde/issues/423",
			expected: &issue.Reference{
				Owner:      "serde-rs",
				Repository: "serde",
				Number:     423,
				APIURL:     "https://api.github.com/repos/serde-rs/serde/issues/423",
			},
		},
		{
			name:    "owner/repo#number",
			pattern: "serde-rs/serde#423",
			expected: &issue.Reference{
				Owner:      "serde-rs",
				Repository: "serde",
				Number:     423,
				APIURL:     "https://api.github.com/repos/serde-rs/serde/issues/423",
			},
		},
		{
			name:    "owner/repo/number",
			pattern: "serde-rs/serde/423",
			expected: &issue.Reference{
				Owner:      "serde-rs",
				Repository: "serde",
				Number:     423,
				APIURL:     "https://api.github.com/repos/serde-rs/serde/issues/423",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			// No git expectations: fully-qualified patterns must not
			// consult the local remotes.
			github := newTestGitHub(t, mocks.NewMockGit(ctrl))

			ref, err := github.ParseIssueReference(tt.pattern)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, ref)
		})
	}
}

func TestGitHub_ParseIssueReference_RepoIssue(t *testing.T) {
	for _, pattern := range []string{"serde#423", "serde/423"} {
		t.Run(pattern, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			gitMock := mocks.NewMockGit(ctrl)
			gitMock.EXPECT().IsRepository(".").Return(true, nil)
			gitMock.EXPECT().RemoteExists(".", "upstream").Return(false, nil)
			gitMock.EXPECT().RemoteExists(".", "origin").Return(true, nil)
			gitMock.EXPECT().GetRemoteURL(".", "origin").
				Return("https://github.com/acme/widgets.git", nil)

			github := newTestGitHub(t, gitMock)

			ref, err := github.ParseIssueReference(pattern)
			require.NoError(t, err)

			// Organization comes from the remote, repository from the pattern.
			assert.Equal(t, "acme", ref.Owner)
			assert.Equal(t, "serde", ref.Repository)
			assert.Equal(t, 423, ref.Number)
			assert.Equal(t, "https://api.github.com/repos/acme/serde/issues/423", ref.APIURL)
		})
	}
}

func TestGitHub_ParseIssueReference_BareNumber(t *testing.T) {
	for _, pattern := range []string{"42", "#42"} {
		t.Run(pattern, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			gitMock := mocks.NewMockGit(ctrl)
			gitMock.EXPECT().IsRepository(".").Return(true, nil)
			gitMock.EXPECT().RemoteExists(".", "upstream").Return(false, nil)
			gitMock.EXPECT().RemoteExists(".", "origin").Return(true, nil)
			gitMock.EXPECT().GetRemoteURL(".", "origin").
				Return("https://github.com/acme/widgets.git", nil)

			github := newTestGitHub(t, gitMock)

			ref, err := github.ParseIssueReference(pattern)
			require.NoError(t, err)
			assert.Equal(t, "acme", ref.Owner)
			assert.Equal(t, "widgets", ref.Repository)
			assert.Equal(t, 42, ref.Number)
			assert.Equal(t, "https://api.github.com/repos/acme/widgets/issues/42", ref.APIURL)
		})
	}
}

func TestGitHub_ParseIssueReference_NoRepository(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	gitMock := mocks.NewMockGit(ctrl)
	gitMock.EXPECT().IsRepository(".").Return(false, nil)

	github := newTestGitHub(t, gitMock)

	_, err := github.ParseIssueReference("42")
	assert.ErrorIs(t, err, ErrNoRepository)
}

func TestGitHub_ParseIssueReference_Invalid(t *testing.T) {
	tests := []string{
		"",
		"not a pattern",
		"owner/repo",
		"https://example.com/serde-rs/serde/issues/423",
		"owner/repo#",
	}

	for _, pattern := range tests {
		t.Run(pattern, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			github := newTestGitHub(t, mocks.NewMockGit(ctrl))

			_, err := github.ParseIssueReference(pattern)
			assert.ErrorIs(t, err, issue.ErrInvalidReference)
		})
	}
}

func TestGitHub_ParseIssueReference_CustomAPIBase(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	github, err := NewGitHub(NewGitHubParams{
		APIBaseURL: "https://github.example.com/api/v3",
		Git:        mocks.NewMockGit(ctrl),
	})
	require.NoError(t, err)

	ref, err := github.ParseIssueReference("serde-rs/serde#423")
	require.NoError(t, err)
	assert.Equal(t, "https://github.example.com/api/v3/repos/serde-rs/serde/issues/423", ref.APIURL)
}

func TestNewGitHub_InvalidAPIBase(t *testing.T) {
	_, err := NewGitHub(NewGitHubParams{APIBaseURL: "not-a-url"})
	assert.ErrorIs(t, err, issue.ErrEndpointBuild)
}
