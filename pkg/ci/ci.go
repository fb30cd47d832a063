// Package ci detects recognized automated build environments from the
// process environment.
package ci

import "os"

// Provider describes a continuous-integration service and the environment
// variable that marks its builds.
type Provider struct {
	Name   string
	EnvVar string
}

// providers lists recognized CI services, checked in order. The generic CI
// variable comes last so a specific provider is named when possible.
var providers = []Provider{
	{Name: "GitHub Actions", EnvVar: "GITHUB_ACTIONS"},
	{Name: "Travis CI", EnvVar: "TRAVIS"},
	{Name: "CircleCI", EnvVar: "CIRCLECI"},
	{Name: "GitLab CI", EnvVar: "GITLAB_CI"},
	{Name: "AppVeyor", EnvVar: "APPVEYOR"},
	{Name: "Azure Pipelines", EnvVar: "TF_BUILD"},
	{Name: "Jenkins", EnvVar: "JENKINS_URL"},
	{Name: "Buildkite", EnvVar: "BUILDKITE"},
	{Name: "Drone", EnvVar: "DRONE"},
	{Name: "TeamCity", EnvVar: "TEAMCITY_VERSION"},
	{Name: "CI", EnvVar: "CI"},
}

// Detect returns the first recognized CI provider marked in the environment.
func Detect() (Provider, bool) {
	for _, provider := range providers {
		if value, ok := os.LookupEnv(provider.EnvVar); ok && value != "" && value != "false" {
			return provider, true
		}
	}
	return Provider{}, false
}

// IsCI reports whether a recognized CI environment was detected.
func IsCI() bool {
	_, ok := Detect()
	return ok
}
