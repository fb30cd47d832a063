// Package main provides the command-line interface for the blocked tool.
package main

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/cli/go-gh/v2/pkg/auth"
	"github.com/spf13/cobra"
	"github.com/sthagen/blocked/pkg/checker"
	"github.com/sthagen/blocked/pkg/ci"
	"github.com/sthagen/blocked/pkg/config"
	"github.com/sthagen/blocked/pkg/forge"
	"github.com/sthagen/blocked/pkg/logger"
)

// tokenEnvVar carries the API credential, taking precedence over the gh
// CLI token store.
const tokenEnvVar = "BLOCKED_GITHUB_API_KEY"

var (
	quiet      bool
	verbose    bool
	configPath string
	reason     string
	token      string
	forceCI    bool
)

// loadConfig loads the configuration, falling back to defaults when no
// config file exists.
func loadConfig() (*config.Config, error) {
	manager := config.NewManager()

	path := configPath
	if path == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			homeDir = "."
		}
		path = filepath.Join(homeDir, ".config", "blocked", "config.yaml")
	}

	return manager.LoadConfig(path)
}

// discoverToken finds the API credential: flag, then environment, then the
// gh CLI token store.
func discoverToken() string {
	if token != "" {
		return token
	}
	if key := os.Getenv(tokenEnvVar); key != "" {
		return key
	}
	ghToken, _ := auth.TokenForHost("github.com")
	return ghToken
}

func runCheck(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	diag := logger.NewDefaultLogger()

	log := logger.NewNoopLogger()
	if verbose && !quiet {
		log = diag
	}

	checkReason := reason
	if checkReason == "" && len(args) > 1 {
		checkReason = args[1]
	}

	apiToken := discoverToken()

	ghForge, err := forge.NewGitHub(forge.NewGitHubParams{
		Token:      apiToken,
		APIBaseURL: cfg.APIBaseURL,
		Remotes:    cfg.Remotes,
	})
	if err != nil {
		return err
	}

	chk := checker.NewChecker(checker.NewCheckerParams{
		Forge:         ghForge,
		Logger:        log,
		DefaultReason: cfg.DefaultReason,
	})

	outcome := chk.Check(cmd.Context(), checker.CheckParams{
		Pattern: args[0],
		Reason:  checkReason,
		Token:   apiToken,
		CI:      forceCI || ci.IsCI(),
	})

	switch outcome.Kind {
	case checker.Pass:
		log.Logf("Issue %q is still open (or check skipped)", args[0])
		return nil
	case checker.Warn:
		if !quiet {
			diag.Errorf("warning: %s", outcome.Message)
		}
		return nil
	default:
		return errors.New(outcome.Message)
	}
}

func main() {
	rootCmd := &cobra.Command{
		Use:   "blocked <issue-pattern> [reason]",
		Short: "Warn when a referenced issue has been closed",
		Long: `Blocked resolves an issue pattern (a full URL, owner/repo#123, repo#123, ` +
			`or a bare number completed from the upstream/origin remote), queries the ` +
			`issue's status, and warns once the issue closes. Without a credential or ` +
			`a CI environment the check is skipped.`,
		Args:          cobra.RangeArgs(1, 2),
		RunE:          runCheck,
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress all output except errors")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Specify a custom config file path")
	rootCmd.Flags().StringVarP(&reason, "reason", "r", "", "Reason to emit when the issue has closed")
	rootCmd.Flags().StringVarP(&token, "token", "t", "", "API token (overrides "+tokenEnvVar+" and the gh CLI token)")
	rootCmd.Flags().BoolVar(&forceCI, "ci", false, "Run the check even when no CI environment is detected")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
