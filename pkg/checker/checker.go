// Package checker sequences issue pattern resolution and status checking
// into a single pass/warn/fail outcome.
package checker

import (
	"context"
	"fmt"

	"github.com/sthagen/blocked/pkg/config"
	"github.com/sthagen/blocked/pkg/forge"
	"github.com/sthagen/blocked/pkg/logger"
)

//go:generate go run go.uber.org/mock/mockgen@latest -source=checker.go -destination=mocks/checker.gen.go -package=mocks

// Checker interface runs one issue status check.
type Checker interface {
	// Check resolves the issue pattern, queries the forge once, and
	// classifies the result. It performs no network access when neither a
	// token nor a CI signal is present.
	Check(ctx context.Context, params CheckParams) Outcome
}

// CheckParams contains the inputs for one check.
type CheckParams struct {
	// Pattern is the issue reference in any accepted form.
	Pattern string
	// Reason is emitted with the warning when the issue closed. Falls back
	// to the configured default reason when empty.
	Reason string
	// Token is the credential supplied for the check, empty when absent.
	Token string
	// CI indicates that a recognized automated build environment was detected.
	CI bool
}

type realChecker struct {
	forge         forge.Forge
	logger        logger.Logger
	defaultReason string
}

// NewCheckerParams contains parameters for creating a Checker.
type NewCheckerParams struct {
	Forge         forge.Forge
	Logger        logger.Logger
	DefaultReason string
}

// NewChecker creates a new Checker instance.
func NewChecker(params NewCheckerParams) Checker {
	log := params.Logger
	if log == nil {
		log = logger.NewNoopLogger()
	}

	defaultReason := params.DefaultReason
	if defaultReason == "" {
		defaultReason = config.DefaultReason
	}

	return &realChecker{
		forge:         params.Forge,
		logger:        log,
		defaultReason: defaultReason,
	}
}

// Check resolves the issue pattern, queries the forge once, and classifies
// the result.
func (c *realChecker) Check(ctx context.Context, params CheckParams) Outcome {
	// Without a credential or a CI signal the check is intentionally not
	// attempted, regardless of pattern validity.
	if params.Token == "" && !params.CI {
		c.logger.Logf("No credential or CI environment, skipping issue check for %q", params.Pattern)
		return Outcome{Kind: Pass}
	}

	ref, err := c.forge.ParseIssueReference(params.Pattern)
	if err != nil {
		return Outcome{Kind: ParseError, Message: err.Error()}
	}
	c.logger.Logf("Checking %s/%s#%d (%s)", ref.Owner, ref.Repository, ref.Number, ref.APIURL)

	status, err := c.forge.GetIssueStatus(ctx, ref)
	if err != nil {
		return Outcome{Kind: RuntimeError, Message: err.Error()}
	}

	switch {
	case !status.Known():
		return Outcome{Kind: RuntimeError, Message: fmt.Sprintf("error fetching issue: %s", status.Message())}
	case status.Open():
		return Outcome{Kind: Pass}
	case status.Closed():
		reason := params.Reason
		if reason == "" {
			reason = c.defaultReason
		}
		return Outcome{Kind: Warn, Message: reason}
	default:
		return Outcome{Kind: RuntimeError, Message: "unrecognized state: " + status.State()}
	}
}
