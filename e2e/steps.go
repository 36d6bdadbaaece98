// Package e2e drives a running front door through godog scenarios. The
// backing services and a seeded catalog must already be up.
package e2e

import (
	"github.com/cucumber/godog"

	"polyglot/e2e/steps/common"
	"polyglot/e2e/steps/frontdoor"
)

// RegisterSteps registers all step definitions from modular packages
func RegisterSteps(ctx *godog.ScenarioContext, tc *TestContext) {
	common.RegisterSteps(ctx, tc)
	frontdoor.RegisterSteps(ctx, tc)
}
