package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"stackcheck/internal/aws"
	"stackcheck/internal/check"
	"stackcheck/internal/config"
	"stackcheck/internal/probe"
	"stackcheck/internal/ui"
)

var (
	expectedBody string
	pollTimeout  int
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Run all validation checks against the deployed stack",
	Long: `Run the full validation suite against the deployed stack:

  stack-output     the stack publishes a plausible load balancer DNS name
  alb-content      the load balancer serves HTTP 200 with the expected body
  target-health    at least one registered target is healthy (skipped when
                   the stack has no target group resource)
  direct-exposure  backend instances do not answer HTTP directly

Checks run sequentially and independently; the exit status is non-zero if
any check fails. Skipped checks do not fail the run.

Examples:
  stackcheck check                          # Use configured defaults
  stackcheck check --stack my-ec2-stack     # Explicit stack name
  stackcheck check --poll-timeout 600       # Slow environment`,
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)

	checkCmd.Flags().StringVar(&expectedBody, "expect", "", "substring the ALB response body must contain")
	checkCmd.Flags().IntVar(&pollTimeout, "poll-timeout", 0, "overall readiness budget in seconds for the content check")
}

func runCheck(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	applyOverrides(cfg)

	ctx := context.Background()
	client, err := aws.NewClient(
		ctx,
		aws.WithProfile(cfg.AWSProfile),
		aws.WithRegion(cfg.AWSRegion),
	)
	if err != nil {
		return fmt.Errorf("failed to create AWS client: %w", err)
	}

	suite := &check.Suite{
		Stack:         cfg.StackName,
		Expect:        cfg.ExpectedBody,
		PollBudget:    cfg.PollBudget(),
		DirectTimeout: cfg.DirectTimeout(),
		AWS:           client,
		Probe:         probe.New(cfg.RequestTimeout(), cfg.PollInterval()),
	}

	fmt.Printf("Checking stack %s in %s\n\n", ui.NameStyle.Render(cfg.StackName), client.Region())

	runner := check.NewRunner(func(r check.Result) {
		fmt.Println(ui.StatusLine(r))
	})
	runner.Add(suite.Checks()...)

	results := runner.Run(ctx)

	fmt.Println()
	ui.PrintResultTable(results)

	if !check.Summarize(results).OK() {
		os.Exit(1)
	}
	return nil
}

// applyOverrides layers flag values over the file/default configuration
func applyOverrides(cfg *config.Config) {
	if s := GetStackName(); s != "" {
		cfg.StackName = s
	}
	if expectedBody != "" {
		cfg.ExpectedBody = expectedBody
	}
	if pollTimeout > 0 {
		cfg.PollBudgetSeconds = pollTimeout
	}
	if p := GetProfile(); p != "" {
		cfg.AWSProfile = p
	}
	if r := GetRegion(); r != "" {
		cfg.AWSRegion = r
	}
}
