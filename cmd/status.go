package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"stackcheck/internal/aws"
	"stackcheck/internal/config"
	"stackcheck/internal/ui"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show authentication status and stack existence",
	Long: `Verify AWS authentication and confirm the stack under test exists,
without running any checks.

Examples:
  stackcheck status
  stackcheck status --stack my-ec2-stack`,
	RunE: runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func runStatus(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	applyOverrides(cfg)

	fmt.Println("Current Status")
	fmt.Println(ui.MutedStyle.Render("─────────────────────────────────"))
	fmt.Println()

	client, err := aws.NewClient(
		context.Background(),
		aws.WithProfile(cfg.AWSProfile),
		aws.WithRegion(cfg.AWSRegion),
	)
	if err != nil {
		return fmt.Errorf("failed to create AWS client: %w", err)
	}

	if cfg.AWSProfile != "" {
		fmt.Printf("Profile:  %s\n", cfg.AWSProfile)
	}
	fmt.Printf("Region:   %s\n", client.Region())
	fmt.Println()

	fmt.Print("Auth:     ")
	identity, err := client.GetCallerIdentity()
	if err != nil {
		fmt.Println(ui.FailStyle.Render("✗ Not authenticated"))
		fmt.Printf("          %s\n", ui.MutedStyle.Render(err.Error()))
		fmt.Println()
		fmt.Println("To authenticate:")
		fmt.Printf("  aws sso login --profile %s\n", cfg.AWSProfile)
		return nil
	}
	fmt.Println(ui.PassStyle.Render("✓ Authenticated"))
	fmt.Printf("Account:  %s\n", identity.Account)
	fmt.Printf("Identity: %s\n", ui.MutedStyle.Render(identity.Arn))
	fmt.Println()

	fmt.Print("Stack:    ")
	stack, err := client.DescribeStack(cfg.StackName)
	if err != nil {
		fmt.Println(ui.FailStyle.Render("✗ " + cfg.StackName))
		fmt.Printf("          %s\n", ui.MutedStyle.Render(err.Error()))
		return nil
	}
	fmt.Printf("%s %s\n", ui.PassStyle.Render("✓ "+stack.Name), ui.MutedStyle.Render("("+stack.Status+")"))
	fmt.Printf("Outputs:  %d published\n", len(stack.Outputs))

	return nil
}
