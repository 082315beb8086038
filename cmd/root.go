package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	// Global flags
	profile   string
	region    string
	stackName string
)

var rootCmd = &cobra.Command{
	Use:   "stackcheck",
	Short: "stackcheck - validate a deployed ALB + Auto Scaling stack",
	Long: `stackcheck verifies that a deployed AWS stack (an Application Load
Balancer in front of an Auto Scaling Group of EC2 instances) behaves
correctly: the stack publishes the expected outputs, the load balancer
serves the expected content, registered targets are healthy, and backend
instances are not directly reachable from the internet.

All checks are read-only; the stack itself is created and destroyed by
your infrastructure tooling, not by stackcheck.

Examples:
  stackcheck check                     # Run all checks against the configured stack
  stackcheck check --stack my-stack    # Run checks against a specific stack
  stackcheck status                    # Show auth status and stack existence`,
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global persistent flags (available to all subcommands)
	rootCmd.PersistentFlags().StringVarP(&profile, "profile", "p", "", "AWS profile to use")
	rootCmd.PersistentFlags().StringVarP(&region, "region", "r", "", "AWS region to use")
	rootCmd.PersistentFlags().StringVarP(&stackName, "stack", "s", "", "CloudFormation stack name under test")

	// Bind flags to viper
	_ = viper.BindPFlag("profile", rootCmd.PersistentFlags().Lookup("profile"))
	_ = viper.BindPFlag("region", rootCmd.PersistentFlags().Lookup("region"))
	_ = viper.BindPFlag("stack", rootCmd.PersistentFlags().Lookup("stack"))
}

func initConfig() {
	// Read from environment variables (STACKCHECK_STACK, STACKCHECK_PROFILE, ...)
	viper.SetEnvPrefix("STACKCHECK")
	viper.AutomaticEnv()

	if profile == "" {
		if env := viper.GetString("profile"); env != "" {
			profile = env
		} else {
			profile = os.Getenv("AWS_PROFILE")
		}
	}

	// Use AWS_REGION if --region not specified; the client falls back to
	// us-east-1 when nothing resolves a region at all.
	if region == "" {
		if env := viper.GetString("region"); env != "" {
			region = env
		} else {
			region = os.Getenv("AWS_REGION")
			if region == "" {
				region = os.Getenv("AWS_DEFAULT_REGION")
			}
		}
	}

	if stackName == "" {
		stackName = viper.GetString("stack")
	}
}

// GetProfile returns the AWS profile
func GetProfile() string {
	return profile
}

// GetRegion returns the AWS region
func GetRegion() string {
	return region
}

// GetStackName returns the stack name override, if any
func GetStackName() string {
	return stackName
}
