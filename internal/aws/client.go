package aws

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/autoscaling"
	"github.com/aws/aws-sdk-go-v2/service/cloudformation"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	elbv2 "github.com/aws/aws-sdk-go-v2/service/elasticloadbalancingv2"
	"github.com/aws/aws-sdk-go-v2/service/sts"
)

// FallbackRegion is used when neither flags, environment, nor shared config
// resolve a region. Lab environments commonly default to us-east-1.
const FallbackRegion = "us-east-1"

// ErrNotFound is returned when a stack, output key, or resource is absent
var ErrNotFound = errors.New("resource not found")

// Client wraps the AWS service clients used by the validation checks.
// Clients are constructed once per run and reused; no call result is cached,
// since stack state changes while checks are running.
type Client struct {
	CFN CloudFormationAPI
	ELB ELBAPI
	ASG AutoScalingAPI
	EC2 EC2API
	STS STSAPI

	ctx     context.Context
	profile string
	region  string
}

// ClientOption allows customizing the AWS Client
type ClientOption func(*Client)

// WithProfile sets the AWS profile for the client
func WithProfile(profile string) ClientOption {
	return func(c *Client) {
		c.profile = profile
	}
}

// WithRegion sets the AWS region for the client
func WithRegion(region string) ClientOption {
	return func(c *Client) {
		c.region = region
	}
}

// NewClient creates a new AWS Client with the given options
func NewClient(ctx context.Context, opts ...ClientOption) (*Client, error) {
	c := &Client{
		ctx: ctx,
	}

	for _, opt := range opts {
		opt(c)
	}

	var configOpts []func(*config.LoadOptions) error

	if c.profile != "" {
		configOpts = append(configOpts, config.WithSharedConfigProfile(c.profile))
	}

	if c.region != "" {
		configOpts = append(configOpts, config.WithRegion(c.region))
	}

	cfg, err := config.LoadDefaultConfig(c.ctx, configOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS SDK config: %w", err)
	}

	if cfg.Region == "" {
		cfg.Region = FallbackRegion
	}
	c.region = cfg.Region

	c.CFN = cloudformation.NewFromConfig(cfg)
	c.ELB = elbv2.NewFromConfig(cfg)
	c.ASG = autoscaling.NewFromConfig(cfg)
	c.EC2 = ec2.NewFromConfig(cfg)
	c.STS = sts.NewFromConfig(cfg)

	return c, nil
}

// Region returns the region the client resolved at construction time
func (c *Client) Region() string {
	return c.region
}

// deref safely dereferences a string pointer
func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
