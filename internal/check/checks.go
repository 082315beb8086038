package check

import (
	"context"
	"fmt"
	"strings"
	"time"

	pkgtypes "stackcheck/pkg/types"
)

// OutputKeyDNSName is the stack output holding the load balancer DNS name
const OutputKeyDNSName = "LoadBalancerDNSName"

// CloudFormation resource type tags used for discovery, so the checks stay
// portable across stacks without hardcoded ARNs.
const (
	resourceTypeTargetGroup = "AWS::ElasticLoadBalancingV2::TargetGroup"
	resourceTypeASG         = "AWS::AutoScaling::AutoScalingGroup"
)

// bodyExcerptLen bounds how much response body a failure detail carries
const bodyExcerptLen = 200

// StackAPI is the read-only AWS surface the checks need
type StackAPI interface {
	GetStackOutput(stackName, key string) (string, error)
	FindStackResource(stackName, resourceType string) (string, error)
	ListTargets(tgARN string) ([]pkgtypes.Target, error)
	DescribeAutoScalingGroup(name string) (*pkgtypes.AutoScalingGroup, error)
	ListInstances(instanceIDs []string) ([]pkgtypes.Instance, error)
}

// HTTPProber is the HTTP surface the checks need
type HTTPProber interface {
	WaitForReady(ctx context.Context, url string, budget time.Duration) (int, string, error)
	Reachable(ctx context.Context, url string, timeout time.Duration) bool
}

// Suite holds the configuration and clients shared by all checks of one run
type Suite struct {
	Stack         string        // stack name under test
	Expect        string        // substring the ALB response body must contain
	PollBudget    time.Duration // overall readiness budget for the content check
	DirectTimeout time.Duration // per-request timeout for the exposure check

	AWS   StackAPI
	Probe HTTPProber
}

// Checks returns the four validation scenarios. Order is not significant;
// every check reads live state independently.
func (s *Suite) Checks() []Check {
	return []Check{
		{Name: "stack-output", Run: s.checkStackOutput},
		{Name: "alb-content", Run: s.checkContent},
		{Name: "target-health", Run: s.checkTargetHealth},
		{Name: "direct-exposure", Run: s.checkDirectExposure},
	}
}

// checkStackOutput verifies the stack publishes a plausible ALB DNS name.
func (s *Suite) checkStackOutput(ctx context.Context) Result {
	dns, err := s.AWS.GetStackOutput(s.Stack, OutputKeyDNSName)
	if err != nil {
		return fail("failed to resolve load balancer DNS output", err)
	}

	if dns == "" || !strings.Contains(dns, ".") {
		return fail(fmt.Sprintf("unexpected ALB DNS output: %q", dns), nil)
	}

	return pass(fmt.Sprintf("%s = %s", OutputKeyDNSName, dns))
}

// checkContent polls the ALB until it serves HTTP 200 and verifies the body
// contains the expected text.
func (s *Suite) checkContent(ctx context.Context) Result {
	dns, err := s.AWS.GetStackOutput(s.Stack, OutputKeyDNSName)
	if err != nil {
		return fail("failed to resolve load balancer DNS output", err)
	}

	url := fmt.Sprintf("http://%s/", dns)
	status, body, err := s.Probe.WaitForReady(ctx, url, s.PollBudget)
	if err != nil {
		return fail("endpoint never became ready", err)
	}

	if !strings.Contains(body, s.Expect) {
		return fail(fmt.Sprintf("expected response to contain %q, got: %q", s.Expect, excerpt(body)), nil)
	}

	return pass(fmt.Sprintf("%s answered %d with expected content", url, status))
}

// checkTargetHealth verifies at least one target registered to the stack's
// target group is healthy. Stacks without a target group resource skip.
func (s *Suite) checkTargetHealth(ctx context.Context) Result {
	tgARN, err := s.AWS.FindStackResource(s.Stack, resourceTypeTargetGroup)
	if err != nil {
		return fail("failed to discover target group resource", err)
	}
	if tgARN == "" {
		return skip("no TargetGroup resource found in stack")
	}

	targets, err := s.AWS.ListTargets(tgARN)
	if err != nil {
		return fail(fmt.Sprintf("failed to describe target health for %q", tgARN), err)
	}

	if len(targets) == 0 {
		return fail("target group has no registered targets", nil)
	}

	healthy := 0
	states := make([]string, 0, len(targets))
	for _, t := range targets {
		states = append(states, t.Health)
		if t.Healthy() {
			healthy++
		}
	}

	if healthy == 0 {
		return fail(fmt.Sprintf("no healthy targets found, states: [%s]", strings.Join(states, ", ")), nil)
	}

	return pass(fmt.Sprintf("%d of %d targets healthy", healthy, len(targets)))
}

// checkDirectExposure verifies backend instances are not directly reachable
// over HTTP from the internet. Instances without public IPs satisfy the
// check trivially; instances with public IPs must refuse or time out.
func (s *Suite) checkDirectExposure(ctx context.Context) Result {
	asgName, err := s.AWS.FindStackResource(s.Stack, resourceTypeASG)
	if err != nil {
		return fail("failed to discover auto scaling group resource", err)
	}
	if asgName == "" {
		return fail("no AutoScalingGroup resource found in stack", nil)
	}

	group, err := s.AWS.DescribeAutoScalingGroup(asgName)
	if err != nil {
		return fail(fmt.Sprintf("failed to describe auto scaling group %q", asgName), err)
	}

	if len(group.InstanceIDs) == 0 {
		return fail("auto scaling group has no instances to validate", nil)
	}

	instances, err := s.AWS.ListInstances(group.InstanceIDs)
	if err != nil {
		return fail("failed to describe ASG instances", err)
	}

	var publicIPs []string
	for _, inst := range instances {
		if inst.PublicIP != "" {
			publicIPs = append(publicIPs, inst.PublicIP)
		}
	}

	// Private-subnet topologies have no public IPs at all.
	if len(publicIPs) == 0 {
		return pass(fmt.Sprintf("%d instances, none with public IPs", len(instances)))
	}

	for _, ip := range publicIPs {
		url := fmt.Sprintf("http://%s/", ip)
		if s.Probe.Reachable(ctx, url, s.DirectTimeout) {
			return fail(fmt.Sprintf("instance %s is publicly reachable on port 80, expected access only via the ALB", ip), nil)
		}
	}

	return pass(fmt.Sprintf("%d public IPs probed, none reachable", len(publicIPs)))
}

func excerpt(body string) string {
	if len(body) <= bodyExcerptLen {
		return body
	}
	return body[:bodyExcerptLen] + "..."
}
