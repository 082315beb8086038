package aws

import (
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	elbv2 "github.com/aws/aws-sdk-go-v2/service/elasticloadbalancingv2"
	elbv2types "github.com/aws/aws-sdk-go-v2/service/elasticloadbalancingv2/types"

	pkgtypes "stackcheck/pkg/types"
)

// ListTargets returns all targets in a target group with their health status
func (c *Client) ListTargets(tgARN string) ([]pkgtypes.Target, error) {
	output, err := c.ELB.DescribeTargetHealth(c.ctx, &elbv2.DescribeTargetHealthInput{
		TargetGroupArn: aws.String(tgARN),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to describe target health for %q: %w", tgARN, err)
	}

	var targets []pkgtypes.Target
	for _, thd := range output.TargetHealthDescriptions {
		targets = append(targets, toTarget(thd))
	}

	return targets, nil
}

// toTarget converts an ELBv2 TargetHealthDescription to our Target type
func toTarget(thd elbv2types.TargetHealthDescription) pkgtypes.Target {
	target := pkgtypes.Target{}

	if thd.Target != nil {
		target.ID = deref(thd.Target.Id)
		if thd.Target.Port != nil {
			target.Port = int(*thd.Target.Port)
		}
		target.AZ = deref(thd.Target.AvailabilityZone)
	}

	if thd.TargetHealth != nil {
		target.Health = string(thd.TargetHealth.State)
		target.Reason = string(thd.TargetHealth.Reason)
	}

	return target
}
