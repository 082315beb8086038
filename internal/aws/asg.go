package aws

import (
	"fmt"

	"github.com/aws/aws-sdk-go-v2/service/autoscaling"
	asgtypes "github.com/aws/aws-sdk-go-v2/service/autoscaling/types"

	pkgtypes "stackcheck/pkg/types"
)

// DescribeAutoScalingGroup returns a specific ASG including its member instance IDs
func (c *Client) DescribeAutoScalingGroup(name string) (*pkgtypes.AutoScalingGroup, error) {
	output, err := c.ASG.DescribeAutoScalingGroups(c.ctx, &autoscaling.DescribeAutoScalingGroupsInput{
		AutoScalingGroupNames: []string{name},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to describe auto scaling group %q: %w", name, err)
	}

	if len(output.AutoScalingGroups) == 0 {
		return nil, fmt.Errorf("auto scaling group %q: %w", name, ErrNotFound)
	}

	asg := toAutoScalingGroup(output.AutoScalingGroups[0])
	return &asg, nil
}

// toAutoScalingGroup converts an AWS ASG type to our internal type
func toAutoScalingGroup(g asgtypes.AutoScalingGroup) pkgtypes.AutoScalingGroup {
	asg := pkgtypes.AutoScalingGroup{
		Name:            deref(g.AutoScalingGroupName),
		ARN:             deref(g.AutoScalingGroupARN),
		DesiredCapacity: int(deref32(g.DesiredCapacity)),
		MinSize:         int(deref32(g.MinSize)),
		MaxSize:         int(deref32(g.MaxSize)),
		AZs:             g.AvailabilityZones,
	}

	if g.CreatedTime != nil {
		asg.CreatedTime = *g.CreatedTime
	}

	for _, inst := range g.Instances {
		if inst.InstanceId != nil {
			asg.InstanceIDs = append(asg.InstanceIDs, *inst.InstanceId)
		}
	}

	return asg
}

// deref32 safely dereferences an int32 pointer
func deref32(i *int32) int32 {
	if i == nil {
		return 0
	}
	return *i
}
