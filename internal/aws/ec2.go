package aws

import (
	"fmt"

	"github.com/aws/aws-sdk-go-v2/service/ec2"
	ec2types "github.com/aws/aws-sdk-go-v2/service/ec2/types"

	pkgtypes "stackcheck/pkg/types"
)

// ListInstances describes the given EC2 instances. Reservations are
// flattened; instances carry their public IP when one is assigned.
func (c *Client) ListInstances(instanceIDs []string) ([]pkgtypes.Instance, error) {
	if len(instanceIDs) == 0 {
		return nil, nil
	}

	output, err := c.EC2.DescribeInstances(c.ctx, &ec2.DescribeInstancesInput{
		InstanceIds: instanceIDs,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to describe instances: %w", err)
	}

	var instances []pkgtypes.Instance
	for _, reservation := range output.Reservations {
		for _, inst := range reservation.Instances {
			instances = append(instances, toInstance(inst))
		}
	}

	return instances, nil
}

// toInstance converts an EC2 Instance to our Instance type
func toInstance(i ec2types.Instance) pkgtypes.Instance {
	inst := pkgtypes.Instance{
		ID:        deref(i.InstanceId),
		PrivateIP: deref(i.PrivateIpAddress),
		PublicIP:  deref(i.PublicIpAddress),
		Type:      string(i.InstanceType),
	}

	if i.State != nil {
		inst.State = string(i.State.Name)
	}

	if i.Placement != nil {
		inst.AZ = deref(i.Placement.AvailabilityZone)
	}

	if i.LaunchTime != nil {
		inst.LaunchTime = *i.LaunchTime
	}

	for _, tag := range i.Tags {
		if deref(tag.Key) == "Name" {
			inst.Name = deref(tag.Value)
		}
	}

	return inst
}
