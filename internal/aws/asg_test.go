package aws

import (
	"context"
	"testing"

	awssdk "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/autoscaling"
	asgtypes "github.com/aws/aws-sdk-go-v2/service/autoscaling/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockASGAPI struct {
	describeAutoScalingGroupsFunc func(ctx context.Context, params *autoscaling.DescribeAutoScalingGroupsInput, optFns ...func(*autoscaling.Options)) (*autoscaling.DescribeAutoScalingGroupsOutput, error)
}

func (m *mockASGAPI) DescribeAutoScalingGroups(ctx context.Context, params *autoscaling.DescribeAutoScalingGroupsInput, optFns ...func(*autoscaling.Options)) (*autoscaling.DescribeAutoScalingGroupsOutput, error) {
	return m.describeAutoScalingGroupsFunc(ctx, params, optFns...)
}

func TestDescribeAutoScalingGroup(t *testing.T) {
	client := newTestClient()
	client.ASG = &mockASGAPI{
		describeAutoScalingGroupsFunc: func(ctx context.Context, params *autoscaling.DescribeAutoScalingGroupsInput, optFns ...func(*autoscaling.Options)) (*autoscaling.DescribeAutoScalingGroupsOutput, error) {
			require.Equal(t, []string{"my-asg"}, params.AutoScalingGroupNames)
			return &autoscaling.DescribeAutoScalingGroupsOutput{
				AutoScalingGroups: []asgtypes.AutoScalingGroup{
					{
						AutoScalingGroupName: awssdk.String("my-asg"),
						AutoScalingGroupARN:  awssdk.String("arn:aws:autoscaling:us-east-1:123456:autoScalingGroup:uuid"),
						DesiredCapacity:      awssdk.Int32(2),
						MinSize:              awssdk.Int32(1),
						MaxSize:              awssdk.Int32(4),
						AvailabilityZones:    []string{"us-east-1a", "us-east-1b"},
						Instances: []asgtypes.Instance{
							{InstanceId: awssdk.String("i-1234567890abcdef0")},
							{InstanceId: awssdk.String("i-0987654321fedcba0")},
						},
					},
				},
			}, nil
		},
	}

	group, err := client.DescribeAutoScalingGroup("my-asg")
	require.NoError(t, err)
	assert.Equal(t, "my-asg", group.Name)
	assert.Equal(t, 2, group.DesiredCapacity)
	assert.Equal(t, 1, group.MinSize)
	assert.Equal(t, 4, group.MaxSize)
	assert.Equal(t, []string{"i-1234567890abcdef0", "i-0987654321fedcba0"}, group.InstanceIDs)
}

func TestDescribeAutoScalingGroup_NotFound(t *testing.T) {
	client := newTestClient()
	client.ASG = &mockASGAPI{
		describeAutoScalingGroupsFunc: func(ctx context.Context, params *autoscaling.DescribeAutoScalingGroupsInput, optFns ...func(*autoscaling.Options)) (*autoscaling.DescribeAutoScalingGroupsOutput, error) {
			return &autoscaling.DescribeAutoScalingGroupsOutput{}, nil
		},
	}

	_, err := client.DescribeAutoScalingGroup("no-such-asg")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Contains(t, err.Error(), "no-such-asg")
}
