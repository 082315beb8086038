package aws

import (
	"context"
	"errors"
	"testing"

	awssdk "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/cloudformation"
	cfntypes "github.com/aws/aws-sdk-go-v2/service/cloudformation/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockCFNAPI struct {
	describeStacksFunc     func(ctx context.Context, params *cloudformation.DescribeStacksInput, optFns ...func(*cloudformation.Options)) (*cloudformation.DescribeStacksOutput, error)
	listStackResourcesFunc func(ctx context.Context, params *cloudformation.ListStackResourcesInput, optFns ...func(*cloudformation.Options)) (*cloudformation.ListStackResourcesOutput, error)
}

func (m *mockCFNAPI) DescribeStacks(ctx context.Context, params *cloudformation.DescribeStacksInput, optFns ...func(*cloudformation.Options)) (*cloudformation.DescribeStacksOutput, error) {
	return m.describeStacksFunc(ctx, params, optFns...)
}

func (m *mockCFNAPI) ListStackResources(ctx context.Context, params *cloudformation.ListStackResourcesInput, optFns ...func(*cloudformation.Options)) (*cloudformation.ListStackResourcesOutput, error) {
	return m.listStackResourcesFunc(ctx, params, optFns...)
}

func newTestClient() *Client {
	return &Client{ctx: context.Background()}
}

func TestGetStackOutput(t *testing.T) {
	client := newTestClient()
	client.CFN = &mockCFNAPI{
		describeStacksFunc: func(ctx context.Context, params *cloudformation.DescribeStacksInput, optFns ...func(*cloudformation.Options)) (*cloudformation.DescribeStacksOutput, error) {
			assert.Equal(t, "my-ec2-stack", awssdk.ToString(params.StackName))
			return &cloudformation.DescribeStacksOutput{
				Stacks: []cfntypes.Stack{
					{
						StackName:   awssdk.String("my-ec2-stack"),
						StackStatus: cfntypes.StackStatusCreateComplete,
						Outputs: []cfntypes.Output{
							{OutputKey: awssdk.String("LoadBalancerDNSName"), OutputValue: awssdk.String("my-alb-123.us-east-1.elb.amazonaws.com")},
							{OutputKey: awssdk.String("VpcId"), OutputValue: awssdk.String("vpc-abc123")},
						},
					},
				},
			}, nil
		},
	}

	value, err := client.GetStackOutput("my-ec2-stack", "LoadBalancerDNSName")
	require.NoError(t, err)
	assert.Equal(t, "my-alb-123.us-east-1.elb.amazonaws.com", value)
}

func TestGetStackOutput_KeyAbsentListsAvailable(t *testing.T) {
	client := newTestClient()
	client.CFN = &mockCFNAPI{
		describeStacksFunc: func(ctx context.Context, params *cloudformation.DescribeStacksInput, optFns ...func(*cloudformation.Options)) (*cloudformation.DescribeStacksOutput, error) {
			return &cloudformation.DescribeStacksOutput{
				Stacks: []cfntypes.Stack{
					{
						StackName: awssdk.String("my-ec2-stack"),
						Outputs: []cfntypes.Output{
							{OutputKey: awssdk.String("VpcId"), OutputValue: awssdk.String("vpc-abc123")},
							{OutputKey: awssdk.String("AsgName"), OutputValue: awssdk.String("my-asg")},
						},
					},
				},
			}, nil
		},
	}

	_, err := client.GetStackOutput("my-ec2-stack", "LoadBalancerDNSName")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
	// The failure message enumerates the real available keys.
	assert.Contains(t, err.Error(), "AsgName")
	assert.Contains(t, err.Error(), "VpcId")
	assert.Contains(t, err.Error(), "LoadBalancerDNSName")
}

func TestGetStackOutput_StackAbsent(t *testing.T) {
	client := newTestClient()
	client.CFN = &mockCFNAPI{
		describeStacksFunc: func(ctx context.Context, params *cloudformation.DescribeStacksInput, optFns ...func(*cloudformation.Options)) (*cloudformation.DescribeStacksOutput, error) {
			return &cloudformation.DescribeStacksOutput{}, nil
		},
	}

	_, err := client.GetStackOutput("no-such-stack", "LoadBalancerDNSName")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Contains(t, err.Error(), "no-such-stack")
}

func TestGetStackOutput_APIError(t *testing.T) {
	apiErr := errors.New("AccessDenied: not authorized")
	client := newTestClient()
	client.CFN = &mockCFNAPI{
		describeStacksFunc: func(ctx context.Context, params *cloudformation.DescribeStacksInput, optFns ...func(*cloudformation.Options)) (*cloudformation.DescribeStacksOutput, error) {
			return nil, apiErr
		},
	}

	_, err := client.GetStackOutput("my-ec2-stack", "LoadBalancerDNSName")
	require.Error(t, err)
	assert.ErrorIs(t, err, apiErr)
}

func TestFindStackResource_Paginated(t *testing.T) {
	calls := 0
	client := newTestClient()
	client.CFN = &mockCFNAPI{
		listStackResourcesFunc: func(ctx context.Context, params *cloudformation.ListStackResourcesInput, optFns ...func(*cloudformation.Options)) (*cloudformation.ListStackResourcesOutput, error) {
			calls++
			if calls == 1 {
				assert.Nil(t, params.NextToken)
				return &cloudformation.ListStackResourcesOutput{
					StackResourceSummaries: []cfntypes.StackResourceSummary{
						{ResourceType: awssdk.String("AWS::EC2::SecurityGroup"), PhysicalResourceId: awssdk.String("sg-123")},
					},
					NextToken: awssdk.String("page2"),
				}, nil
			}
			assert.Equal(t, "page2", awssdk.ToString(params.NextToken))
			return &cloudformation.ListStackResourcesOutput{
				StackResourceSummaries: []cfntypes.StackResourceSummary{
					{
						ResourceType:       awssdk.String("AWS::ElasticLoadBalancingV2::TargetGroup"),
						PhysicalResourceId: awssdk.String("arn:aws:elasticloadbalancing:us-east-1:123456:targetgroup/my-tg/abc123"),
					},
				},
			}, nil
		},
	}

	arn, err := client.FindStackResource("my-ec2-stack", "AWS::ElasticLoadBalancingV2::TargetGroup")
	require.NoError(t, err)
	assert.Equal(t, "arn:aws:elasticloadbalancing:us-east-1:123456:targetgroup/my-tg/abc123", arn)
	assert.Equal(t, 2, calls)
}

func TestFindStackResource_AbsentIsNotAnError(t *testing.T) {
	client := newTestClient()
	client.CFN = &mockCFNAPI{
		listStackResourcesFunc: func(ctx context.Context, params *cloudformation.ListStackResourcesInput, optFns ...func(*cloudformation.Options)) (*cloudformation.ListStackResourcesOutput, error) {
			return &cloudformation.ListStackResourcesOutput{
				StackResourceSummaries: []cfntypes.StackResourceSummary{
					{ResourceType: awssdk.String("AWS::EC2::SecurityGroup"), PhysicalResourceId: awssdk.String("sg-123")},
				},
			}, nil
		},
	}

	arn, err := client.FindStackResource("my-ec2-stack", "AWS::ElasticLoadBalancingV2::TargetGroup")
	require.NoError(t, err)
	assert.Empty(t, arn)
}

func TestDescribeStack(t *testing.T) {
	client := newTestClient()
	client.CFN = &mockCFNAPI{
		describeStacksFunc: func(ctx context.Context, params *cloudformation.DescribeStacksInput, optFns ...func(*cloudformation.Options)) (*cloudformation.DescribeStacksOutput, error) {
			return &cloudformation.DescribeStacksOutput{
				Stacks: []cfntypes.Stack{
					{
						StackName:   awssdk.String("my-ec2-stack"),
						StackId:     awssdk.String("arn:aws:cloudformation:us-east-1:123456:stack/my-ec2-stack/uuid"),
						StackStatus: cfntypes.StackStatusUpdateComplete,
						Outputs: []cfntypes.Output{
							{OutputKey: awssdk.String("LoadBalancerDNSName"), OutputValue: awssdk.String("my-alb-123.us-east-1.elb.amazonaws.com")},
						},
					},
				},
			}, nil
		},
	}

	stack, err := client.DescribeStack("my-ec2-stack")
	require.NoError(t, err)
	assert.Equal(t, "my-ec2-stack", stack.Name)
	assert.Equal(t, "UPDATE_COMPLETE", stack.Status)
	assert.Len(t, stack.Outputs, 1)
}
