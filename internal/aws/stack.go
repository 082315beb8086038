package aws

import (
	"fmt"
	"sort"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/cloudformation"

	pkgtypes "stackcheck/pkg/types"
)

// DescribeStack returns a stack with its published outputs
func (c *Client) DescribeStack(name string) (*pkgtypes.Stack, error) {
	output, err := c.CFN.DescribeStacks(c.ctx, &cloudformation.DescribeStacksInput{
		StackName: aws.String(name),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to describe stack %q: %w", name, err)
	}

	if len(output.Stacks) == 0 {
		return nil, fmt.Errorf("stack %q: %w", name, ErrNotFound)
	}

	stack := output.Stacks[0]
	result := &pkgtypes.Stack{
		Name:        deref(stack.StackName),
		ID:          deref(stack.StackId),
		Status:      string(stack.StackStatus),
		Description: deref(stack.Description),
		Outputs:     make(map[string]string, len(stack.Outputs)),
	}

	if stack.CreationTime != nil {
		result.CreatedTime = *stack.CreationTime
	}

	for _, o := range stack.Outputs {
		result.Outputs[deref(o.OutputKey)] = deref(o.OutputValue)
	}

	return result, nil
}

// GetStackOutput returns the value of a single stack output key. A missing
// key is reported together with every key the stack actually publishes.
func (c *Client) GetStackOutput(stackName, key string) (string, error) {
	stack, err := c.DescribeStack(stackName)
	if err != nil {
		return "", err
	}

	if value, ok := stack.Outputs[key]; ok {
		return value, nil
	}

	available := make([]string, 0, len(stack.Outputs))
	for k := range stack.Outputs {
		available = append(available, k)
	}
	sort.Strings(available)

	return "", fmt.Errorf("output key %q not found in stack %q, available outputs: [%s]: %w",
		key, stackName, strings.Join(available, ", "), ErrNotFound)
}

// FindStackResource walks the paginated resource listing of a stack and
// returns the physical ID of the first resource matching the given type.
// Absence is not an error: some checks treat a missing resource as skippable.
func (c *Client) FindStackResource(stackName, resourceType string) (string, error) {
	var nextToken *string

	for {
		output, err := c.CFN.ListStackResources(c.ctx, &cloudformation.ListStackResourcesInput{
			StackName: aws.String(stackName),
			NextToken: nextToken,
		})
		if err != nil {
			return "", fmt.Errorf("failed to list resources of stack %q: %w", stackName, err)
		}

		for _, r := range output.StackResourceSummaries {
			if deref(r.ResourceType) == resourceType {
				return deref(r.PhysicalResourceId), nil
			}
		}

		if output.NextToken == nil {
			break
		}
		nextToken = output.NextToken
	}

	return "", nil
}
