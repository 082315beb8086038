package aws

import (
	"fmt"

	"github.com/aws/aws-sdk-go-v2/service/sts"

	pkgtypes "stackcheck/pkg/types"
)

// GetCallerIdentity returns the current AWS caller identity
func (c *Client) GetCallerIdentity() (*pkgtypes.CallerIdentity, error) {
	output, err := c.STS.GetCallerIdentity(c.ctx, &sts.GetCallerIdentityInput{})
	if err != nil {
		return nil, fmt.Errorf("failed to get caller identity: %w", err)
	}

	return &pkgtypes.CallerIdentity{
		Account: deref(output.Account),
		Arn:     deref(output.Arn),
		UserID:  deref(output.UserId),
	}, nil
}
