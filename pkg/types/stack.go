package types

import "time"

// Stack represents a CloudFormation stack and its published outputs
type Stack struct {
	Name        string
	ID          string
	Status      string
	Description string
	CreatedTime time.Time
	Outputs     map[string]string
}
