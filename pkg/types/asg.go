package types

import "time"

// AutoScalingGroup represents an AWS Auto Scaling Group
type AutoScalingGroup struct {
	Name            string
	ARN             string
	DesiredCapacity int
	MinSize         int
	MaxSize         int
	CreatedTime     time.Time
	AZs             []string
	InstanceIDs     []string // current member instances
}
