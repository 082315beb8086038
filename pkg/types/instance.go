package types

import "time"

// Instance represents an EC2 instance
type Instance struct {
	ID         string
	Name       string
	PrivateIP  string
	PublicIP   string // empty for private-subnet instances
	State      string
	Type       string
	AZ         string
	LaunchTime time.Time
}
