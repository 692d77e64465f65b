package policy

import "errors"

var (
	ErrPolicyConfigNotFound   = errors.New("active policy configuration not found")
	ErrEmployeePolicyNotFound = errors.New("employee policy not found")
	ErrInvalidTierTable       = errors.New("weekend deduction tiers must be ascending and disjoint")
)
