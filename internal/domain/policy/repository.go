package policy

import "context"

type PolicyRepository interface {
	// GetActiveConfig returns the active global policy configuration, or
	// ErrPolicyConfigNotFound when none has been created yet.
	GetActiveConfig(ctx context.Context) (PolicyConfig, error)
	UpsertConfig(ctx context.Context, cfg PolicyConfig) (PolicyConfig, error)

	GetEmployeePolicy(ctx context.Context, employeeID string) (EmployeePolicy, error)
	UpsertEmployeePolicy(ctx context.Context, p EmployeePolicy) (EmployeePolicy, error)
}
