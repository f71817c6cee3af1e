// Package authz decides what a workspace member may do. It is a static
// role/capability table plus three pure predicates; every unknown or
// malformed input resolves to denial.
package authz

// Evaluator answers permission questions against an immutable capability
// table. It holds no other state, performs no I/O, and is safe for
// concurrent use. It never returns an error: there is exactly one failure
// mode, "denied", signalled by false.
type Evaluator struct {
	table CapabilityTable
}

// NewEvaluator builds an evaluator over the given table. The table is
// treated as read-only from this point on; callers must not mutate it. A
// nil or empty table denies every request.
func NewEvaluator(table CapabilityTable) *Evaluator {
	return &Evaluator{table: table}
}

// NewDefaultEvaluator builds an evaluator over the reference table.
func NewDefaultEvaluator() *Evaluator {
	return NewEvaluator(DefaultTable())
}

// HasPermission reports whether role is granted capability by the table.
// Unrecognised roles and capabilities absent from the table deny.
func (e *Evaluator) HasPermission(role Role, capability Capability) bool {
	if !role.IsValid() {
		return false
	}
	set, ok := e.table[role]
	if !ok {
		return false
	}
	return set.Contains(capability)
}

// IsRoleAtLeast reports whether role ranks at or above required under
// owner > admin > member > viewer. Either side unrecognised denies.
func (e *Evaluator) IsRoleAtLeast(role, required Role) bool {
	if !role.IsValid() || !required.IsValid() {
		return false
	}
	return role.rank() >= required.rank()
}

// CanModifyRole reports whether an actor may change a target member's role
// from targetCurrent to targetNew. Rules, in precedence order:
//
//  1. only owner or admin actors may modify roles
//  2. the owner's own role is never a target through this path
//  3. nobody is promoted to owner through this path
//  4. admin actors act only on targets currently below admin and grant
//     only roles below admin
//  5. owner actors act on and grant any of admin, member, viewer
//  6. a no-op change (targetNew == targetCurrent) is authorised; whether
//     to skip the redundant write is the caller's business
func (e *Evaluator) CanModifyRole(actor, targetCurrent, targetNew Role) bool {
	if !actor.IsValid() || !targetCurrent.IsValid() || !targetNew.IsValid() {
		return false
	}
	if targetCurrent == RoleOwner || targetNew == RoleOwner {
		return false
	}
	switch actor {
	case RoleOwner:
		return true
	case RoleAdmin:
		return targetCurrent.rank() < RoleAdmin.rank() && targetNew.rank() < RoleAdmin.rank()
	default:
		return false
	}
}
