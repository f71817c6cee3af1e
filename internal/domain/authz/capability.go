package authz

// Capability names an action on a resource, written "resource:verb".
// Capabilities are flat tokens; only roles are ordered.
type Capability string

const (
	CapWorkspaceView   Capability = "workspace:view"
	CapWorkspaceUpdate Capability = "workspace:update"
	CapWorkspaceDelete Capability = "workspace:delete"

	CapMemberView       Capability = "member:view"
	CapMemberInvite     Capability = "member:invite"
	CapMemberModifyRole Capability = "member:modify_role"
	CapMemberRemove     Capability = "member:remove"

	CapBoardView    Capability = "board:view"
	CapBoardCreate  Capability = "board:create"
	CapBoardUpdate  Capability = "board:update"
	CapBoardArchive Capability = "board:archive"
	CapBoardDelete  Capability = "board:delete"

	CapListCreate  Capability = "list:create"
	CapListUpdate  Capability = "list:update"
	CapListMove    Capability = "list:move"
	CapListArchive Capability = "list:archive"

	CapCardCreate  Capability = "card:create"
	CapCardUpdate  Capability = "card:update"
	CapCardMove    Capability = "card:move"
	CapCardArchive Capability = "card:archive"
	CapCardDelete  Capability = "card:delete"

	CapCommentCreate   Capability = "comment:create"
	CapCommentModerate Capability = "comment:moderate"

	CapLabelManage Capability = "label:manage"

	CapAttachmentCreate Capability = "attachment:create"
	CapAttachmentDelete Capability = "attachment:delete"

	CapActivityView Capability = "activity:view"
)

// CapabilitySet is the set of capabilities granted to one role.
type CapabilitySet map[Capability]struct{}

// Contains reports membership of c in the set.
func (s CapabilitySet) Contains(c Capability) bool {
	_, ok := s[c]
	return ok
}

// CapabilityTable maps each role to its capability set. Higher roles hold
// supersets of lower ones in the reference table below, but the evaluator
// always consults the table instead of deriving grants from rank.
type CapabilityTable map[Role]CapabilitySet

func newSet(caps ...Capability) CapabilitySet {
	s := make(CapabilitySet, len(caps))
	for _, c := range caps {
		s[c] = struct{}{}
	}
	return s
}

// merge returns the union of base and extra without mutating either.
func merge(base CapabilitySet, extra ...Capability) CapabilitySet {
	s := make(CapabilitySet, len(base)+len(extra))
	for c := range base {
		s[c] = struct{}{}
	}
	for _, c := range extra {
		s[c] = struct{}{}
	}
	return s
}

// DefaultTable returns the reference capability table. Every capability the
// handlers gate on must appear here: a capability missing from the table
// denies everyone.
func DefaultTable() CapabilityTable {
	viewer := newSet(
		CapWorkspaceView,
		CapMemberView,
		CapBoardView,
		CapActivityView,
	)

	member := merge(viewer,
		CapListCreate,
		CapListUpdate,
		CapListMove,
		CapListArchive,
		CapCardCreate,
		CapCardUpdate,
		CapCardMove,
		CapCardArchive,
		CapCommentCreate,
		CapAttachmentCreate,
	)

	admin := merge(member,
		CapWorkspaceUpdate,
		CapMemberInvite,
		CapMemberModifyRole,
		CapMemberRemove,
		CapBoardCreate,
		CapBoardUpdate,
		CapBoardArchive,
		CapBoardDelete,
		CapCardDelete,
		CapCommentModerate,
		CapLabelManage,
		CapAttachmentDelete,
	)

	owner := merge(admin,
		CapWorkspaceDelete,
	)

	return CapabilityTable{
		RoleOwner:  owner,
		RoleAdmin:  admin,
		RoleMember: member,
		RoleViewer: viewer,
	}
}
