package entity

import "time"

// Activity actions recorded by the usecases.
const (
	ActivityWorkspaceCreated  = "workspace.created"
	ActivityWorkspaceUpdated  = "workspace.updated"
	ActivityWorkspaceDeleted  = "workspace.deleted"
	ActivityMemberInvited     = "member.invited"
	ActivityMemberRoleSet     = "member.role_changed"
	ActivityMemberRemoved     = "member.removed"
	ActivityBoardCreated      = "board.created"
	ActivityBoardUpdated      = "board.updated"
	ActivityBoardArchived     = "board.archived"
	ActivityBoardDeleted      = "board.deleted"
	ActivityListCreated       = "list.created"
	ActivityListUpdated       = "list.updated"
	ActivityListMoved         = "list.moved"
	ActivityListArchived      = "list.archived"
	ActivityCardCreated       = "card.created"
	ActivityCardUpdated       = "card.updated"
	ActivityCardMoved         = "card.moved"
	ActivityCardArchived      = "card.archived"
	ActivityCardDeleted       = "card.deleted"
	ActivityCommentAdded      = "comment.added"
	ActivityCommentDeleted    = "comment.deleted"
	ActivityLabelCreated      = "label.created"
	ActivityLabelUpdated      = "label.updated"
	ActivityLabelDeleted      = "label.deleted"
	ActivityAttachmentAdded   = "attachment.added"
	ActivityAttachmentRemoved = "attachment.removed"
)

// Activity is one entry in a workspace's audit feed. BoardID is empty for
// workspace-scoped actions.
type Activity struct {
	ID          string            `bson:"_id" json:"id"`
	WorkspaceID string            `bson:"workspace_id" json:"workspace_id"`
	BoardID     string            `bson:"board_id,omitempty" json:"board_id,omitempty"`
	ActorID     string            `bson:"actor_id" json:"actor_id"`
	Action      string            `bson:"action" json:"action"`
	EntityType  string            `bson:"entity_type" json:"entity_type"`
	EntityID    string            `bson:"entity_id" json:"entity_id"`
	Detail      map[string]string `bson:"detail,omitempty" json:"detail,omitempty"`
	CreatedAt   time.Time         `bson:"created_at" json:"created_at"`
}
