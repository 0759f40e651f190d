package domain

import "time"

// NotificationType classifies workspace notifications.
type NotificationType string

const (
	NotificationTaskAssigned      NotificationType = "task_assigned"
	NotificationTaskCompleted     NotificationType = "task_completed"
	NotificationProjectInvitation NotificationType = "project_invitation"
	NotificationDueSoon           NotificationType = "due_soon"
	NotificationDiscussionMention NotificationType = "discussion_mention"
)

// Notification is a workspace alert. The only supported mutation is flipping
// Read to true.
type Notification struct {
	ID        string           `json:"id"`
	Type      NotificationType `json:"type"`
	Title     string           `json:"title"`
	Message   string           `json:"message"`
	Read      bool             `json:"read"`
	ProjectID string           `json:"project_id,omitempty"`
	TaskID    string           `json:"task_id,omitempty"`
	CreatedAt time.Time        `json:"created_at"`
}
