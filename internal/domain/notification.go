package domain

import (
	"time"

	"jobboard/internal/domain/blocks"
)

type NotificationType string

const (
	NotificationJobMatch          NotificationType = "job_match"
	NotificationApplicationStatus NotificationType = "application_status"
	NotificationInterviewInvite   NotificationType = "interview_invitation"
	NotificationOther             NotificationType = "other"
)

type Notification struct {
	ID          int              `json:"id"`
	Type        NotificationType `json:"type"`
	Title       string           `json:"title"`
	Content     blocks.BlockList `json:"content"`
	IsRead      bool             `json:"isRead"`
	User        *User            `json:"users_permissions_user"`
	Job         *Job             `json:"job"`
	Application *JobApplication  `json:"job_application"`
	CreatedAt   time.Time        `json:"createdAt"`
	UpdatedAt   time.Time        `json:"updatedAt"`
}
