package models

import "time"

type NotificationType string

const (
	NotificationNewMessage    NotificationType = "new_message"
	NotificationMessageRead   NotificationType = "message_read"
	NotificationFriendRequest NotificationType = "friend_request"
)

type Notification struct {
	ID        int64
	UserID    int64
	Type      NotificationType
	Title     string
	Message   *string
	RelatedID *int64
	IsRead    bool
	CreatedAt time.Time
}
