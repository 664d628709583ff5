package models

// NotificationType identifies what a notification is about.
type NotificationType string

// NotificationTypeLike is sent to a user when someone right-swipes them.
const NotificationTypeLike NotificationType = "LIKE"

// Notification is one entry in a profile's notification queue. The queue is
// append-only here; consumption happens outside this service.
type Notification struct {
	SenderID   string           `json:"senderId" dynamodbav:"senderId"`
	ReceiverID string           `json:"receiverId" dynamodbav:"receiverId"`
	Type       NotificationType `json:"type" dynamodbav:"type"`
}
