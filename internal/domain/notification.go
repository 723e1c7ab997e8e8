package domain

import "time"

// NotificationTTL is how long a notification stays visible after creation.
const NotificationTTL = 5 * time.Second

// Notification is a transient toast shown after a conversation turn.
type Notification struct {
	ID        string
	Message   string
	Kind      NotificationKind
	CreatedAt time.Time
	ExpiresAt time.Time
}

// Expired reports whether the notification should no longer be shown at now.
func (n Notification) Expired(now time.Time) bool {
	return now.After(n.ExpiresAt)
}
