package models

import (
	"gorm.io/gorm"

	"github.com/GoWoWonder-Admin/GoWoWonder-Admin/internal/legacy"
)

// NotificationAdmin is the notification type of messages sent from the back-office.
const NotificationAdmin = "admin_notification"

// Notification is a row of a user's notification feed (Wo_Notifications).
type Notification struct {
	ID          uint64       `gorm:"column:id;primaryKey"`
	NotifierID  uint64       `gorm:"column:notifier_id"`
	RecipientID uint64       `gorm:"column:recipient_id;index"`
	Type        string       `gorm:"column:type;size:50"`
	Text        string       `gorm:"column:text;type:text"`
	URL         string       `gorm:"column:url;size:255"`
	Seen        legacy.Epoch `gorm:"column:seen;size:50"`
	Time        legacy.Epoch `gorm:"column:time;size:50"`
}

// TableName specifies the database table name for the Notification model.
func (Notification) TableName() string {
	return "Wo_Notifications"
}

// BeforeCreate stamps the notification. Seen stays "0" until the recipient opens it.
func (n *Notification) BeforeCreate(*gorm.DB) error {
	n.Time = legacy.NewEpoch(n.Time.Raw())

	if n.Seen == "" {
		n.Seen = legacy.Epoch(legacy.FlagOff)
	}

	return nil
}
