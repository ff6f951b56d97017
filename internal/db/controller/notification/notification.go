// Package notification sends back-office messages into users' notification feeds.
package notification

import (
	"errors"
	"fmt"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/GoWoWonder-Admin/GoWoWonder-Admin/internal/db/models"
	"github.com/GoWoWonder-Admin/GoWoWonder-Admin/internal/legacy"
)

// DefaultChunkSize is the rows per INSERT when the caller passes no chunk size.
const DefaultChunkSize = 500

var (
	// ErrEmptyMessage is returned for a notification without text.
	ErrEmptyMessage = errors.New("notification text cannot be empty")
	// ErrNoRecipients is returned when nobody would receive the notification.
	ErrNoRecipients = errors.New("notification has no recipients")
	// ErrDBNil is returned when the database connection is nil.
	ErrDBNil = errors.New("database connection is nil")
)

// textPolicy strips every tag; the front end prints notification text as HTML.
var textPolicy = bluemonday.StrictPolicy()

// Message is the content of a mass notification.
type Message struct {
	// NotifierID is the user shown as sender, 0 for the site itself.
	NotifierID uint64
	Text       string
	URL        string
}

// Broadcast stores msg once per recipient with chunk rows per INSERT.
// Markup is stripped from the text. Duplicate and zero recipient ids are dropped. All rows share one timestamp
// and are written in a single transaction. It returns the number of rows stored.
func Broadcast(db *gorm.DB, msg Message, recipients []uint64, chunk int) (int, error) {
	if db == nil {
		return 0, ErrDBNil
	}

	msg.Text = strings.TrimSpace(textPolicy.Sanitize(msg.Text))
	if msg.Text == "" {
		return 0, ErrEmptyMessage
	}

	if chunk <= 0 {
		chunk = DefaultChunkSize
	}

	now := legacy.NewEpoch(nil)
	seen := make(map[uint64]struct{}, len(recipients))
	rows := make([]models.Notification, 0, len(recipients))

	for _, id := range recipients {
		if id == 0 {
			continue
		}

		if _, dup := seen[id]; dup {
			continue
		}

		seen[id] = struct{}{}

		rows = append(rows, models.Notification{
			NotifierID:  msg.NotifierID,
			RecipientID: id,
			Type:        models.NotificationAdmin,
			Text:        msg.Text,
			URL:         msg.URL,
			Time:        now,
		})
	}

	if len(rows) == 0 {
		return 0, ErrNoRecipients
	}

	if err := db.CreateInBatches(rows, chunk).Error; err != nil {
		return 0, fmt.Errorf("failed to store notifications: %w", err)
	}

	log.Info().Int("recipients", len(rows)).Int("chunk", chunk).Msg("notification broadcast stored")

	return len(rows), nil
}

// ActiveUserIDs returns the ids of all active users in ascending order.
func ActiveUserIDs(db *gorm.DB) ([]uint64, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var ids []uint64

	err := db.Model(&models.User{}).
		Where("active = ?", legacy.UserActive).
		Order("user_id").
		Pluck("user_id", &ids).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load active users: %w", err)
	}

	return ids, nil
}

// BroadcastToActive sends msg to every active user.
func BroadcastToActive(db *gorm.DB, msg Message, chunk int) (int, error) {
	ids, err := ActiveUserIDs(db)
	if err != nil {
		return 0, err
	}

	return Broadcast(db, msg, ids, chunk)
}
