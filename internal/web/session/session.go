// Package session keeps admin logins in a fiber storage backend keyed by a
// random session id sent as a cookie.
package session

import (
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
)

// CookieName is the name of the cookie carrying the session id.
const CookieName = "session"

var (
	// ErrNotInitialized is returned when the store was never initialized.
	ErrNotInitialized = errors.New("session store not initialized")
	// ErrNotFound is returned when no data is stored under the session id.
	ErrNotFound = errors.New("session not found")
)

// Store is the global session store instance.
var Store *session.Store

// Admin is the part of an admin account kept in the session.
type Admin struct {
	ID       uint64 `json:"id"`
	Username string `json:"username"`
	RoleID   uint   `json:"roleId"`
}

// Data represents the session data structure.
type Data struct {
	Admin Admin `json:"admin"`
}

// Write writes the session data for the given session ID with an expiration duration.
func (s *Data) Write(sessionID string, exp time.Duration) error {
	if Store == nil {
		return ErrNotInitialized
	}

	out, err := json.Marshal(s)
	if err != nil {
		return err
	}

	return Store.Storage.Set(sessionID, out, exp)
}

// Read reads the session data for the given session ID.
func (s *Data) Read(sessionID string) error {
	if Store == nil {
		return ErrNotInitialized
	}

	byteData, err := Store.Storage.Get(sessionID)
	if err != nil {
		return err
	}

	if len(byteData) == 0 {
		return ErrNotFound
	}

	return json.Unmarshal(byteData, s)
}

// Destroy removes the session data for the given session ID.
func Destroy(sessionID string) error {
	if Store == nil {
		return ErrNotInitialized
	}

	return Store.Storage.Delete(sessionID)
}

// Init initializes the session store with the provided storage backend.
// A nil storage selects fiber's in-memory storage.
func Init(storage fiber.Storage) {
	Store = session.New(session.Config{
		Storage: storage,
	})
}

// GenerateSessionID generates a new secure random session ID.
func GenerateSessionID() (string, error) {
	// 32 bytes = 256 bits
	b := make([]byte, 32) //nolint:mnd
	if _, err := rand.Read(b); err != nil {
		return "", err
	}

	return hex.EncodeToString(b), nil
}
