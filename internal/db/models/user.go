package models

import (
	"strings"

	"gorm.io/gorm"

	"github.com/GoWoWonder-Admin/GoWoWonder-Admin/internal/legacy"
)

// User is a member of the social network (Wo_Users).
type User struct {
	UserID    uint64             `gorm:"column:user_id;primaryKey"`
	Username  string             `gorm:"column:username;size:32;unique"`
	Email     string             `gorm:"column:email;size:255"`
	FirstName string             `gorm:"column:first_name;size:60"`
	LastName  string             `gorm:"column:last_name;size:32"`
	Avatar    string             `gorm:"column:avatar;size:100"`
	Cover     string             `gorm:"column:cover;size:100"`
	Gender    string             `gorm:"column:gender;size:32"`
	About     string             `gorm:"column:about;type:text"`
	Active    legacy.ActiveState `gorm:"column:active;size:1"`
	Verified  legacy.Flag        `gorm:"column:verified;size:1"`
	Admin     legacy.Flag        `gorm:"column:admin;size:1"`
	Joined    legacy.Epoch       `gorm:"column:joined;size:50"`
	LastSeen  legacy.Epoch       `gorm:"column:lastseen;size:50"`
}

// TableName specifies the database table name for the User model.
func (User) TableName() string {
	return "Wo_Users"
}

// BeforeCreate fills the self-populating columns the PHP front end expects.
func (u *User) BeforeCreate(*gorm.DB) error {
	u.Joined = legacy.NewEpoch(u.Joined.Raw())
	u.LastSeen = legacy.NewEpoch(u.LastSeen.Raw())
	u.Verified = legacy.NewFlag(u.Verified.Raw())
	u.Admin = legacy.NewFlag(u.Admin.Raw())

	if u.Active == "" {
		u.Active = legacy.UserInactive
	}

	return nil
}

// ActiveLabel is the display form of the active code.
func (u *User) ActiveLabel() string {
	return legacy.UserActivity.Label(u.Active)
}

// Name is the full name, falling back to the username.
func (u *User) Name() string {
	name := strings.TrimSpace(u.FirstName + " " + u.LastName)
	if name == "" {
		return u.Username
	}

	return name
}
