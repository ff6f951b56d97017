package models

import (
	"gorm.io/gorm"

	"github.com/GoWoWonder-Admin/GoWoWonder-Admin/internal/legacy"
)

// Group is a community group (Wo_Groups).
type Group struct {
	ID       uint64              `gorm:"column:id;primaryKey"`
	UserID   uint64              `gorm:"column:user_id"`
	Name     string              `gorm:"column:group_name;size:32;unique"`
	Title    string              `gorm:"column:group_title;size:40"`
	Avatar   string              `gorm:"column:avatar;size:120"`
	Cover    string              `gorm:"column:cover;size:120"`
	About    string              `gorm:"column:about;type:text"`
	Category string              `gorm:"column:category;size:11"`
	Privacy  legacy.GroupPrivacy `gorm:"column:privacy;size:1"`
	Active   legacy.Flag         `gorm:"column:active;size:1"`
	Time     legacy.Epoch        `gorm:"column:time;size:50"`
	Owner    *User               `gorm:"foreignKey:UserID;references:UserID"`
}

// TableName specifies the database table name for the Group model.
func (Group) TableName() string {
	return "Wo_Groups"
}

// BeforeCreate stamps the group and defaults it to a public active group.
func (g *Group) BeforeCreate(*gorm.DB) error {
	g.Time = legacy.NewEpoch(g.Time.Raw())

	if g.Privacy == "" {
		g.Privacy = legacy.GroupPublic
	}

	if g.Active == "" {
		g.Active = legacy.FlagOn
	}

	return nil
}

// PrivacyLabel is the display form of the privacy code.
func (g *Group) PrivacyLabel() string {
	return legacy.GroupPrivacies.Label(g.Privacy)
}

// GroupMember is a membership row (Wo_Group_Members).
type GroupMember struct {
	ID      uint64       `gorm:"column:id;primaryKey"`
	UserID  uint64       `gorm:"column:user_id;index"`
	GroupID uint64       `gorm:"column:group_id;index"`
	Active  legacy.Flag  `gorm:"column:active;size:1"`
	Time    legacy.Epoch `gorm:"column:time;size:50"`
}

// TableName specifies the database table name for the GroupMember model.
func (GroupMember) TableName() string {
	return "Wo_Group_Members"
}

// BeforeCreate stamps the membership.
func (m *GroupMember) BeforeCreate(*gorm.DB) error {
	m.Time = legacy.NewEpoch(m.Time.Raw())

	if m.Active == "" {
		m.Active = legacy.FlagOn
	}

	return nil
}
