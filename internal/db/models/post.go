package models

import (
	"gorm.io/gorm"

	"github.com/GoWoWonder-Admin/GoWoWonder-Admin/internal/legacy"
)

// Post is a timeline post (Wo_Posts).
// A post belongs to a user and optionally to a page or a group.
type Post struct {
	ID       uint64             `gorm:"column:id;primaryKey"`
	UserID   uint64             `gorm:"column:user_id;index"`
	PageID   uint64             `gorm:"column:page_id"`
	GroupID  uint64             `gorm:"column:group_id"`
	Text     string             `gorm:"column:postText;type:text"`
	File     string             `gorm:"column:postFile;size:255"`
	Privacy  legacy.PostPrivacy `gorm:"column:postPrivacy;size:1"`
	Time     legacy.Epoch       `gorm:"column:time;size:50"`
	Active   legacy.Flag        `gorm:"column:active;size:1"`
	Pinned   legacy.Flag        `gorm:"column:pinned;size:1"`
	Author   *User              `gorm:"foreignKey:UserID;references:UserID"`
	Comments []Comment          `gorm:"foreignKey:PostID;references:ID"`
}

// TableName specifies the database table name for the Post model.
func (Post) TableName() string {
	return "Wo_Posts"
}

// BeforeCreate stamps the post and defaults it to an active public post.
func (p *Post) BeforeCreate(*gorm.DB) error {
	p.Time = legacy.NewEpoch(p.Time.Raw())
	p.Pinned = legacy.NewFlag(p.Pinned.Raw())

	if p.Active == "" {
		p.Active = legacy.FlagOn
	}

	if p.Privacy == "" {
		p.Privacy = legacy.PostEveryone
	}

	return nil
}

// PrivacyLabel is the display form of the audience code.
func (p *Post) PrivacyLabel() string {
	return legacy.PostPrivacies.Label(p.Privacy)
}

// Comment is a comment on a post (Wo_Comments).
type Comment struct {
	ID     uint64       `gorm:"column:id;primaryKey"`
	UserID uint64       `gorm:"column:user_id;index"`
	PageID uint64       `gorm:"column:page_id"`
	PostID uint64       `gorm:"column:post_id;index"`
	Text   string       `gorm:"column:text;type:text"`
	Time   legacy.Epoch `gorm:"column:time;size:50"`
	Author *User        `gorm:"foreignKey:UserID;references:UserID"`
}

// TableName specifies the database table name for the Comment model.
func (Comment) TableName() string {
	return "Wo_Comments"
}

// BeforeCreate stamps the comment.
func (c *Comment) BeforeCreate(*gorm.DB) error {
	c.Time = legacy.NewEpoch(c.Time.Raw())

	return nil
}
