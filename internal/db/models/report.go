package models

import (
	"gorm.io/gorm"

	"github.com/GoWoWonder-Admin/GoWoWonder-Admin/internal/legacy"
)

// ReportType names the kind of content a report targets.
type ReportType string

// Report targets in classification priority order.
const (
	ReportPost    ReportType = "post"
	ReportProfile ReportType = "profile"
	ReportPage    ReportType = "page"
	ReportGroup   ReportType = "group"
	ReportComment ReportType = "comment"
	ReportUnknown ReportType = "unknown"
)

// ReportTypes lists the classifiable report targets in priority order.
var ReportTypes = []ReportType{ReportPost, ReportProfile, ReportPage, ReportGroup, ReportComment}

// ReportTypeLabels labels ReportType.
var ReportTypeLabels = legacy.NewEnum(legacy.Unknown, map[ReportType]string{
	ReportPost:    "Post",
	ReportProfile: "Profile",
	ReportPage:    "Page",
	ReportGroup:   "Group",
	ReportComment: "Comment",
})

// Column returns the Wo_Reports column holding the target id of t, or "" for unknown.
func (t ReportType) Column() string {
	switch t {
	case ReportPost:
		return "post_id"
	case ReportProfile:
		return "profile_id"
	case ReportPage:
		return "page_id"
	case ReportGroup:
		return "group_id"
	case ReportComment:
		return "comment_id"
	default:
		return ""
	}
}

// Report is a moderation report filed by a user (Wo_Reports).
// Exactly one target column is expected to be non-zero.
type Report struct {
	ID        uint64              `gorm:"column:id;primaryKey"`
	PostID    uint64              `gorm:"column:post_id;index"`
	CommentID uint64              `gorm:"column:comment_id"`
	ProfileID uint64              `gorm:"column:profile_id"`
	PageID    uint64              `gorm:"column:page_id"`
	GroupID   uint64              `gorm:"column:group_id"`
	UserID    uint64              `gorm:"column:user_id"`
	Reason    legacy.ReportReason `gorm:"column:reason;size:100"`
	Text      string              `gorm:"column:text;type:text"`
	Seen      legacy.Flag         `gorm:"column:seen;size:1"`
	Time      legacy.Epoch        `gorm:"column:time;size:50"`

	Reporter *User    `gorm:"foreignKey:UserID;references:UserID"`
	Post     *Post    `gorm:"foreignKey:PostID;references:ID"`
	Profile  *User    `gorm:"foreignKey:ProfileID;references:UserID"`
	Page     *Page    `gorm:"foreignKey:PageID;references:PageID"`
	Group    *Group   `gorm:"foreignKey:GroupID;references:ID"`
	Comment  *Comment `gorm:"foreignKey:CommentID;references:ID"`
}

// TableName specifies the database table name for the Report model.
func (Report) TableName() string {
	return "Wo_Reports"
}

// BeforeCreate stamps the report and marks it unseen.
func (r *Report) BeforeCreate(*gorm.DB) error {
	r.Time = legacy.NewEpoch(r.Time.Raw())
	r.Seen = legacy.NewFlag(r.Seen.Raw())

	return nil
}

// Type classifies the report by the first non-zero target id in the order
// post, profile, page, group, comment.
func (r *Report) Type() ReportType {
	switch {
	case r.PostID > 0:
		return ReportPost
	case r.ProfileID > 0:
		return ReportProfile
	case r.PageID > 0:
		return ReportPage
	case r.GroupID > 0:
		return ReportGroup
	case r.CommentID > 0:
		return ReportComment
	default:
		return ReportUnknown
	}
}

// TargetID is the id of the reported content, 0 for unknown reports.
func (r *Report) TargetID() uint64 {
	switch r.Type() {
	case ReportPost:
		return r.PostID
	case ReportProfile:
		return r.ProfileID
	case ReportPage:
		return r.PageID
	case ReportGroup:
		return r.GroupID
	case ReportComment:
		return r.CommentID
	default:
		return 0
	}
}

// Ambiguous reports whether more than one target id is set. Type still
// resolves such rows by priority; the flag only makes them visible.
func (r *Report) Ambiguous() bool {
	n := 0

	for _, id := range []uint64{r.PostID, r.ProfileID, r.PageID, r.GroupID, r.CommentID} {
		if id > 0 {
			n++
		}
	}

	return n > 1
}

// ReasonDisplay is the label of the reason code.
func (r *Report) ReasonDisplay() string {
	return legacy.ReportReasons.Label(r.Reason)
}
