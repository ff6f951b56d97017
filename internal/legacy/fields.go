package legacy

import "strings"

// ActiveState is the Wo_Users.active code.
type ActiveState string

// User account states.
const (
	UserInactive ActiveState = "0"
	UserActive   ActiveState = "1"
	UserBanned   ActiveState = "2"
)

// UserActivity labels Wo_Users.active.
var UserActivity = NewEnum(Unknown, map[ActiveState]string{
	UserInactive: "Inactive",
	UserActive:   "Active",
	UserBanned:   "Banned",
})

// Verification labels the verified flag of users and pages.
var Verification = NewEnum(Unknown, map[Flag]string{
	FlagOff: "Not verified",
	FlagOn:  "Verified",
})

// GroupPrivacy is the Wo_Groups.privacy code.
type GroupPrivacy string

// Group privacy codes.
const (
	GroupPublic  GroupPrivacy = "0"
	GroupPrivate GroupPrivacy = "1"
)

// GroupPrivacies labels Wo_Groups.privacy.
var GroupPrivacies = NewEnum(Unknown, map[GroupPrivacy]string{
	GroupPublic:  "Public",
	GroupPrivate: "Private",
})

// PostPrivacy is the Wo_Posts.postPrivacy code.
type PostPrivacy string

// Post audiences.
const (
	PostEveryone  PostPrivacy = "0"
	PostFollowing PostPrivacy = "1"
	PostFollowers PostPrivacy = "2"
	PostOnlyMe    PostPrivacy = "3"
	PostAnonymous PostPrivacy = "4"
)

// PostPrivacies labels Wo_Posts.postPrivacy.
var PostPrivacies = NewEnum(Unknown, map[PostPrivacy]string{
	PostEveryone:  "Everyone",
	PostFollowing: "People I follow",
	PostFollowers: "People follow me",
	PostOnlyMe:    "Only me",
	PostAnonymous: "Anonymous",
})

// ReportReason is the Wo_Reports.reason code.
type ReportReason string

// Report reasons offered by the report dialog.
const (
	ReasonSpam       ReportReason = "r_spam"
	ReasonViolence   ReportReason = "r_violence"
	ReasonHarassment ReportReason = "r_harassment"
	ReasonHate       ReportReason = "r_hate"
	ReasonTerrorism  ReportReason = "r_terrorism"
	ReasonNudity     ReportReason = "r_nudity"
	ReasonFake       ReportReason = "r_fake"
	ReasonOther      ReportReason = "r_other"
)

const reportReasonPrefix = "r_"

// ReportReasons labels Wo_Reports.reason. Codes outside the table are humanized:
// "r_made_up" becomes "Made up".
var ReportReasons = NewDerivedEnum(map[ReportReason]string{
	ReasonSpam:       "Spam",
	ReasonViolence:   "Violence",
	ReasonHarassment: "Harassment",
	ReasonHate:       "Hate speech",
	ReasonTerrorism:  "Terrorism",
	ReasonNudity:     "Nudity",
	ReasonFake:       "False information",
	ReasonOther:      "Other",
}, func(code ReportReason) string {
	label := Humanize(strings.TrimPrefix(string(code), reportReasonPrefix))
	if label == "" {
		return Unknown
	}

	return label
})
