package models

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/GoWoWonder-Admin/GoWoWonder-Admin/internal/legacy"
)

func TestReportType(t *testing.T) {
	type testCase struct {
		name   string
		report Report
		want   ReportType
		target uint64
	}

	testCases := []testCase{
		{name: "post", report: Report{PostID: 7}, want: ReportPost, target: 7},
		{name: "profile", report: Report{ProfileID: 3}, want: ReportProfile, target: 3},
		{name: "page", report: Report{PageID: 4}, want: ReportPage, target: 4},
		{name: "group", report: Report{GroupID: 5}, want: ReportGroup, target: 5},
		{name: "comment", report: Report{CommentID: 6}, want: ReportComment, target: 6},
		{name: "nothing set", report: Report{}, want: ReportUnknown, target: 0},
		// more than one id set: first match wins
		{name: "post beats comment", report: Report{PostID: 1, CommentID: 2}, want: ReportPost, target: 1},
		{name: "profile beats page", report: Report{ProfileID: 1, PageID: 2}, want: ReportProfile, target: 1},
		{name: "page beats group", report: Report{PageID: 1, GroupID: 2}, want: ReportPage, target: 1},
		{name: "group beats comment", report: Report{GroupID: 8, CommentID: 9}, want: ReportGroup, target: 8},
		{
			name:   "all set",
			report: Report{PostID: 1, ProfileID: 2, PageID: 3, GroupID: 4, CommentID: 5},
			want:   ReportPost,
			target: 1,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.report.Type())
			assert.Equal(t, tc.target, tc.report.TargetID())
		})
	}
}

func TestReportAmbiguous(t *testing.T) {
	testCases := map[string]struct {
		report Report
		want   bool
	}{
		"none":             {report: Report{}, want: false},
		"single":           {report: Report{GroupID: 3}, want: false},
		"post and profile": {report: Report{PostID: 5, ProfileID: 9}, want: true},
		"page and comment": {report: Report{PageID: 1, CommentID: 1}, want: true},
	}

	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.report.Ambiguous())
		})
	}
}

func TestReportTypeColumn(t *testing.T) {
	for _, rt := range ReportTypes {
		assert.NotEmpty(t, rt.Column(), rt)
		assert.NotEqual(t, legacy.Unknown, ReportTypeLabels.Label(rt))
	}

	assert.Empty(t, ReportUnknown.Column())
	assert.Equal(t, legacy.Unknown, ReportTypeLabels.Label(ReportUnknown))
}

func TestReportReasonDisplay(t *testing.T) {
	testCases := map[legacy.ReportReason]string{
		legacy.ReasonSpam: "Spam",
		legacy.ReasonHate: "Hate speech",
		"r_made_up":       "Made up",
		"r_":              legacy.Unknown,
		"":                legacy.Unknown,
	}

	for reason, want := range testCases {
		r := Report{Reason: reason}
		assert.Equal(t, want, r.ReasonDisplay(), reason)
	}
}
