package auth

// Permission constants define the available permissions of the back-office.
const (
	// PermDashboardView allows viewing the dashboard counters.
	PermDashboardView = "dashboard.view"

	// PermSettingsView allows reading the site and marketplace settings.
	PermSettingsView = "settings.view"
	// PermSettingsUpdate allows changing the site and marketplace settings.
	PermSettingsUpdate = "settings.update"

	// PermReportsView allows reading the moderation queue.
	PermReportsView = "reports.view"
	// PermReportsManage allows marking reports seen and deleting them.
	PermReportsManage = "reports.manage"

	// PermLanguagesManage allows adding interface languages.
	PermLanguagesManage = "languages.manage"

	// PermNotificationsSend allows sending mass notifications.
	PermNotificationsSend = "notifications.send"

	// PermAdminsManage allows managing back-office accounts.
	PermAdminsManage = "admins.manage"
)

// PermissionInfo describes a permission row.
type PermissionInfo struct {
	Name        string
	Resource    string
	Description string
}

// AllPermissions lists every permission the back-office checks.
func AllPermissions() []PermissionInfo {
	return []PermissionInfo{
		{Name: PermDashboardView, Resource: "dashboard", Description: "View the dashboard"},
		{Name: PermSettingsView, Resource: "settings", Description: "View site and marketplace settings"},
		{Name: PermSettingsUpdate, Resource: "settings", Description: "Change site and marketplace settings"},
		{Name: PermReportsView, Resource: "reports", Description: "View reported content"},
		{Name: PermReportsManage, Resource: "reports", Description: "Mark reports seen and delete them"},
		{Name: PermLanguagesManage, Resource: "languages", Description: "Add interface languages"},
		{Name: PermNotificationsSend, Resource: "notifications", Description: "Send notifications to all users"},
		{Name: PermAdminsManage, Resource: "admins", Description: "Create and disable admin accounts"},
	}
}
