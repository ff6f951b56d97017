// Package main provides the entry point of go-wowonder-admin, the back-office
// of a WoWonder social network. It serves a JSON admin API with fiber, keeps
// the site settings in the Wo_Config key/value table and reads the legacy
// Wo_* tables through gorm.
package main
