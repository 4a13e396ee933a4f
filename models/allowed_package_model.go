package models

import "strings"

// AllowedPackage is a partner application registered as an alternative
// trust path to bearer-token authentication. Keyed by the sanitized
// package name because path segments in the upstream store forbid dots.
type AllowedPackage struct {
	Key                 string `gorm:"size:255;primary_key" json:"-"`
	OriginalPackageName string `gorm:"size:255;not null" json:"originalPackageName"`
	IsActive            bool   `gorm:"not null" json:"isActive"`
	AddedAt             int64  `gorm:"autoCreateTime:milli" json:"addedAt"`
	LastUpdated         int64  `gorm:"autoUpdateTime:milli" json:"lastUpdated"`
}

// PackageKey sanitizes a package identifier for use as a storage key.
func PackageKey(packageName string) string {
	return strings.ReplaceAll(packageName, ".", "_")
}
