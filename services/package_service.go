package services

import (
	"errors"
	"strings"

	"github.com/earnkit/rewards_backend/database"
	"github.com/earnkit/rewards_backend/models"
	"github.com/earnkit/rewards_backend/utils"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// VerifyPackage checks the allow-list trust path: the package must be
// registered and marked active. Failures carry the distinct codes the
// boundary maps to 403.
func VerifyPackage(packageName string) error {
	var pkg models.AllowedPackage
	err := database.DB.First(&pkg, "key = ?", models.PackageKey(packageName)).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.Forbidden("PACKAGE_NOT_FOUND", "Package name not found in allowed packages")
		}
		return err
	}
	if !pkg.IsActive {
		return utils.Forbidden("PACKAGE_INACTIVE", "Package is not active")
	}
	return nil
}

// IsPackageActive reports the allow-list state without an error taxonomy;
// absent counts as inactive.
func IsPackageActive(packageName string) (bool, error) {
	err := VerifyPackage(packageName)
	if err == nil {
		return true, nil
	}
	var apiErr *utils.APIError
	if errors.As(err, &apiErr) {
		return false, nil
	}
	return false, err
}

// SetPackage upserts an allow-list entry.
func SetPackage(packageName string, isActive bool) (*models.AllowedPackage, error) {
	if !strings.Contains(packageName, ".") || len(packageName) < 3 {
		return nil, utils.ValidationError("INVALID_PACKAGE_NAME", "Package name must be in format com.example.app")
	}

	pkg := models.AllowedPackage{
		Key:                 models.PackageKey(packageName),
		OriginalPackageName: packageName,
		IsActive:            isActive,
	}
	// Save skips zero-value struct fields on update, which would make
	// deactivation a no-op; an explicit conflict clause updates IsActive
	// unconditionally.
	err := database.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"original_package_name", "is_active", "last_updated"}),
	}).Create(&pkg).Error
	if err != nil {
		return nil, err
	}

	state := "deactivated"
	if isActive {
		state = "activated"
	}
	log.Infof("package %s: %s (stored as %s)", state, packageName, pkg.Key)
	return &pkg, nil
}

// RemovePackage deletes an allow-list entry; removing an unknown package is
// a no-op, matching the upstream behavior.
func RemovePackage(packageName string) error {
	if packageName == "" {
		return utils.ValidationError("MISSING_PACKAGE_NAME", "packageName is required")
	}
	key := models.PackageKey(packageName)
	if err := database.DB.Delete(&models.AllowedPackage{}, "key = ?", key).Error; err != nil {
		return err
	}
	log.Infof("package removed: %s (was stored as %s)", packageName, key)
	return nil
}

// ListPackages returns every allow-list entry keyed by its sanitized key.
func ListPackages() (map[string]models.AllowedPackage, error) {
	var packages []models.AllowedPackage
	if err := database.DB.Find(&packages).Error; err != nil {
		return nil, err
	}
	byKey := make(map[string]models.AllowedPackage, len(packages))
	for _, pkg := range packages {
		byKey[pkg.Key] = pkg
	}
	return byKey, nil
}
