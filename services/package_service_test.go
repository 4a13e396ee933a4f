package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetPackageValidatesFormat(t *testing.T) {
	setupTestDB(t)

	_, err := SetPackage("nodots", true)
	assert.Equal(t, "INVALID_PACKAGE_NAME", apiCode(t, err))

	_, err = SetPackage(".a", true)
	assert.Equal(t, "INVALID_PACKAGE_NAME", apiCode(t, err))

	pkg, err := SetPackage("com.example.app", true)
	require.NoError(t, err)
	assert.Equal(t, "com_example_app", pkg.Key)
	assert.Equal(t, "com.example.app", pkg.OriginalPackageName)
}

func TestVerifyPackageTrustStates(t *testing.T) {
	setupTestDB(t)

	err := VerifyPackage("com.example.app")
	assert.Equal(t, "PACKAGE_NOT_FOUND", apiCode(t, err))

	_, err = SetPackage("com.example.app", false)
	require.NoError(t, err)
	err = VerifyPackage("com.example.app")
	assert.Equal(t, "PACKAGE_INACTIVE", apiCode(t, err))

	_, err = SetPackage("com.example.app", true)
	require.NoError(t, err)
	require.NoError(t, VerifyPackage("com.example.app"))

	active, err := IsPackageActive("com.example.app")
	require.NoError(t, err)
	assert.True(t, active)

	active, err = IsPackageActive("com.unknown.app")
	require.NoError(t, err)
	assert.False(t, active)
}

func TestRemovePackage(t *testing.T) {
	setupTestDB(t)

	_, err := SetPackage("com.example.app", true)
	require.NoError(t, err)

	require.NoError(t, RemovePackage("com.example.app"))
	err = VerifyPackage("com.example.app")
	assert.Equal(t, "PACKAGE_NOT_FOUND", apiCode(t, err))

	// Removing an unknown package is a no-op.
	require.NoError(t, RemovePackage("com.gone.app"))

	assert.Equal(t, "MISSING_PACKAGE_NAME", apiCode(t, RemovePackage("")))
}

func TestListPackagesKeyedBySanitizedName(t *testing.T) {
	setupTestDB(t)

	_, err := SetPackage("com.example.app", true)
	require.NoError(t, err)
	_, err = SetPackage("org.other.game", false)
	require.NoError(t, err)

	packages, err := ListPackages()
	require.NoError(t, err)
	require.Len(t, packages, 2)
	assert.True(t, packages["com_example_app"].IsActive)
	assert.False(t, packages["org_other_game"].IsActive)
}
