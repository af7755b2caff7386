package resolve

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValidateUserRemappingsRejectsNpmContext(t *testing.T) {
	fs, loc := baseFixture()
	_, err := validateUserRemappings(context.Background(), []string{"npm/foo:contracts/=local/x/"}, projectRoot, fs, loc)
	require.Error(t, err)
	require.Equal(t, InvalidUserRemapping, err.(*ResolveError).Kind)
}

func TestValidateUserRemappingsRejectsMalformedNpmTarget(t *testing.T) {
	fs, loc := baseFixture()
	_, err := validateUserRemappings(context.Background(), []string{"contracts/=npm/dep@1.2/"}, projectRoot, fs, loc)
	require.Error(t, err)
	require.Equal(t, InvalidNpmTarget, err.(*ResolveError).Kind)
}

func TestValidateUserRemappingsRejectsUninstalledPackage(t *testing.T) {
	fs, loc := baseFixture()
	_, err := validateUserRemappings(context.Background(), []string{"contracts/=npm/ghost@1.0.0/"}, projectRoot, fs, loc)
	require.Error(t, err)
	require.Equal(t, PackageNotInstalled, err.(*ResolveError).Kind)
}

func TestValidateUserRemappingsRejectsRemapIntoProject(t *testing.T) {
	fs, loc := baseFixture()
	_, err := validateUserRemappings(context.Background(), []string{"contracts/=npm/proj@1.0.0/"}, projectRoot, fs, loc)
	require.Error(t, err)
	require.Equal(t, RemapIntoProject, err.(*ResolveError).Kind)
}

func TestValidateUserRemappingsRejectsMonorepoVersionMismatch(t *testing.T) {
	fs, loc := baseFixture()
	_, err := validateUserRemappings(context.Background(), []string{"contracts/=npm/sib@9.9.9/"}, projectRoot, fs, loc)
	require.Error(t, err)
	require.Equal(t, MonorepoVersionMismatch, err.(*ResolveError).Kind)
}

func TestValidateUserRemappingsAcceptsMonorepoLocal(t *testing.T) {
	fs, loc := baseFixture()
	ums, err := validateUserRemappings(context.Background(), []string{"contracts/=npm/sib@local/"}, projectRoot, fs, loc)
	require.NoError(t, err)
	require.Len(t, ums, 1)
	require.Equal(t, "npm/sib@local/", ums[0].TargetPackage.RootSourceName)
}

func TestValidateUserRemappingsRejectsVersionMismatch(t *testing.T) {
	fs, loc := baseFixture()
	_, err := validateUserRemappings(context.Background(), []string{"contracts/=npm/dep@9.9.9/"}, projectRoot, fs, loc)
	require.Error(t, err)
	require.Equal(t, PackageVersionMismatch, err.(*ResolveError).Kind)
}

func TestValidateUserRemappingsAcceptsLocalTarget(t *testing.T) {
	fs, loc := baseFixture()
	ums, err := validateUserRemappings(context.Background(), []string{"contracts/=other/"}, projectRoot, fs, loc)
	require.NoError(t, err)
	require.Len(t, ums, 1)
	require.Nil(t, ums[0].TargetPackage)
}
