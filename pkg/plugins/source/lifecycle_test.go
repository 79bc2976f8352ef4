package source_test

import (
	"bytes"
	"context"
	"testing"

	domainPlugin "github.com/NeuralTrust/InstallGate/pkg/domain/plugin"
	"github.com/NeuralTrust/InstallGate/pkg/plugins/source"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const projectDir = "/srv/shop"

func TestDir(t *testing.T) {
	assert.Equal(t, "/srv/shop/app/Plugin/Coupon", source.Dir(projectDir, &domainPlugin.Plugin{Code: "Coupon"}))
	assert.Equal(t, "/srv/shop/vendor/coupon", source.Dir(projectDir, &domainPlugin.Plugin{Code: "Coupon", Source: "vendor/coupon"}))
	assert.Equal(t, "/opt/coupon", source.Dir(projectDir, &domainPlugin.Plugin{Code: "Coupon", Source: "/opt/coupon/"}))
}

func TestLifecycle_InstallEnableDisable(t *testing.T) {
	fs := afero.NewMemMapFs()
	dir := "/srv/shop/app/Plugin/Coupon"
	require.NoError(t, fs.MkdirAll(dir, 0o755))
	l := source.NewLifecycle(fs, projectDir, &domainPlugin.Plugin{Code: "Coupon", Name: "Coupon Plugin", Version: "4.2.0"})
	ctx := context.Background()
	out := &bytes.Buffer{}

	require.NoError(t, l.Install(ctx, out))
	version, err := afero.ReadFile(fs, dir+"/"+source.InstalledMarker)
	require.NoError(t, err)
	assert.Equal(t, "4.2.0", string(version))

	require.NoError(t, l.Disable(ctx, out))
	disabled, err := afero.Exists(fs, dir+"/"+source.DisabledMarker)
	require.NoError(t, err)
	assert.True(t, disabled)

	require.NoError(t, l.Enable(ctx, out))
	disabled, err = afero.Exists(fs, dir+"/"+source.DisabledMarker)
	require.NoError(t, err)
	assert.False(t, disabled)

	log := out.String()
	assert.Contains(t, log, "Installing Coupon Plugin 4.2.0 from "+dir)
	assert.Contains(t, log, "Disabled Coupon Plugin")
	assert.Contains(t, log, "Enabled Coupon Plugin")
}

func TestLifecycle_EnableWithoutSourceFails(t *testing.T) {
	l := source.NewLifecycle(afero.NewMemMapFs(), projectDir, &domainPlugin.Plugin{Code: "Coupon"})

	err := l.Enable(context.Background(), &bytes.Buffer{})
	assert.ErrorIs(t, err, source.ErrSourceNotFound)
	assert.ErrorIs(t, l.Install(context.Background(), &bytes.Buffer{}), source.ErrSourceNotFound)
}

func TestLifecycle_DisableWithoutSourceSucceeds(t *testing.T) {
	l := source.NewLifecycle(afero.NewMemMapFs(), projectDir, &domainPlugin.Plugin{Code: "Coupon"})
	out := &bytes.Buffer{}

	require.NoError(t, l.Disable(context.Background(), out))
	assert.Contains(t, out.String(), "nothing to disable")
}

func TestNewFactory_UsesStoredRecord(t *testing.T) {
	factory := source.NewFactory(afero.NewMemMapFs(), projectDir)
	l := factory(&domainPlugin.Plugin{Code: "Stripe"})
	require.NotNil(t, l)
	assert.Equal(t, "Stripe", l.Code())
}
