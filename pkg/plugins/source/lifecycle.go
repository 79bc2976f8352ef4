package source

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/NeuralTrust/InstallGate/pkg/common"
	domainPlugin "github.com/NeuralTrust/InstallGate/pkg/domain/plugin"
	"github.com/NeuralTrust/InstallGate/pkg/infra/pluginiface"
	"github.com/NeuralTrust/InstallGate/pkg/plugins"
	"github.com/spf13/afero"
)

const (
	InstalledMarker = ".installed"
	DisabledMarker  = ".disabled"
)

var ErrSourceNotFound = errors.New("plugin source not found")

// Lifecycle drives a plugin that lives as a directory under the project.
// Install stamps the directory with the installed version, Disable drops a
// marker file and Enable removes it.
type Lifecycle struct {
	fs      afero.Fs
	dir     string
	code    string
	name    string
	version string
}

// NewFactory resolves lifecycles from the stored plugin record.
func NewFactory(fs afero.Fs, projectDir string) plugins.Factory {
	return func(p *domainPlugin.Plugin) pluginiface.Lifecycle {
		return NewLifecycle(fs, projectDir, p)
	}
}

func NewLifecycle(fs afero.Fs, projectDir string, p *domainPlugin.Plugin) *Lifecycle {
	name := p.Name
	if name == "" {
		name = p.Code
	}
	return &Lifecycle{
		fs:      fs,
		dir:     Dir(projectDir, p),
		code:    p.Code,
		name:    name,
		version: p.Version,
	}
}

// Dir is the plugin source directory. An empty source means
// <project>/app/Plugin/<code>; relative sources are joined to the project.
func Dir(projectDir string, p *domainPlugin.Plugin) string {
	switch {
	case p.Source == "":
		return filepath.Join(projectDir, common.PluginDir, p.Code)
	case filepath.IsAbs(p.Source):
		return filepath.Clean(p.Source)
	default:
		return filepath.Join(projectDir, p.Source)
	}
}

func (l *Lifecycle) Code() string {
	return l.code
}

func (l *Lifecycle) Install(_ context.Context, out io.Writer) error {
	if err := l.requireDir(); err != nil {
		return err
	}
	fmt.Fprintf(out, "Installing %s %s from %s\n", l.name, l.version, l.dir)
	if err := afero.WriteFile(l.fs, filepath.Join(l.dir, InstalledMarker), []byte(l.version), 0o644); err != nil {
		return fmt.Errorf("failed to mark %s installed: %w", l.code, err)
	}
	fmt.Fprintf(out, "Installed %s\n", l.name)
	return nil
}

func (l *Lifecycle) Enable(_ context.Context, out io.Writer) error {
	if err := l.requireDir(); err != nil {
		return err
	}
	fmt.Fprintf(out, "Enabling %s\n", l.name)
	if err := l.fs.Remove(filepath.Join(l.dir, DisabledMarker)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to enable %s: %w", l.code, err)
	}
	fmt.Fprintf(out, "Enabled %s\n", l.name)
	return nil
}

// Disable succeeds when the source directory is gone so a removed plugin can
// still be switched off.
func (l *Lifecycle) Disable(_ context.Context, out io.Writer) error {
	exists, err := afero.DirExists(l.fs, l.dir)
	if err != nil {
		return fmt.Errorf("failed to stat %s: %w", l.dir, err)
	}
	if !exists {
		fmt.Fprintf(out, "Source of %s not found at %s, nothing to disable\n", l.name, l.dir)
		return nil
	}
	fmt.Fprintf(out, "Disabling %s\n", l.name)
	stamp := []byte(time.Now().UTC().Format(time.RFC3339))
	if err := afero.WriteFile(l.fs, filepath.Join(l.dir, DisabledMarker), stamp, 0o644); err != nil {
		return fmt.Errorf("failed to disable %s: %w", l.code, err)
	}
	fmt.Fprintf(out, "Disabled %s\n", l.name)
	return nil
}

func (l *Lifecycle) requireDir() error {
	exists, err := afero.DirExists(l.fs, l.dir)
	if err != nil {
		return fmt.Errorf("failed to stat %s: %w", l.dir, err)
	}
	if !exists {
		return fmt.Errorf("%w: %s", ErrSourceNotFound, l.dir)
	}
	return nil
}
