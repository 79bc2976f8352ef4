package maintenance

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/NeuralTrust/InstallGate/pkg/infra/terminate"
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
)

const (
	AutoMaintenance       = "auto_maintenance"
	AutoMaintenanceUpdate = "auto_maintenance_update"
	ManualMaintenance     = "manual"
)

// Service toggles the site-wide maintenance flag. The flag is a file whose
// presence means maintenance is on and whose content is the mode that set it.
//
//go:generate mockery --name=Service --dir=. --output=./mocks --filename=service_mock.go --case=underscore --with-expecter
type Service interface {
	SwitchMaintenance(ctx context.Context, enable bool, mode string) error
	EnableMaintenance(mode string, force bool) error
	// DisableMaintenance leaves maintenance on until the current request
	// finishes when ctx carries a terminate queue, and disables it right
	// away otherwise.
	DisableMaintenance(ctx context.Context, mode string) error
	DisableMaintenanceNow(mode string, force bool) error
	IsMaintenanceMode() bool
	CurrentMode() (string, error)
}

type service struct {
	logger *logrus.Logger
	fs     afero.Fs
	path   string
}

func NewService(logger *logrus.Logger, fs afero.Fs, projectDir, file string) Service {
	return &service{
		logger: logger,
		fs:     fs,
		path:   filepath.Join(projectDir, file),
	}
}

func (s *service) SwitchMaintenance(_ context.Context, enable bool, mode string) error {
	if enable {
		return s.EnableMaintenance(mode, false)
	}
	return s.DisableMaintenanceNow(mode, false)
}

func (s *service) EnableMaintenance(mode string, force bool) error {
	if !force && s.IsMaintenanceMode() {
		return nil
	}
	if err := s.fs.MkdirAll(filepath.Dir(s.path), 0750); err != nil {
		return fmt.Errorf("failed to create maintenance directory: %w", err)
	}
	if err := afero.WriteFile(s.fs, s.path, []byte(mode), 0600); err != nil {
		return fmt.Errorf("failed to write maintenance file: %w", err)
	}
	s.logger.WithField("mode", mode).Info("maintenance mode enabled")
	return nil
}

func (s *service) DisableMaintenance(ctx context.Context, mode string) error {
	queue, ok := terminate.FromContext(ctx)
	if !ok {
		return s.DisableMaintenanceNow(mode, false)
	}
	queue.Defer(func() {
		if err := s.DisableMaintenanceNow(mode, false); err != nil {
			s.logger.WithError(err).WithField("mode", mode).Error("failed to disable maintenance after request")
		}
	})
	return nil
}

func (s *service) DisableMaintenanceNow(mode string, force bool) error {
	if !s.IsMaintenanceMode() {
		return nil
	}
	if !force {
		current, err := s.CurrentMode()
		if err != nil {
			return err
		}
		if current != mode {
			return nil
		}
	}
	if err := s.fs.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove maintenance file: %w", err)
	}
	s.logger.WithField("mode", mode).Info("maintenance mode disabled")
	return nil
}

func (s *service) IsMaintenanceMode() bool {
	exists, err := afero.Exists(s.fs, s.path)
	return err == nil && exists
}

func (s *service) CurrentMode() (string, error) {
	content, err := afero.ReadFile(s.fs, s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", fmt.Errorf("failed to read maintenance file: %w", err)
	}
	return string(content), nil
}
