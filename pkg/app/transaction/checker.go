package transaction

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
)

// Checker guards install-time operations with a file-backed expiry
// timestamp. The file holds epoch seconds as text.
//
//go:generate mockery --name=Checker --dir=. --output=./mocks --filename=checker_mock.go --case=underscore --with-expecter
type Checker interface {
	IsValid(ctx context.Context) bool
	Remove(ctx context.Context) error
	Issue(ctx context.Context, ttl time.Duration) (time.Time, error)
	Path() string
}

type Option func(*checker)

func WithClock(now func() time.Time) Option {
	return func(c *checker) {
		c.now = now
	}
}

type checker struct {
	fs     afero.Fs
	path   string
	now    func() time.Time
	logger *logrus.Logger
}

func NewChecker(logger *logrus.Logger, fs afero.Fs, projectDir, file string, opts ...Option) Checker {
	c := &checker{
		fs:     fs,
		path:   filepath.Join(projectDir, file),
		now:    time.Now,
		logger: logger,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *checker) Path() string {
	return c.path
}

func (c *checker) IsValid(_ context.Context) bool {
	content, err := afero.ReadFile(c.fs, c.path)
	if err != nil {
		if !os.IsNotExist(err) {
			c.logger.WithError(err).WithField("path", c.path).Warn("failed to read transaction file")
		}
		return false
	}

	expiresAt, err := strconv.ParseInt(strings.TrimSpace(string(content)), 10, 64)
	if err != nil {
		c.logger.WithField("path", c.path).Warn("transaction file does not hold a timestamp")
		return false
	}

	return expiresAt >= c.now().Unix()
}

func (c *checker) Remove(_ context.Context) error {
	exists, err := afero.Exists(c.fs, c.path)
	if err != nil {
		return fmt.Errorf("failed to stat transaction file: %w", err)
	}
	if !exists {
		return nil
	}
	if err := c.fs.Remove(c.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove transaction file: %w", err)
	}
	return nil
}

func (c *checker) Issue(_ context.Context, ttl time.Duration) (time.Time, error) {
	expiresAt := c.now().Add(ttl).Truncate(time.Second)
	if err := c.fs.MkdirAll(filepath.Dir(c.path), 0750); err != nil {
		return time.Time{}, fmt.Errorf("failed to create transaction directory: %w", err)
	}
	content := strconv.FormatInt(expiresAt.Unix(), 10)
	if err := afero.WriteFile(c.fs, c.path, []byte(content), 0600); err != nil {
		return time.Time{}, fmt.Errorf("failed to write transaction file: %w", err)
	}
	return expiresAt, nil
}
