package pluginiface

import (
	"context"
	"io"
)

// Lifecycle is the in-process part of an installable plugin. Hooks write
// human readable progress to out; it is returned to the installer as the
// toggle log.
//
//go:generate mockery --name=Lifecycle --dir=. --output=./mocks --filename=lifecycle_mock.go --case=underscore --with-expecter
type Lifecycle interface {
	Code() string
	// Install runs once, the first time the plugin is enabled.
	Install(ctx context.Context, out io.Writer) error
	Enable(ctx context.Context, out io.Writer) error
	Disable(ctx context.Context, out io.Writer) error
}
