package domain

import (
	"errors"
	"fmt"
)

var ErrInvalidCode = errors.New("invalid plugin code")

type notFoundError struct {
	EntityType string
	Key        string
}

func (e *notFoundError) Error() string {
	return fmt.Sprintf("%s '%s' not found", e.EntityType, e.Key)
}

func NewNotFoundError(entityType string, key string) error {
	return &notFoundError{
		EntityType: entityType,
		Key:        key,
	}
}

func IsNotFoundError(err error) bool {
	if err == nil {
		return false
	}
	var notFoundError *notFoundError
	return errors.As(err, &notFoundError)
}

// PluginError wraps a failure raised while a plugin lifecycle hook runs.
type PluginError struct {
	Code   string
	Action string
	Err    error
}

func (e *PluginError) Error() string {
	return fmt.Sprintf("plugin %s: %s failed: %v", e.Code, e.Action, e.Err)
}

func (e *PluginError) Unwrap() error {
	return e.Err
}

func NewPluginError(code, action string, err error) error {
	return &PluginError{Code: code, Action: action, Err: err}
}
