// Package errors provides sentinel errors and custom error types for the omt application.
// Use errors.Is() and errors.As() to check for specific error types.
package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for common conditions
var (
	// ErrRepositoryExists indicates that a repository URL is already configured
	ErrRepositoryExists = errors.New("repository already exists")

	// ErrRepositoryNotFound indicates that a repository URL is not configured
	ErrRepositoryNotFound = errors.New("repository not found")

	// ErrSettingNotFound indicates that a setting key is not present in the configuration
	ErrSettingNotFound = errors.New("setting not found")
)

// RepositoryExistsError represents an error when a repository URL is already configured
type RepositoryExistsError struct {
	URL string
}

func (e *RepositoryExistsError) Error() string {
	return fmt.Sprintf("repository %s is already configured", e.URL)
}

// Is returns true if the target error is ErrRepositoryExists
func (e *RepositoryExistsError) Is(target error) bool {
	return target == ErrRepositoryExists
}

// NewRepositoryExistsError creates a new RepositoryExistsError
func NewRepositoryExistsError(url string) *RepositoryExistsError {
	return &RepositoryExistsError{URL: url}
}

// RepositoryNotFoundError represents an error when a repository URL is not configured
type RepositoryNotFoundError struct {
	URL string
}

func (e *RepositoryNotFoundError) Error() string {
	return fmt.Sprintf("repository %s is not configured", e.URL)
}

// Is returns true if the target error is ErrRepositoryNotFound
func (e *RepositoryNotFoundError) Is(target error) bool {
	return target == ErrRepositoryNotFound
}

// NewRepositoryNotFoundError creates a new RepositoryNotFoundError
func NewRepositoryNotFoundError(url string) *RepositoryNotFoundError {
	return &RepositoryNotFoundError{URL: url}
}

// SettingNotFoundError represents an error when a setting key is not present
type SettingNotFoundError struct {
	Key string
}

func (e *SettingNotFoundError) Error() string {
	return fmt.Sprintf("setting %s is not set", e.Key)
}

// Is returns true if the target error is ErrSettingNotFound
func (e *SettingNotFoundError) Is(target error) bool {
	return target == ErrSettingNotFound
}

// NewSettingNotFoundError creates a new SettingNotFoundError
func NewSettingNotFoundError(key string) *SettingNotFoundError {
	return &SettingNotFoundError{Key: key}
}

// WriteError represents a failure to persist the configuration file
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("failed to write configuration to %s: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error {
	return e.Err
}

// NewWriteError creates a new WriteError
func NewWriteError(path string, err error) *WriteError {
	return &WriteError{Path: path, Err: err}
}
