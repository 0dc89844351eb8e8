package config

import "errors"

var (
	// ErrResourceNotFound is returned by a ResourceLoader that has no resource of the requested name
	ErrResourceNotFound = errors.New("configuration resource not found")
	// ErrResourceUnreadable wraps failures to read or parse a resource that does exist
	ErrResourceUnreadable = errors.New("configuration resource unreadable")
	// ErrEnvSettingsNotValid is returned when the bootstrap environment settings cannot be parsed
	ErrEnvSettingsNotValid = errors.New("environment settings not valid")
)
