package config

import "errors"

// Returned by [GetStructuredConfig] when the merged settings are unusable.
var (
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	ErrInvalidAppConfigs     = errors.New("invalid app configuration")
)
