package domain

import "errors"

var (
	ErrCredentialMissing = errors.New("generation credential missing")
	ErrUpstreamStatus    = errors.New("generation service failed")
)
