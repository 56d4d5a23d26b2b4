package domain

import "errors"

var (
	ErrConfiguration = errors.New("configuration error")
	ErrGeneration    = errors.New("generation error")
	ErrStorage       = errors.New("storage error")
)
