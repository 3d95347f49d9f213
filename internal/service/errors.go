package service

import "errors"

var (
	ErrModeIsNotSpecified = errors.New("application mode is not specified")
)
