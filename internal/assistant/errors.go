package assistant

import "errors"

var (
	ErrEmptyMessage = errors.New("message is required")
	ErrEmptyMobile  = errors.New("mobile is required")
)
