package common

import "errors"

var (
	ErrInvalidSignature    = errors.New("invalid PBP signature")
	ErrInvalidVersion      = errors.New("invalid PBP version")
	ErrHeaderTooShort      = errors.New("file too small to hold a PBP header")
	ErrInvalidSegmentRange = errors.New("segment range outside file bounds")
)
