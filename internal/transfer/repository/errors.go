package repository

import "errors"

var (
	ErrFailedToGet  = errors.New("failed to get submission record")
	ErrFailedToSave = errors.New("failed to save submission record")
	ErrFailedToList = errors.New("failed to list submission records")
)
