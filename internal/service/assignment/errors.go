package assignment

import (
	"errors"

	"dispatch/internal/service/courier"
)

var (
	ErrInvalidCourierID = errors.New("invalid courier id")
	ErrCourierNotFound  = courier.ErrCourierNotFound

	// ErrCorruptedWindow в хранилище лежит окно, которое не прошло бы валидацию при приеме
	ErrCorruptedWindow = errors.New("corrupted time window in storage")
)
