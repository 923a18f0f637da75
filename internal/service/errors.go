package service

import "errors"

var (
	// ErrNotFound запрошенный учитель или цель не существует
	ErrNotFound = errors.New("not found")

	// ErrInvalidDay ключ дня недели отсутствует в каталоге
	ErrInvalidDay = errors.New("invalid day")
)
