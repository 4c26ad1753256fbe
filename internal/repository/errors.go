package repository

import "errors"

var (
	// ErrNotFound — запись с таким id не существует.
	ErrNotFound = errors.New("запись не найдена")
	// ErrEmailTaken — адрес электронной почты уже зарегистрирован.
	ErrEmailTaken = errors.New("адрес электронной почты уже зарегистрирован")
)
