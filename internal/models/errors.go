package models

import "errors"

// Сигнальные ошибки хранилища. Отсутствие записи - штатный исход,
// вызывающая сторона проверяет его через errors.Is.
var (
	ErrCaseNotFound = errors.New("emergency case not found")
	ErrUserNotFound = errors.New("user not found")
)
