package service

import "errors"

// Таксономия ошибок доменного слоя. Хэндлеры сопоставляют их
// с HTTP-статусами через errors.Is.
var (
	// ErrInvalidInput - координаты или радиус вне допустимых диапазонов
	ErrInvalidInput = errors.New("invalid input")
	// ErrNotFound - пользователь, тревога или участок не найдены
	ErrNotFound = errors.New("not found")
	// ErrUnauthorized - попытка изменить чужую тревогу
	ErrUnauthorized = errors.New("unauthorized")
	// ErrAlertNotActive - мутация тревоги в терминальном статусе
	ErrAlertNotActive = errors.New("alert is not active")
)
