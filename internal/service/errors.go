package service

import "errors"

var (
	// ErrResourceNotFound - запрошенный спортзал или отметка не существует
	ErrResourceNotFound = errors.New("resource not found")
	// ErrMaxDistance - пользователь слишком далеко от спортзала
	ErrMaxDistance = errors.New("max distance reached")
	// ErrMaxNumberOfCheckIns - пользователь уже отмечался сегодня
	ErrMaxNumberOfCheckIns = errors.New("max number of check-ins reached")
	// ErrLateCheckInValidation - окно подтверждения отметки истекло
	ErrLateCheckInValidation = errors.New("check-in can no longer be validated")
	// ErrUserAlreadyExists - пользователь с таким e-mail уже зарегистрирован
	ErrUserAlreadyExists = errors.New("e-mail already exists")
)
