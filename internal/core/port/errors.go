package port

import "errors"

var (
	ErrInvalidRequest   = errors.New("invalid request")
	ErrUnauthenticated  = errors.New("not authenticated")
	ErrTemplateNotFound = errors.New("template not found")
	ErrTemplateInvalid  = errors.New("template invalid")
	ErrSessionNotFound  = errors.New("session not found")
)
