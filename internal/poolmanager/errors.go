package poolmanager

import "errors"

var (
	ErrPoolNotExists     = errors.New("poolmanager: pool does not exist")
	ErrPoolAlreadyExists = errors.New("poolmanager: pool already exists")
)
