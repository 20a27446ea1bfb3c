package game

import "errors"

var (
	ErrUnknownRole     = errors.New("unknown role")
	ErrUnknownPlayer   = errors.New("unknown player")
	ErrUnknownResource = errors.New("unknown resource")
	ErrUnknownBuilding = errors.New("unknown building")
)
