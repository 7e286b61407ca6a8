package domain

import "errors"

var (
	ErrNotFound         = errors.New("not found")
	ErrUnknownSlot      = errors.New("unknown slot")
	ErrSlotMismatch     = errors.New("component category does not match slot")
	ErrInvalidComponent = errors.New("invalid component")
)
