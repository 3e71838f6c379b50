package service

import "errors"

var (
	ErrTrainerNotFound       = errors.New("trainer not found")
	ErrInvalidUsername       = errors.New("username must be between 2 and 15 characters")
	ErrInvalidAvatar         = errors.New("unknown avatar")
	ErrUnknownEntity         = errors.New("unknown entity")
	ErrSelfFusion            = errors.New("an entity cannot be fused with itself")
	ErrFusionNotInCollection = errors.New("fusion not in collection")
	ErrBattleInProgress      = errors.New("battle has not finished yet")
	ErrInvalidOpponentCount  = errors.New("invalid opponent count")
)
