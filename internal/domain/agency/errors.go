package agency

import "errors"

// Agency domain errors
var (
	ErrAgencyNotFound  = errors.New("agency not found")
	ErrNameAlreadyUsed = errors.New("agency name is already taken")
	ErrCodeGeneration  = errors.New("failed to generate a unique agency code")
)
