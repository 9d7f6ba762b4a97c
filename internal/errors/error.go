package errors

import "errors"

// Configuration errors, reported while the pattern registry is built.
var (
	ErrUnknownConditionKind = errors.New("unknown condition kind")
	ErrMalformedParams      = errors.New("malformed condition params")
	ErrNegativeWeight       = errors.New("negative condition weight")
	ErrNoWeight             = errors.New("definition has no weighted condition")
	ErrDuplicateName        = errors.New("duplicate pattern name")
	ErrMinConfidenceRange   = errors.New("min_confidence outside [0,1]")
	ErrUnknownFormation     = errors.New("unknown formation name")
	ErrEmptyName            = errors.New("pattern name is empty")
)

// Input and lookup errors.
var (
	ErrMissingPiece     = errors.New("piece missing from snapshot")
	ErrInvalidSquare    = errors.New("invalid square")
	ErrInvalidPiece     = errors.New("invalid piece")
	ErrInvalidSFEN      = errors.New("invalid sfen")
	ErrPatternNotFound  = errors.New("pattern not found")
	ErrAnalysisNotFound = errors.New("analysis not found")
	ErrCacheMiss        = errors.New("cache miss")
	ErrUnknownFamily    = errors.New("unknown pattern family")
	ErrInvalidSide      = errors.New("invalid side")
	ErrBatchTooLarge    = errors.New("batch too large")
	ErrInternal         = errors.New("internal error")
)
