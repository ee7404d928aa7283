package domain

import "errors"

var (
	ErrInvalidDateFormat = errors.New("birth date must be 8 numeric digits")
	ErrInvalidGender     = errors.New("gender must be male or female")
	ErrYearOutOfRange    = errors.New("year outside the supported range")
	ErrBaseOutOfRange    = errors.New("base number outside 1-60 after wraparound")
	ErrGroupNotFound     = errors.New("no trait seed for group code")
	ErrDailyLimitReached = errors.New("daily diagnosis limit reached")
	ErrUpstreamLLM       = errors.New("upstream LLM failure")
	ErrInvalidReport     = errors.New("LLM response failed report validation")
	ErrMissingCredential = errors.New("missing API credential")
)
