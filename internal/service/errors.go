package service

import "errors"

var (
	// ErrInvalidInput marks a missing or empty question.
	ErrInvalidInput = errors.New("invalid input")
	// ErrUpstreamFetch marks a knowledge base read failure.
	ErrUpstreamFetch = errors.New("knowledge base fetch failed")
	// ErrGeneration marks a missing or invalid generation result.
	ErrGeneration = errors.New("response generation failed")
	// ErrSynthesis marks a failed audio synthesis. The request aborts even
	// though the response text exists at that point.
	ErrSynthesis = errors.New("audio synthesis failed")
)
