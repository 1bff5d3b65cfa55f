// Package workflow implements the letter generation pipeline: a 3-node state
// graph (draft → format → comply) where each node composes a prompt from the
// canonical instruction system and performs a single chat inference.
package workflow

import "errors"

// Sentinel errors for pipeline operations.
var (
	ErrDraftFailed      = errors.New("drafting failed")
	ErrFormatFailed     = errors.New("formatting failed")
	ErrComplianceFailed = errors.New("compliance review failed")
	ErrEmptyOutput      = errors.New("stage returned empty output")
	ErrContentDropped   = errors.New("stage dropped required content")
	ErrNoticeMissing    = errors.New("required notice missing from final letter")
)
