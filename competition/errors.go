// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package competition

import "errors"

var (
	ErrMissingParameter = errors.New("missing parameter")
	ErrInvalidPayload   = errors.New("invalid payload")
	ErrInvalidToken     = errors.New("invalid token")
	ErrNoJudges         = errors.New("no judges for user")
	ErrInternal         = errors.New("internal failure")
)
