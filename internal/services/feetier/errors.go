package feetier

import "errors"

var (
	ErrTierNotFound = errors.New("fee tier not found")
	ErrEmptySeed    = errors.New("seed file contains no tiers")
)
