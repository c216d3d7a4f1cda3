// SPDX-FileCopyrightText: 2023 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package cars

import (
	"fmt"
	"math/rand/v2"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

const (
	// ByteStrategy produces ids in the range [0, 255].  Collisions are
	// expected after a handful of creates.
	ByteStrategy = "byte"

	// UUIDStrategy produces random version 4 UUIDs.
	UUIDStrategy = "uuid"
)

// UnknownIDStrategyError indicates that an id strategy name was not recognized.
type UnknownIDStrategyError struct {
	Name string
}

// Error satisfies the error interface.
func (e *UnknownIDStrategyError) Error() string {
	return fmt.Sprintf("unknown id strategy: %q", e.Name)
}

// ExitCode marks this as a configuration error.
func (e *UnknownIDStrategyError) ExitCode() int {
	return ConfigurationExitCode
}

// IDGenerator produces identifiers for created records.
type IDGenerator func() string

// ByteIDs renders a random byte as a decimal string.
func ByteIDs() string {
	return strconv.Itoa(rand.N(256))
}

// UUIDs renders a random UUID.
func UUIDs() string {
	return uuid.NewString()
}

// NewIDGenerator returns the generator for a strategy name.  Names are
// case-insensitive, and the empty name selects ByteStrategy.
func NewIDGenerator(name string) (IDGenerator, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", ByteStrategy:
		return ByteIDs, nil

	case UUIDStrategy:
		return UUIDs, nil

	default:
		return nil, &UnknownIDStrategyError{Name: name}
	}
}
