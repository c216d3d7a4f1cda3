// SPDX-FileCopyrightText: 2023 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package carshttp

import "fmt"

// DecodeError indicates that a request body could not be decoded into a record.
type DecodeError struct {
	Err error
}

// Error satisfies the error interface.
func (de *DecodeError) Error() string {
	return fmt.Sprintf("unable to decode record: %s", de.Err)
}

// Unwrap returns the cause of this decode error.
func (de *DecodeError) Unwrap() error {
	return de.Err
}

// EncodeError indicates that a response value could not be serialized.
type EncodeError struct {
	Err error
}

// Error satisfies the error interface.
func (ee *EncodeError) Error() string {
	return fmt.Sprintf("unable to encode response: %s", ee.Err)
}

// Unwrap returns the cause of this encode error.
func (ee *EncodeError) Unwrap() error {
	return ee.Err
}
