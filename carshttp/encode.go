// SPDX-FileCopyrightText: 2023 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package carshttp

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"unicode/utf8"
)

const (
	// JSONContentType is the media type of every record response.
	JSONContentType = "application/json"

	// TextContentType is the media type of error and not-found text.
	TextContentType = "text/plain; charset=utf-8"

	// InternalServerErrorText is the only body ever sent with a 500.
	InternalServerErrorText = "Internal Server Error"

	// CarNotFoundText is the body sent when a lookup misses.
	CarNotFoundText = "Car not found"
)

// Record is an open-shaped record supplied by a client.
type Record map[string]interface{}

// DecodeRecord reads exactly one JSON value from r.  A JSON object becomes the
// Record and a JSON null becomes an empty Record.  Anything else, including
// trailing data after the value or text that is not UTF-8, is a *DecodeError.
// Numbers are kept as json.Number so they are echoed back verbatim.
func DecodeRecord(r io.Reader) (Record, error) {
	body, err := io.ReadAll(r)
	if err != nil {
		return nil, &DecodeError{Err: err}
	}

	// encoding/json would quietly substitute U+FFFD for invalid bytes
	if !utf8.Valid(body) {
		return nil, &DecodeError{Err: errors.New("record is not valid UTF-8")}
	}

	var (
		v   interface{}
		dec = json.NewDecoder(bytes.NewReader(body))
	)

	dec.UseNumber()
	if err := dec.Decode(&v); err != nil {
		return nil, &DecodeError{Err: err}
	}

	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		if err == nil {
			err = errors.New("unexpected data after the record")
		}

		return nil, &DecodeError{Err: err}
	}

	switch record := v.(type) {
	case map[string]interface{}:
		return Record(record), nil

	case nil:
		return Record{}, nil

	default:
		return nil, &DecodeError{
			Err: fmt.Errorf("expected a JSON object, found %T", v),
		}
	}
}

// WriteJSON serializes v and writes it with a 200 status.  If v cannot be
// serialized, nothing is written and an *EncodeError is returned.
//
// Characters such as '<' and '&' are written as is rather than HTML-escaped.
func WriteJSON(response http.ResponseWriter, v interface{}) error {
	var (
		body bytes.Buffer
		enc  = json.NewEncoder(&body)
	)

	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return &EncodeError{Err: err}
	}

	response.Header().Set("Content-Type", JSONContentType)
	response.WriteHeader(http.StatusOK)
	_, err := response.Write(bytes.TrimSuffix(body.Bytes(), []byte{'\n'}))
	return err
}

// WriteText writes a plain text body with the given status code.
func WriteText(response http.ResponseWriter, status int, text string) error {
	response.Header().Set("Content-Type", TextContentType)
	response.WriteHeader(status)
	_, err := io.WriteString(response, text)
	return err
}

// WriteInternalError writes the generic 500 response.  No detail about the
// cause is ever sent to the client.
func WriteInternalError(response http.ResponseWriter) error {
	return WriteText(response, http.StatusInternalServerError, InternalServerErrorText)
}

// NotFound is the handler for every unmatched route: a 404 with no body.
func NotFound(response http.ResponseWriter, _ *http.Request) {
	response.WriteHeader(http.StatusNotFound)
}
