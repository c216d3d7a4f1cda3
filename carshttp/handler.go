// SPDX-FileCopyrightText: 2023 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package carshttp

import (
	"errors"
	"net/http"

	"github.com/xmidt-org/cars"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// DefaultMaxBodyBytes is the default limit on create request bodies.
const DefaultMaxBodyBytes int64 = 1 << 20

// HandlerConfig is the unmarshaled configuration for the record handlers.
type HandlerConfig struct {
	// BasePath is the first path segment under which records are served.
	// Defaults to DefaultBasePath.
	BasePath string

	// IDStrategy names the id generator for created records.  See cars.NewIDGenerator.
	IDStrategy string

	// StrictNotFound sends a lookup miss with a 404 instead of a 200.  Either
	// way, the body is CarNotFoundText.
	StrictNotFound bool

	// MaxBodyBytes caps create request bodies.  Zero or negative means no limit.
	MaxBodyBytes int64
}

// DefaultHandlerConfig returns the HandlerConfig used when nothing is configured.
func DefaultHandlerConfig() HandlerConfig {
	return HandlerConfig{
		BasePath:     DefaultBasePath,
		IDStrategy:   cars.ByteStrategy,
		MaxBodyBytes: DefaultMaxBodyBytes,
	}
}

// Handler implements the record operations: list, get, and create.
type Handler struct {
	// Lookup is the source of records for List and Get.
	Lookup cars.Lookup

	// IDs generates the id of each created record.
	IDs cars.IDGenerator

	// StrictNotFound controls the status of a lookup miss.
	StrictNotFound bool

	// MaxBodyBytes caps create request bodies when positive.
	MaxBodyBytes int64

	// Logger receives failures.  It must not be nil.
	Logger *zap.Logger
}

// HandlerIn is the set of dependencies for NewHandler.
type HandlerIn struct {
	fx.In

	Config HandlerConfig
	Lookup cars.Lookup
	Logger *zap.Logger
}

// NewHandler creates a Handler from configuration.
func NewHandler(in HandlerIn) (*Handler, error) {
	ids, err := cars.NewIDGenerator(in.Config.IDStrategy)
	if err != nil {
		return nil, err
	}

	return &Handler{
		Lookup:         in.Lookup,
		IDs:            ids,
		StrictNotFound: in.Config.StrictNotFound,
		MaxBodyBytes:   in.Config.MaxBodyBytes,
		Logger:         in.Logger.Named("cars"),
	}, nil
}

func (h *Handler) fail(response http.ResponseWriter, request *http.Request, err error) {
	h.Logger.Error(
		"request failed",
		zap.String("method", request.Method),
		zap.String("path", request.URL.Path),
		zap.Error(err),
	)

	WriteInternalError(response)
}

func (h *Handler) write(response http.ResponseWriter, request *http.Request, v interface{}) {
	var ee *EncodeError
	if err := WriteJSON(response, v); errors.As(err, &ee) {
		h.fail(response, request, err)
	} else if err != nil {
		h.Logger.Debug("unable to write response", zap.Error(err))
	}
}

// List writes every record, in store order.
func (h *Handler) List(response http.ResponseWriter, request *http.Request) {
	h.write(response, request, h.Lookup.List())
}

// Get writes the record with the given id.  A miss is written as
// CarNotFoundText, with a status determined by StrictNotFound.
func (h *Handler) Get(response http.ResponseWriter, request *http.Request, id string) {
	c, err := h.Lookup.Get(id)
	switch {
	case errors.Is(err, cars.ErrNotFound):
		status := http.StatusOK
		if h.StrictNotFound {
			status = http.StatusNotFound
		}

		WriteText(response, status, CarNotFoundText)

	case err != nil:
		h.fail(response, request, err)

	default:
		h.write(response, request, c)
	}
}

// Create echoes the request's JSON object back with a freshly generated id.
// The record is not stored anywhere.
func (h *Handler) Create(response http.ResponseWriter, request *http.Request) {
	body := request.Body
	if h.MaxBodyBytes > 0 {
		body = http.MaxBytesReader(response, body, h.MaxBodyBytes)
	}

	record, err := DecodeRecord(body)
	if err != nil {
		h.fail(response, request, err)
		return
	}

	record["id"] = h.IDs()
	h.write(response, request, record)
}
