// SPDX-FileCopyrightText: 2023 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package cars

import "errors"

// ErrNotFound is returned by Get when no record has the requested id.
var ErrNotFound = errors.New("car not found")

// Car is a single vehicle record.  The JSON field order is part of the
// wire format.
type Car struct {
	ID    string `json:"id"`
	Brand string `json:"brand"`
	Model string `json:"model"`
	Year  uint16 `json:"year"`
}

// Lookup is the read behavior over a set of records.
type Lookup interface {
	// List returns every record in store order.
	List() []Car

	// Get returns the first record with the given id, or ErrNotFound.
	Get(id string) (Car, error)
}

// Store is an immutable, ordered set of records.  The zero value is an
// empty store.  A Store is safe for concurrent use.
type Store struct {
	cars []Car
}

var _ Lookup = Store{}

// NewStore creates a Store from a sequence of records.  The records
// are copied, so later changes to the argument are not visible.
func NewStore(c ...Car) Store {
	return Store{
		cars: append([]Car{}, c...),
	}
}

// Len returns the count of records in this store.
func (s Store) Len() int {
	return len(s.cars)
}

// List returns a copy of the records in store order.
func (s Store) List() []Car {
	return append(make([]Car, 0, len(s.cars)), s.cars...)
}

// Get does a linear scan for an exact match on id.
func (s Store) Get(id string) (Car, error) {
	for _, c := range s.cars {
		if c.ID == id {
			return c, nil
		}
	}

	return Car{}, ErrNotFound
}

// defaultStore is built once and shared by everything in the process
var defaultStore = NewStore(
	Car{ID: "1", Brand: "Ford", Model: "Bronco", Year: 2022},
	Car{ID: "2", Brand: "Hyundai", Model: "Santa Fe", Year: 2010},
	Car{ID: "3", Brand: "Dodge", Model: "Challenger", Year: 2015},
)

// DefaultStore returns the static record set served by this service.
func DefaultStore() Store {
	return defaultStore
}
