package usecase

import "errors"

// ErrCustomerNotFound is returned when no customer exists for the given PAN.
var ErrCustomerNotFound = errors.New("customer not found")

// ErrNoScoreOnFile is returned when an operation needs a score card and the
// customer has never been scored.
var ErrNoScoreOnFile = errors.New("no score card on file")

// ErrInvalidRequest marks request validation failures so transports can map
// them to client-error codes rather than internal faults. Engine validation
// errors keep their own sentinels from the service package.
var ErrInvalidRequest = errors.New("invalid request")
