package domain

import "errors"

// Domain errors returned by the dashboard service and its sources.

var (
	// ErrNotFound indicates the requested entity does not exist.
	ErrNotFound = errors.New("entity not found")

	// ErrUnknownKind indicates the URL named an entity kind the dashboard does not manage.
	ErrUnknownKind = errors.New("unknown entity kind")

	// ErrInvalidStatus indicates a status outside the entity's vocabulary.
	ErrInvalidStatus = errors.New("invalid status")

	// ErrInvalidPayload indicates a request body that could not be decoded into an entity.
	ErrInvalidPayload = errors.New("invalid entity payload")

	// ErrInvalidID indicates an empty or malformed identifier.
	ErrInvalidID = errors.New("invalid ID format")

	// ErrUpstream indicates the remote data source failed or returned an unexpected response.
	ErrUpstream = errors.New("upstream request failed")
)
