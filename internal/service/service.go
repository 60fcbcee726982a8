package service

import (
	"context"
	"errors"
)

// Validation failures are detected before any state mutation and surfaced to
// the caller; no state change occurs.
var (
	ErrNameRequired    = errors.New("name is required")
	ErrInvalidDistrict = errors.New("district must be one of the Kerala districts")
	ErrInvalidAcres    = errors.New("acres must be between 0.1 and 100")
	ErrNoCropsSelected = errors.New("at least one crop must be selected")
	ErrUnknownCrop     = errors.New("unknown crop")
	ErrCropsAlreadySet = errors.New("crops have already been chosen")
	ErrNoUser          = errors.New("no active user")
)

// StorageGateway is the opaque on-device key-value capability. Get returns
// storage.ErrNotFound for keys never written or since removed; Remove is best
// effort per key.
type StorageGateway interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Remove(ctx context.Context, keys ...string) error
}
