package domain

import "errors"

// Sentinel errors for the inventory domain. Use errors.Is() to check these.
var (
	// ErrProductNotFound indicates the requested product does not exist.
	ErrProductNotFound = errors.New("product not found")

	// ErrInvalidProduct indicates the product fields violate domain constraints.
	ErrInvalidProduct = errors.New("invalid product")

	// ErrStoreWrite indicates the product store or image store rejected a
	// write. The operation that triggered it did not complete.
	ErrStoreWrite = errors.New("store write failed")

	// ErrAuditWrite indicates the movement log rejected an append. For
	// deletions this aborts the operation; for edits it is logged and
	// swallowed by the recorder.
	ErrAuditWrite = errors.New("audit write failed")
)
