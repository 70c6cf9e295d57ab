package catalog

import "errors"

var (
	// ErrNotFound covers missing rows and rows outside the caller's
	// workspace scope; the two are indistinguishable on purpose.
	ErrNotFound = errors.New("record not found")

	// ErrTreeDepth is returned when tree assembly descends past
	// maxTreeDepth, which only happens with a corrupted parent chain.
	ErrTreeDepth = errors.New("product tree exceeds maximum depth")

	// ErrSelfParent rejects a product being patched to be its own parent.
	ErrSelfParent = errors.New("product cannot be its own parent")
)
