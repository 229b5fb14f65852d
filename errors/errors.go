// Package errors provides the sentinel error shared by the domain-stack
// packages built on rbtree.
package errors //nolint:revive // This is a fine package name, nuts to you

import "errors"

// ErrEmpty is returned by operations that require at least one element
// (e.g. a free-list allocator with no block large enough to satisfy a
// request) when the underlying structure has none.
var ErrEmpty = errors.New("empty")
