package registry

import (
	"fmt"
	"strings"
)

// ProtectedGroupError is returned when a caller attempts to evict a group
// that may never be removed (the standard set).
type ProtectedGroupError struct {
	Group string
}

// Error implements the error interface for ProtectedGroupError.
func (e *ProtectedGroupError) Error() string {
	return fmt.Sprintf("group %q is protected and cannot be evicted", e.Group)
}

// GroupSpecError reports every structural defect found in a group offered
// to RegisterGroup. Nothing from a defective group is registered.
type GroupSpecError struct {
	Group    string
	Problems []string
}

// Error implements the error interface for GroupSpecError.
func (e *GroupSpecError) Error() string {
	return fmt.Sprintf("invalid operator group %q:\n- %s", e.Group, strings.Join(e.Problems, "\n- "))
}
