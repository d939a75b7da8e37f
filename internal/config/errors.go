package config

import "fmt"

// errExactlyOneMode reports that Parse saw zero or more than one mode flag.
type errExactlyOneMode struct {
	count int
}

func (e errExactlyOneMode) Error() string {
	return fmt.Sprintf("exactly one mode flag must be set, got %d", e.count)
}
