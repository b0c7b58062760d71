package naming

import (
	"fmt"
	"log/slog"
)

// CollisionResolver hands out unique names. The first registration of a name
// keeps it; later ones get the lowest free numeric suffix starting at 2.
type CollisionResolver struct {
	owners map[string]string // resolved name -> source that claimed it
	next   map[string]int    // base name -> next suffix to try
	logger *slog.Logger
}

// NewCollisionResolver creates an empty resolver.
func NewCollisionResolver(logger *slog.Logger) *CollisionResolver {
	if logger == nil {
		logger = slog.Default()
	}
	return &CollisionResolver{
		owners: make(map[string]string),
		next:   make(map[string]int),
		logger: logger,
	}
}

// Register claims name for source and returns the name actually assigned.
func (c *CollisionResolver) Register(name, source string) string {
	owner, taken := c.owners[name]
	if !taken {
		c.owners[name] = source
		return name
	}

	n := max(c.next[name], 2)
	resolved := fmt.Sprintf("%s%d", name, n)
	for c.Exists(resolved) {
		n++
		resolved = fmt.Sprintf("%s%d", name, n)
	}
	c.next[name] = n + 1
	c.owners[resolved] = source

	c.logger.Warn("naming collision detected, applying suffix",
		slog.String("name", name),
		slog.String("resolved", resolved),
		slog.String("existing_source", owner),
		slog.String("new_source", source),
	)
	return resolved
}

// Exists reports whether name has been assigned.
func (c *CollisionResolver) Exists(name string) bool {
	_, ok := c.owners[name]
	return ok
}
