package naming

import (
	"log/slog"
	"strings"

	"stonyx-utils/internal/strutil"
)

// Namer turns singular identifiers into collection and model names. It
// handles pluralization overrides and name collisions.
type Namer struct {
	config   Config
	logger   *slog.Logger
	resolver *CollisionResolver
}

// New creates a Namer with the given configuration
func New(cfg Config, logger *slog.Logger) *Namer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Namer{
		config:   cfg,
		logger:   logger,
		resolver: NewCollisionResolver(logger),
	}
}

// Default returns a Namer with default configuration
func Default() *Namer {
	return New(DefaultConfig(), nil)
}

// Reset clears the collision resolver state, allowing the namer to be reused
// for a new set of registrations.
func (n *Namer) Reset() {
	n.resolver = NewCollisionResolver(n.logger)
}

// CollectionName converts a kebab-case, snake_case or camelCase identifier to
// a camelCase collection name with its last token pluralized. A leading
// "dir/" path is kept as-is.
// Example: "blog-post" -> "blogPosts", "userProfile" -> "userProfiles",
// "admin/person" -> "admin/people"
func (n *Namer) CollectionName(identifier string) string {
	prefix, identifier := splitPrefix(identifier)
	tokens := strutil.SplitIdentifier(identifier)
	if len(tokens) == 0 {
		return ""
	}
	last := len(tokens) - 1
	tokens[last] = n.Pluralize(tokens[last])
	tokens[0] = strings.ToLower(tokens[0])
	return prefix + joinCamel(tokens)
}

// ModelName converts a kebab-case, snake_case or camelCase identifier to a
// PascalCase model name with its last token singularized. A leading "dir/"
// path is dropped.
// Example: "blog-posts" -> "BlogPost", "admin/orderItems" -> "OrderItem"
func (n *Namer) ModelName(identifier string) string {
	_, identifier = splitPrefix(identifier)
	tokens := strutil.SplitIdentifier(identifier)
	if len(tokens) == 0 {
		return ""
	}
	last := len(tokens) - 1
	tokens[last] = n.Singularize(tokens[last])
	return strutil.Capitalize(joinCamel(tokens))
}

// RegisterCollection registers the collection name for an identifier and
// returns the resolved name. Duplicate names get a numeric suffix.
func (n *Namer) RegisterCollection(identifier, source string) string {
	return n.resolver.Register(n.CollectionName(identifier), source)
}

// CollectionExists checks if a collection name has been registered.
func (n *Namer) CollectionExists(name string) bool {
	return n.resolver.Exists(name)
}

// splitPrefix separates a "dir/sub/" path from the final segment.
func splitPrefix(identifier string) (prefix, name string) {
	i := strings.LastIndexByte(identifier, '/')
	return identifier[:i+1], identifier[i+1:]
}

// joinCamel keeps the first token as-is and capitalizes the rest.
func joinCamel(tokens []string) string {
	var b strings.Builder
	for i, token := range tokens {
		if i == 0 {
			b.WriteString(token)
			continue
		}
		b.WriteString(strutil.Capitalize(token))
	}
	return b.String()
}
