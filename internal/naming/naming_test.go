package naming

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPluralize(t *testing.T) {
	namer := Default()

	tests := []struct {
		input    string
		expected string
	}{
		{"user", "users"},
		{"category", "categories"},
		{"person", "people"},
		{"child", "children"},
		{"status", "statuses"},
		{"Quiz", "Quizzes"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			result := namer.Pluralize(tt.input)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestSingularize(t *testing.T) {
	namer := Default()

	tests := []struct {
		input    string
		expected string
	}{
		{"users", "user"},
		{"categories", "category"},
		{"people", "person"},
		{"children", "child"},
		{"statuses", "status"},
		{"analyses", "analysis"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			result := namer.Singularize(tt.input)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestPluralizeWithOverrides(t *testing.T) {
	cfg := Config{
		PluralOverrides: map[string]string{
			"staff":   "staff", // Same singular/plural
			"octopus": "octopodes",
		},
		SingularOverrides: make(map[string]string),
	}
	namer := New(cfg, nil)

	assert.Equal(t, "staff", namer.Pluralize("staff"))
	assert.Equal(t, "Octopodes", namer.Pluralize("Octopus"))
	assert.Equal(t, "users", namer.Pluralize("user")) // Falls back to rules
}

func TestSingularizeWithOverrides(t *testing.T) {
	cfg := Config{
		PluralOverrides: make(map[string]string),
		SingularOverrides: map[string]string{
			"data": "datum",
		},
	}
	namer := New(cfg, nil)

	assert.Equal(t, "datum", namer.Singularize("data"))
	assert.Equal(t, "DATUM", namer.Singularize("DATA"))
	assert.Equal(t, "user", namer.Singularize("users")) // Falls back to rules
}

func TestCollectionName(t *testing.T) {
	namer := Default()

	tests := []struct {
		identifier string
		expected   string
	}{
		{"user", "users"},
		{"person", "people"},
		{"blog-post", "blogPosts"},
		{"blog_post", "blogPosts"},
		{"order-line-item", "orderLineItems"},
		{"sales-tax", "salesTaxes"},
		{"fish", "fish"},
		{"news-category", "newsCategories"},
		{"admin/person", "admin/people"},
		{"admin/blog-post", "admin/blogPosts"},
		{"userProfile", "userProfiles"},
		{"BlogPost", "blogPosts"},
		{"Person", "people"},
		{"URLItem", "urlItems"},
		{"admin/orderItem", "admin/orderItems"},
		{"admin/", ""},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.identifier, func(t *testing.T) {
			assert.Equal(t, tt.expected, namer.CollectionName(tt.identifier))
		})
	}
}

func TestModelName(t *testing.T) {
	namer := Default()

	tests := []struct {
		identifier string
		expected   string
	}{
		{"users", "User"},
		{"people", "Person"},
		{"blog-posts", "BlogPost"},
		{"order_line_items", "OrderLineItem"},
		{"userProfile", "UserProfile"},
		{"BlogPosts", "BlogPost"},
		{"admin/orderItems", "OrderItem"},
		{"admin/leaves", "Leaf"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.identifier, func(t *testing.T) {
			assert.Equal(t, tt.expected, namer.ModelName(tt.identifier))
		})
	}
}

func TestRegisterCollection_Collision(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	namer := New(DefaultConfig(), logger)

	first := namer.RegisterCollection("blog-post", "file:blog-post.json")
	second := namer.RegisterCollection("blog_post", "file:blog_post.json")
	third := namer.RegisterCollection("blog-posts", "file:blog-posts.json")

	assert.Equal(t, "blogPosts", first)
	assert.Equal(t, "blogPosts2", second)
	assert.Equal(t, "blogPostses", third)
	assert.True(t, namer.CollectionExists("blogPosts2"))
	assert.Contains(t, buf.String(), "naming collision detected")
	assert.Contains(t, buf.String(), "file:blog-post.json")
}

func TestReset(t *testing.T) {
	namer := Default()

	assert.Equal(t, "users", namer.RegisterCollection("user", "a"))
	assert.Equal(t, "users2", namer.RegisterCollection("user", "b"))

	namer.Reset()
	assert.False(t, namer.CollectionExists("users"))
	assert.Equal(t, "users", namer.RegisterCollection("user", "c"))
}

func TestCollisionResolver(t *testing.T) {
	resolver := NewCollisionResolver(nil)

	assert.Equal(t, "items", resolver.Register("items", "a"))
	assert.Equal(t, "items2", resolver.Register("items", "b"))
	assert.Equal(t, "items3", resolver.Register("items", "c"))
	assert.True(t, resolver.Exists("items3"))
	assert.False(t, resolver.Exists("items4"))
}

func TestCollisionResolver_SkipsClaimedSuffix(t *testing.T) {
	resolver := NewCollisionResolver(nil)

	assert.Equal(t, "users2", resolver.Register("users2", "explicit"))
	assert.Equal(t, "users", resolver.Register("users", "a"))
	assert.Equal(t, "users3", resolver.Register("users", "b"))
	assert.Equal(t, "users4", resolver.Register("users", "c"))
}
