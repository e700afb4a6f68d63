// Package imageurl builds creature artwork URLs
package imageurl

import (
	"fmt"
	"strings"
)

// DefaultBaseURL is the bucket hosting the artwork
const DefaultBaseURL = "https://storage.googleapis.com/poketrainers-b1785.appspot.com/pokemons"

// Size selects the rendition
type Size string

// Available sizes
const (
	SizeThumb  Size = "thumb"
	SizeMedium Size = "medium"
	SizeFull   Size = "full"
)

// Type selects the art style
type Type string

// Available art styles
const (
	TypeReal    Type = "real"
	TypeCartoon Type = "cartoon"
)

// Builder turns a pokedex number into an image URL
type Builder interface {
	URL(id int, size Size, typ Type) string
	// Avatar is URL with thumb size and real art
	Avatar(id int) string
}

type builder struct {
	baseURL string
}

// New creates a builder rooted at baseURL, or DefaultBaseURL when empty
func New(baseURL string) Builder {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &builder{baseURL: strings.TrimRight(baseURL, "/")}
}

func (b *builder) URL(id int, size Size, typ Type) string {
	if size == "" {
		size = SizeThumb
	}
	if typ == "" {
		typ = TypeReal
	}
	return fmt.Sprintf("%s/%s/%s/%03d.png", b.baseURL, typ, size, id)
}

func (b *builder) Avatar(id int) string {
	return b.URL(id, SizeThumb, TypeReal)
}
