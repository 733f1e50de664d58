package session

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/gintama1018/geminimind/internal/gateway"
	"github.com/gintama1018/geminimind/internal/persona"
	"github.com/gintama1018/geminimind/internal/store"
)

// ErrNoPersona is returned when content generation is triggered without
// a valid persona selection.
var ErrNoPersona = errors.New("no persona selected")

// ContentType is one of the fixed generation modes.
type ContentType struct {
	ID          string
	Name        string
	Description string
}

// ContentTypes are the supported generation modes.
var ContentTypes = []ContentType{
	{ID: "code", Name: "Code Engine", Description: "Generate optimized algorithms"},
	{ID: "marketing", Name: "Copywriter", Description: "High-conversion text"},
	{ID: "documentation", Name: "Technical Docs", Description: "API & system definitions"},
	{ID: "creative", Name: "Creative Studio", Description: "Narrative generation"},
}

// ValidContentType reports whether id names a supported mode.
func ValidContentType(id string) bool {
	for _, ct := range ContentTypes {
		if ct.ID == id {
			return true
		}
	}
	return false
}

// Content drives the persona content-generation flow. The selection is
// held by id and revalidated against the store, so deleting the selected
// persona clears the selection instead of generating with a ghost.
type Content struct {
	gw       *gateway.Gateway
	personas *store.PersonaRepo

	mu         sync.Mutex
	busy       bool
	token      uint64
	selectedID string
	lastOutput string
	lastType   string
}

// NewContent creates a content flow with no selection.
func NewContent(gw *gateway.Gateway, personas *store.PersonaRepo) *Content {
	return &Content{gw: gw, personas: personas}
}

// Select sets the active persona by id, validated against the store.
func (c *Content) Select(id string) error {
	if _, ok := c.lookup(id); !ok {
		return fmt.Errorf("no persona with id %q", id)
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.selectedID = id
	return nil
}

// Selected revalidates and returns the current selection. A selection
// whose persona no longer exists in the store is cleared.
func (c *Content) Selected() (persona.Persona, bool) {
	c.mu.Lock()
	id := c.selectedID
	c.mu.Unlock()

	if id == "" {
		return persona.Persona{}, false
	}

	p, ok := c.lookup(id)
	if !ok {
		c.mu.Lock()
		if c.selectedID == id {
			c.selectedID = ""
		}
		c.mu.Unlock()
		return persona.Persona{}, false
	}
	return p, true
}

// LastOutput returns the most recent generated content and its type.
func (c *Content) LastOutput() (content, contentType string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lastOutput, c.lastType
}

// Generate produces content for the prompt using the selected persona.
func (c *Content) Generate(ctx context.Context, contentType, prompt string) (string, error) {
	if !ValidContentType(contentType) {
		return "", fmt.Errorf("unknown content type %q", contentType)
	}

	p, ok := c.Selected()
	if !ok {
		return "", ErrNoPersona
	}

	tok, err := c.begin()
	if err != nil {
		return "", err
	}

	output, err := c.gw.GenerateContent(ctx, p, contentType, prompt)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.busy = false

	if tok != c.token {
		return "", ErrStale
	}
	if err != nil {
		return "", err
	}

	c.lastOutput = output
	c.lastType = contentType
	return output, nil
}

func (c *Content) lookup(id string) (persona.Persona, bool) {
	for _, p := range c.personas.List() {
		if p.ID == id {
			return p, true
		}
	}
	return persona.Persona{}, false
}

func (c *Content) begin() (uint64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.busy {
		return 0, ErrBusy
	}
	c.busy = true
	c.token++
	return c.token, nil
}
