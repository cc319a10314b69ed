package domain

import (
	"fmt"
	"net/http"
	"strings"
)

// Response represents a raw HTTP response
type Response struct {
	StatusCode  int
	Body        []byte
	Headers     http.Header
	ContentType string
	URL         string
}

// RenderNode is the decoded documentation artifact returned to callers.
// Only the fields collaborators consume are decoded; the full archive schema
// carries far more.
type RenderNode struct {
	SchemaVersion SchemaVersion  `json:"schemaVersion"`
	Kind          string         `json:"kind"`
	Identifier    Identifier     `json:"identifier"`
	Metadata      NodeMetadata   `json:"metadata"`
	Abstract      []TextFragment `json:"abstract,omitempty"`
}

// SchemaVersion is the artifact schema version triple
type SchemaVersion struct {
	Major int `json:"major"`
	Minor int `json:"minor"`
	Patch int `json:"patch"`
}

func (v SchemaVersion) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
}

// Identifier is the canonical identifier of a documentation page
type Identifier struct {
	URL               string `json:"url"`
	InterfaceLanguage string `json:"interfaceLanguage"`
}

// NodeMetadata carries the page title and role
type NodeMetadata struct {
	Title       string `json:"title"`
	Role        string `json:"role,omitempty"`
	RoleHeading string `json:"roleHeading,omitempty"`
}

// TextFragment is one element of an abstract. Fragments are ordered; "text"
// fragments carry prose and "codeVoice" fragments carry inline code.
type TextFragment struct {
	Type string `json:"type"`
	Text string `json:"text,omitempty"`
	Code string `json:"code,omitempty"`
}

// AbstractText joins the abstract fragments into a single string.
func (n *RenderNode) AbstractText() string {
	var b strings.Builder
	for _, f := range n.Abstract {
		if f.Text != "" {
			b.WriteString(f.Text)
		} else if f.Code != "" {
			b.WriteString(f.Code)
		}
	}
	return strings.TrimSpace(b.String())
}

// Title returns the page title, falling back to the identifier URL.
func (n *RenderNode) Title() string {
	if n.Metadata.Title != "" {
		return n.Metadata.Title
	}
	return n.Identifier.URL
}
