// Package promptstore manages named prompt text for LLM applications.
//
// Prompts live outside source code, in a folder tree of .txt/.md files or a
// flat JSON file, and are addressed by name. Folder-derived names use `/` as
// the delimiter regardless of platform, so a file at sub/dir/hello.txt is
// always the prompt "sub/dir/hello".
package promptstore

import (
	"crypto/sha256"
	"encoding/hex"
)

// HashText returns the hex-encoded sha256 digest of text.
// The digest is used for integrity comparison, not security: equal text
// always produces an equal hash across stores and runs.
func HashText(text string) string {
	sum := sha256.Sum256([]byte(text))
	return hex.EncodeToString(sum[:])
}

// Prompt is a named, immutable block of text.
type Prompt struct {
	Name string
	Text string

	hash string // computed on first ContentHash call
}

// ContentHash returns the sha256 hash of the prompt text.
// The hash is computed on first access and cached.
func (p *Prompt) ContentHash() string {
	if p.hash == "" {
		p.hash = HashText(p.Text)
	}
	return p.hash
}
