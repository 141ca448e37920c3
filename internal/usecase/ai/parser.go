package ai

import (
	"strings"
)

// Parser extracts structure from model output
type Parser struct{}

// NewParser creates a new Parser instance
func NewParser() *Parser {
	return &Parser{}
}

// ParseBullets returns the bullet items of a bullet-point answer.
// Lines starting with '*', '-' or '•' are items; anything else is ignored.
func (p *Parser) ParseBullets(content string) []string {
	content = stripCodeFence(content)

	items := make([]string, 0)
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		// bold heading, not a bullet
		if strings.HasPrefix(line, "**") {
			continue
		}
		for _, marker := range []string{"*", "-", "•"} {
			if strings.HasPrefix(line, marker) {
				item := strings.TrimSpace(strings.TrimPrefix(line, marker))
				if item != "" {
					items = append(items, item)
				}
				break
			}
		}
	}
	return items
}

// stripCodeFence removes a surrounding markdown code block, if any
func stripCodeFence(content string) string {
	content = strings.TrimSpace(content)

	if strings.HasPrefix(content, "```") {
		content = strings.TrimPrefix(content, "```")
		if nl := strings.Index(content, "\n"); nl != -1 {
			content = content[nl+1:]
		}
		if idx := strings.LastIndex(content, "```"); idx != -1 {
			content = content[:idx]
		}
	}

	return strings.TrimSpace(content)
}
