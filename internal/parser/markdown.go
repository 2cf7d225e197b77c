// Package parser extracts structured fields from employee sheet markdown.
package parser

import (
	"bufio"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"
)

// MarkdownDoc represents a loosely parsed markdown document.
type MarkdownDoc struct {
	// Frontmatter metadata (from YAML), empty when absent or invalid
	Frontmatter map[string]any

	// Title extracted from frontmatter or the first h1
	Title string

	// Main content (after frontmatter)
	Content string

	// Structured content by heading
	Sections []Section
}

// Section represents a heading and the content under it.
type Section struct {
	Level   int    // 1-6 for h1-h6
	Heading string // The heading text
	Content string // Content under this heading
}

// ParseMarkdown parses a markdown document into structured form. Malformed
// input never fails; it just yields fewer fields.
func ParseMarkdown(content string) *MarkdownDoc {
	doc := &MarkdownDoc{
		Frontmatter: make(map[string]any),
	}

	// Parse frontmatter if present
	remaining := content
	if strings.HasPrefix(content, "---\n") {
		endIdx := strings.Index(content[4:], "\n---")
		if endIdx > 0 {
			frontmatterYAML := content[4 : 4+endIdx]
			remaining = strings.TrimPrefix(content[4+endIdx+4:], "\n")

			if err := yaml.Unmarshal([]byte(frontmatterYAML), &doc.Frontmatter); err != nil {
				// Ignore YAML errors, just use empty frontmatter
				doc.Frontmatter = make(map[string]any)
			}
		}
	}

	doc.Content = remaining
	doc.Title = extractTitle(doc.Frontmatter, remaining)
	doc.Sections = parseSections(remaining)

	return doc
}

// extractTitle gets the title from frontmatter or the first h1.
func extractTitle(fm map[string]any, content string) string {
	if name, ok := fm["name"].(string); ok && name != "" {
		return name
	}
	if title, ok := fm["title"].(string); ok && title != "" {
		return title
	}

	h1Regex := regexp.MustCompile(`(?m)^# (.+)$`)
	if match := h1Regex.FindStringSubmatch(content); len(match) > 1 {
		return strings.TrimSpace(match[1])
	}

	return ""
}

// FirstSection returns the first section at the given heading level with the
// given heading text, or nil.
func (d *MarkdownDoc) FirstSection(level int, heading string) *Section {
	for i := range d.Sections {
		s := &d.Sections[i]
		if s.Level == level && s.Heading == heading {
			return s
		}
	}
	return nil
}

// FirstLine returns the first non-empty content line of the section.
func (s *Section) FirstLine() string {
	for _, line := range strings.Split(s.Content, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			return trimmed
		}
	}
	return ""
}

// parseSections extracts heading sections from markdown content.
func parseSections(content string) []Section {
	var sections []Section
	headingRegex := regexp.MustCompile(`^(#{1,6}) (.+)$`)

	var current *Section
	var contentBuilder strings.Builder

	flush := func() {
		if current != nil {
			current.Content = strings.TrimSpace(contentBuilder.String())
			sections = append(sections, *current)
			contentBuilder.Reset()
		}
	}

	scanner := bufio.NewScanner(strings.NewReader(content))
	for scanner.Scan() {
		line := scanner.Text()

		if match := headingRegex.FindStringSubmatch(line); len(match) > 0 {
			flush()
			current = &Section{
				Level:   len(match[1]),
				Heading: strings.TrimSpace(match[2]),
			}
		} else if current != nil {
			contentBuilder.WriteString(line)
			contentBuilder.WriteString("\n")
		}
	}
	flush()

	return sections
}
