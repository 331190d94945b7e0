// Package docs embeds the documentation topics served by the 'topic' command.
package docs

import (
	"embed"
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"
)

//go:embed *.md
var topics embed.FS

// Get returns the content of a documentation topic. The special topic "*"
// expands to every topic concatenated in alphabetical order.
func Get(topic string) (string, error) {
	if topic == "*" {
		var b strings.Builder
		for _, t := range All() {
			content, err := Get(t)
			if err != nil {
				return "", err
			}
			b.WriteString(content)
			b.WriteString("\n")
		}
		return b.String(), nil
	}
	content, err := topics.ReadFile(topic + ".md")
	if err != nil {
		return "", fmt.Errorf("topic %q not found, see 'topic' for the list: %w", topic, err)
	}
	return string(content), nil
}

// All returns the available topic names in alphabetical order. The readme is
// the index, not a topic.
func All() []string {
	var names []string
	fs.WalkDir(topics, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		name := strings.TrimSuffix(filepath.Base(path), ".md")
		if name != "readme" {
			names = append(names, name)
		}
		return nil
	})
	sort.Strings(names)
	return names
}

// Index returns the readme listing every topic.
func Index() (string, error) {
	content, err := topics.ReadFile("readme.md")
	if err != nil {
		return "", fmt.Errorf("missing topics index: %w", err)
	}
	return string(content), nil
}
