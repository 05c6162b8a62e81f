package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"regexp"
	"slices"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

var sectionHeader = regexp.MustCompile(`^(\s*)\[([^\]]+)\]\s*$`)

// WriteConfigOrdered writes cfg as TOML with fields in struct order and
// sections sorted by name, so files written on different runs diff cleanly.
func WriteConfigOrdered(cfg *Config, path string) error {
	if cfg == nil {
		return errors.New("config is nil")
	}

	var buf bytes.Buffer
	enc := toml.NewEncoder(&buf)
	enc.SetIndentTables(true)
	if err := enc.Encode(cfg); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	if err := os.WriteFile(path, []byte(sortTOMLSections(buf.String())), filePerm); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

type tomlSection struct {
	header string
	lines  []string
}

// sortTOMLSections reorders TOML content by section header. Top-level
// keys stay first.
func sortTOMLSections(content string) string {
	var (
		preamble []string
		sections []tomlSection
	)
	for _, line := range strings.Split(content, "\n") {
		if m := sectionHeader.FindStringSubmatch(line); m != nil {
			sections = append(sections, tomlSection{header: m[2], lines: []string{line}})
			continue
		}
		if len(sections) == 0 {
			preamble = append(preamble, line)
			continue
		}
		last := &sections[len(sections)-1]
		last.lines = append(last.lines, line)
	}

	slices.SortStableFunc(sections, func(a, b tomlSection) int {
		return strings.Compare(a.header, b.header)
	})

	var out strings.Builder
	writeBlock := func(lines []string) {
		block := strings.Trim(strings.Join(lines, "\n"), "\n")
		if block == "" {
			return
		}
		if out.Len() > 0 {
			out.WriteString("\n\n")
		}
		out.WriteString(block)
	}
	writeBlock(preamble)
	for _, sec := range sections {
		writeBlock(sec.lines)
	}
	if out.Len() == 0 {
		return ""
	}
	return out.String() + "\n"
}
