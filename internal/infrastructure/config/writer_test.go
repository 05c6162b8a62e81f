package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sectionsOf(content string) []string {
	var sections []string
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if strings.HasPrefix(line, "[") && strings.HasSuffix(line, "]") {
			sections = append(sections, line)
		}
	}
	return sections
}

func TestWriteConfigOrdered(t *testing.T) {
	path := filepath.Join(t.TempDir(), configName)

	require.NoError(t, WriteConfigOrdered(DefaultConfig(), path))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"[database]", "[editor]", "[logging]"}, sectionsOf(string(content)))
	assert.Contains(t, string(content), "hover_delay_ms = 300")
	assert.True(t, strings.HasSuffix(string(content), "\n"))
}

func TestWriteConfigOrdered_NilConfig(t *testing.T) {
	assert.Error(t, WriteConfigOrdered(nil, filepath.Join(t.TempDir(), configName)))
}

func TestSortTOMLSections(t *testing.T) {
	input := `title = 'rclayout'

[logging]
level = 'info'

[editor]
hover_delay_ms = 300

[logging.file]
enabled = false

[database]
path = ''
`

	result := sortTOMLSections(input)

	assert.Equal(t, []string{"[database]", "[editor]", "[logging]", "[logging.file]"}, sectionsOf(result))
	assert.True(t, strings.HasPrefix(result, "title = 'rclayout'\n\n[database]"))
	assert.Contains(t, result, "[editor]\nhover_delay_ms = 300\n\n[logging]")
	assert.Empty(t, sortTOMLSections("\n\n"))
}
