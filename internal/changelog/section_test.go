package changelog

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestExtractSection(t *testing.T) {
	text := "# Changelog\n\n## 1.2.0 - 2025-06-21\n\n### Added\n\n- New flag\n\n## 1.1.0 - 2025-05-01\n\n- Old\n"

	body, ok := ExtractSection(text, "1.2.0")
	require.True(t, ok)
	require.Equal(t, "### Added\n\n- New flag", body)
}

func TestExtractSection_LastSection(t *testing.T) {
	body, ok := ExtractSection("## 1.1.0 - 2025-05-01\n\n- Old\n", "1.1.0")
	require.True(t, ok)
	require.Equal(t, "- Old", body)
}

func TestExtractSection_BracketedAndCRLF(t *testing.T) {
	body, ok := ExtractSection("## [1.2.0] - June 21, 2025\r\n- Fix\r\n# Other\r\n", "1.2.0")
	require.True(t, ok)
	require.Equal(t, "- Fix", body)
}

func TestExtractSection_VersionIsLiteral(t *testing.T) {
	_, ok := ExtractSection("## 1x2x0 - 2025-06-21\n- Fix\n", "1.2.0")
	require.False(t, ok)
}

func TestExtractSection_Missing(t *testing.T) {
	_, ok := ExtractSection("## Next release\n", "1.2.0")
	require.False(t, ok)
}
