package semver

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParse_ValidVersions(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  SemanticVersion
	}{
		{"major only", "1", SemanticVersion{Major: 1}},
		{"major.minor", "1.2", SemanticVersion{Major: 1, Minor: 2}},
		{"major.minor.patch", "0.7.20", SemanticVersion{Minor: 7, Patch: 20}},
		{"v prefix", "v1.2.3", SemanticVersion{Major: 1, Minor: 2, Patch: 3}},
		{"surrounding whitespace", " 0.8.0\n", SemanticVersion{Minor: 8}},
		{
			"with pre-release name and number",
			"1.2.3-beta.4",
			SemanticVersion{
				Major:         1,
				Minor:         2,
				Patch:         3,
				PreReleaseTag: PreReleaseTag{Name: "beta", Number: int64Ptr(4)},
			},
		},
		{
			"build metadata discarded",
			"1.2.3+5",
			SemanticVersion{Major: 1, Minor: 2, Patch: 3},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.input)
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestParse_InvalidVersions(t *testing.T) {
	for _, input := range []string{"", "abc", "1.2.3.4.5", "0.7.20 (abc123 2025-07-01)"} {
		t.Run(input, func(t *testing.T) {
			_, err := Parse(input)
			require.Error(t, err)
			require.Contains(t, err.Error(), "invalid version format")
		})
	}
}

func TestMustParse_Panics(t *testing.T) {
	require.Panics(t, func() { MustParse("nope") })
}

func TestCompareTo(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"0.7.20", "0.7.20", 0},
		{"0.7.21", "0.7.20", 1},
		{"0.7.3", "0.7.20", -1},
		{"0.8.0", "0.7.20", 1},
		{"1.0.0", "0.99.99", 1},
		{"1.0.0-rc.1", "1.0.0", -1},
		{"1.0.0-beta.2", "1.0.0-beta.1", 1},
	}
	for _, tt := range tests {
		t.Run(tt.a+" vs "+tt.b, func(t *testing.T) {
			require.Equal(t, tt.want, MustParse(tt.a).CompareTo(MustParse(tt.b)))
		})
	}
}

func TestAtLeast(t *testing.T) {
	floor := MustParse("0.7.20")
	require.True(t, MustParse("0.7.20").AtLeast(floor))
	require.True(t, MustParse("0.9.1").AtLeast(floor))
	require.False(t, MustParse("0.6.99").AtLeast(floor))
}

func TestSemVer(t *testing.T) {
	require.Equal(t, "1.2.3", MustParse("v1.2.3").SemVer())
	require.Equal(t, "1.2.0-beta.4", MustParse("1.2-beta.4").String())
}
