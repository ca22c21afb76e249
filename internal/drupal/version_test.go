package drupal

import "testing"

func TestMapVersionToTag(t *testing.T) {
	tests := []struct {
		name     string
		version  string
		tags     []string
		expected string
	}{
		{
			name:     "exact match for semantic tags",
			version:  "10.1.0",
			tags:     []string{"10.0.0", "10.1.0"},
			expected: "10.1.0",
		},
		{
			name:     "legacy tag derived from semver",
			version:  "1.15.0",
			tags:     []string{"8.x-1.14", "8.x-1.15"},
			expected: "8.x-1.15",
		},
		{
			name:     "exact match wins over legacy candidate",
			version:  "1.15.0",
			tags:     []string{"1.15.0", "8.x-1.15"},
			expected: "1.15.0",
		},
		{
			name:     "patch version dropped for legacy candidate",
			version:  "2.3.7",
			tags:     []string{"8.x-2.3"},
			expected: "8.x-2.3",
		},
		{
			name:     "no matching tag returns version unchanged",
			version:  "1.15.0",
			tags:     []string{"8.x-1.14", "2.0.0"},
			expected: "1.15.0",
		},
		{
			name:     "empty tag list returns version unchanged",
			version:  "1.15.0",
			tags:     nil,
			expected: "1.15.0",
		},
		{
			name:     "non-semver version returns unchanged",
			version:  "dev-main",
			tags:     []string{"8.x-1.15"},
			expected: "dev-main",
		},
		{
			name:     "suffixed version is not treated as semver",
			version:  "1.15.0-beta1",
			tags:     []string{"8.x-1.15"},
			expected: "1.15.0-beta1",
		},
		{
			name:     "two-part version is not treated as semver",
			version:  "1.15",
			tags:     []string{"8.x-1.15"},
			expected: "1.15",
		},
		{
			name:     "empty version returns unchanged",
			version:  "",
			tags:     []string{"8.x-1.15"},
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MapVersionToTag(tt.version, tt.tags)
			if got != tt.expected {
				t.Errorf("MapVersionToTag(%q, %v) = %q, want %q",
					tt.version, tt.tags, got, tt.expected)
			}
		})
	}
}
