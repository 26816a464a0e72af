package argv

import (
	"testing"
)

func TestParseInitialFileList(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		expected []string
	}{
		{
			name:     "paths then option stops collection",
			args:     []string{"/a/1.jpg", "/b/2.jpg", "-x", "/c/3.jpg"},
			expected: []string{"/a/1.jpg", "/b/2.jpg"},
		},
		{
			name:     "option first yields nothing",
			args:     []string{"--verbose", "/a/1.jpg"},
			expected: nil,
		},
		{
			name:     "no args",
			args:     nil,
			expected: nil,
		},
		{
			name:     "all paths",
			args:     []string{"/a/1.jpg", "/b/2.jpg"},
			expected: []string{"/a/1.jpg", "/b/2.jpg"},
		},
		{
			name:     "paths after the stop are never inspected",
			args:     []string{"/a/1.jpg", "-f", "/b/2.jpg", "/c/3.jpg"},
			expected: []string{"/a/1.jpg"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseInitialFileList(tt.args)
			if len(got) != len(tt.expected) {
				t.Fatalf("ParseInitialFileList(%v) = %v, want %v", tt.args, got, tt.expected)
			}
			for i := range got {
				if got[i] != tt.expected[i] {
					t.Errorf("result[%d] = %q, want %q", i, got[i], tt.expected[i])
				}
			}
		})
	}
}

func TestParseInitialFileListNormalizes(t *testing.T) {
	got := ParseInitialFileList([]string{"/a/b/../c.jpg", "/a/c.jpg", "-x"})
	if len(got) != 1 || got[0] != "/a/c.jpg" {
		t.Errorf("expected normalization and dedupe, got %v", got)
	}
}

func TestRest(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		expected []string
	}{
		{"options resume at first dash", []string{"/a/1.jpg", "-x", "--flag"}, []string{"-x", "--flag"}},
		{"no options", []string{"/a/1.jpg"}, nil},
		{"only options", []string{"-x"}, []string{"-x"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Rest(tt.args)
			if len(got) != len(tt.expected) {
				t.Fatalf("Rest(%v) = %v, want %v", tt.args, got, tt.expected)
			}
			for i := range got {
				if got[i] != tt.expected[i] {
					t.Errorf("Rest[%d] = %q, want %q", i, got[i], tt.expected[i])
				}
			}
		})
	}
}
