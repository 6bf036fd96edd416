package convert

import "testing"

func TestSplitDocument(t *testing.T) {
	tests := []struct {
		name      string
		content   string
		wantTitle string
		wantBody  string
	}{
		{"title and body", "# Hello\n\nWorld.\n", "Hello", "World."},
		{"title only", "# Hello\n", "Hello", ""},
		{"body only", "No heading here.\n", "", "No heading here."},
		{"leading blank lines", "\n\n# Hello\n\nWorld.\n", "Hello", "World."},
		{"second-level heading is body", "## Not a title\n", "", "## Not a title"},
		{"multi-paragraph body", "# T\n\nOne.\n\nTwo.\n", "T", "One.\n\nTwo."},
		{"empty", "", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			title, body := splitDocument(tt.content)
			if title != tt.wantTitle {
				t.Errorf("title = %q, want %q", title, tt.wantTitle)
			}
			if body != tt.wantBody {
				t.Errorf("body = %q, want %q", body, tt.wantBody)
			}
		})
	}
}

func TestJoinDocument_InvertsSplit(t *testing.T) {
	tests := []struct {
		title string
		body  string
	}{
		{"Hello", "World."},
		{"", "Just a body."},
		{"Heading only", ""},
		{"Multi", "One.\n\nTwo."},
	}

	for _, tt := range tests {
		t.Run(tt.title+"/"+tt.body, func(t *testing.T) {
			title, body := splitDocument(joinDocument(tt.title, tt.body))
			if title != tt.title || body != tt.body {
				t.Errorf("got %q/%q, want %q/%q", title, body, tt.title, tt.body)
			}
		})
	}
}

func TestStringList(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want []string
	}{
		{"comma string", "Read, Write", []string{"Read", "Write"}},
		{"single string", "Read", []string{"Read"}},
		{"sequence", []any{"a", "b"}, []string{"a", "b"}},
		{"empty string", "  ", nil},
		{"nil", nil, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := stringList(tt.in)
			if len(got) != len(tt.want) {
				t.Fatalf("stringList(%v) = %v, want %v", tt.in, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("stringList(%v)[%d] = %q, want %q", tt.in, i, got[i], tt.want[i])
				}
			}
		})
	}
}
