package detect

import "testing"

func TestDetect(t *testing.T) {
	tests := []struct {
		name string
		text string
		want Format
	}{
		{
			name: "tree glyphs",
			text: "project/\n├── cmd/\n│   └── main.go\n└── README.md",
			want: TreeGlyph,
		},
		{
			name: "glyph wins over everything",
			text: "---START:a.txt---\n  └── indented/and/slashed",
			want: TreeGlyph,
		},
		{
			name: "content markers",
			text: "src\n---START:main.py---\nprint('hi')\n---END:main.py---",
			want: ContentDelimited,
		},
		{
			name: "end marker alone",
			text: "---END:a.txt---",
			want: ContentDelimited,
		},
		{
			name: "indentation",
			text: "src\n  main.cpp\n  utils\n    helper.cpp",
			want: Indentation,
		},
		{
			name: "indentation beats slashes",
			text: "src\n  a/b/c.txt",
			want: Indentation,
		},
		{
			name: "path list",
			text: "a/b/c.txt\na/b/d.txt\na/e.txt",
			want: PathList,
		},
		{
			name: "backslash path list",
			text: `src\main.cpp`,
			want: PathList,
		},
		{
			name: "plain text",
			text: "readme.txt",
			want: None,
		},
		{
			name: "empty",
			text: "",
			want: None,
		},
		{
			name: "blank lines ignored",
			text: "\n\nreadme.txt\n\n",
			want: None,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Detect(tt.text); got != tt.want {
				t.Errorf("Detect() = %v, want %v", got, tt.want)
			}
		})
	}
}
