package gateway

import "testing"

func TestStripFences(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"bare json", `[{"id":1}]`, `[{"id":1}]`},
		{"json fence", "```json\n[{\"id\":1}]\n```", `[{"id":1}]`},
		{"plain fence", "```\n[{\"id\":1}]\n```", `[{"id":1}]`},
		{"leading whitespace", "  \n```json\n{}\n```  ", `{}`},
		{"opening fence only", "```json\n{}", `{}`},
		{"no trailing newline", "```json\n{}```", `{}`},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := stripFences(tt.input); got != tt.want {
				t.Fatalf("stripFences(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
