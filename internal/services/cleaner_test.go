package services

import "testing"

func TestExtractJSONBlock(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{
			name: "fenced json block",
			text: "```json\n{\"a\":1}\n```",
			want: `{"a":1}`,
		},
		{
			name: "plain json unchanged",
			text: `{"a":1}`,
			want: `{"a":1}`,
		},
		{
			name: "no fences trims whitespace",
			text: "  \n{\"a\":1}\n  ",
			want: `{"a":1}`,
		},
		{
			name: "fenced block with surrounding prose",
			text: "Here is the analysis:\n```json\n{\"match_score\": 85}\n```\nGood luck!",
			want: `{"match_score": 85}`,
		},
		{
			name: "closing fence is the last one in the text",
			text: "```json\n{\"a\": \"uses ``` inside\"}\n```",
			want: "{\"a\": \"uses ``` inside\"}",
		},
		{
			name: "opening fence never closed",
			text: "```json\n{\"a\":1}",
			want: `{"a":1}`,
		},
		{
			name: "empty input",
			text: "",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExtractJSONBlock(tt.text); got != tt.want {
				t.Errorf("ExtractJSONBlock(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}
