package segment

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplit(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []Run
	}{
		{
			name:  "empty",
			input: "",
			want:  nil,
		},
		{
			name:  "single word",
			input: "Hi",
			want:  []Run{{Text: "Hi"}},
		},
		{
			name:  "whitespace only",
			input: " \t\n",
			want:  []Run{{Text: " \t\n", Space: true}},
		},
		{
			name:  "internal runs kept verbatim",
			input: "a  b\tc",
			want: []Run{
				{Text: "a"},
				{Text: "  ", Space: true},
				{Text: "b"},
				{Text: "\t", Space: true},
				{Text: "c"},
			},
		},
		{
			name:  "leading and trailing whitespace",
			input: " x ",
			want: []Run{
				{Text: " ", Space: true},
				{Text: "x"},
				{Text: " ", Space: true},
			},
		},
		{
			name:  "non-ascii space counts as whitespace",
			input: "a b",
			want: []Run{
				{Text: "a"},
				{Text: " ", Space: true},
				{Text: "b"},
			},
		},
		{
			name:  "multibyte words",
			input: "привет мир",
			want: []Run{
				{Text: "привет"},
				{Text: " ", Space: true},
				{Text: "мир"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Split(tt.input))
		})
	}
}

func TestSplitRoundTrip(t *testing.T) {
	inputs := []string{
		"",
		"word",
		"  leading",
		"trailing  ",
		"a  b\tc",
		"mixed \n\t scripts полный  круг done",
	}

	for _, in := range inputs {
		var b strings.Builder
		for _, run := range Split(in) {
			b.WriteString(run.Text)
		}
		assert.Equal(t, in, b.String(), "runs must reconstruct the input")
	}
}
