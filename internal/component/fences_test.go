package component

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStripFences(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "tagged fence around css",
			in:   "=== login.component.css ===\n```css\n.card { color: red; }\n```",
			want: "=== login.component.css ===\n.card { color: red; }",
		},
		{
			name: "bare fences",
			in:   "```\nexport class X {}\n```",
			want: "export class X {}",
		},
		{
			name: "no fences untouched",
			in:   ".btn { padding: 8px; }",
			want: ".btn { padding: 8px; }",
		},
		{
			name: "multiple fenced sections",
			in:   "```typescript\nclass A {}\n```\n```html\n<div></div>\n```",
			want: "class A {}\n<div></div>",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StripFences(tt.in))
		})
	}
}
