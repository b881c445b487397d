package email

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRender(t *testing.T) {
	tests := []struct {
		name     string
		template string
		ctx      map[string]string
		want     string
	}{
		{
			name:     "substitutes known placeholders",
			template: "Hi {{name}}, thanks for visiting {{page}}!",
			ctx:      map[string]string{"name": "Jane", "page": "consultation"},
			want:     "Hi Jane, thanks for visiting consultation!",
		},
		{
			name:     "case insensitive tokens",
			template: "Hi {{Name}}, re {{ MESSAGE }}",
			ctx:      map[string]string{"name": "Jane", "message": "hello"},
			want:     "Hi Jane, re hello",
		},
		{
			name:     "internal whitespace tolerated",
			template: "{{  name  }} / {{name}} / {{ name}}",
			ctx:      map[string]string{"name": "Jane"},
			want:     "Jane / Jane / Jane",
		},
		{
			name:     "missing allowed key renders empty",
			template: "Hi {{name}}, from {{company}}",
			ctx:      map[string]string{"name": "Jane"},
			want:     "Hi Jane, from ",
		},
		{
			name:     "unknown key left verbatim",
			template: "Hi {{name}}, code {{discount_code}}",
			ctx:      map[string]string{"name": "Jane"},
			want:     "Hi Jane, code {{discount_code}}",
		},
		{
			name:     "dollar sequences in values kept literal",
			template: "Deal: {{message}}",
			ctx:      map[string]string{"message": "save $100 or $1k"},
			want:     "Deal: save $100 or $1k",
		},
		{
			name:     "nil context",
			template: "Hi {{name}}!",
			ctx:      nil,
			want:     "Hi !",
		},
		{
			name:     "no placeholders",
			template: "plain text body",
			ctx:      map[string]string{"name": "Jane"},
			want:     "plain text body",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Render(tt.template, tt.ctx))
		})
	}
}

func TestRender_Idempotent(t *testing.T) {
	template := "Hi {{name}}, unsubscribe at {{unsubscribe_url}} or keep {{custom}}"
	ctx := map[string]string{
		"name":            "Jane",
		"unsubscribe_url": "https://example.com/unsubscribe?token=abc",
	}

	once := Render(template, ctx)
	twice := Render(once, ctx)
	assert.Equal(t, once, twice)
}
