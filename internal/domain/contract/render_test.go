//go:build unit

package contract_test

import (
	"testing"

	"parkspace-booking/internal/domain/contract"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestRender(t *testing.T) {
	cases := []struct {
		name string
		body string
		data contract.Data
		want string
	}{
		{
			name: "if and unless with nil",
			body: "{{#if x}}A{{/if}}{{#unless x}}B{{/unless}}",
			data: contract.Data{"x": nil},
			want: "B",
		},
		{
			name: "if and unless with value",
			body: "{{#if x}}A{{/if}}{{#unless x}}B{{/unless}}",
			data: contract.Data{"x": "yes"},
			want: "A",
		},
		{
			name: "missing variable renders empty",
			body: "Hallo {{name}}!",
			data: contract.Data{},
			want: "Hallo !",
		},
		{
			name: "repeated variables",
			body: "{{a}}-{{a}}-{{ b }}",
			data: contract.Data{"a": "1", "b": "2"},
			want: "1-1-2",
		},
		{
			name: "multi-line block",
			body: "start\n{{#if code}}\nCode: {{code}}\n{{/if}}\nend",
			data: contract.Data{"code": "1234"},
			want: "start\n\nCode: 1234\n\nend",
		},
		{
			name: "nested blocks",
			body: "{{#if a}}[{{#unless b}}no b{{/unless}}{{#if b}}b={{b}}{{/if}}]{{/if}}",
			data: contract.Data{"a": true, "b": ""},
			want: "[no b]",
		},
		{
			name: "placeholder text in data is not re-evaluated",
			body: "{{#if x}}{{x}}{{/if}}",
			data: contract.Data{"x": "{{#unless y}}oops{{/unless}}"},
			want: "{{#unless y}}oops{{/unless}}",
		},
		{
			name: "unmatched open marker stays literal",
			body: "a {{#if x}} b {{x}}",
			data: contract.Data{"x": "X"},
			want: "a {{#if x}} b X",
		},
		{
			name: "unmatched close marker stays literal",
			body: "a {{/if}} b",
			data: contract.Data{},
			want: "a {{/if}} b",
		},
		{
			name: "unclosed inner block inside closed outer",
			body: "{{#if a}}x{{#unless b}}y{{/if}}",
			data: contract.Data{"a": "1"},
			want: "x{{#unless b}}y",
		},
		{
			name: "unknown marker stays literal",
			body: "{{ not a key }} and {{",
			data: contract.Data{},
			want: "{{ not a key }} and {{",
		},
		{
			name: "zero decimal is falsy",
			body: "{{#if amount}}discount{{/if}}{{#unless amount}}none{{/unless}}",
			data: contract.Data{"amount": decimal.Zero},
			want: "none",
		},
		{
			name: "decimal renders with two places",
			body: "€ {{amount}}",
			data: contract.Data{"amount": decimal.RequireFromString("12.5")},
			want: "€ 12.50",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, contract.Render(tc.body, tc.data))
		})
	}
}
