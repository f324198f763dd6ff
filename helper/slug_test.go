package helper

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateSlug(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"latin", "Yangi Qonun Qabul Qilindi", "yangi-qonun-qabul-qilindi"},
		{"apostrophes", "O‘zbekiston Konstitutsiyasi", "ozbekiston-konstitutsiyasi"},
		{"ascii apostrophe", "G'alaba kuni", "galaba-kuni"},
		{"cyrillic", "Янги қонун", "yangi-qonun"},
		{"punctuation", "Hello, World!", "hello-world"},
		{"repeated separators", "  a  --  b  ", "a-b"},
		{"blank", "   ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, GenerateSlug(tt.input))
		})
	}
}
