package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExpandEnv(t *testing.T) {
	t.Setenv("VIGIL_TEST_TOKEN", "tok-123")
	t.Setenv("VIGIL_TEST_HOST", "db.internal")

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "braced variable",
			input: "token: ${VIGIL_TEST_TOKEN}",
			want:  "token: tok-123",
		},
		{
			name:  "bare variable",
			input: "host: $VIGIL_TEST_HOST",
			want:  "host: db.internal",
		},
		{
			name:  "multiple variables on one line",
			input: "addr: ${VIGIL_TEST_HOST}:${VIGIL_TEST_TOKEN}",
			want:  "addr: db.internal:tok-123",
		},
		{
			name:  "missing variable expands to empty",
			input: "token: '${VIGIL_TEST_MISSING}'",
			want:  "token: ''",
		},
		{
			name:  "trailing dollar untouched",
			input: `pattern: "^secret.*$"`,
			want:  `pattern: "^secret.*$"`,
		},
		{
			name:  "escaped dollar becomes literal",
			input: `password: "p@ss$$word"`,
			want:  `password: "p@ss$word"`,
		},
		{
			name:  "no expansion syntax passes through",
			input: "plain: value",
			want:  "plain: value",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, string(ExpandEnv([]byte(tt.input))))
		})
	}
}
