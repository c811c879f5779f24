package chunker

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCallLinks(t *testing.T) {
	text := `def settle(batch):
    validated = validate_batch(batch)
    for item in validated:
        post_ledger(item)
    notify(batch)
    validate_batch(batch)`

	links := callLinks(text)
	assert.Equal(t, []string{"notify", "post_ledger", "settle", "validate_batch"}, links)
}

func TestCallLinksFiltersKeywords(t *testing.T) {
	text := "if (x) { return check(x); }\nfor (i = 0; i < n; i++) {}"
	assert.Equal(t, []string{"check"}, callLinks(text))
}

func TestVariableNamesAndThresholds(t *testing.T) {
	text := `RETENTION_LIMIT = 5
max_batch_size = 100
backend = "s3"
computed = derive(x)`

	assert.Equal(t, []string{"RETENTION_LIMIT", "backend", "max_batch_size"}, variableNames(text))
	assert.Equal(t, []string{"RETENTION_LIMIT", "max_batch_size"}, thresholdKeys(text))
}

func TestSemanticTags(t *testing.T) {
	content := "def verify_kyc(user):\n    check_auth(user)\n    submit_payment(user)"
	assert.Equal(t, []string{"kyc", "auth", "payment"}, semanticTags(content))

	assert.Empty(t, semanticTags("def add(a, b): return a + b"))
}

func TestParseConfigKeys(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		content string
		want    []string
	}{
		{
			name:    "json",
			path:    "config.json",
			content: `{"retry_limit": 3, "backend": "s3"}`,
			want:    []string{"backend", "retry_limit"},
		},
		{
			name:    "yaml",
			path:    "settings.yaml",
			content: "timeout: 30\nstorage:\n  kind: s3\n",
			want:    []string{"storage", "timeout"},
		},
		{
			name:    "dotenv",
			path:    ".env",
			content: "DB_HOST=localhost\n# comment\nDB_PORT=5432\n\n",
			want:    []string{"DB_HOST", "DB_PORT"},
		},
		{
			name:    "malformed json",
			path:    "broken.json",
			content: "{not json",
			want:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseConfigKeys(tt.path, tt.content))
		})
	}
}
