package masking

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDotenvMaskerAppliesTo(t *testing.T) {
	m := &DotenvMasker{}

	assert.True(t, m.AppliesTo("DB_PASSWORD=hunter2"))
	assert.True(t, m.AppliesTo("export STRIPE_API_KEY=sk_live_abc"))
	assert.False(t, m.AppliesTo("PORT=8080"))
	assert.False(t, m.AppliesTo("func main() {}"))
}

func TestDotenvMaskerMasksCredentialKeys(t *testing.T) {
	m := &DotenvMasker{}

	input := `DB_HOST=localhost
DB_PORT=5432
DB_PASSWORD=hunter2
export JWT_SECRET=0f1e2d3c4b5a
SESSION_TOKEN="abc123def456"
DEBUG=true`

	got := m.Mask(input)
	assert.Contains(t, got, "DB_HOST=localhost")
	assert.Contains(t, got, "DB_PORT=5432")
	assert.Contains(t, got, "DB_PASSWORD=[MASKED]")
	assert.Contains(t, got, "export JWT_SECRET=[MASKED]")
	assert.Contains(t, got, "SESSION_TOKEN=[MASKED]")
	assert.Contains(t, got, "DEBUG=true")
	assert.NotContains(t, got, "hunter2")
	assert.NotContains(t, got, "0f1e2d3c4b5a")
}

func TestDotenvMaskerKeepsPlaceholders(t *testing.T) {
	m := &DotenvMasker{}

	input := `ADMIN_PASSWORD=changeme
API_KEY="changeme"`
	assert.Equal(t, input, m.Mask(input))
}
