package codemap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVectorLiteralRoundTrip(t *testing.T) {
	vec := []float32{0.25, -1.5, 3, 0.0001}

	parsed, err := parseVector(vectorLiteral(vec))
	require.NoError(t, err)
	assert.Equal(t, vec, parsed)
}

func TestVectorLiteralFormat(t *testing.T) {
	assert.Equal(t, "[1,-0.5,0]", vectorLiteral([]float32{1, -0.5, 0}))
	assert.Equal(t, "[]", vectorLiteral(nil))
}

func TestParseVectorRejectsMalformedInput(t *testing.T) {
	for _, in := range []string{"", "1,2,3", "[1,2", "[a,b]"} {
		_, err := parseVector(in)
		assert.Error(t, err, "input %q", in)
	}
}

func TestParseVectorEmpty(t *testing.T) {
	vec, err := parseVector("[]")
	require.NoError(t, err)
	assert.Empty(t, vec)
}
