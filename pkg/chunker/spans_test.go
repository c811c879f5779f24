package chunker

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractIndentSpans(t *testing.T) {
	content := `import os

def first(x):
    y = x + 1
    return y

class Handler:
    def inner(self):
        return 1

def second(x):
    return x`

	spans := extractSpans(content, "python")
	require.Len(t, spans, 3)

	assert.Equal(t, "first", spans[0].name)
	assert.Equal(t, "function", spans[0].nodeType)
	assert.Equal(t, 3, spans[0].startLine)

	// The nested method belongs to its class span, not its own.
	assert.Equal(t, "Handler", spans[1].name)
	assert.Equal(t, "class", spans[1].nodeType)

	assert.Equal(t, "second", spans[2].name)
	assert.Equal(t, 11, spans[2].startLine)
	assert.Equal(t, 12, spans[2].endLine)
}

func TestExtractBraceSpansGo(t *testing.T) {
	content := `package main

func Add(a, b int) int {
	return a + b
}

func (s *Server) Run() error {
	if err := s.listen(); err != nil {
		return err
	}
	return nil
}`

	spans := extractSpans(content, "go")
	require.Len(t, spans, 2)

	assert.Equal(t, "Add", spans[0].name)
	assert.Equal(t, 3, spans[0].startLine)
	assert.Equal(t, 5, spans[0].endLine)

	assert.Equal(t, "Run", spans[1].name)
	assert.Equal(t, 7, spans[1].startLine)
	assert.Equal(t, 12, spans[1].endLine)
}

func TestExtractBraceSpansJavaScript(t *testing.T) {
	content := `function transfer(amount) {
  if (amount > limit) {
    reject();
  }
}

class Ledger {
  post(entry) {}
}`

	spans := extractSpans(content, "javascript")
	require.Len(t, spans, 2)
	assert.Equal(t, "transfer", spans[0].name)
	assert.Equal(t, "function", spans[0].nodeType)
	assert.Equal(t, 5, spans[0].endLine)
	assert.Equal(t, "Ledger", spans[1].name)
	assert.Equal(t, "class", spans[1].nodeType)
}

func TestExtractSpansNoDeclarations(t *testing.T) {
	assert.Empty(t, extractSpans("x = 1\ny = 2\n", "python"))
	assert.Empty(t, extractSpans("1 + 1", "go"))
}
