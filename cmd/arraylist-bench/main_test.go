package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_Text(t *testing.T) {
	var out, errOut bytes.Buffer
	code := run([]string{"-n", "200", "-algo", "insertion,quick"}, &out, &errOut)
	require.Equal(t, 0, code, errOut.String())

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[0], "insertion: "))
	assert.True(t, strings.HasPrefix(lines[1], "quick: "))
	assert.Empty(t, errOut.String(), "no logs below warn level by default")
}

func TestRun_Errors(t *testing.T) {
	var out, errOut bytes.Buffer
	assert.Equal(t, 1, run([]string{"-n", "0"}, &out, &errOut))
	assert.Contains(t, errOut.String(), "benchmark failed")

	errOut.Reset()
	assert.Equal(t, 1, run([]string{"-n", "10", "-format", "xml"}, &out, &errOut))
	assert.Contains(t, errOut.String(), "render failed")

	assert.Equal(t, 2, run([]string{"-bogus"}, &out, &errOut))
	assert.Empty(t, out.String())
}
