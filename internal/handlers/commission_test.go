package handlers

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateRef(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		ref := generateRef()
		assert.Len(t, ref, 8)
		for _, c := range ref {
			assert.True(t, strings.ContainsRune("ABCDEFGHJKLMNPQRSTUVWXYZ23456789", c), "unexpected char %q in %s", c, ref)
		}
		assert.False(t, seen[ref], "duplicate ref %s", ref)
		seen[ref] = true
	}
}

func TestIsValidEmail(t *testing.T) {
	assert.True(t, isValidEmail("visitor@example.com"))
	assert.True(t, isValidEmail("first.last+tag@sub.example.co"))
	assert.False(t, isValidEmail("not-an-email"))
	assert.False(t, isValidEmail("@example.com"))
	assert.False(t, isValidEmail("visitor@"))
	assert.False(t, isValidEmail(""))
}
