package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidServiceType(t *testing.T) {
	assert.True(t, IsValidServiceType("MySQL"))
	assert.True(t, IsValidServiceType("Trino"))
	assert.False(t, IsValidServiceType("mysql"), "matching is case-sensitive")
	assert.False(t, IsValidServiceType("SQLite"))
	assert.False(t, IsValidServiceType(""))
}
