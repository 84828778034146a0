package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("admin123")
	require.NoError(t, err)
	require.NotEqual(t, "admin123", hash, "password must never be stored in clear text")

	assert.True(t, CheckPasswordHash("admin123", hash))
	assert.False(t, CheckPasswordHash("wrong", hash))
	assert.False(t, CheckPasswordHash("admin123", "not-a-hash"))
}

func TestValidatePhone(t *testing.T) {
	valid := []string{"012-3456789", "0123456789", "+60123456789", "(03) 1234 5678"}
	for _, phone := range valid {
		assert.True(t, ValidatePhone(phone), phone)
	}

	invalid := []string{"", "abc", "12-34", "012-345678901234567"}
	for _, phone := range invalid {
		assert.False(t, ValidatePhone(phone), phone)
	}
}

func TestServiceEnums(t *testing.T) {
	for _, typ := range []string{"cleaning", "repair", "installation", "gas_top_up"} {
		assert.True(t, ValidServiceType(typ), typ)
	}
	assert.False(t, ValidServiceType("plumbing"))

	for _, status := range []string{"pending", "in_progress", "completed", "cancelled"} {
		assert.True(t, ValidServiceStatus(status), status)
	}
	assert.False(t, ValidServiceStatus("done"))
}
