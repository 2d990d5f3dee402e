package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidatePhone(t *testing.T) {
	assert.True(t, ValidatePhone("1234567"))
	assert.True(t, ValidatePhone("+34 612 345 678"))
	assert.True(t, ValidatePhone("(612) 345-678"))

	assert.False(t, ValidatePhone("123456"))       // fewer than 7 digits
	assert.False(t, ValidatePhone("not-a-number"))
	assert.False(t, ValidatePhone(""))
}

func TestValidateEmail(t *testing.T) {
	assert.True(t, ValidateEmail("a@x.com"))
	assert.True(t, ValidateEmail("user.name+tag@example.co.uk"))
	assert.True(t, ValidateEmail("  a@x.com  ")) // trimmed

	assert.False(t, ValidateEmail("not-an-email"))
	assert.False(t, ValidateEmail("a@x"))
	assert.False(t, ValidateEmail("@x.com"))
	assert.False(t, ValidateEmail(""))
}

func TestValidateTimeOfDay(t *testing.T) {
	assert.True(t, ValidateTimeOfDay("09:00"))
	assert.True(t, ValidateTimeOfDay("23:59"))
	assert.True(t, ValidateTimeOfDay("00:00"))

	assert.False(t, ValidateTimeOfDay("9:00")) // not zero-padded
	assert.False(t, ValidateTimeOfDay("24:00"))
	assert.False(t, ValidateTimeOfDay("12:60"))
	assert.False(t, ValidateTimeOfDay("12.30"))
	assert.False(t, ValidateTimeOfDay(""))
}
