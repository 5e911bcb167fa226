package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidEmail(t *testing.T) {
	assert.True(t, IsValidEmail("user@example.com"))
	assert.True(t, IsValidEmail("first.last+tag@sub.domain.co"))
	assert.False(t, IsValidEmail("not-an-email"))
	assert.False(t, IsValidEmail("missing@tld"))
	assert.False(t, IsValidEmail(""))
}

func TestIsValidDate(t *testing.T) {
	_, ok := IsValidDate("2025-01-31")
	assert.True(t, ok)

	_, ok = IsValidDate("31-01-2025")
	assert.False(t, ok)

	_, ok = IsValidDate("2025-02-30")
	assert.False(t, ok)
}

func TestIsValidPayCode(t *testing.T) {
	assert.True(t, IsValidPayCode("OT15"))
	assert.True(t, IsValidPayCode("ANNUAL_LEAVE"))
	assert.False(t, IsValidPayCode("ot15"))
	assert.False(t, IsValidPayCode("A"))
	assert.False(t, IsValidPayCode("HAS SPACE"))
}

func TestIsValidWeekday(t *testing.T) {
	for d := 0; d <= 6; d++ {
		assert.True(t, IsValidWeekday(d))
	}
	assert.False(t, IsValidWeekday(-1))
	assert.False(t, IsValidWeekday(7))
}

func TestValidationErrorsToMap(t *testing.T) {
	errs := ValidationErrors{
		{Field: "name", Message: "is required"},
		{Field: "priority", Message: "must be positive"},
	}

	m := errs.ToMap()
	assert.Equal(t, "is required", m["name"])
	assert.Equal(t, "must be positive", m["priority"])
	assert.Contains(t, errs.Error(), "name: is required")
}
