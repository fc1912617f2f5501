package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNameBounds(t *testing.T) {
	assert.NotEmpty(t, Name(""))
	assert.NotEmpty(t, Name("   "))
	assert.NotEmpty(t, Name("a"))
	assert.NotEmpty(t, Name(" a "))
	assert.Empty(t, Name("ab"))
	assert.Empty(t, Name("  ab  "))
	assert.Empty(t, Name(strings.Repeat("x", 50)))
	assert.NotEmpty(t, Name(strings.Repeat("x", 51)))
}

func TestEmailShape(t *testing.T) {
	valid := []string{"a@b.c", "john.doe@example.com", "x+tag@sub.domain.io"}
	for _, email := range valid {
		assert.Empty(t, Email(email), email)
	}
	invalid := []string{"", "   ", "plain", "a@b", "a b@c.d", "a@b c.d", "@b.c"}
	for _, email := range invalid {
		assert.NotEmpty(t, Email(email), email)
	}
}

func TestCourses(t *testing.T) {
	assert.NotEmpty(t, Courses(nil))
	assert.NotEmpty(t, Courses([]string{}))
	assert.Empty(t, Courses([]string{"1"}))
}

func TestFieldDispatch(t *testing.T) {
	assert.Equal(t, "Name is required", Field("name", ""))
	assert.Equal(t, "Email is required", Field("email", ""))
	assert.NotEmpty(t, Field("courses", " "))
	assert.Empty(t, Field("courses", "1,2"))
	assert.Empty(t, Field("unknown", ""))
}
