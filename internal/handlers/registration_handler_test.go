package handlers

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestFeeInWords(t *testing.T) {
	assert.Equal(t, "Free of charge", feeInWords(0))
	assert.Equal(t, "Free of charge", feeInWords(-5))

	got := feeInWords(300)
	assert.True(t, strings.HasPrefix(got, "Rupees "), "got %q", got)
	assert.True(t, strings.HasSuffix(got, " Only"), "got %q", got)
	assert.Contains(t, strings.ToLower(got), "three hundred")
}

func TestNewRegistrationNo(t *testing.T) {
	id := uuid.NewString()
	no := newRegistrationNo(id)

	assert.True(t, strings.HasPrefix(no, "ESEP-"))
	assert.Len(t, no, len("ESEP-")+10)
	assert.Equal(t, strings.ToUpper(no), no)

	// Stable for the same id, distinct across ids.
	assert.Equal(t, no, newRegistrationNo(id))
	assert.NotEqual(t, no, newRegistrationNo(uuid.NewString()))
}
