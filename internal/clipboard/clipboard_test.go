package clipboard

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUnavailable(t *testing.T) {
	if Available() {
		t.Skip("clipboard utility installed")
	}

	assert.ErrorIs(t, Write("x"), ErrUnavailable)
	_, err := Read()
	assert.ErrorIs(t, err, ErrUnavailable)
}
