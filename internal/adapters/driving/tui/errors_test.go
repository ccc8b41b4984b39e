package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrMissingBrowseService_Message(t *testing.T) {
	assert.Contains(t, ErrMissingBrowseService.Error(), "browse service")
}
