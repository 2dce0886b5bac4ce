package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetInitializesOnce(t *testing.T) {
	Init("test")
	first := Get()
	Init("production")

	assert.NotNil(t, first)
	assert.Same(t, first, Get())
	assert.NotNil(t, Named("audit"))
	Sync()
}
