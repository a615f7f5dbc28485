package constants

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaults(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(8080, GetPort())
	assert.Equal(22, GetFrets())
	assert.False(PreferFlats())
	assert.Equal(150, GetDebounceMs())
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("FRETDEX_PORT", "9090")
	t.Setenv("FRETDEX_PREFER_FLATS", "true")
	t.Setenv("FRETDEX_ALLOWED_ORIGINS", "http://a.test http://b.test")

	assert := assert.New(t)
	assert.Equal(9090, GetPort())
	assert.True(PreferFlats())
	assert.Equal([]string{"http://a.test", "http://b.test"}, GetAllowedOrigins())
}
