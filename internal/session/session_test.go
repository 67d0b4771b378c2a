package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	s := New()

	assert.Equal(t, 0, s.GPU)
	assert.Equal(t, ":0", s.Display)
	assert.Equal(t, "/run/user/1000/gdm/Xauthority", s.XAuthority)
	assert.False(t, s.Debug)
}

func TestSnapshot_IsACopy(t *testing.T) {
	s := New()
	snap := s.Snapshot()

	s.GPU = 3
	s.Display = ":1"

	assert.Equal(t, 0, snap.GPU)
	assert.Equal(t, ":0", snap.Display)
}
