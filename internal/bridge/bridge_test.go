// ABOUTME: Tests for bridge room filtering
// ABOUTME: Allow-list semantics with and without configured rooms

package bridge

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/2389/gitscout/internal/config"
)

func TestIsRoomAllowed_EmptyListAllowsAll(t *testing.T) {
	b := &Bridge{cfg: &config.Config{}}
	assert.True(t, b.isRoomAllowed("!any:example.org"))
}

func TestIsRoomAllowed_Filtered(t *testing.T) {
	b := &Bridge{cfg: &config.Config{
		Bridge: config.BridgeConfig{
			AllowedRooms: []string{"!hiring:example.org", "!team:example.org"},
		},
	}}

	assert.True(t, b.isRoomAllowed("!hiring:example.org"))
	assert.True(t, b.isRoomAllowed("!team:example.org"))
	assert.False(t, b.isRoomAllowed("!random:example.org"))
}
