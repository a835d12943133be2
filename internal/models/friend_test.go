package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanonicalPair(t *testing.T) {
	a, b := CanonicalPair("u_bob", "u_alice")
	assert.Equal(t, "u_alice", a)
	assert.Equal(t, "u_bob", b)

	// already ordered input is unchanged
	a, b = CanonicalPair("u_alice", "u_bob")
	assert.Equal(t, "u_alice", a)
	assert.Equal(t, "u_bob", b)
}

func TestThreadPeer(t *testing.T) {
	th := &DMThread{User1ID: "u_alice", User2ID: "u_bob"}
	assert.Equal(t, "u_bob", th.Peer("u_alice"))
	assert.Equal(t, "u_alice", th.Peer("u_bob"))
	assert.True(t, th.HasParticipant("u_alice"))
	assert.False(t, th.HasParticipant("u_carol"))
}
