package ws

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testClient(userID, socketID string) *Client {
	return NewClient(nil, userID, socketID)
}

func drain(c *Client) [][]byte {
	var out [][]byte
	for {
		select {
		case b := <-c.Send:
			out = append(out, b)
		default:
			return out
		}
	}
}

func TestHubFanOutToAllSessions(t *testing.T) {
	h := NewHub()
	c1 := testClient("u1", "s1")
	c2 := testClient("u1", "s2")
	other := testClient("u2", "s3")
	h.Add(c1)
	h.Add(c2)
	h.Add(other)

	h.SendToUser("u1", []byte("hello"))

	require.Len(t, drain(c1), 1)
	require.Len(t, drain(c2), 1)
	assert.Empty(t, drain(other))
}

func TestHubRemove(t *testing.T) {
	h := NewHub()
	c := testClient("u1", "s1")
	h.Add(c)
	assert.True(t, h.Connected("u1"))

	h.Remove(c)
	assert.False(t, h.Connected("u1"))

	// sending to a disconnected user is a no-op
	h.SendToUser("u1", []byte("void"))
	assert.Empty(t, drain(c))
}

func TestHubDropsOnSlowConsumer(t *testing.T) {
	h := NewHub()
	c := testClient("u1", "s1")
	h.Add(c)

	// overflow the buffer; extra frames are dropped, not blocking
	for i := 0; i < cap(c.Send)+10; i++ {
		h.SendToUser("u1", []byte("x"))
	}
	assert.Len(t, drain(c), cap(c.Send))
}

func TestHubCloseDisconnectsAll(t *testing.T) {
	h := NewHub()
	c1 := testClient("u1", "s1")
	c2 := testClient("u2", "s2")
	h.Add(c1)
	h.Add(c2)

	h.Close()
	assert.False(t, h.Connected("u1"))
	assert.False(t, h.Connected("u2"))
}
