package websocket

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func recv(t *testing.T, c *Client) Envelope {
	t.Helper()
	select {
	case data, ok := <-c.Send:
		require.True(t, ok, "send channel closed")
		var env Envelope
		require.NoError(t, json.Unmarshal(data, &env))
		return env
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for message")
		return Envelope{}
	}
}

func TestHub_BroadcastReachesOnlyRoom(t *testing.T) {
	h := NewHub()
	go h.Run()
	defer h.Stop()

	a := NewClient(nil, h, "guild:a", "bot")
	b := NewClient(nil, h, "guild:b", "bot")
	h.Register(a)
	h.Register(b)

	h.Broadcast("guild:a", "session_created", map[string]string{"id": "00000000"})
	env := recv(t, a)
	assert.Equal(t, "session_created", env.Type)
	assert.NotEmpty(t, env.Timestamp)

	select {
	case <-b.Send:
		t.Fatal("client in other room received a message")
	case <-time.After(50 * time.Millisecond):
	}
}

func TestHub_UnregisterClosesSend(t *testing.T) {
	h := NewHub()
	go h.Run()
	defer h.Stop()

	c := NewClient(nil, h, "guild:a", "bot")
	h.Register(c)
	h.Unregister(c)

	select {
	case _, ok := <-c.Send:
		assert.False(t, ok)
	case <-time.After(2 * time.Second):
		t.Fatal("send channel not closed")
	}
}

func TestHub_StopMakesCallsNoops(t *testing.T) {
	h := NewHub()
	done := make(chan struct{})
	go func() {
		h.Run()
		close(done)
	}()

	c := NewClient(nil, h, "guild:a", "bot")
	h.Register(c)
	h.Stop()
	h.Stop()
	<-done

	// None of these may block once the hub is stopped.
	h.Broadcast("guild:a", "x", nil)
	h.Unregister(c)
	late := NewClient(nil, h, "guild:a", "bot")
	h.Register(late)
	_, ok := <-late.Send
	assert.False(t, ok)
}

func TestClient_SendDirect(t *testing.T) {
	c := NewClient(nil, nil, "guild:a", "bot")
	require.NoError(t, c.SendDirect("connected", map[string]string{"room": "guild:a"}))
	env := recv(t, c)
	assert.Equal(t, "connected", env.Type)
}

func TestHubRef(t *testing.T) {
	h1, h2 := NewHub(), NewHub()
	ref := NewHubRef(h1)
	got, ok := ref.Get()
	assert.True(t, ok)
	assert.Same(t, h1, got)
	ref.Set(h2)
	got, _ = ref.Get()
	assert.Same(t, h2, got)
}
