package websocket

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

type fakeConn struct {
	mu       sync.Mutex
	messages []interface{}
	failNext bool
	closed   bool
}

func (f *fakeConn) WriteJSON(v interface{}) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failNext {
		return errors.New("write failed")
	}
	f.messages = append(f.messages, v)
	return nil
}

func (f *fakeConn) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.closed = true
	return nil
}

func (f *fakeConn) received() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.messages)
}

var hubOnce sync.Once

func startHub() {
	hubOnce.Do(func() { go RunHub() })
}

func register(t *testing.T, client *Client) {
	t.Helper()
	before := ConnectedCount()
	Register <- client
	require.Eventually(t, func() bool { return ConnectedCount() > before }, time.Second, 5*time.Millisecond)
}

func unregister(t *testing.T, client *Client) {
	t.Helper()
	Unregister <- client
	require.Eventually(t, func() bool {
		clientsMu.RLock()
		defer clientsMu.RUnlock()
		_, ok := clients[client.UserID]
		return !ok
	}, time.Second, 5*time.Millisecond)
}

func TestChannelKeys(t *testing.T) {
	id := uuid.MustParse("4cd60331-59f2-4c13-8bbb-4e90e2b6c7d3")
	require.Equal(t, "user:4cd60331-59f2-4c13-8bbb-4e90e2b6c7d3", UserChannel(id))
	require.Equal(t, "role:admin", RoleChannel("admin"))
}

func TestPublishToUserChannel(t *testing.T) {
	startHub()

	conn := &fakeConn{}
	client := &Client{UserID: uuid.New(), Role: "student", Conn: conn}
	register(t, client)
	defer unregister(t, client)

	other := &fakeConn{}
	otherClient := &Client{UserID: uuid.New(), Role: "student", Conn: other}
	register(t, otherClient)
	defer unregister(t, otherClient)

	Publish(UserChannel(client.UserID), map[string]string{"type": "enrollment.success"})

	require.Equal(t, 1, conn.received())
	require.Equal(t, 0, other.received(), "publish must not leak to other users")
}

func TestPublishToRoleChannel(t *testing.T) {
	startHub()

	adminConn := &fakeConn{}
	admin := &Client{UserID: uuid.New(), Role: "admin", Conn: adminConn}
	register(t, admin)
	defer unregister(t, admin)

	studentConn := &fakeConn{}
	student := &Client{UserID: uuid.New(), Role: "student", Conn: studentConn}
	register(t, student)
	defer unregister(t, student)

	Publish(RoleChannel("admin"), map[string]string{"type": "teacher.application"})

	require.Equal(t, 1, adminConn.received())
	require.Equal(t, 0, studentConn.received())
}

func TestPublishDropsFailedClient(t *testing.T) {
	startHub()

	conn := &fakeConn{failNext: true}
	client := &Client{UserID: uuid.New(), Role: "student", Conn: conn}
	register(t, client)

	Publish(UserChannel(client.UserID), "payload")

	require.True(t, conn.closed, "failed client connection should be closed")
	clientsMu.RLock()
	_, ok := clients[client.UserID]
	clientsMu.RUnlock()
	require.False(t, ok, "failed client should be removed from the hub")
}
