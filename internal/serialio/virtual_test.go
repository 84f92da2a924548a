package serialio

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVirtualPortFeedAndRead(t *testing.T) {
	v := NewVirtualPort(nil)
	v.Feed([]byte{0xA5, 0x01, 0x02})

	got, err := v.ReadExact(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, []byte{0xA5, 0x01, 0x02}, got)
}

func TestVirtualPortResponderEchoesScriptedReply(t *testing.T) {
	v := NewVirtualPort(func(written []byte) []byte {
		if len(written) > 0 && written[0] == 0x10 {
			return []byte{0x20, 0x21}
		}
		return nil
	})

	require.NoError(t, v.Write(context.Background(), []byte{0x10}))

	got, err := v.ReadExact(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x20, 0x21}, got)
	assert.Equal(t, []byte{0x10}, v.Written())
}

func TestVirtualPortReadByte(t *testing.T) {
	v := NewVirtualPort(nil)
	v.Feed([]byte{0x42})
	b, err := v.ReadByte(context.Background())
	require.NoError(t, err)
	assert.Equal(t, byte(0x42), b)
}

func TestVirtualPortReadBlocksUntilFed(t *testing.T) {
	v := NewVirtualPort(nil)
	result := make(chan []byte, 1)
	go func() {
		got, err := v.ReadExact(context.Background(), 2)
		require.NoError(t, err)
		result <- got
	}()

	time.Sleep(20 * time.Millisecond)
	v.Feed([]byte{0x01, 0x02})

	select {
	case got := <-result:
		assert.Equal(t, []byte{0x01, 0x02}, got)
	case <-time.After(time.Second):
		t.Fatal("ReadExact never unblocked after Feed")
	}
}

func TestVirtualPortReadHonorsContextDeadline(t *testing.T) {
	v := NewVirtualPort(nil)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err := v.ReadExact(ctx, 1)
	assert.Error(t, err)
}

func TestVirtualPortDiscardInputDropsQueuedBytes(t *testing.T) {
	v := NewVirtualPort(nil)
	v.Feed([]byte{0x01, 0x02, 0x03})
	require.NoError(t, v.DiscardInput())

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	_, err := v.ReadExact(ctx, 1)
	assert.Error(t, err)
}

func TestVirtualPortCloseUnblocksReaders(t *testing.T) {
	v := NewVirtualPort(nil)
	errCh := make(chan error, 1)
	go func() {
		_, err := v.ReadExact(context.Background(), 1)
		errCh <- err
	}()

	time.Sleep(20 * time.Millisecond)
	require.NoError(t, v.Close())

	select {
	case err := <-errCh:
		assert.ErrorIs(t, err.(*TransportError).Err, ErrClosed)
	case <-time.After(time.Second):
		t.Fatal("ReadExact never unblocked after Close")
	}
}

func TestVirtualPortWriteAfterCloseFails(t *testing.T) {
	v := NewVirtualPort(nil)
	require.NoError(t, v.Close())
	err := v.Write(context.Background(), []byte{0x01})
	assert.Error(t, err)
}
