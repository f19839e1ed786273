//go:build js && wasm

package main

import (
	"io"
	"sync"
	"syscall/js"
)

// WebsocketReadWriteCloser turns the binary messages of a browser WebSocket
// into a byte stream. Every Write is sent as one binary message.
type WebsocketReadWriteCloser struct {
	ws js.Value

	mu     sync.Mutex // js callbacks run concurrently with Read and Write
	closed bool
	err    error
	queue  [][]byte      // received, not yet read messages
	notify chan struct{} // signalled on new message or shutdown

	openCh   chan struct{} // closed once connected or failed
	openOnce sync.Once

	// read buffer for partial reads
	buf []byte
}

var _ io.ReadWriteCloser = (*WebsocketReadWriteCloser)(nil)

func NewWebsocketReadWriteCloser(ws js.Value) *WebsocketReadWriteCloser {
	c := &WebsocketReadWriteCloser{
		ws:     ws,
		notify: make(chan struct{}, 1),
		openCh: make(chan struct{}),
	}

	ws.Set("binaryType", "arraybuffer")

	ws.Set("onopen", js.FuncOf(func(js.Value, []js.Value) any {
		c.opened()
		return nil
	}))

	ws.Set("onerror", js.FuncOf(func(js.Value, []js.Value) any {
		c.shutdown(io.ErrUnexpectedEOF)
		return nil
	}))

	ws.Set("onmessage", js.FuncOf(func(this js.Value, args []js.Value) any {
		data := args[0].Get("data")

		jsDataToBytes(data, c.deliver)

		return nil
	}))

	ws.Set("onclose", js.FuncOf(func(js.Value, []js.Value) any {
		logScreenf("ws onClose received")
		c.shutdown(nil)
		return nil
	}))

	return c
}

// deliver queues a message without blocking the js event loop.
func (c *WebsocketReadWriteCloser) deliver(b []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	c.queue = append(c.queue, b)
	c.wake()
}

// shutdown stops delivery. Messages already queued can still be read.
func (c *WebsocketReadWriteCloser) shutdown(err error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	c.closed = true
	c.err = err
	c.wake()
	c.opened()
}

// opened releases writers waiting for the connection.
func (c *WebsocketReadWriteCloser) opened() {
	c.openOnce.Do(func() { close(c.openCh) })
}

// wake must be called with mu held.
func (c *WebsocketReadWriteCloser) wake() {
	select {
	case c.notify <- struct{}{}:
	default:
	}
}

func (c *WebsocketReadWriteCloser) Read(p []byte) (int, error) {
	for {
		c.mu.Lock()
		// First, drain existing buffer, then the next queued message
		if len(c.buf) == 0 && len(c.queue) > 0 {
			c.buf, c.queue = c.queue[0], c.queue[1:]
		}
		if len(c.buf) > 0 {
			n := copy(p, c.buf)
			c.buf = c.buf[n:]
			c.mu.Unlock()
			return n, nil
		}
		if c.closed {
			err := c.err
			c.mu.Unlock()
			if err == nil {
				err = io.EOF
			}
			return 0, err
		}
		c.mu.Unlock()

		// No buffered data -> wait for next message
		<-c.notify
	}
}

func (c *WebsocketReadWriteCloser) Write(p []byte) (int, error) {
	if err := c.waitOpen(); err != nil {
		return 0, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return 0, io.ErrClosedPipe
	}

	u8 := js.Global().Get("Uint8Array").New(len(p))
	js.CopyBytesToJS(u8, p)

	c.ws.Call("send", u8)
	return len(p), nil
}

func (c *WebsocketReadWriteCloser) waitOpen() error {
	<-c.openCh

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.err != nil {
		return c.err
	}
	if c.closed {
		return io.ErrClosedPipe
	}
	return nil
}

func (c *WebsocketReadWriteCloser) Close() error {
	c.shutdown(nil)
	c.ws.Call("close")
	return nil
}

func jsDataToBytes(data js.Value, deliver func([]byte)) {
	// Uint8Array / Uint8ClampedArray
	if data.InstanceOf(js.Global().Get("Uint8Array")) ||
		data.InstanceOf(js.Global().Get("Uint8ClampedArray")) {

		b := make([]byte, data.Get("byteLength").Int())
		js.CopyBytesToGo(b, data)
		deliver(b)
		return
	}

	// ArrayBuffer
	if data.InstanceOf(js.Global().Get("ArrayBuffer")) {
		u8 := js.Global().Get("Uint8Array").New(data)
		b := make([]byte, u8.Get("byteLength").Int())
		js.CopyBytesToGo(b, u8)
		deliver(b)
		return
	}

	// Blob → async
	if data.InstanceOf(js.Global().Get("Blob")) {
		promise := data.Call("arrayBuffer")
		then := js.FuncOf(func(this js.Value, args []js.Value) any {
			buf := args[0]
			u8 := js.Global().Get("Uint8Array").New(buf)
			b := make([]byte, u8.Get("byteLength").Int())
			js.CopyBytesToGo(b, u8)
			deliver(b)
			return nil
		})
		promise.Call("then", then)
		return
	}

	panic("unsupported JS binary type")
}
