package handler

import (
	"bytes"
	"sync"
)

// Response buffers start sized for a typical game view. Buffers that grew past
// maxPooledBuffer (a full sanctuary history page) are dropped instead of pooled.
const (
	initialBufferSize = 2 << 10
	maxPooledBuffer   = 64 << 10
)

var bufferPool = sync.Pool{
	New: func() any {
		return bytes.NewBuffer(make([]byte, 0, initialBufferSize))
	},
}

func getBuffer() *bytes.Buffer {
	return bufferPool.Get().(*bytes.Buffer)
}

func putBuffer(buf *bytes.Buffer) {
	if buf.Cap() > maxPooledBuffer {
		return
	}
	buf.Reset()
	bufferPool.Put(buf)
}
