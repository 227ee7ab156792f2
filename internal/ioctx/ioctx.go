package ioctx

import (
	"context"
	"io"
)

// ContextualReadCloser is a wrapper around an io.ReadCloser that cancels the
// read operation when the context is canceled.
type ContextualReadCloser struct {
	Ctx    context.Context
	Reader io.ReadCloser
}

// NewReadCloser wraps rc so that reads fail with the context error once ctx
// is done.
func NewReadCloser(ctx context.Context, rc io.ReadCloser) ContextualReadCloser {
	return ContextualReadCloser{Ctx: ctx, Reader: rc}
}

func (crc ContextualReadCloser) Read(p []byte) (n int, err error) {
	if err := crc.Ctx.Err(); err != nil {
		return 0, err
	}
	return crc.Reader.Read(p)
}

func (crc ContextualReadCloser) Close() error {
	return crc.Reader.Close()
}
