// Package nettest serves http over in-memory pipes, so servers can be tested without ports.
package nettest

import (
	"context"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/serum-errors/go-serum"

	"github.com/blessnetwork/blessnet/blsapi"
)

const DefaultTimeout = 5 * time.Second

// PipeListener is a net.Listener whose connections come from Dial, backed by net.Pipe.
type PipeListener struct {
	connections chan net.Conn
	ctx         context.Context
	done        chan struct{}
	Timeout     time.Duration // Sets default deadline for new connections.
}

func NewPipeListener(ctx context.Context) *PipeListener {
	return &PipeListener{
		ctx:         ctx,
		connections: make(chan net.Conn),
		done:        make(chan struct{}),
		Timeout:     DefaultTimeout,
	}
}

// Errors: none
func (p *PipeListener) Close() error {
	select {
	case <-p.done:
	default:
		// closing channel will unblock accept
		close(p.done)
	}
	return nil
}

// Errors:
//
//   - blessnet-error-io -- the listener was closed or its context ended
func (p *PipeListener) Accept() (net.Conn, error) {
	select {
	case <-p.done:
		return nil, serum.Error(blsapi.CodeIo, serum.WithCause(net.ErrClosed))
	case <-p.ctx.Done():
		return nil, serum.Error(blsapi.CodeIo, serum.WithCause(p.ctx.Err()))
	case conn := <-p.connections:
		return conn, nil
	}
}

func (p *PipeListener) Addr() net.Addr { return pipeAddr{} }

// Errors:
//
//   - blessnet-error-io -- the listener is closed, or nothing accepted in time
func (p *PipeListener) Dial(ctx context.Context) (net.Conn, error) {
	serverConn, clientConn := net.Pipe()
	clientConn.SetDeadline(time.Now().Add(p.Timeout)) // will cause tests to fail if they block
	select {
	case <-ctx.Done():
		return nil, serum.Error(blsapi.CodeIo, serum.WithCause(ctx.Err()))
	case <-p.done:
		return nil, serum.Error(blsapi.CodeIo, serum.WithCause(io.ErrClosedPipe))
	case p.connections <- serverConn:
		return clientConn, nil
	case <-time.After(p.Timeout):
		return nil, serum.Error(blsapi.CodeIo, serum.WithMessageLiteral("dial timeout"))
	}
}

// Client returns an http client whose every request is dialed through p.
func (p *PipeListener) Client() *http.Client {
	return &http.Client{
		Transport: &http.Transport{
			DialContext: func(ctx context.Context, network, addr string) (net.Conn, error) {
				return p.Dial(ctx)
			},
			DisableKeepAlives: true,
		},
		Timeout: p.Timeout,
	}
}

type pipeAddr struct{}

func (pipeAddr) Network() string { return "pipe" }
func (pipeAddr) String() string  { return "pipe" }
