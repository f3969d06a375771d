package bridge

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"time"

	"github.com/uemcp/uemcp/internal/logger"
	"github.com/uemcp/uemcp/pkg/protocol"
)

var log = logger.ForComponent("bridge")

// Dialer abstracts socket creation so tests can count and fake connections.
type Dialer interface {
	DialContext(ctx context.Context, network, addr string) (net.Conn, error)
}

// chunkSize matches the receive granularity the editor plugin was tuned
// against.
const chunkSize = 4096

// Transport performs one framed request/response exchange per call. The wire
// has no length prefix or delimiter; a response is complete as soon as the
// accumulated bytes form a valid JSON document. That holds only while every
// response is a single top-level JSON value with no trailing data, which the
// editor plugin guarantees. The assumption lives entirely behind this type so
// a length-prefixed framing can replace it without touching callers.
type Transport struct {
	dialer Dialer
}

func NewTransport(dialer Dialer) *Transport {
	if dialer == nil {
		dialer = &net.Dialer{}
	}
	return &Transport{dialer: dialer}
}

// Send opens a TCP connection to addr, writes cmd as a single JSON object and
// reads until the buffer parses. The socket is closed on every return path;
// timeout bounds connect, send and each read.
func (t *Transport) Send(ctx context.Context, addr string, cmd *protocol.Command, timeout time.Duration) (map[string]any, error) {
	if cmd.Type == "" {
		return nil, fmt.Errorf("command type is required")
	}
	if timeout <= 0 {
		return nil, fmt.Errorf("timeout must be positive, got %v", timeout)
	}

	payload := *cmd
	if payload.Params == nil {
		payload.Params = map[string]any{}
	}
	data, err := json.Marshal(&payload)
	if err != nil {
		return nil, fmt.Errorf("marshal command %q: %w", cmd.Type, err)
	}

	dialCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	conn, err := t.dialer.DialContext(dialCtx, "tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrConnectFailed, addr, err)
	}
	defer conn.Close()

	if err := conn.SetWriteDeadline(time.Now().Add(timeout)); err != nil {
		return nil, fmt.Errorf("%w: set deadline: %v", ErrConnectFailed, err)
	}

	log.Debug("sending command", "type", cmd.Type, "bytes", len(data), "addr", addr)

	// net.Conn.Write only returns short with a non-nil error, so a single
	// call delivers all bytes or fails.
	if _, err := conn.Write(data); err != nil {
		return nil, fmt.Errorf("%w: write: %v", ErrConnectionClosed, err)
	}

	return t.receive(conn, cmd.Type, timeout)
}

// receive accumulates chunks until the buffer is a complete JSON document.
// The deadline is re-armed before every read: timeout bounds each blocking
// receive call, not the exchange as a whole, so a peer trickling a large
// response stays alive as long as no single gap exceeds it.
func (t *Transport) receive(conn net.Conn, cmdType string, timeout time.Duration) (map[string]any, error) {
	var (
		buf   []byte
		chunk = make([]byte, chunkSize)
	)

	for {
		if err := conn.SetReadDeadline(time.Now().Add(timeout)); err != nil {
			return nil, fmt.Errorf("%w: set deadline: %v", ErrConnectionClosed, err)
		}

		n, err := conn.Read(chunk)
		if n > 0 {
			buf = append(buf, chunk[:n]...)
			if json.Valid(buf) {
				log.Debug("received complete response", "type", cmdType, "bytes", len(buf))
				return decodeObject(buf)
			}
		}

		if err == nil {
			continue
		}

		if errors.Is(err, io.EOF) {
			if len(buf) == 0 {
				return nil, fmt.Errorf("%w: %s", ErrConnectionClosed, cmdType)
			}
			return nil, fmt.Errorf("%w: %d buffered bytes never parsed", ErrMalformedResponse, len(buf))
		}

		var netErr net.Error
		if errors.As(err, &netErr) && netErr.Timeout() {
			// The peer may have finished writing just as the deadline
			// fired; give the buffer one last parse.
			if len(buf) > 0 && json.Valid(buf) {
				log.Warn("using response parsed after read timeout", "type", cmdType, "bytes", len(buf))
				return decodeObject(buf)
			}
			return nil, fmt.Errorf("%w: %s after %d bytes", ErrTimeout, cmdType, len(buf))
		}

		if len(buf) == 0 {
			return nil, fmt.Errorf("%w: read: %v", ErrConnectionClosed, err)
		}
		return nil, fmt.Errorf("%w: read: %v", ErrMalformedResponse, err)
	}
}

func decodeObject(buf []byte) (map[string]any, error) {
	var raw map[string]any
	if err := json.Unmarshal(buf, &raw); err != nil {
		// Complete JSON but not an object; the protocol only ever
		// carries top-level objects.
		return nil, fmt.Errorf("%w: response is not a JSON object", ErrMalformedResponse)
	}
	return raw, nil
}
