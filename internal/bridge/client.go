package bridge

import (
	"context"
	"fmt"
	"time"

	"github.com/uemcp/uemcp/pkg/protocol"
)

// PingCommand is the dedicated no-op liveness probe the editor plugin
// answers.
const PingCommand = "ping"

// Recorder receives one entry per completed exchange. Implementations must
// not fail the command: recording problems are theirs to absorb.
type Recorder interface {
	Record(command, status string, elapsed time.Duration, errMsg string)
}

// Options configures a Client.
type Options struct {
	// Addr is the editor listener in host:port form.
	Addr string
	// Timeout bounds each command's connect, send and receive.
	Timeout time.Duration
	// Dialer overrides socket creation; nil means a plain net.Dialer.
	Dialer Dialer
	// Recorder, when set, is notified about every exchange.
	Recorder Recorder
}

// Client owns the connection lifecycle to the editor listener. The peer
// closes its side of the socket after every response, so the unit of
// connection is one command, one socket: each Send dials a fresh connection
// and tears it down before returning, with no handle surviving between
// calls. A Client performs no internal locking around commands; concurrent
// callers each use their own Client.
type Client struct {
	addr      string
	timeout   time.Duration
	transport *Transport
	liveness  *Liveness
	recorder  Recorder
}

func NewClient(opts Options) *Client {
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		addr:      opts.Addr,
		timeout:   timeout,
		transport: NewTransport(opts.Dialer),
		liveness:  NewLiveness(),
		recorder:  opts.Recorder,
	}
}

// Send issues one command through a fresh socket and returns the canonical
// response. The response is never nil: transport failures come back both as
// a canonical error response and as the typed error, so callers can branch
// on the taxonomy without losing the single-shape contract. Upstream errors
// reported by the editor yield a canonical error response and a nil error.
// Nothing is ever retried.
func (c *Client) Send(ctx context.Context, command string, params map[string]any) (*protocol.Response, error) {
	start := time.Now()

	raw, err := c.transport.Send(ctx, c.addr, &protocol.Command{Type: command, Params: params}, c.timeout)

	var resp *protocol.Response
	if err != nil {
		c.liveness.RecordFailure()
		resp = NormalizeError(err)
		log.Error("command failed", "type", command, "error", err, "elapsed", time.Since(start))
	} else {
		c.liveness.RecordSuccess()
		resp = Normalize(raw)
		if !resp.IsSuccess() {
			log.Warn("editor reported error", "type", command, "error", resp.Error)
		}
	}

	c.record(command, resp, time.Since(start))
	return resp, err
}

// Ping runs the liveness probe through the full reconnect-per-call path and
// requires a canonical success.
func (c *Client) Ping(ctx context.Context) error {
	resp, err := c.Send(ctx, PingCommand, nil)
	if err != nil {
		return err
	}
	if !resp.IsSuccess() {
		return fmt.Errorf("ping rejected: %s", resp.Error)
	}
	return nil
}

// EnsureConnected pings unless the last exchange already succeeded. Failing
// here does not block later commands; they reconnect from scratch anyway.
func (c *Client) EnsureConnected(ctx context.Context) error {
	if c.liveness.State() == StateConnected {
		return nil
	}
	return c.Ping(ctx)
}

func (c *Client) State() LivenessState {
	return c.liveness.State()
}

func (c *Client) Stats() LivenessStats {
	return c.liveness.Stats()
}

// Addr returns the configured editor listener address.
func (c *Client) Addr() string {
	return c.addr
}

func (c *Client) record(command string, resp *protocol.Response, elapsed time.Duration) {
	if c.recorder == nil {
		return
	}
	errMsg := ""
	if !resp.IsSuccess() {
		errMsg = resp.Error
	}
	c.recorder.Record(command, resp.Status, elapsed, errMsg)
}
