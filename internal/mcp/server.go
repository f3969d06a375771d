package mcp

import (
	"context"
	"encoding/json"
	"io"
	"os"

	"github.com/sourcegraph/jsonrpc2"

	"github.com/uemcp/uemcp/internal/tools"
)

// Server speaks MCP over a newline-delimited JSON-RPC 2.0 stream,
// normally the process's stdin/stdout. Log output must never share
// stdout with the protocol stream.
type Server struct {
	handler *Handler
}

func NewServer(registry *tools.Registry) *Server {
	return &Server{handler: NewHandler(registry)}
}

type stdioReadWriteCloser struct {
	reader io.ReadCloser
	writer io.WriteCloser
}

func (s *stdioReadWriteCloser) Read(p []byte) (int, error) {
	return s.reader.Read(p)
}

func (s *stdioReadWriteCloser) Write(p []byte) (int, error) {
	return s.writer.Write(p)
}

func (s *stdioReadWriteCloser) Close() error {
	rerr := s.reader.Close()
	werr := s.writer.Close()
	if rerr != nil {
		return rerr
	}
	return werr
}

// ServeStdio runs the server on os.Stdin/os.Stdout until the client
// disconnects or ctx is cancelled.
func (s *Server) ServeStdio(ctx context.Context) error {
	return s.Serve(ctx, &stdioReadWriteCloser{
		reader: os.Stdin,
		writer: os.Stdout,
	})
}

// Serve runs the server on an arbitrary stream.
func (s *Server) Serve(ctx context.Context, rwc io.ReadWriteCloser) error {
	stream := jsonrpc2.NewBufferedStream(rwc, jsonrpc2.PlainObjectCodec{})
	conn := jsonrpc2.NewConn(ctx, stream, jsonrpc2.HandlerWithError(s.handle))

	log.Info("MCP server started")

	select {
	case <-conn.DisconnectNotify():
		log.Info("client disconnected")
		return nil
	case <-ctx.Done():
		conn.Close()
		<-conn.DisconnectNotify()
		return ctx.Err()
	}
}

func (s *Server) handle(ctx context.Context, conn *jsonrpc2.Conn, req *jsonrpc2.Request) (any, error) {
	var params json.RawMessage
	if req.Params != nil {
		params = *req.Params
	}

	result, rpcErr := s.handler.Handle(req.Method, params)
	if rpcErr != nil {
		// Notifications carry no response; surface the failure in the log.
		if req.Notif {
			log.Warn("notification failed", "method", req.Method, "error", rpcErr.Message)
			return nil, nil
		}
		return nil, &jsonrpc2.Error{
			Code:    int64(rpcErr.Code),
			Message: rpcErr.Message,
		}
	}

	if req.Notif {
		return nil, nil
	}
	return result, nil
}
