package mcp

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"io"

	"github.com/rs/zerolog/log"
)

const maxLineSize = 4 * 1024 * 1024

// ServeStdio processes newline-delimited JSON-RPC requests from r and writes
// one response per request to w, until EOF or context cancellation. A line
// that fails to decode is answered with an internal error and the loop
// continues; logging must go to stderr since w is the transport.
func (s *Server) ServeStdio(ctx context.Context, r io.Reader, w io.Writer) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	encoder := json.NewEncoder(w)

	for scanner.Scan() {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue
		}

		var req Request
		if err := json.Unmarshal(line, &req); err != nil {
			log.Error().Err(err).Msg("failed to decode request")
			resp := &Response{
				JSONRPC: jsonRPCVersion,
				ID:      nil,
				Error: &Error{
					Code:    CodeInternalError,
					Message: "failed to parse request: " + err.Error(),
				},
			}
			if err := encoder.Encode(resp); err != nil {
				return err
			}
			continue
		}

		resp := s.HandleRequest(ctx, &req)
		if err := encoder.Encode(resp); err != nil {
			return err
		}
	}

	return scanner.Err()
}
