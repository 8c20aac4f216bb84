package client

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"os"
	"time"

	"colduel/communication"

	"github.com/rs/zerolog/log"
)

const endOfMessage = "EOM"

type TCPJudge struct {
	addr    string
	timeout time.Duration
	dialer  net.Dialer
}

func NewTCPJudge(addr string, timeout time.Duration) *TCPJudge {
	return &TCPJudge{addr: addr, timeout: timeout}
}

// Submit sends one request terminated by EOM and waits for the newline
// terminated reply.
func (j *TCPJudge) Submit(ctx context.Context, req communication.Request) (communication.Response, error) {
	if j.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, j.timeout)
		defer cancel()
	}

	conn, err := j.dialer.DialContext(ctx, "tcp", j.addr)
	if err != nil {
		return communication.Response{}, fmt.Errorf("failed to reach judge at %s: %w", j.addr, err)
	}
	defer conn.Close()

	if deadline, ok := ctx.Deadline(); ok {
		conn.SetDeadline(deadline)
	}
	stop := context.AfterFunc(ctx, func() { conn.SetDeadline(time.Now()) })
	defer stop()

	payload, err := json.Marshal(req)
	if err != nil {
		return communication.Response{}, fmt.Errorf("failed to encode request: %w", err)
	}
	if _, err := conn.Write(append(payload, endOfMessage...)); err != nil {
		return communication.Response{}, fmt.Errorf("failed to send request: %w", err)
	}
	log.Debug().Str("judge", j.addr).Str("vt1", req.Victory1).Str("vt2", req.Victory2).Msg("request sent")

	reply, err := bufio.NewReader(conn).ReadBytes('\n')
	if err != nil {
		cause := ctx.Err()
		if cause == nil && errors.Is(err, os.ErrDeadlineExceeded) {
			cause = context.DeadlineExceeded
		}
		if cause != nil {
			return communication.Response{}, fmt.Errorf("judge did not reply: %w", cause)
		}
		return communication.Response{}, fmt.Errorf("failed to read reply: %w", err)
	}
	return ParseResponse(reply)
}

// ParseResponse decodes a judge reply. Anything before the opening bracket of
// the JSON array is a status prefix and is dropped.
func ParseResponse(reply []byte) (communication.Response, error) {
	start := bytes.IndexByte(reply, '[')
	if start < 0 {
		return communication.Response{}, fmt.Errorf("reply has no result array: %q", reply)
	}

	var elements []json.RawMessage
	if err := json.Unmarshal(reply[start:], &elements); err != nil {
		return communication.Response{}, fmt.Errorf("failed to decode reply: %w", err)
	}
	if len(elements) < 3 {
		return communication.Response{}, fmt.Errorf("reply has %d elements, need at least 3", len(elements))
	}

	res := communication.Response{
		Victory1: stringify(elements[1]),
		Victory2: stringify(elements[2]),
		Result:   elements[len(elements)-2],
		Elements: elements,
	}
	return res, nil
}

func stringify(raw json.RawMessage) []string {
	var items []any
	if err := json.Unmarshal(raw, &items); err != nil {
		return []string{string(raw)}
	}
	out := make([]string, len(items))
	for i, item := range items {
		out[i] = fmt.Sprint(item)
	}
	return out
}
