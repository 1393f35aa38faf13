// Copyright (c) Microsoft. All rights reserved.

package azai

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// ServerEvent is one named event read from a server-sent event stream.
type ServerEvent struct {
	// Name is the value of the event: field, empty if the server sent none.
	Name string
	// Data is the concatenated data: payload.
	Data string
}

// ReadServerEvents reads server-sent events from r and calls fn for each
// complete event, preserving arrival order. It returns when the reader is
// exhausted, fn returns an error, or the terminator data payload "[DONE]" is
// seen. Unknown event names are forwarded as-is; dispatch is the caller's
// concern.
func ReadServerEvents(r io.Reader, fn func(ServerEvent) error) error {
	scanner := bufio.NewScanner(r)
	// Allow large SSE lines (message snapshots can be substantial).
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var ev ServerEvent
	flush := func() error {
		if ev.Name == "" && ev.Data == "" {
			return nil
		}
		err := fn(ev)
		ev = ServerEvent{}
		return err
	}

	for scanner.Scan() {
		line := scanner.Text()

		switch {
		case line == "":
			// Blank line terminates an event.
			if err := flush(); err != nil {
				return err
			}
		case strings.HasPrefix(line, "event:"):
			ev.Name = strings.TrimSpace(strings.TrimPrefix(line, "event:"))
		case strings.HasPrefix(line, "data:"):
			data := strings.TrimSpace(strings.TrimPrefix(line, "data:"))
			if data == "[DONE]" {
				return nil
			}
			if ev.Data != "" {
				ev.Data += "\n"
			}
			ev.Data += data
		default:
			// Comment or unknown field; ignore.
		}
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("%w: read event stream: %v", ErrService, err)
	}

	return flush()
}
