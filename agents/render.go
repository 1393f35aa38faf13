// Copyright (c) Microsoft. All rights reserved.

package agents

import (
	"fmt"
	"io"
)

// WriteContent writes one content item to w in the line-oriented console
// format the samples use. The switch is exhaustive over the closed
// [MessageContent] variants.
func WriteContent(w io.Writer, c MessageContent) error {
	switch v := c.(type) {
	case *TextContent:
		_, err := fmt.Fprintln(w, v.Text)
		return err
	case *ImageFileContent:
		_, err := fmt.Fprintf(w, "<image from ID: %s>\n", v.FileID)
		return err
	default:
		// Unreachable: MessageContent is sealed.
		return fmt.Errorf("unknown content type %q", c.Type())
	}
}

// WriteMessage writes a message block: a role header followed by each
// content item in order.
func WriteMessage(w io.Writer, msg *ThreadMessage) error {
	if _, err := fmt.Fprintf(w, "%s:\n", msg.Role); err != nil {
		return err
	}
	for _, c := range msg.Content {
		if err := WriteContent(w, c); err != nil {
			return err
		}
	}
	return nil
}

// WriteMessages writes every message in the list, preserving the service's
// newest-first order.
func WriteMessages(w io.Writer, list *MessageList) error {
	for i := range list.Data {
		if err := WriteMessage(w, &list.Data[i]); err != nil {
			return err
		}
	}
	return nil
}
