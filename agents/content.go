// Copyright (c) Microsoft. All rights reserved.

package agents

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/Azure-Samples/azure-ai-agents-go/azai"
)

// ContentType identifies the kind of a content item within a [ThreadMessage].
type ContentType string

const (
	ContentTypeText      ContentType = "text"
	ContentTypeImageFile ContentType = "image_file"
)

// MessageContent is a sealed interface representing one content item of a
// [ThreadMessage]. The set of concrete types is closed: [TextContent] and
// [ImageFileContent]. Use a type switch to inspect the underlying type.
type MessageContent interface {
	// Type returns the discriminator for this content item.
	Type() ContentType

	// sealed prevents external implementations.
	sealed()
}

// base is embedded by every concrete MessageContent type to satisfy the
// sealed marker.
type base struct{}

func (base) sealed() {}

// TextContent holds a text segment and its service annotations.
type TextContent struct {
	base
	Text string
}

func (c *TextContent) Type() ContentType { return ContentTypeText }

// ImageFileContent references an image stored as a service-hosted file.
type ImageFileContent struct {
	base
	FileID string
}

func (c *ImageFileContent) Type() ContentType { return ContentTypeImageFile }

// Contents is an ordered list of content items with custom JSON handling for
// the service's discriminated wire shape.
type Contents []MessageContent

// Text returns the concatenated text of all [TextContent] items.
func (cs Contents) Text() string {
	var b strings.Builder
	for _, c := range cs {
		if tc, ok := c.(*TextContent); ok {
			b.WriteString(tc.Text)
		}
	}
	return b.String()
}

// Wire shapes: {"type":"text","text":{"value":"...","annotations":[]}}
// and {"type":"image_file","image_file":{"file_id":"..."}}.
type textPayload struct {
	Value string `json:"value"`
}

type imageFilePayload struct {
	FileID string `json:"file_id"`
}

type contentItem struct {
	Type      string            `json:"type"`
	Index     *int              `json:"index,omitempty"`
	Text      *textPayload      `json:"text,omitempty"`
	ImageFile *imageFilePayload `json:"image_file,omitempty"`
}

// UnmarshalJSON decodes the service's content array. Unknown content kinds
// are rejected rather than silently dropped.
func (cs *Contents) UnmarshalJSON(data []byte) error {
	var items []contentItem
	if err := json.Unmarshal(data, &items); err != nil {
		return err
	}

	out := make(Contents, 0, len(items))
	for _, item := range items {
		switch ContentType(item.Type) {
		case ContentTypeText:
			var value string
			if item.Text != nil {
				value = item.Text.Value
			}
			out = append(out, &TextContent{Text: value})
		case ContentTypeImageFile:
			var fileID string
			if item.ImageFile != nil {
				fileID = item.ImageFile.FileID
			}
			out = append(out, &ImageFileContent{FileID: fileID})
		default:
			return fmt.Errorf("%w: unknown content type %q", azai.ErrInvalidResponse, item.Type)
		}
	}
	*cs = out
	return nil
}

// MarshalJSON encodes the list back into the service's wire shape.
func (cs Contents) MarshalJSON() ([]byte, error) {
	items := make([]contentItem, 0, len(cs))
	for _, c := range cs {
		switch v := c.(type) {
		case *TextContent:
			items = append(items, contentItem{
				Type: string(ContentTypeText),
				Text: &textPayload{Value: v.Text},
			})
		case *ImageFileContent:
			items = append(items, contentItem{
				Type:      string(ContentTypeImageFile),
				ImageFile: &imageFilePayload{FileID: v.FileID},
			})
		}
	}
	return json.Marshal(items)
}
