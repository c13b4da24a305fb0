package response

import (
	"encoding/json"
	"log/slog"

	"github.com/kaptinlin/jsonrepair"

	"github.com/GuptaDevansh-2004/ChabotAgentProject/core/jsonish"
	"github.com/GuptaDevansh-2004/ChabotAgentProject/internal/textutil"
)

// DefaultAnswer is returned when the model output holds no usable answer.
const DefaultAnswer = "Apology cannot generate answer... Please try again"

// ChatResponse is the answer schema the model is instructed to emit.
type ChatResponse struct {
	// Answer is the text response for the query.
	Answer string `json:"answer"`
	// Images lists image references related to the answer.
	Images []string `json:"images"`
	// WasContextValid indicates whether the supplied context fully
	// produced the answer.
	WasContextValid bool `json:"was_context_valid"`
	// IsFollowUp indicates whether the answer continues the current chat
	// session rather than standing alone.
	IsFollowUp bool `json:"is_follow_up"`
}

// defaultChatResponse carries the per-field defaults. Unmarshalling on top of
// it leaves absent fields at these values, which is exactly the semantics of
// reading each field with a fallback.
func defaultChatResponse() ChatResponse {
	return ChatResponse{
		Answer:          DefaultAnswer,
		Images:          []string{},
		WasContextValid: true,
		IsFollowUp:      false,
	}
}

// DecodeChat decodes model output into a [ChatResponse] and never fails. The
// layers of [DecodeAs] run in order; when every layer is exhausted the
// defaults are returned whole, so callers always get a presentable answer.
func DecodeChat(content string) ChatResponse {
	out := defaultChatResponse()
	if err := json.Unmarshal([]byte(content), &out); err == nil {
		return normalizeChat(out)
	}

	out = defaultChatResponse()
	if repaired, err := jsonrepair.JSONRepair(content); err == nil {
		if err := json.Unmarshal([]byte(repaired), &out); err == nil {
			return normalizeChat(out)
		}
		out = defaultChatResponse()
	}

	slog.Debug("chat response not valid JSON, recovering structure",
		slog.String("content", textutil.TruncateStringDefault(content)))
	recovered, err := jsonish.ParseOne(content, jsonish.DefaultOptions())
	if err != nil {
		return defaultChatResponse()
	}
	return chatFromValue(recovered)
}

// chatFromValue extracts the chat fields from a recovered value, applying the
// per-field defaults for anything missing or of the wrong shape. A recovered
// value that is not an object at all becomes the answer text itself.
func chatFromValue(v jsonish.Value) ChatResponse {
	out := defaultChatResponse()
	obj, ok := v.Object()
	if !ok {
		if text, isText := v.Text(); isText && text != "" {
			out.Answer = text
		}
		return out
	}

	if answer, found := obj.Get("answer"); found {
		if text, isText := answer.Text(); isText {
			out.Answer = text
		} else if !answer.IsNull() {
			out.Answer = answer.String()
		}
	}
	if images, found := obj.Get("images"); found {
		for _, item := range images.Items() {
			if text, isText := item.Text(); isText {
				out.Images = append(out.Images, text)
			} else {
				out.Images = append(out.Images, item.String())
			}
		}
	}
	if valid, found := obj.Get("was_context_valid"); found {
		if b, isBool := valid.Bool(); isBool {
			out.WasContextValid = b
		}
	}
	if follow, found := obj.Get("is_follow_up"); found {
		if b, isBool := follow.Bool(); isBool {
			out.IsFollowUp = b
		}
	}
	return normalizeChat(out)
}

// normalizeChat restores field defaults a successful unmarshal may have
// clobbered with explicit null values.
func normalizeChat(out ChatResponse) ChatResponse {
	if out.Images == nil {
		out.Images = []string{}
	}
	return out
}
