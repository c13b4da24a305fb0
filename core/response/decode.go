package response

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/kaptinlin/jsonrepair"

	"github.com/GuptaDevansh-2004/ChabotAgentProject/core/jsonish"
	"github.com/GuptaDevansh-2004/ChabotAgentProject/internal/textutil"
)

// ErrUndecodable reports that content could not be decoded into the target
// type by any layer.
var ErrUndecodable = errors.New("response: content not decodable")

// DecodeAs decodes model output into T. Three layers run in order: a direct
// JSON unmarshal, a jsonrepair pass followed by a retry, and finally the
// recovering parser, whose result is re-encoded as canonical JSON and
// unmarshalled. An error means even the recovered form did not fit T.
func DecodeAs[T any](content string) (T, error) {
	var result T

	if err := json.Unmarshal([]byte(content), &result); err == nil {
		return result, nil
	}

	slog.Debug("direct unmarshal failed, repairing JSON",
		slog.String("content", textutil.TruncateStringDefault(content)))
	if repaired, err := jsonrepair.JSONRepair(content); err == nil {
		if err := json.Unmarshal([]byte(repaired), &result); err == nil {
			return result, nil
		}
	}

	slog.Debug("repair pass failed, recovering structure")
	recovered, err := jsonish.ParseOne(content, jsonish.DefaultOptions())
	if err != nil {
		return result, fmt.Errorf("%w: %v", ErrUndecodable, err)
	}
	encoded, err := json.Marshal(recovered)
	if err != nil {
		return result, fmt.Errorf("%w: %v", ErrUndecodable, err)
	}
	if err := json.Unmarshal(encoded, &result); err != nil {
		return result, fmt.Errorf("%w: recovered value does not fit %T: %v", ErrUndecodable, result, err)
	}
	return result, nil
}
