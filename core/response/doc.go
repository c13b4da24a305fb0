// Package response turns raw model output into typed Go values.
//
// Model output that should be JSON frequently is not, so decoding is layered:
// [DecodeAs] tries a direct unmarshal, then repairs the text with jsonrepair
// and retries, and finally hands the text to the recovering parser in
// [github.com/GuptaDevansh-2004/ChabotAgentProject/core/jsonish] and
// unmarshals its canonical JSON form. [DecodeChat] applies the same layering
// to the chat answer schema and never fails: fields the model omitted or
// mangled fall back to their documented defaults.
package response
