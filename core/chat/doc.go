// Package chat prepares conversation history for a model request. Messages
// are windowed to the most recent entries, filtered to the roles the model
// accepts, and their content is normalised: HTML becomes Markdown and
// whitespace is tidied so prompts stay compact.
package chat
