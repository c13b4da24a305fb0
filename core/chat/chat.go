package chat

import (
	"strings"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"
	"golang.org/x/net/html"

	"github.com/GuptaDevansh-2004/ChabotAgentProject/internal/textutil"
)

// Roles accepted in conversation history. Assistant is an alias for model and
// is rewritten to it during preparation.
const (
	RoleUser      = "user"
	RoleModel     = "model"
	RoleAssistant = "assistant"
)

// Message is one turn of a conversation.
type Message struct {
	// Role is the actor providing the content.
	Role string `json:"role"`
	// Content is the message text.
	Content string `json:"content"`
}

// PrepareHistory returns the request-ready form of history: the last
// maxMessages entries, messages with unknown roles dropped, assistant
// rewritten to model, and each content passed through [PrepareContent].
// A maxMessages of zero or less keeps the whole history.
func PrepareHistory(history []Message, maxMessages int) []Message {
	if maxMessages > 0 && len(history) > maxMessages {
		history = history[len(history)-maxMessages:]
	}
	out := make([]Message, 0, len(history))
	for _, msg := range history {
		role, ok := canonicalRole(msg.Role)
		if !ok {
			continue
		}
		out = append(out, Message{
			Role:    role,
			Content: PrepareContent(msg.Content),
		})
	}
	return out
}

func canonicalRole(role string) (string, bool) {
	switch strings.ToLower(role) {
	case RoleUser:
		return RoleUser, true
	case RoleModel, RoleAssistant:
		return RoleModel, true
	}
	return "", false
}

// PrepareContent normalises one message body. Content that parses as HTML
// markup is converted to Markdown first; conversion failures keep the
// original text. Whitespace is then tidied in either case.
func PrepareContent(content string) string {
	if looksLikeHTML(content) {
		if markdown, err := htmltomarkdown.ConvertString(content); err == nil {
			content = markdown
		}
	}
	return textutil.NormalizeContent(content)
}

// looksLikeHTML reports whether s contains actual markup elements. The
// parser wraps any input in html, head, and body nodes, so only elements
// beyond that scaffolding count.
func looksLikeHTML(s string) bool {
	if !strings.Contains(s, "<") {
		return false
	}
	root, err := html.Parse(strings.NewReader(s))
	if err != nil {
		return false
	}
	return hasRealElement(root)
}

func hasRealElement(n *html.Node) bool {
	if n.Type == html.ElementNode {
		switch n.Data {
		case "html", "head", "body":
		default:
			return true
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if hasRealElement(c) {
			return true
		}
	}
	return false
}
