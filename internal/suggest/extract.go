package suggest

import (
	"encoding/json"
	"strings"

	"github.com/calebhs/canvas/internal/board"
)

// ExtractObject pulls the candidate JSON object out of a free-form reply:
// the substring from the first '{' to the last '}'. This is a greedy
// brace-delimited match, not a parser; whether the substring is valid JSON
// is the decoder's problem.
func ExtractObject(text string) (string, bool) {
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start == -1 || end == -1 || end < start {
		return "", false
	}
	return text[start : end+1], true
}

// DecodeBoardReply decodes a bulk-generation reply into per-category idea
// strings. Only keys whose value is an array of strings are kept; anything
// else in the object is ignored. A non-empty reason means nothing could be
// decoded and the board must stay unchanged.
func DecodeBoardReply(text string) (map[board.Category][]string, string) {
	obj, ok := ExtractObject(text)
	if !ok {
		return nil, "no JSON object in reply text"
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal([]byte(obj), &raw); err != nil {
		return nil, "extracted text is not a JSON object: " + err.Error()
	}

	ideas := make(map[board.Category][]string)
	for key, value := range raw {
		var texts []string
		if err := json.Unmarshal(value, &texts); err != nil {
			continue
		}
		ideas[board.Category(key)] = texts
	}
	return ideas, ""
}

// DecodeChatReply decodes a conversational reply. On success the message
// and the trimmed, non-empty ideas come back. On any decode failure the
// raw text is used verbatim as the message with no ideas attached; an
// entirely empty reply degrades to a fixed conversational prompt. The
// second return carries the failure reason for diagnostics.
func DecodeChatReply(text string) (Reply, string) {
	reply := Reply{Message: defaultReply}

	obj, ok := ExtractObject(text)
	if !ok {
		if strings.TrimSpace(text) != "" {
			reply.Message = text
		}
		return reply, "no JSON object in reply text"
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal([]byte(obj), &raw); err != nil {
		if strings.TrimSpace(text) != "" {
			reply.Message = text
		}
		return reply, "extracted text is not a JSON object: " + err.Error()
	}

	// The two fields degrade independently: a bad ideas array does not
	// discard a good message, and vice versa.
	var message string
	if err := json.Unmarshal(raw["message"], &message); err == nil && message != "" {
		reply.Message = message
	}
	var ideas []string
	if err := json.Unmarshal(raw["ideas"], &ideas); err == nil {
		for _, idea := range ideas {
			if trimmed := strings.TrimSpace(idea); trimmed != "" {
				reply.Ideas = append(reply.Ideas, trimmed)
			}
		}
	}
	return reply, ""
}
