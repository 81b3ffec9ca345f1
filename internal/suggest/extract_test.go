package suggest

import (
	"testing"

	"github.com/calebhs/canvas/internal/board"
)

func TestExtractObject(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
		ok   bool
	}{
		{"bare object", `{"a":1}`, `{"a":1}`, true},
		{"prose around object", `Here you go: {"a":1} hope it helps`, `{"a":1}`, true},
		{"greedy across braces", `{"a":{"b":2}} trailing {"c":3}`, `{"a":{"b":2}} trailing {"c":3}`, true},
		{"no braces", "Sorry, I can't help", "", false},
		{"only open brace", "start { end", "", false},
		{"close before open", "} then {", "", false},
		{"empty", "", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ExtractObject(tt.text)
			if ok != tt.ok || got != tt.want {
				t.Errorf("ExtractObject(%q) = (%q, %v), want (%q, %v)", tt.text, got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestDecodeBoardReply(t *testing.T) {
	text := `Here you go: {"content":["Draft emails"],"automation":["Schedule reports"]}`
	ideas, reason := DecodeBoardReply(text)
	if reason != "" {
		t.Fatalf("reason = %q, want success", reason)
	}
	if len(ideas) != 2 {
		t.Fatalf("ideas = %v, want two categories", ideas)
	}
	if got := ideas[board.CategoryContent]; len(got) != 1 || got[0] != "Draft emails" {
		t.Errorf("content = %v", got)
	}
	if got := ideas[board.CategoryAutomation]; len(got) != 1 || got[0] != "Schedule reports" {
		t.Errorf("automation = %v", got)
	}
}

func TestDecodeBoardReply_NoBraces(t *testing.T) {
	ideas, reason := DecodeBoardReply("Sorry, I can't help")
	if reason == "" || ideas != nil {
		t.Errorf("DecodeBoardReply = (%v, %q), want failure", ideas, reason)
	}
}

func TestDecodeBoardReply_MalformedJSON(t *testing.T) {
	_, reason := DecodeBoardReply(`{"content": ["unterminated"}`)
	if reason == "" {
		t.Error("malformed JSON should report a reason")
	}
}

func TestDecodeBoardReply_NonArrayValuesIgnored(t *testing.T) {
	ideas, reason := DecodeBoardReply(`{"content":["Draft emails"],"note":"not an array","count":3}`)
	if reason != "" {
		t.Fatalf("reason = %q, want success", reason)
	}
	if len(ideas) != 1 {
		t.Errorf("ideas = %v, want only the array key", ideas)
	}
}

func TestDecodeChatReply(t *testing.T) {
	text := `{"message":"What's your biggest bottleneck?","ideas":["Automate weekly status email","Build a dashboard"]}`
	reply, reason := DecodeChatReply(text)
	if reason != "" {
		t.Fatalf("reason = %q, want success", reason)
	}
	if reply.Message != "What's your biggest bottleneck?" {
		t.Errorf("Message = %q", reply.Message)
	}
	if len(reply.Ideas) != 2 || reply.Ideas[0] != "Automate weekly status email" || reply.Ideas[1] != "Build a dashboard" {
		t.Errorf("Ideas = %v, want both in order", reply.Ideas)
	}
}

func TestDecodeChatReply_TrimsAndDropsEmptyIdeas(t *testing.T) {
	reply, _ := DecodeChatReply(`{"message":"Hi","ideas":["  padded  ","","   "]}`)
	if len(reply.Ideas) != 1 || reply.Ideas[0] != "padded" {
		t.Errorf("Ideas = %v, want [padded]", reply.Ideas)
	}
}

func TestDecodeChatReply_NoBracesUsesRawText(t *testing.T) {
	reply, reason := DecodeChatReply("Just plain advice, no JSON here")
	if reason == "" {
		t.Error("missing object should report a reason")
	}
	if reply.Message != "Just plain advice, no JSON here" {
		t.Errorf("Message = %q, want raw text verbatim", reply.Message)
	}
	if reply.Ideas != nil {
		t.Errorf("Ideas = %v, want none", reply.Ideas)
	}
}

func TestDecodeChatReply_EmptyTextUsesDefault(t *testing.T) {
	reply, _ := DecodeChatReply("")
	if reply.Message != defaultReply {
		t.Errorf("Message = %q, want default", reply.Message)
	}
}

func TestDecodeChatReply_MissingMessageKeepsDefault(t *testing.T) {
	reply, reason := DecodeChatReply(`{"ideas":["One idea"]}`)
	if reason != "" {
		t.Fatalf("reason = %q, want success", reason)
	}
	if reply.Message != defaultReply {
		t.Errorf("Message = %q, want default", reply.Message)
	}
	if len(reply.Ideas) != 1 {
		t.Errorf("Ideas = %v", reply.Ideas)
	}
}

func TestDecodeChatReply_BadIdeasKeepsMessage(t *testing.T) {
	reply, _ := DecodeChatReply(`{"message":"Still useful","ideas":"not an array"}`)
	if reply.Message != "Still useful" {
		t.Errorf("Message = %q", reply.Message)
	}
	if reply.Ideas != nil {
		t.Errorf("Ideas = %v, want none", reply.Ideas)
	}
}
