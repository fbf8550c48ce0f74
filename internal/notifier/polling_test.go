package notifier

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"
)

func TestCommandText(t *testing.T) {
	msg := func(text string) chatUpdate {
		u := chatUpdate{UpdateID: 1}
		u.Message = &struct {
			Text string `json:"text"`
		}{Text: text}
		return u
	}

	for _, tc := range []struct {
		text string
		want string
		ok   bool
	}{
		{"/predict", "/predict", true},
		{"  /gate  ", "/gate", true},
		{"/gate@TrendSentinelBot", "/gate", true},
		{"hello there", "", false},
		{"", "", false},
	} {
		got, ok := commandText(msg(tc.text))
		if ok != tc.ok || got != tc.want {
			t.Errorf("commandText(%q) = %q, %v; want %q, %v", tc.text, got, ok, tc.want, tc.ok)
		}
	}
	if _, ok := commandText(chatUpdate{UpdateID: 1}); ok {
		t.Error("update without message must not yield a command")
	}
}

func TestStartPolling_RoutesCommands(t *testing.T) {
	var mu sync.Mutex
	pollCalls := 0
	replies := make(chan string, 1)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case strings.Contains(r.URL.Path, "getUpdates"):
			mu.Lock()
			pollCalls++
			first := pollCalls == 1
			mu.Unlock()
			if first {
				// One chatter message to ignore, one real command.
				fmt.Fprint(w, `{"ok":true,"result":[
					{"update_id":7,"message":{"text":"hello"}},
					{"update_id":8,"message":{"text":"/gate@TrendSentinelBot"}}
				]}`)
			} else {
				fmt.Fprint(w, `{"ok":true,"result":[]}`)
			}
		case strings.Contains(r.URL.Path, "sendMessage"):
			var payload map[string]string
			if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
				t.Errorf("decode sendMessage payload: %v", err)
			}
			select {
			case replies <- payload["text"]:
			default:
			}
			fmt.Fprint(w, `{"ok":true}`)
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	tn := NewTelegramNotifier("test-token", "chat", "")
	tn.APIBase = srv.URL

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	commands := make(chan string, 4)
	done := make(chan struct{})
	go func() {
		tn.StartPolling(ctx, func(cmd string) string {
			commands <- cmd
			return "🔴 Market session is closed (WEEKEND)"
		})
		close(done)
	}()

	select {
	case cmd := <-commands:
		if cmd != "/gate" {
			t.Errorf("command = %q, want /gate", cmd)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("handler was not invoked")
	}

	select {
	case reply := <-replies:
		if !strings.Contains(reply, "session is closed") {
			t.Errorf("reply = %q", reply)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("reply was not sent back through the bot")
	}

	select {
	case cmd := <-commands:
		t.Errorf("non-command chatter reached the handler: %q", cmd)
	default:
	}

	cancel()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("polling did not stop on context cancel")
	}
}
