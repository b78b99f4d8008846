package meta

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/goccy/go-json"

	"adpilot/internal/config/configs"
)

type graphCall struct {
	Op     string
	Method string
	Path   string
	Form   url.Values
	Body   []byte
}

// fakeGraph stands in for the Graph API. Responses are keyed by operation
// name; fail maps an operation to the status it should answer with.
type fakeGraph struct {
	t    *testing.T
	mu   sync.Mutex
	srv  *httptest.Server
	fail map[string]int

	calls     []graphCall
	insights  map[string]string // date_preset -> raw JSON body
	geoResult string
	amount    string
}

func newFakeGraph(t *testing.T) *fakeGraph {
	t.Helper()
	g := &fakeGraph{t: t, fail: map[string]int{}, insights: map[string]string{}}
	g.srv = httptest.NewServer(http.HandlerFunc(g.serve))
	t.Cleanup(g.srv.Close)
	return g
}

func (g *fakeGraph) client() *Client {
	return NewClient(configs.Meta{
		BaseURL:          g.srv.URL,
		Timeout:          5 * time.Second,
		DefaultGeoKey:    "2514815",
		DefaultObjective: "OUTCOME_TRAFFIC",
	}, slog.New(slog.DiscardHandler))
}

func (g *fakeGraph) opFor(r *http.Request) string {
	path := r.URL.Path
	switch {
	case r.Method == http.MethodDelete:
		return "delete"
	case strings.HasSuffix(path, "/campaigns"):
		return "campaign"
	case strings.HasSuffix(path, "/adsets"):
		return "adset"
	case strings.HasSuffix(path, "/adcreatives"):
		if r.Form.Get("object_story_spec") != "" {
			return "creative"
		}
		return "post_creative"
	case strings.HasSuffix(path, "/ads"):
		return "ad"
	case strings.HasSuffix(path, "/insights"):
		return "insights"
	case strings.HasSuffix(path, "/promotions"):
		return "boost"
	case path == "/me":
		return "me"
	case path == "/search":
		return "search"
	case strings.HasPrefix(path, "/act_") && r.Method == http.MethodGet:
		return "account"
	case r.Method == http.MethodPost:
		return "status"
	}
	return "unknown"
}

func (g *fakeGraph) serve(w http.ResponseWriter, r *http.Request) {
	var body []byte
	if r.Header.Get("Content-Type") == "application/json" {
		body, _ = io.ReadAll(r.Body)
	} else {
		_ = r.ParseForm()
	}
	op := g.opFor(r)

	g.mu.Lock()
	g.calls = append(g.calls, graphCall{Op: op, Method: r.Method, Path: r.URL.Path, Form: r.Form, Body: body})
	status, failing := g.fail[op]
	g.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	if failing {
		w.WriteHeader(status)
		_, _ = w.Write([]byte(`{"error":{"message":"` + op + ` rejected","type":"OAuthException","code":100}}`))
		return
	}

	switch op {
	case "campaign":
		_, _ = w.Write([]byte(`{"id":"cmp_1"}`))
	case "adset":
		_, _ = w.Write([]byte(`{"id":"set_1"}`))
	case "creative":
		_, _ = w.Write([]byte(`{"id":"cr_link"}`))
	case "post_creative":
		_, _ = w.Write([]byte(`{"id":"cr_post"}`))
	case "ad":
		_, _ = w.Write([]byte(`{"id":"ad_1"}`))
	case "status", "delete":
		_, _ = w.Write([]byte(`{"success":true}`))
	case "boost":
		_, _ = w.Write([]byte(`{"ad_id":"boost_1"}`))
	case "me":
		_, _ = w.Write([]byte(`{"id":"page_1"}`))
	case "account":
		_, _ = w.Write([]byte(`{"id":"act_1","amount_spent":"` + g.amount + `"}`))
	case "search":
		if g.geoResult == "" {
			_, _ = w.Write([]byte(`{"data":[]}`))
			return
		}
		_, _ = w.Write([]byte(g.geoResult))
	case "insights":
		if raw, ok := g.insights[r.URL.Query().Get("date_preset")]; ok {
			_, _ = w.Write([]byte(raw))
			return
		}
		_, _ = w.Write([]byte(`{"data":[]}`))
	default:
		w.WriteHeader(http.StatusNotFound)
	}
}

func (g *fakeGraph) ops() []string {
	g.mu.Lock()
	defer g.mu.Unlock()
	out := make([]string, 0, len(g.calls))
	for _, c := range g.calls {
		out = append(out, c.Op)
	}
	return out
}

// deleted returns the object ids of DELETE calls in order.
func (g *fakeGraph) deleted() []string {
	g.mu.Lock()
	defer g.mu.Unlock()
	var out []string
	for _, c := range g.calls {
		if c.Method == http.MethodDelete {
			out = append(out, strings.TrimPrefix(c.Path, "/"))
		}
	}
	return out
}

func (g *fakeGraph) callsOf(op string) []graphCall {
	g.mu.Lock()
	defer g.mu.Unlock()
	var out []graphCall
	for _, c := range g.calls {
		if c.Op == op {
			out = append(out, c)
		}
	}
	return out
}

func decodeJSON(t *testing.T, raw []byte, v any) {
	t.Helper()
	if err := json.Unmarshal(raw, v); err != nil {
		t.Fatalf("decode %s: %v", raw, err)
	}
}
