package yahoo

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/etnz/rebalance/date"
)

// chartPayload is a trimmed real response from the chart API: three trading
// days, the middle close is null (a halted day).
const chartPayload = `{
  "chart": {
    "result": [{
      "timestamp": [1748841000, 1748927400, 1749013800],
      "indicators": {"quote": [{"close": [644.05, null, 645.30]}]}
    }],
    "error": null
  }
}`

func TestParseChart(t *testing.T) {
	var c chart
	if err := json.Unmarshal([]byte(chartPayload), &c); err != nil {
		t.Fatalf("unmarshal chart payload: %v", err)
	}
	h, err := parseChart(&c, "SPY")
	if err != nil {
		t.Fatalf("parseChart() error = %v", err)
	}
	// the null close is dropped, the two real ones survive.
	if h.Len() != 2 {
		t.Fatalf("parseChart() kept %d closes, want 2", h.Len())
	}
	on, close := h.Latest()
	if want := date.FromTime(time.Unix(1749013800, 0)); on != want {
		t.Errorf("Latest() day = %s, want %s", on, want)
	}
	if close != 645.30 {
		t.Errorf("Latest() close = %v, want 645.30", close)
	}
}

func TestParseChart_Errors(t *testing.T) {
	testCases := []struct {
		name    string
		payload string
	}{
		{"api error", `{"chart":{"result":null,"error":{"code":"Not Found","description":"No data found, symbol may be delisted"}}}`},
		{"no result", `{"chart":{"result":[],"error":null}}`},
		{"no quote", `{"chart":{"result":[{"timestamp":[1748841000],"indicators":{"quote":[]}}],"error":null}}`},
		{"mismatched lengths", `{"chart":{"result":[{"timestamp":[1748841000,1748927400],"indicators":{"quote":[{"close":[644.05]}]}}],"error":null}}`},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var c chart
			if err := json.Unmarshal([]byte(tc.payload), &c); err != nil {
				t.Fatalf("unmarshal chart payload: %v", err)
			}
			if _, err := parseChart(&c, "SPY"); err == nil {
				t.Errorf("parseChart(%s) accepted a bad payload", tc.name)
			}
		})
	}
}

func TestJwget(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("User-Agent") == "" || r.Header.Get("User-Agent") == "Go-http-client/1.1" {
			// yahoo rejects the default go user agent, so must this fake.
			http.Error(w, "bad agent", http.StatusForbidden)
			return
		}
		w.Write([]byte(`{"answer": 42}`))
	}))
	defer server.Close()

	var data struct {
		Answer int `json:"answer"`
	}
	if err := jwget(server.Client(), server.URL, &data); err != nil {
		t.Fatalf("jwget() error = %v", err)
	}
	if data.Answer != 42 {
		t.Errorf("jwget() decoded %+v, want answer 42", data)
	}
}

func TestJwget_HTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "too many requests", http.StatusTooManyRequests)
	}))
	defer server.Close()

	var data any
	if err := jwget(server.Client(), server.URL, &data); err == nil {
		t.Errorf("jwget() accepted a %d response", http.StatusTooManyRequests)
	}
}
