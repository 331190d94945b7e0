// Package yahoo fetches daily closing prices and latest quotes from the
// Yahoo Finance chart API. It is the market-data collaborator of the
// rebalance package: prices come out of here, all computation happens there.
package yahoo

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/http"
	"time"

	"github.com/PaesslerAG/jsonpath"
	"github.com/etnz/rebalance/date"
)

const chartURL = "https://query1.finance.yahoo.com/v8/finance/chart/%s?interval=1d&period1=%d&period2=%d"
const quoteURL = "https://query1.finance.yahoo.com/v8/finance/chart/%s?interval=1d&range=1d"

// chart is the subset of the Yahoo chart API response we read.
type chart struct {
	Chart struct {
		Result []struct {
			Timestamp  []int64 `json:"timestamp"`
			Indicators struct {
				Quote []struct {
					Close []float64 `json:"close"`
				} `json:"quote"`
			} `json:"indicators"`
		} `json:"result"`
		Error *struct {
			Code        string `json:"code"`
			Description string `json:"description"`
		} `json:"error"`
	} `json:"chart"`
}

// Daily fetches the daily closing prices of a ticker between from and to,
// boundaries included. Days without a close (market holidays, nulls in the
// payload) are skipped.
func Daily(ticker string, from, to date.Date) (*date.History, error) {
	addr := fmt.Sprintf(chartURL, ticker, from.Unix(), to.Add(1).Unix())

	var c chart
	if err := jwget(daily(), addr, &c); err != nil {
		return nil, fmt.Errorf("cannot fetch prices for %q: %w", ticker, err)
	}
	return parseChart(&c, ticker)
}

// parseChart converts a chart API response into a daily price history.
func parseChart(c *chart, ticker string) (*date.History, error) {
	if c.Chart.Error != nil {
		return nil, fmt.Errorf("cannot fetch prices for %q: %s: %s", ticker, c.Chart.Error.Code, c.Chart.Error.Description)
	}
	if len(c.Chart.Result) == 0 {
		return nil, fmt.Errorf("no results returned for %q", ticker)
	}

	result := c.Chart.Result[0]
	if len(result.Indicators.Quote) == 0 {
		return nil, fmt.Errorf("no close prices returned for %q", ticker)
	}
	closes := result.Indicators.Quote[0].Close
	if len(closes) != len(result.Timestamp) {
		return nil, fmt.Errorf("mismatched data lengths for %q: %d closes for %d days", ticker, len(closes), len(result.Timestamp))
	}

	h := &date.History{}
	for i, ts := range result.Timestamp {
		close := closes[i]
		if close == 0 || math.IsNaN(close) {
			continue
		}
		h.Append(date.FromTime(time.Unix(ts, 0)), close)
	}
	return h, nil
}

// Latest fetches the latest traded price of a ticker, intraday when the
// market is open.
func Latest(ticker string) (float64, error) {
	addr := fmt.Sprintf(quoteURL, ticker)

	var jobj any
	if err := jwget(new(http.Client), addr, &jobj); err != nil {
		return math.NaN(), fmt.Errorf("cannot fetch quote for %q: %w", ticker, err)
	}
	path := "$.chart.result[0].meta.regularMarketPrice"
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return math.NaN(), fmt.Errorf("cannot parse quote for %q: %q %w", ticker, path, err)
	}
	// jsonpath is never clear about whether it returns a list of 1 answer
	// or a single answer: keep the first one if any.
	if jlist, ok := jval.([]any); ok && len(jlist) > 0 {
		jval = jlist[0]
	}
	val, ok := jval.(float64)
	if !ok {
		return math.NaN(), fmt.Errorf("cannot parse quote for %q: %q not a float: %v", ticker, path, jval)
	}
	return val, nil
}

// jwget performs an HTTP GET request and unmarshals the JSON response into
// the provided data structure.
func jwget(client *http.Client, addr string, data interface{}) error {
	req, err := http.NewRequest(http.MethodGet, addr, nil)
	if err != nil {
		return err
	}
	// yahoo rejects the default go user agent.
	req.Header.Set("User-Agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36")
	req.Header.Set("Accept", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("cannot http GET %v/%v: %v", resp.Request.URL.Host, resp.Request.URL.Path, resp.Status)
	}
	var buf bytes.Buffer
	_, err = io.Copy(&buf, resp.Body)
	if err != nil {
		return err
	}
	resp.Body.Close()
	return json.Unmarshal(buf.Bytes(), data)
}
