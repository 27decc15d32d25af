// Package client talks to the hosted Postgres REST interface (Supabase) the
// old dashboard used directly. The service itself never calls it; the
// legacy-import script does, to pull existing rows into the local database.
//
// The contract is kept exactly as the dashboard's shim had it: one generic
// request function that returns a parsed JSON array or nil — never an error.
// Callers nil-check. Failures of every kind (missing credentials, transport,
// non-2xx, non-JSON body) are logged and collapse to nil.
package client

import (
	"bytes"
	"encoding/json"
	"io"
	"log"
	"net/http"
)

type Client struct {
	baseURL string
	key     string
	http    *http.Client
}

func New(baseURL, key string) *Client {
	return &Client{baseURL: baseURL, key: key, http: http.DefaultClient}
}

// Request issues one REST call against a table or view. query is the raw
// filter string, e.g. "?select=*&order=full_name" or "?status=eq.pending".
// DELETE returns an empty non-nil slice on success; every failure returns nil.
func (c *Client) Request(table, method string, body any, query string) []json.RawMessage {
	if c.baseURL == "" || c.key == "" {
		log.Printf("legacy client: credentials missing, skipping %s %s", method, table)
		return nil
	}

	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			log.Printf("legacy client: marshal %s: %v", table, err)
			return nil
		}
		rd = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, c.baseURL+"/rest/v1/"+table+query, rd)
	if err != nil {
		log.Printf("legacy client: %s %s: %v", method, table, err)
		return nil
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("apikey", c.key)
	req.Header.Set("Authorization", "Bearer "+c.key)
	req.Header.Set("Prefer", "return=representation")

	res, err := c.http.Do(req)
	if err != nil {
		log.Printf("legacy client: %s %s: %v", method, table, err)
		return nil
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		msg, _ := io.ReadAll(res.Body)
		log.Printf("legacy client: %s %s: status %d: %s", method, table, res.StatusCode, msg)
		return nil
	}

	if method == http.MethodDelete {
		return []json.RawMessage{}
	}

	var out []json.RawMessage
	if err := json.NewDecoder(res.Body).Decode(&out); err != nil {
		log.Printf("legacy client: %s %s: decode: %v", method, table, err)
		return nil
	}
	return out
}
