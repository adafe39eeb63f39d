package services

import (
	"encoding/json"
	"io/ioutil"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestHttpRequestSendsJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Content-Type") != "application/json" {
			t.Errorf("content type: %q", r.Header.Get("Content-Type"))
		}
		if r.Header.Get("X-Task") != "crash" {
			t.Errorf("header: %q", r.Header.Get("X-Task"))
		}
		body, _ := ioutil.ReadAll(r.Body)
		var payload map[string]string
		if err := json.Unmarshal(body, &payload); err != nil || payload["service"] != "macro" {
			t.Errorf("body: %s", body)
		}
		w.Write([]byte(`{"ok":true}`))
	}))
	defer server.Close()

	body, err := HttpRequest(http.MethodPost, server.URL, map[string]string{"X-Task": "crash"}, map[string]string{"service": "macro"})
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if string(body) != `{"ok":true}` {
		t.Fatalf("body: %s", body)
	}
}
