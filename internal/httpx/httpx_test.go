package httpx

import (
	"errors"
	"net/url"
	"strings"
	"testing"
)

func TestDecodeJSONRejectsTrailingData(t *testing.T) {
	var v struct {
		Name string `json:"name"`
	}
	if err := DecodeJSON(strings.NewReader(`{"name":"a"}`), &v); err != nil {
		t.Fatalf("DecodeJSON error: %v", err)
	}
	if v.Name != "a" {
		t.Fatalf("unexpected name %q", v.Name)
	}
	if err := DecodeJSON(strings.NewReader(`{"name":"a"}{"name":"b"}`), &v); err == nil {
		t.Fatalf("expected error for two objects")
	}
	if err := DecodeJSON(strings.NewReader(`{"name":"a","extra":1}`), &v); err != nil {
		t.Fatalf("unknown fields should be ignored: %v", err)
	}
}

func TestTruncateError(t *testing.T) {
	if got := TruncateError(nil); got != "" {
		t.Fatalf("expected empty string, got %q", got)
	}
	long := errors.New(strings.Repeat("x", 80))
	if got := TruncateError(long); len(got) != 50 {
		t.Fatalf("expected 50 chars, got %d", len(got))
	}
	if got := TruncateError(errors.New("short")); got != "short" {
		t.Fatalf("unexpected %q", got)
	}
}

func TestParseLimitOffset(t *testing.T) {
	limit, offset, err := ParseLimitOffset(url.Values{"limit": {"500"}, "offset": {"10"}}, 20, 100)
	if err != nil {
		t.Fatalf("ParseLimitOffset error: %v", err)
	}
	if limit != 100 || offset != 10 {
		t.Fatalf("unexpected limit/offset %d/%d", limit, offset)
	}

	limit, offset, err = ParseLimitOffset(url.Values{}, 20, 100)
	if err != nil || limit != 20 || offset != 0 {
		t.Fatalf("unexpected defaults %d/%d (%v)", limit, offset, err)
	}

	if _, _, err := ParseLimitOffset(url.Values{"limit": {"0"}}, 20, 100); err == nil {
		t.Fatalf("expected invalid limit")
	}
	if _, _, err := ParseLimitOffset(url.Values{"offset": {"-1"}}, 20, 100); err == nil {
		t.Fatalf("expected invalid offset")
	}
}
