package querystring

import (
	"net/url"
	"testing"
)

func TestEscapeComponent(t *testing.T) {
	cases := map[string]string{
		"a b&c":     "a%20b%26c",
		"phở bò":    "ph%E1%BB%9F%20b%C3%B2",
		"50%=off?":  "50%25%3Doff%3F",
		"plain":     "plain",
		"":          "",
		"a+b":       "a%2Bb",
		"bún (chả)": "b%C3%BAn%20%28ch%E1%BA%A3%29",
	}
	for input, expected := range cases {
		if got := EscapeComponent(input); got != expected {
			t.Fatalf("EscapeComponent(%q) expected %q got %q", input, expected, got)
		}
		if decoded, err := url.PathUnescape(EscapeComponent(input)); err != nil || decoded != input {
			t.Fatalf("EscapeComponent(%q) does not decode back: %q, %v", input, decoded, err)
		}
	}
}

func TestSettersSkipUnsetValues(t *testing.T) {
	values := url.Values{}
	SetInt(values, "page", 0)
	SetString(values, "search", "  ")
	SetBool(values, "is_available", nil)
	if len(values) != 0 {
		t.Fatalf("expected no parameters, got %q", values.Encode())
	}

	no := false
	SetInt(values, "page", 2)
	SetString(values, "search", "pho")
	SetBool(values, "is_available", &no)
	if got := values.Encode(); got != "is_available=false&page=2&search=pho" {
		t.Fatalf("unexpected encoding: %s", got)
	}
}
