// Package querystring holds the helpers list filters use to emit only the parameters a caller set.
package querystring

import (
	"net/url"
	"strconv"
	"strings"
)

// SetInt sets key when value is positive.
func SetInt(values url.Values, key string, value int) {
	if value <= 0 {
		return
	}
	values.Set(key, strconv.Itoa(value))
}

// SetString sets key when value is not blank. The value is sent untrimmed.
func SetString(values url.Values, key, value string) {
	if strings.TrimSpace(value) == "" {
		return
	}
	values.Set(key, value)
}

// SetBool sets key when value is non-nil, so an explicit false is still sent.
func SetBool(values url.Values, key string, value *bool) {
	if value == nil {
		return
	}
	values.Set(key, strconv.FormatBool(*value))
}

// EscapeComponent percent-encodes s into a form equivalent to encodeURIComponent: spaces
// become %20 rather than '+', and reserved characters such as '&' and '=' are escaped.
// Unlike encodeURIComponent it also escapes !'()*, which decode to the same text.
func EscapeComponent(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
