package logging

import (
	"log/slog"
	"regexp"
	"strings"
)

// Redactor masks credentials in log output.
type Redactor struct {
	patterns []*redactPattern
}

// redactPattern contains a compiled regex and replacement string.
type redactPattern struct {
	name        string
	regex       *regexp.Regexp
	replacement string
}

// Pattern names.
const (
	PatternAPIKey      = "api_key"
	PatternBearerToken = "bearer_token"
	PatternHeaderKey   = "header_key"
)

// sensitiveKeys are key fragments whose values are always masked.
var sensitiveKeys = []string{
	"api_key", "apikey", "api-key",
	"authorization", "secret", "password",
}

// NewRedactor creates a Redactor with the built-in credential patterns.
func NewRedactor() *Redactor {
	defs := []struct {
		name        string
		regex       string
		replacement string
	}{
		// OpenAI (sk-, sk-proj-) and Anthropic (sk-ant-) keys
		{PatternAPIKey, `sk-[a-zA-Z0-9_\-]{8,}`, "sk-***"},
		{PatternBearerToken, `Bearer\s+[a-zA-Z0-9\-._~+/]+=*`, "Bearer ***"},
		{PatternHeaderKey, `(?i)(x-api-key["']?\s*[:=]\s*["']?)[^\s"',]+`, "${1}***"},
	}

	r := &Redactor{}
	for _, d := range defs {
		r.patterns = append(r.patterns, &redactPattern{
			name:        d.name,
			regex:       regexp.MustCompile(d.regex),
			replacement: d.replacement,
		})
	}
	return r
}

// RedactString masks every credential pattern found in value.
func (r *Redactor) RedactString(value string) string {
	if value == "" {
		return value
	}

	for _, p := range r.patterns {
		value = p.regex.ReplaceAllString(value, p.replacement)
	}
	return value
}

// RedactAttr returns a with secrets masked. Values under a sensitive key are
// replaced wholesale; other strings and errors are pattern-scanned; groups
// are processed recursively.
func (r *Redactor) RedactAttr(a slog.Attr) slog.Attr {
	a.Value = a.Value.Resolve()

	switch a.Value.Kind() {
	case slog.KindGroup:
		group := a.Value.Group()
		redacted := make([]slog.Attr, len(group))
		for i, ga := range group {
			redacted[i] = r.RedactAttr(ga)
		}
		return slog.Attr{Key: a.Key, Value: slog.GroupValue(redacted...)}

	case slog.KindString:
		if isSensitiveKey(a.Key) {
			return slog.String(a.Key, RedactAPIKey(a.Value.String()))
		}
		return slog.String(a.Key, r.RedactString(a.Value.String()))

	case slog.KindAny:
		if err, ok := a.Value.Any().(error); ok {
			return slog.String(a.Key, r.RedactString(err.Error()))
		}
	}

	if isSensitiveKey(a.Key) {
		return slog.String(a.Key, "***")
	}
	return a
}

// isSensitiveKey checks if a key name indicates a credential.
// "token" and "*_token" match; counters such as "prompt_tokens" do not.
func isSensitiveKey(key string) bool {
	lowerKey := strings.ToLower(key)
	if lowerKey == "token" || strings.HasSuffix(lowerKey, "_token") {
		return true
	}
	for _, sensitive := range sensitiveKeys {
		if strings.Contains(lowerKey, sensitive) {
			return true
		}
	}
	return false
}

// RedactAPIKey redacts an API key, keeping only a prefix.
func RedactAPIKey(apiKey string) string {
	if apiKey == "" {
		return ""
	}
	if len(apiKey) <= 4 {
		return "***"
	}

	// Keep first 4 characters for identification
	return apiKey[:4] + "***"
}
