package portal

import (
	"io"
	"log/slog"
	"math"
	"net"
	"net/http"
	"regexp"
	"strings"
)

// Strict address literals only. A dotted quad or a full colon-hex IPv6
// address passes; forwarding chains, hostnames and sentinels like "unknown"
// do not, and the caller stores NULL instead.
var ipPattern = regexp.MustCompile(
	`^(?:(?:25[0-5]|2[0-4][0-9]|[01]?[0-9][0-9]?)\.){3}(?:25[0-5]|2[0-4][0-9]|[01]?[0-9][0-9]?)$|^(?:[0-9a-fA-F]{1,4}:){7}[0-9a-fA-F]{1,4}$`,
)

var slugStrip = regexp.MustCompile(`[^a-z0-9]+`)

// ClientMeta carries the request metadata persisted next to every lead.
// IP is nil when no candidate survives validation; UserAgent and Referrer
// fall back to sentinel strings instead. The asymmetry is deliberate.
type ClientMeta struct {
	IP        *string
	UserAgent string
	Referrer  string
}

func ExtractClientMeta(r *http.Request) ClientMeta {
	meta := ClientMeta{
		UserAgent: UnknownUserAgent,
		Referrer:  DirectReferrer,
	}

	if ua := strings.TrimSpace(r.Header.Get(UserAgentHeader)); ua != "" {
		meta.UserAgent = ua
	}

	if ref := strings.TrimSpace(r.Header.Get(ReferrerHeader)); ref != "" {
		meta.Referrer = ref
	}

	if ip := ValidClientIP(rawClientIP(r)); ip != "" {
		meta.IP = &ip
	}

	return meta
}

// rawClientIP resolves the best candidate in order: the connection-level
// address, then X-Forwarded-For, then X-Real-Ip.
func rawClientIP(r *http.Request) string {
	if host, _, err := net.SplitHostPort(strings.TrimSpace(r.RemoteAddr)); err == nil && host != "" {
		return host
	}

	if raw := strings.TrimSpace(r.RemoteAddr); raw != "" {
		return raw
	}

	if xff := strings.TrimSpace(r.Header.Get(ForwardedForHeader)); xff != "" {
		return xff
	}

	return strings.TrimSpace(r.Header.Get(RealIPHeader))
}

// ValidClientIP takes the first comma-separated segment of the candidate and
// returns it only when it is a literal IPv4/IPv6 address. Anything else,
// including the sentinel "unknown", yields the empty string.
func ValidClientIP(raw string) string {
	raw = strings.TrimSpace(raw)

	if raw == "" || raw == UnknownUserAgent {
		return ""
	}

	candidate := strings.TrimSpace(strings.Split(raw, ",")[0])

	if ipPattern.MatchString(candidate) {
		return candidate
	}

	return ""
}

// SanitiseTagValue rewrites a value into the provider's restrictive
// tag-value grammar: every character outside [A-Za-z0-9_-] becomes an
// underscore, capped at 50 characters.
func SanitiseTagValue(value string) string {
	var b strings.Builder

	for _, r := range value {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_', r == '-':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}

	out := b.String()

	if len(out) > 50 {
		out = out[:50]
	}

	return out
}

// Slugify lowercases the title, collapses runs of non-alphanumerics into a
// single hyphen, and strips leading/trailing hyphens. A correct slug is a
// fixed point of this function.
func Slugify(title string) string {
	slug := slugStrip.ReplaceAllString(strings.ToLower(title), "-")

	return strings.Trim(slug, "-")
}

// ReadingTime estimates minutes to read at 200 words per minute, rounding
// up. Empty content still reads as one minute.
func ReadingTime(content string) int {
	words := len(strings.Fields(content))

	if words == 0 {
		words = 1
	}

	return int(math.Ceil(float64(words) / 200.0))
}

func FilterNonEmpty(values []string) []string {
	var out []string

	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			out = append(out, strings.TrimSpace(v))
		}
	}

	return out
}

func CloseWithLog(c io.Closer) {
	if c == nil {
		return
	}

	if err := c.Close(); err != nil {
		slog.Error("failed to close resource", "err", err)
	}
}
