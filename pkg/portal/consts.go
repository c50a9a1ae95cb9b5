package portal

const DatesLayout = "2006-01-02 15:04:05"

// ---- HTTP headers inspected by the lead pipeline.

const ForwardedForHeader = "X-Forwarded-For"
const RealIPHeader = "X-Real-Ip"
const UserAgentHeader = "User-Agent"
const ReferrerHeader = "Referer"
const RequestIDHeader = "X-Request-ID"

// ---- Defaults recorded when a header is absent. The IP has no sentinel:
// an unverifiable address is stored as NULL, never as a placeholder string.

const UnknownUserAgent = "unknown"
const DirectReferrer = "direct"

// ---- Context

type contextKey string

const RequestIDKey contextKey = "request.id"
