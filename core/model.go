package core

// Endpoint is the resolved identity payload for a route. It is what
// the resolver caches and what gets attached to the request context.
type Endpoint struct {
	ID          string `json:"id"`
	Service     string `json:"service"`
	PathPattern string `json:"path_pattern"`
	Method      string `json:"method"`
	Action      string `json:"action"`
	IsSensitive bool   `json:"is_sensitive"`
	IsIgnored   bool   `json:"is_ignored"`
}

// CachedRule is one entry of a serialized per-endpoint rule set.
// Priority must survive the cache round trip: a cache hit and a fresh
// store read have to be indistinguishable for decision purposes.
type CachedRule struct {
	Kind      string `json:"type"`
	SubjectID string `json:"subject_id"`
	Allow     bool   `json:"allow"`
	Priority  int    `json:"priority"`
}

// AllowedRoute is one entry of a subject's resolved route set.
type AllowedRoute struct {
	Application    string `json:"application"`
	EndpointID     string `json:"endpoint_id"`
	Path           string `json:"path"`
	NormalizedPath string `json:"normalized_path"`
	Method         string `json:"method"`
	MethodEnc      string `json:"method_enc"`
	IsSensitive    bool   `json:"is_sensitive"`
}

// Verdict is the single boolean-plus-reason result of an evaluation.
type Verdict struct {
	Allowed           bool   `json:"allowed"`
	Reason            string `json:"reason"`
	MatchedEndpointID string `json:"matched_endpoint_id,omitempty"`

	// populated on allow so the gate can attach it downstream
	Endpoint *Endpoint `json:"-"`
}

// RateLimitResult is the outcome of a limiter check. RetryAfter is in
// seconds and only meaningful when Allowed is false.
type RateLimitResult struct {
	Allowed    bool   `json:"allowed"`
	RetryAfter int    `json:"retry_after"`
	Message    string `json:"message,omitempty"`
}
