package core

import "strings"

const (
	SubjectIdCtxKey   = "acl-subjectId"
	ApplicationCtxKey = "acl-application"
	EndpointCtxKey    = "acl-endpoint"
	RouteSetCtxKey    = "acl-routeSet"
	VerdictCtxKey     = "acl-verdict"
)

// Machine-stable reason codes. Downstream systems assert on these,
// never on prose.
const (
	ReasonExplicitAllow      = "explicit-allow"
	ReasonExplicitDeny       = "explicit-deny"
	ReasonNoRoles            = "no-roles"
	ReasonNoMatchingRule     = "no-matching-rule"
	ReasonRouteIgnored       = "route-ignored"
	ReasonRouteNotRegistered = "route-not-registered"
	ReasonSuperRole          = "super-role"
	ReasonCacheHit           = "cache-hit"
	ReasonTierUser           = "tier-user"
	ReasonTierRole           = "tier-role"
	ReasonTierTeam           = "tier-team"
	ReasonDefaultDeny        = "default-deny"
	ReasonMethodNotAllowed   = "method-not-allowed"
	ReasonIdentityMissing    = "identity-missing"
	ReasonInternalError      = "internal-error"
	ReasonRateLimited        = "rate-limited"
)

// Subject kind tags for priority bindings.
const (
	KindUser = "user"
	KindRole = "role"
	KindTeam = "team"
)

// Policy shapes selectable via config.
const (
	PolicyShapeRoles  = "roles"
	PolicyShapeTiered = "tiered"
)

const (
	MsgLoginRateLimitExceeded = "Too many login attempts. Please wait before retrying."
	MsgRateLimitExceeded      = "Too many requests. Please slow down."
)

var methodEncoding = map[string]string{
	"GET":    "R",
	"POST":   "C",
	"PUT":    "U",
	"PATCH":  "U",
	"DELETE": "D",
}

// EncodeMethod maps an HTTP method to its compact single-letter form.
// Unknown methods encode as themselves, upper-cased.
func EncodeMethod(method string) string {
	upper := strings.ToUpper(method)
	if enc, ok := methodEncoding[upper]; ok {
		return enc
	}
	return upper
}
