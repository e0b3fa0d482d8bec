package core

import "fmt"

type ErrorNotFound struct {
}

func (e ErrorNotFound) Error() string {
	return "Not Found"
}

func NewErrorNotFound() ErrorNotFound {
	return ErrorNotFound{}
}

type ErrorEndpointNotFound struct {
}

func (e ErrorEndpointNotFound) Error() string {
	return "Endpoint Not Found"
}

func NewErrorEndpointNotFound() ErrorEndpointNotFound {
	return ErrorEndpointNotFound{}
}

type ErrorIdentityMissing struct {
}

func (e ErrorIdentityMissing) Error() string {
	return "Identity Missing"
}

func NewErrorIdentityMissing() ErrorIdentityMissing {
	return ErrorIdentityMissing{}
}

type ErrorCacheUnavailable struct {
}

func (e ErrorCacheUnavailable) Error() string {
	return "Cache Unavailable"
}

func NewErrorCacheUnavailable() ErrorCacheUnavailable {
	return ErrorCacheUnavailable{}
}

type ErrorRuleStoreUnavailable struct {
}

func (e ErrorRuleStoreUnavailable) Error() string {
	return "Rule Store Unavailable"
}

func NewErrorRuleStoreUnavailable() ErrorRuleStoreUnavailable {
	return ErrorRuleStoreUnavailable{}
}

type ErrorRateLimited struct {
	RetryAfter int
}

func (e ErrorRateLimited) Error() string {
	return fmt.Sprintf("Rate Limited (retry after %ds)", e.RetryAfter)
}

func NewErrorRateLimited(retryAfter int) ErrorRateLimited {
	return ErrorRateLimited{RetryAfter: retryAfter}
}
