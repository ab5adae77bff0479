package domain

import "errors"

// ErrProviderFailure indicates the live data provider could not serve the
// request: a transport failure, a non-2xx response, or an error payload.
// The HTTP boundary translates it into a user-facing failure; it is never
// silently converted to an empty result set.
var ErrProviderFailure = errors.New("flight provider request failed")
