// Package api is the access layer between the portal client and the
// Sociedad Rural REST backend.
//
// # Overview
//
// Every backend call goes through Do or DoWithFallback. Both build the
// request against a base URL that was normalized once at construction,
// attach the bearer token read from a TokenSource at call time, and
// classify failures into one of three kinds:
//
//  1. KindAuth: HTTP 401 or 403. Never replaced by a fallback.
//  2. KindConnectivity: no HTTP response at all. DoWithFallback returns
//     the fallback value instead; Do returns an error naming the
//     configured base URL and the client origin.
//  3. KindServer: any other non-2xx status, or a 2xx body that does not
//     decode. Carries the backend's own message when one is present.
//
// DoWithFallback accepts GET requests only.
//
// # Error Handling
//
// Failures are *Error values. Match the kind with errors.Is against
// ErrUnauthorized, ErrUnavailable or ErrServer, or use errors.As for the
// status code and message. Caller cancellation is returned as is.
//
// CheckStatus is an advisory health probe for status indicators.
package api
