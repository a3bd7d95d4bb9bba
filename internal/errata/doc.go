// Package errata implements the HTTP transport client for the Errata Tool
// REST API.
//
// The client exposes verb-named methods (Get, Post, Put, Delete) that take
// an API endpoint path relative to the server base URL, optional query
// parameters, and an optional JSON body. Responses carry the raw status
// code and body; interpreting a status as success or failure is left to the
// caller, with APIError as the standard way to surface a non-success status
// together with the error detail the server reported.
//
// Configuration comes from the environment:
//
//	ERRATA_TOOL_URL    server base URL (default https://errata.devel.redhat.com)
//	ERRATA_TOOL_TOKEN  bearer token; requests are sent unauthenticated when unset
//
// The client performs no retries and no response caching. Every request
// carries a generated X-Request-ID header for server-side correlation.
package errata
