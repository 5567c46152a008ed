// Package acl translates between the dateval HTTP API's wire format and
// domain types. It is an Anti-Corruption Layer: wire DTOs and error
// envelopes stay inside this package, and callers only ever see domain
// types and domain error kinds.
//
// The boundary guarantees:
//
//   - Wire DTOs never leak into the domain
//   - Remote error codes map back to domain error kinds
//   - Transport failures (network, circuit breaker, retries exhausted)
//     surface as [domain.ErrUnavailable]
//
// [DateAPIClient] is the adapter; it implements [ports.DateAPI] and
// [ports.HealthChecker]. [BaseAdapter] carries the shared request/error
// plumbing and [DecodeResponse] handles generic JSON decoding, so further
// adapters against the same API family can reuse them.
//
// # Error Translation
//
// The remote service reports rejections in a structured envelope
// ({"error": {"code", "message", "details"}}). The translation is:
//
//   - TYPE_ERROR → [domain.ErrInvalidType]
//   - VALUE_ERROR, VALIDATION_ERROR, BAD_REQUEST → [domain.ErrInvalidValue]
//   - 5xx, timeouts, rate limits, transport errors → [domain.ErrUnavailable]
//
// The original offending operand does not cross the wire, so translated
// errors carry the remote message rather than a reconstructed value.
package acl
