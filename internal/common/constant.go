package common

// TokenQueryParam is the query parameter carrying the bearer token on every
// authenticated request. The counterpart service expects the token in the
// query string, not a header.
const TokenQueryParam = "token"

// CredentialKey is the well-known key under which the session credential is
// persisted in the local store.
const CredentialKey = "credential"

// RequestIDHeaderName carries the generated correlation id on outbound
// requests so client and server logs can be matched up.
const RequestIDHeaderName = "X-Request-ID"
