// Package login provides the authentication helpers for a single web
// backend: HS256 bearer-token issuance and verification, bcrypt password
// hashing, just-in-time user provisioning from upstream identity
// assertions, and a uniform API response envelope.
//
// Tokens:
//   - TokenService signs and verifies self-contained tokens carrying the
//     subject username, the numeric user id, and an absolute expiry. A
//     token is valid purely by signature and time; there is no refresh or
//     revocation, which bounds a leaked secret to the remaining TTL.
//
// Provisioning:
//   - Provisioner creates a local user record on first sight of an
//     externally authenticated identity. The account gets a random
//     throwaway password that is never surfaced, so password login stays
//     unusable until an explicit reset elsewhere.
//
// Resolution:
//   - Authenticator.ResolveCurrentUser is deliberately two-phase: an
//     unknown identity is provisioned and the call reports unauthenticated;
//     the caller retries to obtain a session once the record exists.
package login
