// Package auth provides authentication and authorisation for the HavenGate API.
//
// It implements a 2-tier role model (user → admin) with:
//   - Argon2id password hashing (OWASP 2025 recommendation)
//   - Short-lived HS256 JWT access tokens validated by signature only
//   - First-boot admin seeding with a generated one-time password
//
// Regular users can read sensor history, operate the light and door, and
// request door access with a registered tag. Credential registration and
// user administration require the admin role.
package auth
