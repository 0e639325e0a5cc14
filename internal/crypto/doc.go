// Package crypto provides the one-way password hashes used by pwvault.
//
// Contents
//
//   - bcrypt hashing and verification (BcryptHasher), the default
//   - scrypt hashing with a self-describing encoded form (ScryptHasher)
//   - Hasher selection by configured algorithm name (NewHasher)
//   - Best-effort memory wiping for password buffers (Wipe)
//
// # Notes
//
// Both hashers salt every call, so hashing the same password twice yields
// different strings. Compare with Verify, never with string equality.
package crypto
