// Package hashing fingerprints values through a small Hashable interface,
// with a cryptographic (SHA-256) and a fast (xxh3) digest.
package hashing
