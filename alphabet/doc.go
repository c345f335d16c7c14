// Package alphabet provides the bidirectional symbol ↔ code tables injected
// into a cipher configuration.
//
// A Table pairs an encrypt mapping (symbol → numeric code) with its inverse
// decrypt mapping (numeric code → symbol). Tables are immutable once built:
// every constructor copies the maps it is given and accessors return copies,
// so a Table can be shared between goroutines without locking.
//
// # Default Alphabet
//
// Latin returns the upper-case A–Z alphabet coded with its ASCII values
// (65 through 90). Each call builds a fresh, independently owned pair of maps;
// there is no process-wide alphabet singleton.
//
//	decrypt, encrypt := alphabet.Latin()
//	table := alphabet.NewTable(encrypt, decrypt)
//	code, ok := table.Code('C') // 67, true
//
// # Fingerprints
//
// Fingerprint hashes the encrypt mapping with xxHash64. Archives record the
// fingerprint of the alphabet they were written with, so a reader can detect
// that a different alphabet is in use.
package alphabet
