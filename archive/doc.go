// Package archive stores many ciphertexts in one compressed binary container.
//
// An archive is a 32-byte section.Header followed by the payload: every
// ciphertext written as a uvarint length and its bytes, compressed with one of
// the compress codecs. The header records the layout the ciphertexts were
// produced with, a CRC32 of the uncompressed payload and the fingerprint of
// the encrypt alphabet, so a reader can tell whether an archive was written
// with the alphabet it expects.
//
// Writing:
//
//	enc, _ := cipher.NewEncoder(cipher.DefaultConfig())
//	w, err := archive.NewWriter(enc, archive.WithCompression(format.CompressionZstd))
//	if err != nil { ... }
//	if err := w.AddAll(ctx, words); err != nil { ... }
//	data, err := w.Finish()
//
// Reading:
//
//	r, err := archive.NewReader(data)
//	if err != nil { ... }
//	if err := r.VerifyAlphabet(alphabet.LatinTable()); err != nil { ... }
//	for i, ciphertext := range r.All() { ... }
//
// A Writer is not safe for concurrent use; AddAll parallelizes encryption
// internally. A Reader is immutable after NewReader and safe for concurrent use.
package archive
