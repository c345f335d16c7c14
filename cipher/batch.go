package cipher

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// EncryptAll encrypts words concurrently and returns the ciphertexts in input order.
//
// At most workers calls run at once; workers <= 0 means no limit. The first
// failing word cancels the remaining work and its error is returned, prefixed
// with the word's index. Cancelling ctx stops launching new words and returns
// ctx.Err().
func EncryptAll(ctx context.Context, enc *Encoder, words []string, workers int) ([]string, error) {
	out := make([]string, len(words))

	g, gctx := errgroup.WithContext(ctx)
	if workers > 0 {
		g.SetLimit(workers)
	}

	for i, word := range words {
		if gctx.Err() != nil {
			break
		}

		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			ciphertext, err := enc.EncryptWord(word)
			if err != nil {
				return fmt.Errorf("word %d: %w", i, err)
			}
			out[i] = ciphertext

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return out, nil
}
