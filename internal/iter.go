// Package internal holds iterator helpers shared by the emulator packages.
package internal

import (
	"iter"
)

// IterSeq2Concat concatenates multiple dual-return iterators into a single iterator sequence.
func IterSeq2Concat[K any, V any](seqs ...iter.Seq2[K, V]) iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, seq := range seqs {
			for key, val := range seq {
				if !yield(key, val) {
					return
				}
			}
		}
	}
}

// IterSeqKeyed pairs every value of seq with the result of key, taken
// after the value is produced.
func IterSeqKeyed[K any, V any](seq iter.Seq[V], key func() K) iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for val := range seq {
			if !yield(key(), val) {
				return
			}
		}
	}
}
