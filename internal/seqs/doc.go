// Package seqs provides small generic combinators over iter.Seq.
//
// The combinators are lazy: nothing is evaluated until the resulting
// sequence is ranged over, and early termination by the consumer stops
// the upstream sequence as well.
package seqs
