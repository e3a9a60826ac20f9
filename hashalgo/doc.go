// Package hashalgo defines the pluggable sub-hash pair an MPHF build is
// parameterized by, and one concrete implementation of it.
//
// HashAlgorithm is a capability set of two total functions over the word
// set — h1, the row selector, and h2, the column selector — plus a textual
// rendering of each. The table package never branches on which concrete
// HashAlgorithm it was handed; any type satisfying the interface can drive
// the packing search. Elc ("Extremal Letter Count") is the one shipped
// here: it folds a fixed-size window of leading or trailing letters into a
// base-radix integer.
package hashalgo
