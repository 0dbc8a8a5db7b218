// Package token defines the closed set of extended type tokens and the classifier
// that maps any Go value onto exactly one of them.
//
// Tokens separate categories that plain reflection conflates: null versus absent,
// arrays versus objects, NaN versus ordinary numbers, and dates and regular
// expressions versus generic structs.
//
//	token.Classify([]int{1, 2, 3})   // token.Array
//	token.Classify(math.NaN())       // token.NaN
//	token.Classify((*User)(nil))     // token.Null
//	token.Classify(nil)              // token.Undefined
package token
