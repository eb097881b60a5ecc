// Package token tokenizes APML documents.
//
// # Usage
//
// Call Tokenize to lex a document held in memory:
//
//	toks, errs := token.Tokenize(nil, d)
//
// The returned tokens alias d, and concatenating their bytes in order
// reproduces d exactly.  Lexical errors never abort the scan: the bad
// span becomes a TErr token, an error carrying its position is
// recorded, and lexing resumes at the next newline.
//
// # Related Packages
//
// The parse package builds a lossless document tree from these tokens.
package token
