// Package ucd builds compact, constant-time lookup tables for Unicode
// character properties.
//
// A property assigns a value (general category, script, bidi class, ...)
// to every code point in [0, U+10FFFF]. Storing one value per code point
// is wasteful; instead the domain is split into fixed-size blocks,
// identical blocks are deduplicated, and a small first-stage index maps
// each block to its deduplicated content. BuildTwoStage constructs such
// a table for one block size, and SelectMinimal picks the block size
// with the smallest encoded footprint.
package ucd
