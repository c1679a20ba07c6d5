// Package token defines the token model for the compact binary tag-tree
// encoding used by ActiveSync-style synchronization protocols.
//
// A stream carries tag tokens interpreted against numbered code pages,
// inline UTF-8 strings and length-prefixed opaque data. [TagByte] decodes
// the flag bits of a raw tag token; [TagID] is the page-qualified tag
// identifier exposed to callers.
package token
