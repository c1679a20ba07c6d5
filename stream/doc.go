// Package stream decodes the compact binary tag-tree encoding carried on
// ActiveSync-style connections. It is a single-pass, pull-based decoder: a
// caller drives it one tag or value at a time and no tree is materialized.
//
// [Decoder.ReadToken] exposes the raw token sequence; [Decoder.NextTag],
// [Decoder.SkipTag], [Decoder.Value], [Decoder.ValueBytes] and
// [Decoder.ValueInt] walk a document subtree and extract scalar values.
//
// The decoder supports tag tokens with code pages, inline strings and
// opaque data. String tables, entities, processing instructions and
// attribute encoding are rejected with [ErrUnsupported], never silently
// ignored.
//
// A Decoder is driven by exactly one caller at a time and becomes terminal
// after its first error. A stream may be handed from one decoder to a
// fresh one with [NewDecoderFrom], e.g. for multiple sub-documents on one
// connection.
package stream
