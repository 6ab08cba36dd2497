// Package codec serializes core records to and from their on-disk byte
// representation. It wraps ugorji/go/codec's CBOR handle the same way the
// teacher's binary codec wraps its own wire format: one handle, shared
// across every record kind, configured once at package init.
package codec

import "github.com/ugorji/go/codec"

var handle = func() *codec.CborHandle {
	h := &codec.CborHandle{}
	h.Canonical = true
	return h
}()

// Encode marshals v to its canonical CBOR byte representation.
func Encode(v any) ([]byte, error) {
	var buf []byte
	enc := codec.NewEncoderBytes(&buf, handle)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return buf, nil
}

// Decode unmarshals data into v, which must be a pointer.
func Decode(data []byte, v any) error {
	dec := codec.NewDecoderBytes(data, handle)
	return dec.Decode(v)
}
