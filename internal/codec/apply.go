// Copyright 2024 The ftfy-go Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package codec

import "github.com/cockroachdb/errors"

// Encode runs the "encode as id" half of an (encode, decode) repair step:
// it reinterprets s's runes as the bytes they would have been under id.
func Encode(id ID, s string) ([]byte, error) {
	enc, ok := Get(id)
	if !ok {
		return nil, errors.Newf("codec: unknown encoding %q", id)
	}
	return enc.EncodeToBytes(s)
}

// Decode runs the "decode as id" half of a repair step: it reads raw bytes
// as if they were id-encoded text and returns the Unicode string they
// represent.
func Decode(id ID, b []byte) (string, error) {
	dec, ok := Get(id)
	if !ok {
		return "", errors.Newf("codec: unknown encoding %q", id)
	}
	return dec.DecodeFromBytes(b)
}

// EncodeDecode chains Encode(encID, s) into Decode(decID, ...), the shape
// of every (encode, decode) candidate step the search tries. Either half
// failing rejects the whole candidate.
func EncodeDecode(encID, decID ID, s string) (string, error) {
	b, err := Encode(encID, s)
	if err != nil {
		return "", err
	}
	return Decode(decID, b)
}
