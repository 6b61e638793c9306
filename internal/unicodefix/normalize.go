// Copyright 2024 The ftfy-go Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package unicodefix

import "golang.org/x/text/unicode/norm"

// NormalForm names a Unicode normal form to apply, or NoNormalization to
// skip the step entirely.
type NormalForm string

const (
	NFC             NormalForm = "NFC"
	NFD             NormalForm = "NFD"
	NFKC            NormalForm = "NFKC"
	NFKD            NormalForm = "NFKD"
	NoNormalization NormalForm = ""
)

// Normalize applies the named Unicode normal form to s via
// golang.org/x/text/unicode/norm, or returns s unchanged when form is
// NoNormalization.
func Normalize(s string, form NormalForm) string {
	switch form {
	case NFC:
		return norm.NFC.String(s)
	case NFD:
		return norm.NFD.String(s)
	case NFKC:
		return norm.NFKC.String(s)
	case NFKD:
		return norm.NFKD.String(s)
	default:
		return s
	}
}
