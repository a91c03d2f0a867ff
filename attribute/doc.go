// SPDX-License-Identifier: MIT
//
// Package attribute stores the per-element metadata record of spec.md
// §4.5: an ordered set of typed name=value fields, addressed by an
// element's v-key (storekey.VertexKey). One reserved field, "d", is the
// degree counter every hyperindex mutation keeps coherent; every other
// field is a caller-set attribute of kind int64, float64, or string.
//
// Encoding. A record serialises as a sequence of fields joined by
// \x1E (record separator); each field is "name\x1Ftype:value". Both
// bytes are non-printable and fall outside anything element.Sanitize
// could ever leave in a stored string, so no second escaping pass is
// needed on top of Sanitize itself.
package attribute
