// SPDX-License-Identifier: MIT

package storekey

import (
	"strconv"
	"strings"

	"github.com/katalvlaran/hyperbase/element"
	"github.com/katalvlaran/hyperbase/permutation"
)

const (
	// VertexPrefix tags a v-key: an element's attribute record.
	VertexPrefix = 'v'
	// PermPrefix tags a p-key: one witness row of the permutation index.
	PermPrefix = 'p'
	// sep separates a p-key's rendering from its k_tag. It is one of
	// element's own reserved delimiters, so it never occurs in a render.
	sep = '|'
)

// VertexKey builds the v-key for an element's attribute record.
func VertexKey(e element.Element) []byte {
	return append([]byte{VertexPrefix}, element.Render(e)...)
}

// AllPrefix builds the scan prefix matching every v-key in the store,
// used by hyperindex.All and hyperindex.AllAttributes.
func AllPrefix() []byte {
	return []byte{VertexPrefix}
}

// RootPrefix builds the scan prefix matching every atom whose root is
// exactly root (spec.md §4.6, symbols_with_root).
func RootPrefix(root string) []byte {
	return []byte(string(VertexPrefix) + root + "/")
}

// RootBareKey builds the v-key of the bare atom equal to root itself
// (an atom with no '/' has its own root).
func RootBareKey(root string) []byte {
	return []byte(string(VertexPrefix) + root)
}

// kTagWidth returns the decimal digit width needed to represent every
// k in [0, n!) with a fixed, zero-padded width.
func kTagWidth(arity int) (int, error) {
	total, err := permutation.Factorial(arity)
	if err != nil {
		return 0, err
	}
	if total <= 1 {
		return 1, nil
	}
	return len(strconv.FormatUint(total-1, 10)), nil
}

// PermKey builds the p-key for the k-th rotation of an edge of the given
// arity. rotated must already be permutation.Permutate(children, k).
func PermKey(rotated []element.Element, k, arity int) ([]byte, error) {
	width, err := kTagWidth(arity)
	if err != nil {
		return nil, err
	}
	var b strings.Builder
	b.WriteByte(PermPrefix)
	b.WriteString(element.Render(element.Edge(rotated)))
	b.WriteByte(sep)
	b.WriteString(zeroPad(k, width))
	return []byte(b.String()), nil
}

func zeroPad(k, width int) string {
	s := strconv.Itoa(k)
	if len(s) >= width {
		return s
	}
	return strings.Repeat("0", width-len(s)) + s
}

// PermScanPrefix builds the byte prefix used to range-scan for edges
// whose rendering begins with leading (in order), across every k and
// every arity > len(leading): the prefix ends in a space, so an edge
// whose last child is the last of leading does not match. Used by star,
// pattern2edges, and
// edges_with_symbols (spec.md §4.6).
func PermScanPrefix(leading []string) []byte {
	var b strings.Builder
	b.WriteByte(PermPrefix)
	b.WriteByte('(')
	for i, r := range leading {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(r)
	}
	if len(leading) > 0 {
		b.WriteByte(' ')
	}
	return []byte(b.String())
}

// DecodePermKey splits a p-key back into its full rendering (the
// balanced "(...)" substring) and its k_tag. It never has to guess where
// the rendering ends because sep cannot occur inside a render.
func DecodePermKey(key []byte) (rendering string, k int, err error) {
	if len(key) == 0 || key[0] != PermPrefix {
		return "", 0, ErrBadKey
	}
	body := string(key[1:])
	idx := strings.LastIndexByte(body, sep)
	if idx < 0 {
		return "", 0, ErrBadKey
	}
	rendering = body[:idx]
	k, convErr := strconv.Atoi(body[idx+1:])
	if convErr != nil {
		return "", 0, ErrBadKey
	}
	return rendering, k, nil
}
