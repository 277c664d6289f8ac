// Package bitcodec packs a UTF-8 code-point stream into a length-prefixed,
// MSB-first bit sequence using a Huffman code table, and reverses the
// process by walking the Huffman tree bit by bit.
package bitcodec

import (
	"bufio"
	"encoding/binary"
	"io"

	"github.com/kelbwah/unihuff/internal/codec"
	"github.com/kelbwah/unihuff/internal/errs"
	"github.com/kelbwah/unihuff/internal/huffman"
)

// Encode decodes src as a UTF-8 code-point stream, looks up each code point's
// bit-string in table, and writes the payload to dst: a little-endian int32
// total-bit count, followed by ceil(total_bits/8) bytes. The final byte, if
// partial, is zero-padded in its low bits.
func Encode(dst io.Writer, src io.Reader, table huffman.CodeTable) error {
	br := bufio.NewReader(src)

	var body []byte
	var current byte
	var bitCount uint
	var totalBits int64

	for {
		cp, _, err := codec.DecodeNext(br)
		if err == io.EOF {
			break
		}
		if err != nil {
			continue
		}
		bits, ok := table[cp]
		if !ok {
			continue
		}
		for i := 0; i < len(bits); i++ {
			current <<= 1
			if bits[i] == '1' {
				current |= 1
			}
			bitCount++
			totalBits++
			if bitCount == 8 {
				body = append(body, current)
				current = 0
				bitCount = 0
			}
		}
	}
	if bitCount > 0 {
		current <<= 8 - bitCount
		body = append(body, current)
	}

	var header [4]byte
	binary.LittleEndian.PutUint32(header[:], uint32(totalBits))
	if _, err := dst.Write(header[:]); err != nil {
		return errs.New(errs.OutputOpen, "bitcodec.Encode", err)
	}
	if _, err := dst.Write(body); err != nil {
		return errs.New(errs.OutputOpen, "bitcodec.Encode", err)
	}
	return nil
}

// Decode reads a payload written by Encode, walks root one bit at a time,
// and emits each leaf's code point as UTF-8 bytes to dst. Bits beyond the
// header's total-bit count in the final byte are ignored.
func Decode(dst io.Writer, src io.Reader, root *huffman.Node) error {
	var header [4]byte
	if _, err := io.ReadFull(src, header[:]); err != nil {
		return errs.New(errs.ArchiveTruncated, "bitcodec.Decode", err)
	}
	totalBits := int64(binary.LittleEndian.Uint32(header[:]))

	br := bufio.NewReader(src)
	node := root
	var bitsRead int64
	var w *bufio.Writer
	if bw, ok := dst.(*bufio.Writer); ok {
		w = bw
	} else {
		w = bufio.NewWriter(dst)
		defer w.Flush()
	}

	for bitsRead < totalBits {
		b, err := br.ReadByte()
		if err != nil {
			return errs.New(errs.ArchiveTruncated, "bitcodec.Decode", err)
		}
		for i := 7; i >= 0 && bitsRead < totalBits; i-- {
			if (b>>uint(i))&1 == 0 {
				node = node.Left
			} else {
				node = node.Right
			}
			bitsRead++
			if node.IsLeaf() {
				if _, err := w.Write(codec.Encode(node.CodePoint)); err != nil {
					return errs.New(errs.OutputOpen, "bitcodec.Decode", err)
				}
				node = root
			}
		}
	}
	return w.Flush()
}
