// Package sidetable writes and parses the human-readable frequency dump
// that lets a decoder rebuild an encoder's Huffman tree without the
// original text.
package sidetable

import (
	"bufio"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/kelbwah/unihuff/internal/errs"
	"github.com/kelbwah/unihuff/internal/huffman"
)

// Write emits one "U+%04X %d\n" line per entry of freq, in ascending
// code-point order.
func Write(w io.Writer, freq huffman.FrequencyTable) error {
	points := make([]rune, 0, len(freq))
	for cp := range freq {
		points = append(points, cp)
	}
	sort.Slice(points, func(i, j int) bool { return points[i] < points[j] })

	bw := bufio.NewWriter(w)
	for _, cp := range points {
		if _, err := fmt.Fprintf(bw, "U+%04X %d\n", cp, freq[cp]); err != nil {
			return errs.New(errs.OutputOpen, "sidetable.Write", err)
		}
	}
	return bw.Flush()
}

// Read parses lines of the form "U+<hex> <decimal>", skipping blank lines
// and any line that fails to parse (source behavior: malformed side-table
// lines are silently dropped rather than treated as fatal).
func Read(r io.Reader) (huffman.FrequencyTable, error) {
	freq := make(huffman.FrequencyTable)
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != 2 {
			continue
		}
		hexPart, ok := strings.CutPrefix(fields[0], "U+")
		if !ok {
			continue
		}
		cp, err := strconv.ParseInt(hexPart, 16, 32)
		if err != nil {
			continue
		}
		count, err := strconv.Atoi(fields[1])
		if err != nil {
			continue
		}
		freq[rune(cp)] = count
	}
	if err := scanner.Err(); err != nil {
		return nil, errs.New(errs.InputOpen, "sidetable.Read", err)
	}
	return freq, nil
}
