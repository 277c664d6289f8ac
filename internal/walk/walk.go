// Package walk lists files in a single directory level matched by a glob
// pattern, giving the job driver and archive container a named dependency
// instead of inlined filepath.Glob calls.
package walk

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// Match lists the basenames of regular files directly inside dir whose name
// matches pattern, in lexical order, so a run's directory iteration order is
// reproducible.
func Match(dir, pattern string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		ok, err := doublestar.Match(pattern, e.Name())
		if err != nil {
			return nil, err
		}
		if ok {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)
	return names, nil
}

// PayloadSuffix and TableSuffix name the two per-file record kinds an
// encode run produces and a decode run consumes.
const (
	PayloadSuffix = ".huffman"
	TableSuffix   = ".table"
)

// SourceTexts lists the *.txt files an encode run should process.
func SourceTexts(dir string) ([]string, error) {
	return Match(dir, "*.txt")
}

// EncodedPayloads lists the *.huffman files a decode run should process.
func EncodedPayloads(dir string) ([]string, error) {
	return Match(dir, "*.huffman")
}

// HuffmanArtifacts lists the .huffman and .huffman.table files an archive
// Pack run should bundle, matched by suffix rather than substring
// containment so an unrelated file that merely contains ".huffman" in its
// name is never swept up.
func HuffmanArtifacts(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		if strings.HasSuffix(name, PayloadSuffix) || strings.HasSuffix(name, PayloadSuffix+TableSuffix) {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names, nil
}

// BaseName strips the .huffman suffix from an encoded payload's filename to
// recover the original source file's name.
func BaseName(huffmanFile string) string {
	return strings.TrimSuffix(huffmanFile, filepath.Ext(huffmanFile))
}
