package pipeline

import (
	"os"
	"path/filepath"

	"github.com/kelbwah/unihuff/internal/bitcodec"
	"github.com/kelbwah/unihuff/internal/errs"
	"github.com/kelbwah/unihuff/internal/huffman"
	"github.com/kelbwah/unihuff/internal/sidetable"
	"github.com/kelbwah/unihuff/internal/walk"
)

// encodeFile builds a Huffman tree from path's content and writes
// <path>.huffman and <path>.huffman.table next to it. Each call owns its
// own frequency map, tree, and code table — no state is shared with
// sibling jobs.
func encodeFile(path string) error {
	src, err := os.Open(path)
	if err != nil {
		return errs.New(errs.InputOpen, "pipeline.encodeFile", err)
	}
	defer src.Close()

	freq, err := huffman.CollectFrequencies(src)
	if err != nil {
		return err
	}
	root, err := huffman.BuildTree(freq)
	if err != nil {
		return err
	}
	table, err := huffman.BuildCodeTable(root)
	if err != nil {
		return err
	}

	if _, err := src.Seek(0, 0); err != nil {
		return errs.New(errs.InputOpen, "pipeline.encodeFile", err)
	}

	payloadPath := path + walk.PayloadSuffix
	payload, err := os.Create(payloadPath)
	if err != nil {
		return errs.New(errs.OutputOpen, "pipeline.encodeFile", err)
	}
	defer payload.Close()
	if err := bitcodec.Encode(payload, src, table); err != nil {
		return err
	}

	tablePath := path + walk.PayloadSuffix + walk.TableSuffix
	tableFile, err := os.Create(tablePath)
	if err != nil {
		return errs.New(errs.OutputOpen, "pipeline.encodeFile", err)
	}
	defer tableFile.Close()
	return sidetable.Write(tableFile, freq)
}

// decodeFile rebuilds the tree from <path>.table and walks it over the
// payload at path (a .huffman file) to reconstruct the original text under
// outDir.
func decodeFile(path, outDir string) error {
	tablePath := path + walk.TableSuffix
	tableFile, err := os.Open(tablePath)
	if err != nil {
		return errs.New(errs.InputOpen, "pipeline.decodeFile", err)
	}
	defer tableFile.Close()

	freq, err := sidetable.Read(tableFile)
	if err != nil {
		return err
	}
	root, err := huffman.BuildTree(freq)
	if err != nil {
		return err
	}

	payload, err := os.Open(path)
	if err != nil {
		return errs.New(errs.InputOpen, "pipeline.decodeFile", err)
	}
	defer payload.Close()

	outPath := filepath.Join(outDir, walk.BaseName(filepath.Base(path)))
	out, err := os.Create(outPath)
	if err != nil {
		return errs.New(errs.OutputOpen, "pipeline.decodeFile", err)
	}
	defer out.Close()

	return bitcodec.Decode(out, payload, root)
}
