// Package archive concatenates the per-file .huffman payload and
// .huffman.table side-table records produced by an encode run into one
// bundle file, and splits such a bundle back into per-file records.
package archive

import (
	"bufio"
	"encoding/binary"
	"io"
	"os"
	"path/filepath"

	"github.com/kelbwah/unihuff/internal/errs"
	"github.com/kelbwah/unihuff/internal/walk"
)

// maxNameLen bounds a record's NUL-terminated basename, matching the
// original format's fixed-size name buffer.
const maxNameLen = 255

// Pack bundles every file in dir matched by walk.HuffmanArtifacts into
// outputPath: int32 file_count, then per file a NUL-terminated basename,
// int64 size, and size content bytes, all little-endian. Source files are
// removed once copied into the bundle. Entry order follows the directory
// iterator's order (see walk package).
func Pack(dir, outputPath string) error {
	names, err := walk.HuffmanArtifacts(dir)
	if err != nil {
		return errs.New(errs.InputOpen, "archive.Pack", err)
	}

	out, err := os.Create(outputPath)
	if err != nil {
		return errs.New(errs.OutputOpen, "archive.Pack", err)
	}
	defer out.Close()

	bw := bufio.NewWriter(out)
	var countHeader [4]byte
	binary.LittleEndian.PutUint32(countHeader[:], uint32(len(names)))
	if _, err := bw.Write(countHeader[:]); err != nil {
		return errs.New(errs.OutputOpen, "archive.Pack", err)
	}

	for _, name := range names {
		path := filepath.Join(dir, name)
		if err := packOne(bw, path, name); err != nil {
			return err
		}
	}
	if err := bw.Flush(); err != nil {
		return errs.New(errs.OutputOpen, "archive.Pack", err)
	}

	for _, name := range names {
		_ = os.Remove(filepath.Join(dir, name))
	}
	return nil
}

func packOne(bw *bufio.Writer, path, name string) error {
	info, err := os.Stat(path)
	if err != nil {
		return errs.New(errs.InputOpen, "archive.Pack", err)
	}
	f, err := os.Open(path)
	if err != nil {
		return errs.New(errs.InputOpen, "archive.Pack", err)
	}
	defer f.Close()

	if _, err := bw.Write(append([]byte(name), 0)); err != nil {
		return errs.New(errs.OutputOpen, "archive.Pack", err)
	}
	var sizeHeader [8]byte
	binary.LittleEndian.PutUint64(sizeHeader[:], uint64(info.Size()))
	if _, err := bw.Write(sizeHeader[:]); err != nil {
		return errs.New(errs.OutputOpen, "archive.Pack", err)
	}
	if _, err := io.Copy(bw, f); err != nil {
		return errs.New(errs.OutputOpen, "archive.Pack", err)
	}
	return nil
}

// Unpack reads a bundle written by Pack and recreates each record as a file
// with its stored basename under dir, then deletes archivePath.
func Unpack(archivePath, dir string) error {
	in, err := os.Open(archivePath)
	if err != nil {
		return errs.New(errs.InputOpen, "archive.Unpack", err)
	}
	defer in.Close()

	br := bufio.NewReader(in)
	var countHeader [4]byte
	if _, err := io.ReadFull(br, countHeader[:]); err != nil {
		return errs.New(errs.ArchiveTruncated, "archive.Unpack", err)
	}
	count := binary.LittleEndian.Uint32(countHeader[:])

	for i := uint32(0); i < count; i++ {
		if err := unpackOne(br, dir); err != nil {
			return err
		}
	}

	in.Close()
	_ = os.Remove(archivePath)
	return nil
}

func unpackOne(br *bufio.Reader, dir string) error {
	name, err := readName(br)
	if err != nil {
		return err
	}
	var sizeHeader [8]byte
	if _, err := io.ReadFull(br, sizeHeader[:]); err != nil {
		return errs.New(errs.ArchiveTruncated, "archive.Unpack", err)
	}
	size := int64(binary.LittleEndian.Uint64(sizeHeader[:]))

	out, err := os.Create(filepath.Join(dir, name))
	if err != nil {
		return errs.New(errs.OutputOpen, "archive.Unpack", err)
	}
	defer out.Close()

	if _, err := io.CopyN(out, br, size); err != nil {
		return errs.New(errs.ArchiveTruncated, "archive.Unpack", err)
	}
	return nil
}

func readName(br *bufio.Reader) (string, error) {
	buf := make([]byte, 0, 32)
	for {
		b, err := br.ReadByte()
		if err != nil {
			return "", errs.New(errs.ArchiveTruncated, "archive.Unpack", err)
		}
		if b == 0 {
			return string(buf), nil
		}
		if len(buf) >= maxNameLen {
			return "", errs.New(errs.ArchiveTruncated, "archive.Unpack", nil)
		}
		buf = append(buf, b)
	}
}
