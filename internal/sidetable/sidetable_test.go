package sidetable_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kelbwah/unihuff/internal/huffman"
	"github.com/kelbwah/unihuff/internal/sidetable"
)

func TestWriteFormat(t *testing.T) {
	var buf bytes.Buffer
	freq := huffman.FrequencyTable{0x00E9: 1, 0x0041: 3, 0x1F600: 2}
	require.NoError(t, sidetable.Write(&buf, freq))

	require.Equal(t, "U+0041 3\nU+00E9 1\nU+1F600 2\n", buf.String())
}

func TestRoundTrip(t *testing.T) {
	freq := huffman.FrequencyTable{0x00E1: 1, 0x00E9: 1, 0x00ED: 1}
	var buf bytes.Buffer
	require.NoError(t, sidetable.Write(&buf, freq))

	got, err := sidetable.Read(&buf)
	require.NoError(t, err)
	require.Equal(t, freq, got)
}

func TestRead_SkipsMalformedAndBlankLines(t *testing.T) {
	input := "U+0041 3\n\nnot a line\nU+0042 garbage\nU+0043 5\n"
	got, err := sidetable.Read(bytes.NewBufferString(input))
	require.NoError(t, err)
	require.Equal(t, huffman.FrequencyTable{0x41: 3, 0x43: 5}, got)
}
