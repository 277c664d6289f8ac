package huffman

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kelbwah/unihuff/internal/errs"
)

func TestCollectFrequencies(t *testing.T) {
	freq, err := CollectFrequencies(strings.NewReader("aaaabbc"))
	require.NoError(t, err)
	require.Equal(t, 4, freq['a'])
	require.Equal(t, 2, freq['b'])
	require.Equal(t, 1, freq['c'])
}

func TestCollectFrequencies_DropsInvalidByte(t *testing.T) {
	// 0xFF is never a valid UTF-8 lead byte.
	freq, err := CollectFrequencies(strings.NewReader("a\xffb"))
	require.NoError(t, err)
	require.Equal(t, 1, freq['a'])
	require.Equal(t, 1, freq['b'])
}

func TestBuildTree_EmptyIsHeapUnderflow(t *testing.T) {
	_, err := BuildTree(FrequencyTable{})
	require.Error(t, err)
	require.True(t, errs.Is(err, errs.HeapUnderflow))
}

func TestBuildTree_SingleSymbolGetsNonEmptyCode(t *testing.T) {
	root, err := BuildTree(FrequencyTable{'x': 10})
	require.NoError(t, err)
	require.False(t, root.IsLeaf())

	table, err := BuildCodeTable(root)
	require.NoError(t, err)
	require.NotEmpty(t, table['x'])
}

func TestBuildCodeTable_PrefixFree(t *testing.T) {
	freq, err := CollectFrequencies(strings.NewReader("aaaabbc"))
	require.NoError(t, err)
	root, err := BuildTree(freq)
	require.NoError(t, err)
	table, err := BuildCodeTable(root)
	require.NoError(t, err)

	codes := make([]string, 0, len(table))
	for _, c := range table {
		codes = append(codes, c)
	}
	for i := range codes {
		for j := range codes {
			if i == j {
				continue
			}
			require.False(t, strings.HasPrefix(codes[j], codes[i]),
				"%q is a prefix of %q", codes[i], codes[j])
		}
	}
}

func TestBuildCodeTable_ShorterCodesForHigherFrequency(t *testing.T) {
	freq, err := CollectFrequencies(strings.NewReader("aaaabbc"))
	require.NoError(t, err)
	root, err := BuildTree(freq)
	require.NoError(t, err)
	table, err := BuildCodeTable(root)
	require.NoError(t, err)

	require.LessOrEqual(t, len(table['a']), len(table['b']))
	require.LessOrEqual(t, len(table['b']), len(table['c']))
}

func TestBuildCodeTable_EqualFrequenciesEqualLength(t *testing.T) {
	freq, err := CollectFrequencies(strings.NewReader("hola"))
	require.NoError(t, err)
	root, err := BuildTree(freq)
	require.NoError(t, err)
	table, err := BuildCodeTable(root)
	require.NoError(t, err)

	for _, c := range table {
		require.Len(t, c, 2)
	}
}
