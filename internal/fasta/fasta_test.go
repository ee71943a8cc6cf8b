package fasta

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRead(t *testing.T) {
	tests := map[string]struct {
		input string
		exp   []Record
		err   error
	}{
		"empty": {
			input: "",
		},
		"single": {
			input: ">chr1 test sequence\nACGT\nTTGA\n",
			exp:   []Record{{Name: "chr1", Description: "test sequence", Seq: "ACGTTTGA"}},
		},
		"multiple with blanks and comments": {
			input: ";comment\n>a\nAC\n\n  GT  \n>b desc\r\nNNNN\r\n",
			exp: []Record{
				{Name: "a", Seq: "ACGT"},
				{Name: "b", Description: "desc", Seq: "NNNN"},
			},
		},
		"empty record": {
			input: ">a\n>b\nA",
			exp:   []Record{{Name: "a"}, {Name: "b", Seq: "A"}},
		},
		"missing header": {
			input: "ACGT\n>a\nAC\n",
			err:   ErrMissingHeader,
		},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			records, err := Read(strings.NewReader(tc.input))
			if tc.err != nil {
				assert.ErrorIs(t, err, tc.err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.exp, records)
		})
	}
}

func TestFirst(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "ref.fa")
	require.NoError(t, os.WriteFile(path, []byte(">ref\nbanana\n>other\nACGT\n"), 0o644))

	seq, err := First(path)
	require.NoError(t, err)
	assert.Equal(t, "banana", seq)

	empty := filepath.Join(dir, "empty.fa")
	require.NoError(t, os.WriteFile(empty, nil, 0o644))
	_, err = First(empty)
	assert.True(t, errors.Is(err, ErrNoRecords))

	_, err = First(filepath.Join(dir, "missing.fa"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
