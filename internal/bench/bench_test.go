package bench

import (
	"bytes"
	"context"
	"encoding/csv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/nekitakamenev/suffixmatch/internal/config"
	"github.com/nekitakamenev/suffixmatch/internal/readsim"
)

func testConfig() config.Simulation {
	cfg := config.Default()
	cfg.RefLengths = config.Range{Min: 50, Max: 150, Step: 50}
	cfg.Reads = 3
	cfg.ReadLength = 20
	cfg.ErrorRate = 0
	return cfg
}

func testReference() string {
	return readsim.New(11).Window(strings.Repeat("ACGTTGCAAGCTTAGCCGATCGATCGGATCC", 10), 300)
}

func TestMeasure(t *testing.T) {
	var buf []byte
	m := Measure(func() { buf = make([]byte, 1<<20) })
	assert.Len(t, buf, 1<<20)
	assert.GreaterOrEqual(t, m.Bytes, uint64(1<<20))
}

func TestStructures(t *testing.T) {
	s, err := Structures(config.Array, config.Trie)
	require.NoError(t, err)
	require.Len(t, s, 2)
	assert.Equal(t, config.Array, s[0].Name)
	assert.Equal(t, config.Trie, s[1].Name)
	assert.Equal(t, 3, s[0].Build("banana").Search("ana"))

	_, err = Structures("dawg")
	assert.Error(t, err)
}

func TestRun(t *testing.T) {
	rows, err := Run(context.Background(), zap.NewNop(), testReference(), testConfig())
	require.NoError(t, err)
	require.Len(t, rows, 2)
	for i, row := range rows {
		assert.Equal(t, 50+50*i, row.Length)
		require.Len(t, row.Results, 3)
		for j, name := range []string{config.Trie, config.Tree, config.Array} {
			r := row.Results[j]
			assert.Equal(t, name, r.Structure)
			// Error-free reads occur in full in every index.
			assert.Equal(t, 20.0, r.Match, "%s at %d", name, row.Length)
			assert.Greater(t, r.Bytes, 0.0)
		}
	}
}

func TestRunErrors(t *testing.T) {
	cfg := testConfig()
	cfg.RefLengths.Max = 1000
	_, err := Run(context.Background(), nil, testReference(), cfg)
	assert.ErrorContains(t, err, "exceeds reference")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = Run(ctx, nil, testReference(), testConfig())
	assert.ErrorIs(t, err, context.Canceled)

	cfg = testConfig()
	cfg.Reads = 0
	_, err = Run(context.Background(), nil, testReference(), cfg)
	assert.Error(t, err)
}

func TestWriteTable(t *testing.T) {
	rows := []Row{
		{Length: 100, Results: []Result{{Structure: "tree", Time: 1500, Bytes: 2048, Match: 19.5}}},
		{Length: 1000, Results: []Result{{Structure: "tree", Time: 2500, Bytes: 4096, Match: 20}}},
	}
	var buf bytes.Buffer
	require.NoError(t, WriteTable(&buf, rows))
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[0], "length"))
	assert.Contains(t, lines[0], "tree time")
	assert.Contains(t, lines[0], "tree mem")
	assert.Contains(t, lines[1], "1.5µs")
	assert.Contains(t, lines[1], "19.50")
	assert.Len(t, lines[1], len(lines[0]))
	assert.Len(t, lines[2], len(lines[0]))

	buf.Reset()
	require.NoError(t, WriteTable(&buf, nil))
	assert.Empty(t, buf.String())
}

func TestWriteCSV(t *testing.T) {
	rows := []Row{{Length: 100, Results: []Result{
		{Structure: "trie", Time: 10, Bytes: 1024, Match: 3},
		{Structure: "array", Time: 20, Bytes: 512, Match: 2.5},
	}}}
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, rows))
	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	assert.Equal(t, [][]string{
		{"length", "structure", "time_ns", "bytes", "mean_match"},
		{"100", "trie", "10", "1024", "3.00"},
		{"100", "array", "20", "512", "2.50"},
	}, records)
}
