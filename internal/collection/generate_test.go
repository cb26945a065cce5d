package collection_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/f3rmion/lobstr/internal/catalog"
	"github.com/f3rmion/lobstr/internal/collection"
	"github.com/f3rmion/lobstr/internal/lobster"
)

func seed(v int64) *int64 { return &v }

func run(t *testing.T, cat *catalog.Catalog, opts collection.Options) *collection.Result {
	t.Helper()
	g, err := collection.NewGenerator(cat, opts)
	require.NoError(t, err)
	res, err := g.Run(context.Background())
	require.NoError(t, err)
	return res
}

func TestNewGeneratorValidatesOptions(t *testing.T) {
	_, err := collection.NewGenerator(catalog.Default(), collection.Options{Size: 0, OutputDir: t.TempDir()})
	assert.Error(t, err)
	_, err = collection.NewGenerator(catalog.Default(), collection.Options{Size: 3})
	assert.Error(t, err)
	_, err = collection.NewGenerator(nil, collection.Options{Size: 3, OutputDir: t.TempDir()})
	assert.Error(t, err)

	g, err := collection.NewGenerator(catalog.Default(), collection.Options{Size: 3, OutputDir: t.TempDir()})
	require.NoError(t, err)
	assert.Equal(t, 1400, g.Options().Width)
	assert.Equal(t, 10, g.Options().TopK)
	assert.Equal(t, collection.DefaultName, g.Options().Name)
}

func TestRunWritesCollection(t *testing.T) {
	dir := t.TempDir()
	res := run(t, catalog.Default(), collection.Options{
		Size: 12, Seed: seed(42), Workers: 3, Width: 160, Height: 160, TopK: 5, OutputDir: dir,
	})
	require.NoError(t, res.Err())
	require.Equal(t, 12, res.Ranking.Len())
	assert.Len(t, res.Ranking.Top, 5)

	for id := 1; id <= 12; id++ {
		assert.FileExists(t, filepath.Join(dir, collection.ImagesDir, collection.ImageName(id)))
	}

	e := res.Ranking.Entries[0]
	m, err := collection.ReadMetadata(filepath.Join(dir, collection.MetadataDir, "1.json"))
	require.NoError(t, err)
	first, ok := res.Ranking.ByToken(1)
	require.True(t, ok)
	assert.Equal(t, "Lobster #1", m.Name)
	assert.Equal(t, "1.png", m.Image)
	assert.Equal(t, first.Score, m.RarityScore)
	assert.Equal(t, first.Rank, m.RarityRank)
	require.Len(t, m.Attributes, 6)
	assert.Equal(t, lobster.CategoryBackground, m.Attributes[0].TraitType)
	assert.Equal(t, lobster.CategoryAccessory, m.Attributes[5].TraitType)

	s, err := collection.ReadSummary(res.SummaryPath)
	require.NoError(t, err)
	assert.Equal(t, collection.DefaultName, s.CollectionName)
	assert.Equal(t, 12, s.TotalSupply)
	assert.Len(t, s.RarityDistribution, 12)
	require.Len(t, s.Top10Rarest, 5)
	assert.Equal(t, e.TokenID, s.Top10Rarest[0].TokenID)
	assert.Equal(t, catalog.Default().Names(lobster.CategoryTail), s.Traits[lobster.CategoryTail])
}

func TestSeededRunIgnoresWorkerCount(t *testing.T) {
	opts := collection.Options{Size: 16, Seed: seed(2024), Width: 96, Height: 96}

	opts.Workers, opts.OutputDir = 1, t.TempDir()
	serial := run(t, catalog.Default(), opts)
	opts.Workers, opts.OutputDir = 8, t.TempDir()
	parallel := run(t, catalog.Default(), opts)

	require.Equal(t, serial.Ranking.Len(), parallel.Ranking.Len())
	for i := range serial.Ranking.Entries {
		a, b := serial.Ranking.Entries[i], parallel.Ranking.Entries[i]
		assert.Equal(t, a.TokenID, b.TokenID)
		assert.Equal(t, a.Traits, b.Traits)
		assert.Equal(t, a.Score, b.Score)
		assert.Equal(t, a.Percentile, b.Percentile)
	}
}

func TestFailedTokensAreExcluded(t *testing.T) {
	cats := catalog.DefaultCategories()
	last := &cats[len(cats)-1]
	last.Options = append(last.Options, lobster.Option{
		Name:    "Jetpack",
		Weight:  102,
		Payload: lobster.Payload{Style: "jetpack", Family: lobster.FamilySpecial},
	})
	cat, err := catalog.New(cats)
	require.NoError(t, err)

	res := run(t, cat, collection.Options{Size: 24, Seed: seed(5), Workers: 4, Width: 64, Height: 64, OutputDir: t.TempDir()})

	assert.NotEmpty(t, res.Failed)
	assert.Equal(t, 24, res.Ranking.Len()+len(res.Failed))
	for _, e := range res.Ranking.Entries {
		assert.NotEqual(t, "Jetpack", e.Traits[lobster.CategoryAccessory])
	}

	var re *lobster.RenderError
	assert.True(t, errors.As(res.Err(), &re))
	assert.Zero(t, res.Ranking.Distribution[lobster.CategoryAccessory]["Jetpack"])
}

func TestAllTokensFailing(t *testing.T) {
	cats := catalog.DefaultCategories()
	for i := range cats {
		if cats[i].Name == lobster.CategoryEyes {
			cats[i].Options = []lobster.Option{{Name: "Cyclops", Weight: 1, Payload: lobster.Payload{Style: "cyclops"}}}
		}
	}
	cat, err := catalog.New(cats)
	require.NoError(t, err)

	g, err := collection.NewGenerator(cat, collection.Options{Size: 3, Width: 64, Height: 64, OutputDir: t.TempDir()})
	require.NoError(t, err)
	res, err := g.Run(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, collection.ErrEmptyCollection))
	assert.Len(t, res.Failed, 3)
}

func TestRunHonorsCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	g, err := collection.NewGenerator(catalog.Default(), collection.Options{Size: 50, Width: 64, Height: 64, OutputDir: t.TempDir()})
	require.NoError(t, err)
	_, err = g.Run(ctx)
	assert.True(t, errors.Is(err, context.Canceled))
}

type memSink struct {
	name    string
	entries []lobster.Entry
	err     error
}

func (m *memSink) SaveCollection(_ context.Context, name string, entries []lobster.Entry) error {
	m.name = name
	m.entries = entries
	return m.err
}

func TestRunPersistsToSink(t *testing.T) {
	sink := &memSink{}
	res := run(t, catalog.Default(), collection.Options{
		Size: 5, Seed: seed(1), Width: 64, Height: 64, OutputDir: t.TempDir(), Name: "Test Pod", Store: sink,
	})
	assert.Equal(t, "Test Pod", sink.name)
	assert.Equal(t, res.Ranking.Entries, sink.entries)

	sink.err = errors.New("disk full")
	g, err := collection.NewGenerator(catalog.Default(), collection.Options{Size: 2, Width: 64, Height: 64, OutputDir: t.TempDir(), Store: sink})
	require.NoError(t, err)
	_, err = g.Run(context.Background())
	assert.ErrorContains(t, err, "disk full")
}

func TestWriteJSONReportsBadPath(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "file")
	require.NoError(t, os.WriteFile(blocker, nil, 0o644))
	err := collection.WriteJSON(filepath.Join(blocker, "x.json"), map[string]int{"a": 1})
	assert.Error(t, err)
}
