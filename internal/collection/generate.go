package collection

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/f3rmion/lobstr/internal/canvas"
	"github.com/f3rmion/lobstr/internal/catalog"
	"github.com/f3rmion/lobstr/internal/lobster"
	"github.com/f3rmion/lobstr/internal/rarity"
	"github.com/f3rmion/lobstr/internal/render"
	"github.com/f3rmion/lobstr/internal/sampler"
)

// Output layout under Options.OutputDir.
const (
	ImagesDir   = "images"
	MetadataDir = "metadata"
	SummaryFile = "collection_summary.json"
)

const progressEvery = 50

// Sink persists a ranked collection, for example into a database.
type Sink interface {
	SaveCollection(ctx context.Context, name string, entries []lobster.Entry) error
}

// Options configures a batch run.
type Options struct {
	Size int
	// Seed makes the batch reproducible when set. Each token derives its own
	// stream from it, so output does not depend on Workers.
	Seed      *int64
	Workers   int
	Width     int
	Height    int
	TopK      int
	OutputDir string

	Name        string
	Description string
	ExternalURL string

	// Store is optional.
	Store Sink
}

func (o *Options) setDefaults() {
	if o.Workers <= 0 {
		o.Workers = runtime.NumCPU()
	}
	if o.Width <= 0 {
		o.Width = 1400
	}
	if o.Height <= 0 {
		o.Height = 1400
	}
	if o.TopK <= 0 {
		o.TopK = 10
	}
	if o.Name == "" {
		o.Name = DefaultName
	}
	if o.Description == "" {
		o.Description = DefaultDescription
	}
	if o.ExternalURL == "" {
		o.ExternalURL = DefaultExternalURL
	}
}

// Result describes a finished batch.
type Result struct {
	Ranking     *Ranking
	SummaryPath string
	// Failed holds one error per token that could not be produced. Failed
	// tokens are excluded from the ranking.
	Failed []error
}

// Err joins every per-token failure, or returns nil.
func (r *Result) Err() error {
	return errors.Join(r.Failed...)
}

// Generator produces a collection of tokens from a catalog.
type Generator struct {
	cat  *catalog.Catalog
	opts Options
}

// NewGenerator validates opts and returns a Generator.
func NewGenerator(cat *catalog.Catalog, opts Options) (*Generator, error) {
	if cat == nil {
		return nil, errors.New("catalog is required")
	}
	if opts.Size <= 0 {
		return nil, fmt.Errorf("collection size must be positive, got %d", opts.Size)
	}
	if opts.OutputDir == "" {
		return nil, errors.New("output directory is required")
	}
	opts.setDefaults()
	return &Generator{cat: cat, opts: opts}, nil
}

// Options returns the effective options, defaults applied.
func (g *Generator) Options() Options {
	return g.opts
}

// Run generates every token, then ranks the collection and writes metadata
// and the summary. A token that fails is recorded in Result.Failed and does
// not stop the others. Run returns an error only when the batch as a whole
// cannot complete: cancellation, output I/O, or nothing to rank.
func (g *Generator) Run(ctx context.Context) (*Result, error) {
	imagesDir := filepath.Join(g.opts.OutputDir, ImagesDir)
	metaDir := filepath.Join(g.opts.OutputDir, MetadataDir)
	for _, dir := range []string{imagesDir, metaDir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating output directory: %w", err)
		}
	}

	log := Logger()
	log.Info("generating collection", "size", g.opts.Size, "workers", g.opts.Workers, "output", g.opts.OutputDir)
	start := time.Now()

	entries := make([]*lobster.Entry, g.opts.Size)
	failures := make([]error, g.opts.Size)
	var done atomic.Int64

	var eg errgroup.Group
	eg.SetLimit(g.opts.Workers)
	for i := range entries {
		if ctx.Err() != nil {
			break
		}
		id := i + 1
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			e, err := g.Token(id, imagesDir)
			if err != nil {
				failures[i] = fmt.Errorf("token %d: %w", id, err)
				log.Warn("token failed", "id", id, "err", err)
			} else {
				entries[i] = e
				log.Debug("token generated", "id", id, "score", e.Score)
			}
			if n := done.Add(1); n%progressEvery == 0 {
				log.Info("progress", "done", n, "total", g.opts.Size)
			}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, fmt.Errorf("generating tokens: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("generating tokens: %w", err)
	}

	res := &Result{}
	scored := make([]lobster.Entry, 0, len(entries))
	for i, e := range entries {
		if e != nil {
			scored = append(scored, *e)
		} else if failures[i] != nil {
			res.Failed = append(res.Failed, failures[i])
		}
	}
	log.Info("tokens generated", "ok", len(scored), "failed", len(res.Failed), "elapsed", time.Since(start).Round(time.Millisecond))

	ranking, err := Rank(g.cat, scored, g.opts.TopK)
	if err != nil {
		return res, fmt.Errorf("ranking collection: %w", errors.Join(err, res.Err()))
	}
	res.Ranking = ranking

	for _, e := range ranking.Entries {
		m := NewMetadata(g.cat, e, g.opts.Description, g.opts.ExternalURL)
		if err := WriteJSON(filepath.Join(metaDir, strconv.Itoa(e.TokenID)+".json"), m); err != nil {
			return res, err
		}
	}

	res.SummaryPath = filepath.Join(g.opts.OutputDir, SummaryFile)
	if err := WriteJSON(res.SummaryPath, NewSummary(g.cat, g.opts.Name, ranking)); err != nil {
		return res, err
	}
	log.Info("summary written", "path", res.SummaryPath)

	if g.opts.Store != nil {
		if err := g.opts.Store.SaveCollection(ctx, g.opts.Name, ranking.Entries); err != nil {
			return res, fmt.Errorf("saving collection: %w", err)
		}
		log.Info("collection stored", "tokens", ranking.Len())
	}
	return res, nil
}

// Source returns the random stream for one token: derived from the batch
// seed when set, otherwise from the clock.
func (g *Generator) Source(id int) *rand.Rand {
	seed := time.Now().UnixNano() + int64(id)
	if g.opts.Seed != nil {
		seed = sampler.TokenSeed(*g.opts.Seed, id)
	}
	return rand.New(rand.NewSource(seed))
}

// Token samples, scores and renders a single token into dir. The canvas is
// owned by this call and released before it returns.
func (g *Generator) Token(id int, dir string) (*lobster.Entry, error) {
	s := sampler.New(g.cat, g.Source(id))
	traits, err := s.Generate()
	if err != nil {
		return nil, fmt.Errorf("sampling traits: %w", err)
	}
	score, err := rarity.Score(g.cat, traits)
	if err != nil {
		return nil, fmt.Errorf("scoring traits: %w", err)
	}
	cmds, err := render.Scene(g.cat, g.opts.Width, g.opts.Height, traits, s.Source())
	if err != nil {
		return nil, err
	}

	r, err := canvas.Paint(g.opts.Width, g.opts.Height, cmds)
	if err != nil {
		return nil, fmt.Errorf("rasterizing: %w", err)
	}
	defer r.Close()

	path := filepath.Join(dir, ImageName(id))
	if err := r.SavePNG(path); err != nil {
		return nil, err
	}
	return &lobster.Entry{TokenID: id, Traits: traits, Score: score, ImagePath: path}, nil
}
