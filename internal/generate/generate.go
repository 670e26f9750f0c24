package generate

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/gubarz/lispdoc/internal/chunk"
	"github.com/gubarz/lispdoc/internal/page"
	"github.com/gubarz/lispdoc/internal/render"
	"github.com/gubarz/lispdoc/internal/source"
	"github.com/gubarz/lispdoc/internal/walker"
)

// Options configures one generation run.
type Options struct {
	Source string // source directory, walked recursively
	Out    string // destination directory, must exist
	Ext    string // source file extension to match
	Marker string // two-character comment marker
	Title  string // optional page title prefix
	Jobs   int    // files processed concurrently, minimum 1
}

// Stats summarizes a completed run.
type Stats struct {
	Files   int
	Chunks  int
	Elapsed time.Duration
}

// Generator runs the read/classify/parse/render/write pipeline over every
// source file under Options.Source. Files are independent; the converter
// inside the renderer is the only shared state and is read-only.
type Generator struct {
	opts     Options
	parser   *chunk.Parser
	renderer *render.Renderer
	log      zerolog.Logger
}

// New wires a generator. The markup converter is built here, once, and
// reused for every file in the run.
func New(opts Options, log zerolog.Logger) *Generator {
	classifier := source.NewClassifier(opts.Marker)
	return &Generator{
		opts:     opts,
		parser:   chunk.NewParser(classifier),
		renderer: render.NewRenderer(render.NewConverter(), classifier.Marker()),
		log:      log,
	}
}

// Run regenerates the full output set. Setup problems and any per-file
// failure abort the run; there is no skip-and-continue. Reruns over
// unchanged sources produce byte-identical output.
func (g *Generator) Run() (Stats, error) {
	start := time.Now()

	if err := walker.CheckDirs(g.opts.Source, g.opts.Out); err != nil {
		return Stats{}, err
	}

	files, err := walker.Sources(g.opts.Source, g.opts.Ext)
	if err != nil {
		return Stats{}, fmt.Errorf("walking %s: %w", g.opts.Source, err)
	}

	jobs := g.opts.Jobs
	if jobs < 1 {
		jobs = 1
	}

	var chunkCount atomic.Int64
	grp := new(errgroup.Group)
	grp.SetLimit(jobs)
	for _, file := range files {
		file := file
		grp.Go(func() error {
			n, err := g.processFile(file)
			if err != nil {
				return fmt.Errorf("processing %s: %w", file.Rel, err)
			}
			chunkCount.Add(int64(n))
			return nil
		})
	}
	if err := grp.Wait(); err != nil {
		return Stats{}, err
	}

	return Stats{
		Files:   len(files),
		Chunks:  int(chunkCount.Load()),
		Elapsed: time.Since(start),
	}, nil
}

func (g *Generator) processFile(file walker.File) (int, error) {
	lines, err := source.ReadLines(file.Path)
	if err != nil {
		return 0, err
	}

	parsed := g.parser.Parse(lines)
	fragments := make([]string, 0, len(parsed))
	for _, ch := range parsed {
		fragment, err := g.renderer.Render(ch)
		if err != nil {
			return 0, fmt.Errorf("rendering %s chunk at line %d: %w", ch.Kind, ch.Lines[0].Number, err)
		}
		fragments = append(fragments, fragment)
	}

	title := file.Rel
	if g.opts.Title != "" {
		title = g.opts.Title + ": " + file.Rel
	}

	out := filepath.Join(g.opts.Out, walker.OutputName(file.Rel))
	if err := g.writePage(out, title, fragments); err != nil {
		return 0, err
	}

	g.log.Debug().
		Str("file", file.Rel).
		Int("chunks", len(parsed)).
		Str("out", out).
		Msg("generated")

	return len(parsed), nil
}

func (g *Generator) writePage(path, title string, fragments []string) (err error) {
	out, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() { err = errors.Join(err, out.Close()) }()

	return page.Write(out, title, fragments)
}
