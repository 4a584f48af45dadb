package cloud

import (
	"bufio"
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"

	"tagcloud/internal/logging"
	"tagcloud/internal/ranking"
	"tagcloud/internal/render"
	"tagcloud/internal/tokenizer"
	"tagcloud/internal/wordcount"
)

// openInput and createOutput are package-level so tests can inject failures.
var (
	openInput = func(path string) (io.ReadCloser, error) {
		return os.Open(path)
	}
	createOutput = func(path string) (io.WriteCloser, error) {
		return os.Create(path)
	}
)

// Options configures one pipeline run.
type Options struct {
	// InputPath is the text file to read.
	InputPath string
	// Source names the input in the document; InputPath when empty.
	Source string
	// Count is the requested number of words. Values <= 0 yield an empty cloud.
	Count int
	// OutputPath is the full path of the document to write.
	OutputPath  string
	Preconnect  []render.Preconnect
	Stylesheets []string
}

// Analysis is the counted and ranked view of one input.
type Analysis struct {
	Source   string          `json:"source"`
	Lines    int             `json:"lines"`
	Words    int             `json:"words"`
	Distinct int             `json:"distinct"`
	Entries  []ranking.Sized `json:"entries"`
}

// Result describes a completed Generate run.
type Result struct {
	Analysis
	RunID       string        `json:"run_id,omitempty"`
	Requested   int           `json:"requested"`
	OutputPath  string        `json:"output_path"`
	OutputBytes int64         `json:"output_bytes"`
	Elapsed     time.Duration `json:"elapsed"`
}

// Analyze counts the words of inputPath and ranks the top count of them.
func Analyze(ctx context.Context, logger *slog.Logger, inputPath string, count int) (*Analysis, error) {
	logger = logging.NewComponentLogger(logging.WithContext(ctx, logger), "cloud")

	start := time.Now()
	freq, err := countFile(ctx, inputPath)
	if err != nil {
		return nil, err
	}
	logger.Info("input counted",
		logging.String("input_path", inputPath),
		logging.Int("lines", freq.Lines()),
		logging.Int("words", freq.Total()),
		logging.Int("distinct", freq.Len()),
		logging.Duration("count_duration", time.Since(start)),
	)

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	entries := ranking.Scale(ranking.Top(freq, count))
	logger.Debug("words ranked",
		logging.Int("requested", count),
		logging.Int("ranked", len(entries)),
		logging.Int("max_count", maxSizedCount(entries)),
	)

	return &Analysis{
		Source:   inputPath,
		Lines:    freq.Lines(),
		Words:    freq.Total(),
		Distinct: freq.Len(),
		Entries:  entries,
	}, nil
}

// Generate reads opts.InputPath, ranks its words, and writes the tag cloud
// document to opts.OutputPath.
func Generate(ctx context.Context, logger *slog.Logger, opts Options) (*Result, error) {
	start := time.Now()
	runID, _ := logging.RunIDFromContext(ctx)

	analysis, err := Analyze(ctx, logger, opts.InputPath, opts.Count)
	if err != nil {
		return nil, err
	}
	if opts.Source != "" {
		analysis.Source = opts.Source
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	doc := render.Document{
		Source:      analysis.Source,
		Requested:   opts.Count,
		Preconnect:  opts.Preconnect,
		Stylesheets: opts.Stylesheets,
		Words:       analysis.Entries,
	}
	written, err := writeDocument(opts.OutputPath, doc)
	if err != nil {
		return nil, err
	}

	result := &Result{
		Analysis:    *analysis,
		RunID:       runID,
		Requested:   opts.Count,
		OutputPath:  opts.OutputPath,
		OutputBytes: written,
		Elapsed:     time.Since(start),
	}
	logging.NewComponentLogger(logging.WithContext(ctx, logger), "cloud").Info("document written",
		logging.String("output_path", result.OutputPath),
		logging.Int64("output_bytes", result.OutputBytes),
		logging.Int("words_rendered", len(result.Entries)),
		logging.Duration("elapsed", result.Elapsed),
	)
	return result, nil
}

func countFile(ctx context.Context, path string) (freq *wordcount.Frequencies, err error) {
	file, err := openInput(path)
	if err != nil {
		return nil, Wrap(ErrInputUnreadable, "open input", path, err)
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil {
			err = joinRelease(err, Wrap(ErrRelease, "close input", path, closeErr))
		}
	}()

	freq, err = wordcount.Count(ctx, file, tokenizer.Default)
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return nil, err
		}
		return nil, Wrap(ErrInputUnreadable, "read input", path, err)
	}
	return freq, nil
}

func writeDocument(path string, doc render.Document) (written int64, err error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return 0, Wrap(ErrOutputUnwritable, "create output directory", dir, err)
		}
	}

	lockPath := path + ".lock"
	lock := flock.New(lockPath)
	locked, err := lock.TryLock()
	if err != nil {
		return 0, Wrap(ErrOutputUnwritable, "lock output", lockPath, err)
	}
	if !locked {
		return 0, Wrap(ErrOutputLocked, "lock output", lockPath, nil)
	}
	// The lock file persists across runs; only the lock is released.
	defer func() {
		if unlockErr := lock.Unlock(); unlockErr != nil {
			err = joinRelease(err, Wrap(ErrRelease, "unlock output", lockPath, unlockErr))
		}
	}()

	file, err := createOutput(path)
	if err != nil {
		return 0, Wrap(ErrOutputUnwritable, "create output", path, err)
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil {
			err = joinRelease(err, Wrap(ErrRelease, "close output", path, closeErr))
		}
	}()

	counter := &countingWriter{w: file}
	buf := bufio.NewWriter(counter)
	if err := render.Write(buf, doc); err != nil {
		return 0, Wrap(ErrOutputUnwritable, "write output", path, err)
	}
	if err := buf.Flush(); err != nil {
		return 0, Wrap(ErrOutputUnwritable, "flush output", path, err)
	}
	return counter.n, nil
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}

func maxSizedCount(entries []ranking.Sized) int {
	peak := 0
	for _, e := range entries {
		peak = max(peak, e.Count)
	}
	return peak
}
