package cloud_test

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gofrs/flock"

	"tagcloud/internal/cloud"
	"tagcloud/internal/logging"
	"tagcloud/internal/testsupport"
)

func generate(t *testing.T, input string, count int) (*cloud.Result, string, error) {
	t.Helper()
	dir := t.TempDir()
	inputPath := testsupport.WriteText(t, dir, "input.txt", input)
	outputPath := filepath.Join(dir, "out", "cloud.html")
	result, err := cloud.Generate(context.Background(), logging.NewNop(), cloud.Options{
		InputPath:   inputPath,
		Source:      "input.txt",
		Count:       count,
		OutputPath:  outputPath,
		Stylesheets: []string{"tagcloud.css"},
	})
	return result, outputPath, err
}

func TestGenerateWritesDocument(t *testing.T) {
	result, outputPath, err := generate(t, "a a a b c\n", 2)
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}
	if result.Words != 5 || result.Distinct != 3 || result.Lines != 1 {
		t.Fatalf("unexpected counts: %+v", result.Analysis)
	}
	if len(result.Entries) != 2 || result.Entries[0].Word != "a" || result.Entries[1].Word != "b" {
		t.Fatalf("unexpected entries: %+v", result.Entries)
	}

	content := testsupport.ReadText(t, outputPath)
	if int64(len(content)) != result.OutputBytes {
		t.Fatalf("OutputBytes = %d, file has %d", result.OutputBytes, len(content))
	}
	for _, want := range []string{
		"<title>Top 2 words in input.txt</title>",
		"<h2>Top 2 words in input.txt</h2>",
		`<span style="cursor:default; font-size:58px" title="count: 3">a</span>`,
		`<span style="cursor:default; font-size:26px" title="count: 1">b</span>`,
	} {
		if !strings.Contains(content, want) {
			t.Fatalf("expected %q in document:\n%s", want, content)
		}
	}
	if strings.Contains(content, ">c</span>") {
		t.Fatal("c should have been truncated")
	}
}

func TestGenerateKeepsLockFileAndReleasesLock(t *testing.T) {
	dir := t.TempDir()
	inputPath := testsupport.WriteText(t, dir, "input.txt", "word word other")
	outputPath := filepath.Join(dir, "cloud.html")
	opts := cloud.Options{InputPath: inputPath, Count: 1, OutputPath: outputPath}

	for run := 1; run <= 2; run++ {
		if _, err := cloud.Generate(context.Background(), logging.NewNop(), opts); err != nil {
			t.Fatalf("run %d: Generate returned error: %v", run, err)
		}
		if _, err := os.Stat(outputPath + ".lock"); err != nil {
			t.Fatalf("run %d: expected lock file to stay in place: %v", run, err)
		}
	}

	holder := flock.New(outputPath + ".lock")
	locked, err := holder.TryLock()
	if err != nil || !locked {
		t.Fatalf("lock should be free after Generate: locked=%v err=%v", locked, err)
	}
	_ = holder.Unlock()
}

func TestGenerateEmptyInput(t *testing.T) {
	result, outputPath, err := generate(t, "", 10)
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}
	if len(result.Entries) != 0 {
		t.Fatalf("expected no entries, got %+v", result.Entries)
	}
	if strings.Contains(testsupport.ReadText(t, outputPath), "<span") {
		t.Fatal("expected no word elements for empty input")
	}
}

func TestGenerateMissingInput(t *testing.T) {
	dir := t.TempDir()
	outputPath := filepath.Join(dir, "cloud.html")
	_, err := cloud.Generate(context.Background(), nil, cloud.Options{
		InputPath:  filepath.Join(dir, "nope.txt"),
		Count:      3,
		OutputPath: outputPath,
	})
	if !errors.Is(err, cloud.ErrInputUnreadable) {
		t.Fatalf("expected ErrInputUnreadable, got %v", err)
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected cause to be preserved, got %v", err)
	}
	if _, statErr := os.Stat(outputPath); !os.IsNotExist(statErr) {
		t.Fatal("no output should be produced when the input cannot be read")
	}
}

func TestGenerateUnwritableOutput(t *testing.T) {
	dir := t.TempDir()
	inputPath := testsupport.WriteText(t, dir, "input.txt", "word")
	blocker := testsupport.WriteText(t, dir, "blocker", "")
	_, err := cloud.Generate(context.Background(), nil, cloud.Options{
		InputPath:  inputPath,
		Count:      1,
		OutputPath: filepath.Join(blocker, "cloud.html"),
	})
	if !errors.Is(err, cloud.ErrOutputUnwritable) {
		t.Fatalf("expected ErrOutputUnwritable, got %v", err)
	}
}

func TestGenerateLockedOutput(t *testing.T) {
	dir := t.TempDir()
	inputPath := testsupport.WriteText(t, dir, "input.txt", "word")
	outputPath := filepath.Join(dir, "cloud.html")

	holder := flock.New(outputPath + ".lock")
	locked, err := holder.TryLock()
	if err != nil || !locked {
		t.Fatalf("acquire lock: locked=%v err=%v", locked, err)
	}
	defer holder.Unlock()

	_, err = cloud.Generate(context.Background(), nil, cloud.Options{
		InputPath:  inputPath,
		Count:      1,
		OutputPath: outputPath,
	})
	if !errors.Is(err, cloud.ErrOutputLocked) {
		t.Fatalf("expected ErrOutputLocked, got %v", err)
	}
}

func TestGenerateCancelled(t *testing.T) {
	dir := t.TempDir()
	inputPath := testsupport.WriteText(t, dir, "input.txt", "word")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := cloud.Generate(ctx, nil, cloud.Options{
		InputPath:  inputPath,
		Count:      1,
		OutputPath: filepath.Join(dir, "cloud.html"),
	})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if errors.Is(err, cloud.ErrInputUnreadable) {
		t.Fatal("cancellation must not be reported as unreadable input")
	}
}

type failingWriter struct {
	writeErr error
	closeErr error
	closes   int
}

func (w *failingWriter) Write(p []byte) (int, error) {
	if w.writeErr != nil {
		return 0, w.writeErr
	}
	return len(p), nil
}

func (w *failingWriter) Close() error {
	w.closes++
	return w.closeErr
}

func TestGenerateReportsCloseFailure(t *testing.T) {
	sink := &failingWriter{closeErr: errors.New("close boom")}
	restore := cloud.SetCreateOutputForTests(func(string) (io.WriteCloser, error) { return sink, nil })
	defer restore()

	_, _, err := generate(t, "a b", 2)
	if !errors.Is(err, cloud.ErrRelease) {
		t.Fatalf("expected ErrRelease, got %v", err)
	}
	if sink.closes != 1 {
		t.Fatalf("output closed %d times, want 1", sink.closes)
	}
}

func TestCloseFailureDoesNotMaskPrimary(t *testing.T) {
	sink := &failingWriter{writeErr: errors.New("disk full"), closeErr: errors.New("close boom")}
	restore := cloud.SetCreateOutputForTests(func(string) (io.WriteCloser, error) { return sink, nil })
	defer restore()

	_, _, err := generate(t, "a b", 2)
	if !errors.Is(err, cloud.ErrOutputUnwritable) {
		t.Fatalf("expected primary ErrOutputUnwritable, got %v", err)
	}
	if !errors.Is(err, cloud.ErrRelease) {
		t.Fatalf("expected secondary ErrRelease, got %v", err)
	}
	if !strings.HasPrefix(err.Error(), cloud.ErrOutputUnwritable.Error()) {
		t.Fatalf("primary error should come first: %v", err)
	}
	if sink.closes != 1 {
		t.Fatalf("output closed %d times, want 1", sink.closes)
	}
}

type closeFailReader struct {
	io.Reader
	closes int
}

func (r *closeFailReader) Close() error {
	r.closes++
	return errors.New("input close boom")
}

func TestInputReleasedOnce(t *testing.T) {
	src := &closeFailReader{Reader: strings.NewReader("x y z")}
	restore := cloud.SetOpenInputForTests(func(string) (io.ReadCloser, error) { return src, nil })
	defer restore()

	_, err := cloud.Analyze(context.Background(), nil, "virtual.txt", 3)
	if !errors.Is(err, cloud.ErrRelease) {
		t.Fatalf("expected ErrRelease from input close, got %v", err)
	}
	if src.closes != 1 {
		t.Fatalf("input closed %d times, want 1", src.closes)
	}
}

func TestAnalyzeRanksWithoutWriting(t *testing.T) {
	dir := t.TempDir()
	inputPath := testsupport.WriteText(t, dir, "input.txt", "the cat sat on the mat.\n")
	analysis, err := cloud.Analyze(context.Background(), logging.NewNop(), inputPath, 3)
	if err != nil {
		t.Fatalf("Analyze returned error: %v", err)
	}
	var words []string
	for _, e := range analysis.Entries {
		words = append(words, e.Word)
	}
	if strings.Join(words, ",") != "cat,sat,the" {
		t.Fatalf("unexpected ranking %v", words)
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("read dir: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("Analyze must not write files, found %d entries", len(entries))
	}
}
