package cloud

import "io"

// SetOpenInputForTests overrides how input files are opened.
func SetOpenInputForTests(fn func(string) (io.ReadCloser, error)) func() {
	previous := openInput
	openInput = fn
	return func() {
		openInput = previous
	}
}

// SetCreateOutputForTests overrides how output files are created.
func SetCreateOutputForTests(fn func(string) (io.WriteCloser, error)) func() {
	previous := createOutput
	createOutput = fn
	return func() {
		createOutput = previous
	}
}
