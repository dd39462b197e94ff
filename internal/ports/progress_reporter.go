package ports

// ProgressReporter receives byte counts while a file is being written.
type ProgressReporter interface {
	// Update is called after every chunk with the running total.
	Update(written, total int64)
	// Done is called once when the write loop has finished.
	Done(written int64)
}
