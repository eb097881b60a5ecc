package parse

type parseOpts struct {
	filename string
}

type ParseOption func(*parseOpts)

// WithFilename sets the path recorded on diagnostics, for reports that
// cover more than one file.
func WithFilename(name string) ParseOption {
	return func(o *parseOpts) {
		o.filename = name
	}
}
