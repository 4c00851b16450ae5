package dataset

import (
	"bytes"
	_ "embed"
	"io"
)

var (
	//go:embed data/restaurants.txt
	sampleData []byte
)

// Sample returns a reader over the embedded demo dataset. It is used as the
// default data source when no dataset path is provided, and by tests.
func Sample() io.Reader {
	return bytes.NewReader(sampleData)
}
