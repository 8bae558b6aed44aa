package main

import (
	"io"
	"os"
)

// readDocumentSource returns the raw YAML node document named by path.
// InputSourceStdin reads the whole of stdin instead, so documents can be
// piped in from other tools.
func readDocumentSource(path string, stdin io.Reader) ([]byte, error) {
	if path != InputSourceStdin {
		return os.ReadFile(path)
	}
	return io.ReadAll(stdin)
}
