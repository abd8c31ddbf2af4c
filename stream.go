package binrec

import "os"

// OpenRead opens path for binary reading. The caller closes it.
func OpenRead(path string) (*os.File, error) {
	return os.Open(path)
}

// OpenWrite creates or truncates path for binary writing. The caller
// closes it.
func OpenWrite(path string) (*os.File, error) {
	return os.Create(path)
}
