//go:build !unix

package preflight

import "os"

// access on platforms without access(2) opens the directory to prove it is
// readable. Write permission is left to the move itself.
func access(path string, _ bool) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	return f.Close()
}
