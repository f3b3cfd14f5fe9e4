// Package fileutil holds file copy helpers shared by the organizer.
package fileutil

import (
	"bytes"
	"crypto/sha256"
	"errors"
	"fmt"
	"io"
	"os"
)

// openForVerify reopens the written destination; tests swap it to simulate
// data that did not reach the disk intact.
var openForVerify = func(path string) (io.ReadCloser, error) {
	return os.Open(path)
}

// CopyFileVerified streams src to dst, then rereads dst from disk and checks
// its size and SHA-256 against the source before carrying over the permission
// bits and modification time. dst must not exist. On any failure dst is
// removed and src is left alone.
func CopyFileVerified(src, dst string) (err error) {
	srcInfo, err := os.Stat(src)
	if err != nil {
		return fmt.Errorf("stat source: %w", err)
	}
	if !srcInfo.Mode().IsRegular() {
		return fmt.Errorf("copy %s: not a regular file", src)
	}

	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_CREATE|os.O_EXCL|os.O_WRONLY, srcInfo.Mode().Perm())
	if err != nil {
		return err
	}
	closed := false
	defer func() {
		if !closed {
			_ = out.Close()
		}
		if err != nil {
			_ = os.Remove(dst)
		}
	}()

	srcHasher := sha256.New()
	written, err := io.Copy(out, io.TeeReader(in, srcHasher))
	if err != nil {
		return err
	}
	if err = out.Sync(); err != nil {
		return err
	}
	closed = true
	if err = out.Close(); err != nil {
		return err
	}
	if written != srcInfo.Size() {
		return fmt.Errorf("copy size mismatch: source %d bytes, copied %d bytes", srcInfo.Size(), written)
	}

	if err = verifyOnDisk(dst, written, srcHasher.Sum(nil)); err != nil {
		return err
	}

	if err = os.Chmod(dst, srcInfo.Mode().Perm()); err != nil {
		return fmt.Errorf("preserve mode: %w", err)
	}
	if err = os.Chtimes(dst, srcInfo.ModTime(), srcInfo.ModTime()); err != nil {
		return fmt.Errorf("preserve modification time: %w", err)
	}
	return nil
}

func verifyOnDisk(dst string, wantSize int64, wantSum []byte) error {
	f, err := openForVerify(dst)
	if err != nil {
		return fmt.Errorf("reopen copy for verification: %w", err)
	}
	defer f.Close()

	h := sha256.New()
	n, err := io.Copy(h, f)
	if err != nil {
		return fmt.Errorf("read copy for verification: %w", err)
	}
	if n != wantSize {
		return fmt.Errorf("copy size mismatch: expected %d bytes on disk, found %d", wantSize, n)
	}
	if !bytes.Equal(h.Sum(nil), wantSum) {
		return errors.New("copy hash mismatch: destination differs from source")
	}
	return nil
}
