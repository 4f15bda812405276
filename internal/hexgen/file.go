package hexgen

import (
	"bufio"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// WriteFileAtomic writes the output of writeFunc to a temporary file next to filename
// and renames it over filename once writeFunc, the flush, the sync and the close succeed.
// The temporary file is removed on every failure path.
func WriteFileAtomic(filename string, writeFunc func(io.Writer) error) (err error) {
	dir := filepath.Dir(filename)
	tmpName := filepath.Join(dir, "."+filepath.Base(filename)+"."+uuid.NewString()+".tmp")

	tmp, err := os.OpenFile(tmpName, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmpName)
		}
	}()

	buf := bufio.NewWriter(tmp)
	if err = writeFunc(buf); err != nil {
		return err
	}
	if err = buf.Flush(); err != nil {
		return err
	}
	if err = tmp.Sync(); err != nil {
		return err
	}
	if err = tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmpName, filename)
}
