package filesystem

import (
	"os"
	"path/filepath"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/valyala/bytebufferpool"
)

// writeRowsPerLine renders a JSON array with one compact element per line,
// which keeps the data files diffable.
func writeRowsPerLine[T any](buf *bytebufferpool.ByteBuffer, indent string, rows []T) error {
	_, _ = buf.WriteString("[")
	for i, row := range rows {
		encoded, err := sonic.Marshal(row)
		if err != nil {
			return crerr.Wrapf(err, "marshal row %d", i)
		}
		if i > 0 {
			_ = buf.WriteByte(',')
		}
		_ = buf.WriteByte('\n')
		_, _ = buf.WriteString(indent + "  ")
		_, _ = buf.Write(encoded)
	}
	if len(rows) > 0 {
		_ = buf.WriteByte('\n')
		_, _ = buf.WriteString(indent)
	}
	_, _ = buf.WriteString("]")
	return nil
}

// writeFileAtomic writes data next to path and renames it into place.
func writeFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return crerr.Wrapf(err, "create directory %s", dir)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return crerr.Wrapf(err, "create temp file in %s", dir)
	}
	tmpName := tmp.Name()
	defer func() {
		_ = os.Remove(tmpName)
	}()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return crerr.Wrapf(err, "write %s", tmpName)
	}
	if err := tmp.Close(); err != nil {
		return crerr.Wrapf(err, "close %s", tmpName)
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		return crerr.Wrapf(err, "chmod %s", tmpName)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return crerr.Wrapf(err, "rename into %s", path)
	}
	return nil
}
