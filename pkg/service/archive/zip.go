package archive

import (
	"archive/zip"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/umlindi-lab/wardrisk/pkg/domain/types"
	"github.com/umlindi-lab/wardrisk/pkg/service/export"
	"github.com/umlindi-lab/wardrisk/pkg/utils/safe"
)

// Bundle zips the given files into dir, named from the label (local
// municipality, falling back to ward) and a one-second timestamp. Entry
// names are the bare file names.
func Bundle(ctx context.Context, dir, label string, now time.Time, files []string) (string, error) {
	name := fmt.Sprintf("%s_%s.zip", export.SafeFilename(label), now.UTC().Format("20060102_150405"))
	path := filepath.Join(dir, name)

	f, err := os.Create(path) // #nosec G304 - path is derived from SafeFilename
	if err != nil {
		return "", goerr.Wrap(err, "failed to create zip file", goerr.T(types.ErrTagPersistence), goerr.V("path", path))
	}
	defer f.Close() //nolint:errcheck

	zw := zip.NewWriter(f)
	for _, file := range files {
		if err := addFile(ctx, zw, file); err != nil {
			_ = zw.Close()
			return "", err
		}
	}

	if err := zw.Close(); err != nil {
		return "", goerr.Wrap(err, "failed to finalize zip file", goerr.T(types.ErrTagPersistence), goerr.V("path", path))
	}
	if err := f.Close(); err != nil {
		return "", goerr.Wrap(err, "failed to close zip file", goerr.T(types.ErrTagPersistence), goerr.V("path", path))
	}
	return path, nil
}

func addFile(ctx context.Context, zw *zip.Writer, path string) error {
	src, err := os.Open(path) // #nosec G304 - path comes from our own artifact set
	if err != nil {
		return goerr.Wrap(err, "failed to open file for bundling", goerr.T(types.ErrTagPersistence), goerr.V("path", path))
	}
	defer safe.Close(ctx, src)

	dst, err := zw.Create(filepath.Base(path))
	if err != nil {
		return goerr.Wrap(err, "failed to add zip entry", goerr.T(types.ErrTagPersistence), goerr.V("path", path))
	}
	if _, err := io.Copy(dst, src); err != nil {
		return goerr.Wrap(err, "failed to copy zip entry", goerr.T(types.ErrTagPersistence), goerr.V("path", path))
	}
	return nil
}
