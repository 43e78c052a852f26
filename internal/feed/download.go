// Package feed downloads and parses the vendor stock spreadsheet.
package feed

import (
	"archive/zip"
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/go-resty/resty/v2"

	"gomarketsync_api/pkg/logger"
)

const downloadTimeout = 60 * time.Second

type Loader struct {
	client *resty.Client
	log    logger.Logger
}

func NewLoader(log logger.Logger) *Loader {
	return &Loader{
		client: resty.New().SetTimeout(downloadTimeout),
		log:    log,
	}
}

// Download fetches the zip archive with the vendor remnants, extracts the
// spreadsheet into a temp dir and parses it. The temp dir is removed before
// return on every path.
func (l *Loader) Download(ctx context.Context, src Source) ([]Remnant, error) {
	resp, err := l.client.R().SetContext(ctx).Get(src.URL)
	if err != nil {
		return nil, fmt.Errorf("downloading %s: %w", src.URL, err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("downloading %s: unexpected status %s", src.URL, resp.Status())
	}
	l.log.Log("Fetched feed archive, %d bytes", len(resp.Body()))

	dir, err := os.MkdirTemp("", "remnants-*")
	if err != nil {
		return nil, err
	}
	defer os.RemoveAll(dir)

	path, err := extract(resp.Body(), src.FileName, dir)
	if err != nil {
		return nil, err
	}

	remnants, err := ParseFile(path, src)
	if err != nil {
		return nil, err
	}
	l.log.Log("Parsed %d feed rows", len(remnants))
	return remnants, nil
}

// extract unpacks the named spreadsheet out of the archive into dir.
func extract(archive []byte, name, dir string) (string, error) {
	reader, err := zip.NewReader(bytes.NewReader(archive), int64(len(archive)))
	if err != nil {
		return "", fmt.Errorf("opening feed archive: %w", err)
	}
	for _, entry := range reader.File {
		if filepath.Base(entry.Name) != name {
			continue
		}
		in, err := entry.Open()
		if err != nil {
			return "", err
		}
		defer in.Close()

		path := filepath.Join(dir, name)
		out, err := os.Create(path)
		if err != nil {
			return "", err
		}
		if _, err := io.Copy(out, in); err != nil {
			out.Close()
			return "", err
		}
		if err := out.Close(); err != nil {
			return "", err
		}
		return path, nil
	}
	return "", fmt.Errorf("file %q not found in feed archive: %w", name, ErrBadLayout)
}
