// Package vocab materializes and verifies the tokenizer vocabulary cache used
// for token counting. The tokenizer library downloads its BPE files on first
// load and caches them in the directory named by TIKTOKEN_CACHE_DIR; baking
// that cache into the deploy image avoids a network fetch at runtime.
package vocab

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/pkoukk/tiktoken-go"
)

const (
	// EncodingName is the encoding the API uses for token counting.
	EncodingName = "o200k_base"

	cacheDirEnv = "TIKTOKEN_CACHE_DIR"

	sampleText = "Hello, deployment."
)

// CacheFile describes one materialized vocabulary file.
type CacheFile struct {
	Name string
	Size int64
}

// Download ensures dir exists, points the tokenizer cache at it, and loads the
// encoding so its vocabulary files are fetched into dir. Requires network on a
// cold cache. Returns the resulting cache contents.
func Download(dir string) ([]CacheFile, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create cache dir: %w", err)
	}
	if err := os.Setenv(cacheDirEnv, dir); err != nil {
		return nil, fmt.Errorf("set %s: %w", cacheDirEnv, err)
	}

	if _, err := tiktoken.GetEncoding(EncodingName); err != nil {
		return nil, fmt.Errorf("load %s encoding: %w", EncodingName, err)
	}

	return ListCache(dir)
}

// Verify loads the encoding from the cache in dir and encodes a sample string,
// reporting what it finds along the way. A populated cache and a non-empty
// token sequence mean token counting will work without network access.
func Verify(dir string, log *slog.Logger) error {
	files, err := ListCache(dir)
	if err != nil {
		log.Warn("cache dir not readable", "dir", dir, "err", err)
	} else {
		log.Info("cache dir", "dir", dir, "files", len(files))
	}

	if err := os.Setenv(cacheDirEnv, dir); err != nil {
		return fmt.Errorf("set %s: %w", cacheDirEnv, err)
	}

	enc, err := tiktoken.GetEncoding(EncodingName)
	if err != nil {
		return fmt.Errorf("load %s encoding: %w", EncodingName, err)
	}

	tokens := enc.Encode(sampleText, nil, nil)
	if len(tokens) == 0 {
		return fmt.Errorf("encoding %s produced no tokens for sample", EncodingName)
	}
	log.Info("sample encoded", "encoding", EncodingName, "tokens", len(tokens))

	files, err = ListCache(dir)
	if err != nil {
		return fmt.Errorf("list cache after load: %w", err)
	}
	for _, f := range files {
		log.Info("cache file", "name", f.Name, "bytes", f.Size)
	}
	return nil
}

// ListCache returns the regular files in dir with their sizes.
func ListCache(dir string) ([]CacheFile, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	files := make([]CacheFile, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		info, err := e.Info()
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", filepath.Join(dir, e.Name()), err)
		}
		files = append(files, CacheFile{Name: e.Name(), Size: info.Size()})
	}
	return files, nil
}
