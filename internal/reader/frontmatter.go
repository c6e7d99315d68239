package reader

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/adrg/frontmatter"
	"gopkg.in/yaml.v3"

	"github.com/lmorrow/inkwell/internal/domain"
)

// Front matter is delimited by --- fences and decoded as YAML.
var yamlFormat = frontmatter.NewFormat("---", "---", yaml.Unmarshal)

// DirReader reads every markdown file of one collection directory.
type DirReader struct {
	dir        string
	collection domain.Collection
}

func NewDirReader(dir string, c domain.Collection) *DirReader {
	return &DirReader{dir: dir, collection: c}
}

func (r *DirReader) Read() ([]RawEntry, error) {
	paths, err := r.listFiles()
	if err != nil {
		return nil, err
	}

	entries := make([]RawEntry, 0, len(paths))
	for _, p := range paths {
		e, err := parseEntry(p, r.collection)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, nil
}

// ReadParallel parses the collection's files on workerCount workers.
// Entries are independent, so no ordering is guaranteed.
func (r *DirReader) ReadParallel(ctx context.Context, workerCount int) (<-chan ParallelResult, error) {
	paths, err := r.listFiles()
	if err != nil {
		return nil, err
	}
	if workerCount < 1 {
		workerCount = 1
	}

	pathCh := make(chan string)
	out := make(chan ParallelResult)

	var wg sync.WaitGroup
	for i := 0; i < workerCount; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for p := range pathCh {
				e, err := parseEntry(p, r.collection)
				select {
				case <-ctx.Done():
					return
				case out <- ParallelResult{Entry: e, Err: err}:
				}
			}
		}()
	}

	go func() {
		defer close(pathCh)
		for _, p := range paths {
			select {
			case <-ctx.Done():
				return
			case pathCh <- p:
			}
		}
	}()

	go func() {
		wg.Wait()
		close(out)
	}()

	return out, nil
}

func (r *DirReader) listFiles() ([]string, error) {
	dirEntries, err := os.ReadDir(r.dir)
	if err != nil {
		return nil, fmt.Errorf("read content dir %s: %w", r.dir, err)
	}

	var paths []string
	for _, de := range dirEntries {
		if de.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(de.Name()))
		if ext != ".md" && ext != ".markdown" {
			continue
		}
		paths = append(paths, filepath.Join(r.dir, de.Name()))
	}
	return paths, nil
}

func parseEntry(path string, c domain.Collection) (RawEntry, error) {
	f, err := os.Open(path)
	if err != nil {
		return RawEntry{}, fmt.Errorf("open content file: %w", err)
	}
	defer f.Close()

	var data map[string]any
	body, err := frontmatter.Parse(f, &data, yamlFormat)
	if err != nil {
		return RawEntry{}, fmt.Errorf("parse front matter in %s: %w", path, err)
	}

	return RawEntry{
		Slug:       Slug(path),
		Collection: c,
		Data:       data,
		Body:       body,
		Path:       path,
	}, nil
}

// Slug derives the file's identifier: the base name without extension.
func Slug(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
