package cli

import (
	"context"
	"fmt"
	"mime"
	"net/http"
	"os"
	"path/filepath"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/dmitrijs2005/photokeeper/internal/client/models"
	"github.com/dmitrijs2005/photokeeper/internal/client/pipeline"
)

// uploadConcurrency limits parallel in-flight uploads.
const uploadConcurrency = 4

func (a *App) upload(ctx context.Context, paths []string) error {
	if len(paths) == 0 {
		fmt.Fprintln(a.out, "Usage: photokeeper upload <file>...")
		return nil
	}
	if len(paths) > a.config.MaxAttachments {
		return fmt.Errorf("too many photos: %d exceeds the limit of %d per entry", len(paths), a.config.MaxAttachments)
	}

	var mu sync.Mutex
	emit := func(format string, args ...any) {
		mu.Lock()
		defer mu.Unlock()
		fmt.Fprintf(a.out, format, args...)
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(uploadConcurrency)

	for _, path := range paths {
		g.Go(func() error {
			return a.uploadOne(ctx, path, emit)
		})
	}

	return g.Wait()
}

func (a *App) uploadOne(ctx context.Context, path string, emit func(string, ...any)) error {
	f, err := loadFile(path)
	if err != nil {
		return err
	}

	if res := pipeline.Validate(f.Name, f.ContentType, f.Size()); !res.Valid {
		return fmt.Errorf("%s: %s", path, res.Error)
	} else if res.Warning != "" {
		emit("%s: %s\n", f.Name, res.Warning)
	}

	photo := a.intake.Process(ctx, f)
	defer photo.Discard()

	if photo.Warning != "" {
		emit("%s: %s\n", f.Name, photo.Warning)
	}

	url, err := a.client.Upload(ctx, photo, nil)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	emit("%s -> %s\n", f.Name, url)
	return nil
}

func loadFile(path string) (models.File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return models.File{}, err
	}

	name := filepath.Base(path)

	contentType := mime.TypeByExtension(filepath.Ext(name))
	if contentType == "" {
		contentType = http.DetectContentType(data)
	}

	return models.File{Name: name, ContentType: contentType, Data: data}, nil
}
