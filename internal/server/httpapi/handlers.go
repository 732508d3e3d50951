package httpapi

import (
	"errors"
	"net/http"
	"sort"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/dmitrijs2005/photokeeper/internal/server/storage"
)

// maxMultipartMemory caps the in-memory part of multipart parsing;
// larger payloads spill to temp files.
const maxMultipartMemory = 32 << 20

// maxUploadBytes mirrors the client-side validation ceiling. The server
// re-checks because the endpoint is reachable without the client.
const maxUploadBytes = 50 << 20

type uploadResponse struct {
	URL      string `json:"url"`
	ID       string `json:"id"`
	FileName string `json:"fileName"`
}

type photoInfo struct {
	ID           string    `json:"id"`
	FileName     string    `json:"fileName"`
	URL          string    `json:"url"`
	Size         int64     `json:"size"`
	LastModified time.Time `json:"lastModified"`
}

type listResponse struct {
	Photos []photoInfo `json:"photos"`
	Total  int         `json:"total"`
}

type statusResponse struct {
	Configured bool   `json:"configured"`
	Bucket     string `json:"bucket"`
	Endpoint   string `json:"endpoint"`
}

func (s *Server) handleUpload(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := r.ParseMultipartForm(maxMultipartMemory); err != nil {
		writeError(w, http.StatusBadRequest, "invalid multipart form")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "file field is required")
		return
	}
	defer file.Close()

	if header.Size > maxUploadBytes {
		writeError(w, http.StatusRequestEntityTooLarge, "file exceeds the upload limit")
		return
	}

	name := r.FormValue("originalName")
	if name == "" {
		name = header.Filename
	}

	photoID := r.FormValue("photoId")
	if photoID == "" {
		photoID = uuid.NewString()
	}

	contentType := header.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	key := storage.GenerateKey(storage.FolderJournal, photoID, name, time.Now())

	url, err := s.adapter.Put(ctx, key, contentType, file, header.Size)
	if err != nil {
		if errors.Is(err, storage.ErrNotConfigured) {
			s.logger.Info(ctx, "upload rejected, storage not configured", "key", key)
			writeError(w, http.StatusServiceUnavailable, msgNotConfigured)
			return
		}
		s.logger.Error(ctx, err.Error(), "key", key)
		writeError(w, http.StatusInternalServerError, "failed to store photo")
		return
	}

	s.logger.Info(ctx, "photo stored", "key", key, "size", header.Size)

	writeJSON(w, http.StatusOK, uploadResponse{URL: url, ID: photoID, FileName: key})
}

func (s *Server) handleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	objects, err := s.adapter.List(ctx, storage.FolderJournal+"/")
	if err != nil {
		if errors.Is(err, storage.ErrNotConfigured) {
			writeError(w, http.StatusServiceUnavailable, msgNotConfigured)
			return
		}
		s.logger.Error(ctx, err.Error())
		writeError(w, http.StatusInternalServerError, "failed to list photos")
		return
	}

	photos := make([]photoInfo, 0, len(objects))
	for _, obj := range objects {
		id, name, ok := storage.SplitKey(obj.Key)
		if !ok {
			// Foreign object in the bucket; expose it under its raw key.
			id, name = "", obj.Key
		}

		url, err := s.adapter.GetURL(ctx, obj.Key, s.presignExpiry)
		if err != nil {
			s.logger.Error(ctx, err.Error(), "key", obj.Key)
			continue
		}

		photos = append(photos, photoInfo{
			ID:           id,
			FileName:     name,
			URL:          url,
			Size:         obj.Size,
			LastModified: obj.LastModified,
		})
	}

	// Newest first.
	sort.Slice(photos, func(i, j int) bool {
		return photos[i].LastModified.After(photos[j].LastModified)
	})

	writeJSON(w, http.StatusOK, listResponse{Photos: photos, Total: len(photos)})
}

// handleDelete scans every stored key for the requested id. The keys
// embed the id, so a full scan beats maintaining a separate index for
// a family-sized gallery.
func (s *Server) handleDelete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	imageID := chi.URLParam(r, "imageID")

	objects, err := s.adapter.List(ctx, storage.FolderJournal+"/")
	if err != nil {
		if errors.Is(err, storage.ErrNotConfigured) {
			writeError(w, http.StatusServiceUnavailable, msgNotConfigured)
			return
		}
		s.logger.Error(ctx, err.Error())
		writeError(w, http.StatusInternalServerError, "failed to delete photo")
		return
	}

	var key string
	for _, obj := range objects {
		if strings.Contains(obj.Key, imageID) {
			key = obj.Key
			break
		}
	}
	if key == "" {
		writeError(w, http.StatusNotFound, "photo not found")
		return
	}

	if err := s.adapter.Delete(ctx, key); err != nil {
		s.logger.Error(ctx, err.Error(), "key", key)
		writeError(w, http.StatusInternalServerError, "failed to delete photo")
		return
	}

	s.logger.Info(ctx, "photo deleted", "key", key)
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, statusResponse{
		Configured: s.adapter.Configured(),
		Bucket:     s.adapter.Bucket(),
		Endpoint:   s.adapter.Endpoint(),
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
