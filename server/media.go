package server

import (
	"net/http"

	"github.com/example/oiladmin/pkg/storage"
	"github.com/example/oiladmin/pkg/validation"
	"github.com/gin-gonic/gin"
)

func (s *Server) getMedia(c *gin.Context) {
	settings, err := s.stores.Site.Get(c.Request.Context())
	if err != nil {
		s.storeError(c, err, "Settings not found", "Failed to fetch media")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success":        true,
		"images":         settings.Images,
		"homepageSlider": settings.HomepageSlider,
	})
}

// uploadImages fans out one upload per selected file and appends the
// successful URLs to the library in a single write. A failed file is
// reported in its own result entry and never aborts the batch.
func (s *Server) uploadImages(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid multipart form"})
		return
	}
	headers := form.File["files"]
	if len(headers) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "No files provided"})
		return
	}

	ctx := c.Request.Context()
	files := make([]storage.UploadFile, 0, len(headers))
	var closers []interface{ Close() error }
	for _, h := range headers {
		f, err := h.Open()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Unable to read uploaded file"})
			for _, cl := range closers {
				cl.Close()
			}
			return
		}
		closers = append(closers, f)
		files = append(files, storage.UploadFile{
			Name:        h.Filename,
			ContentType: h.Header.Get("Content-Type"),
			Body:        f,
		})
	}
	defer func() {
		for _, cl := range closers {
			cl.Close()
		}
	}()

	results := s.stores.Storage.UploadAll(ctx, files)

	images := []string(nil)
	urls := storage.SuccessfulURLs(results)
	if len(urls) > 0 {
		images, err = s.stores.Site.AppendImages(ctx, urls)
		if err != nil {
			s.storeError(c, err, "Settings not found", "Failed to save uploaded images")
			return
		}
	} else {
		settings, err := s.stores.Site.Get(ctx)
		if err != nil {
			s.storeError(c, err, "Settings not found", "Failed to fetch media")
			return
		}
		images = settings.Images
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"results": results,
		"images":  images,
	})
}

// deleteImageResult is the per-item outcome of a batch delete.
type deleteImageResult struct {
	Index  int    `json:"index"`
	URL    string `json:"url"`
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

// deleteImages removes the selected objects one by one, tracking each
// outcome, then rewrites the image list once without the selected indices.
// A storage failure is reported per item but does not keep the entry in the
// list; the list is the source of truth.
func (s *Server) deleteImages(c *gin.Context) {
	var req validation.DeleteImagesRequest
	if err := validation.BindAndValidate(c, &req, s.validate, "Image indices are required"); err != nil {
		return
	}

	ctx := c.Request.Context()
	settings, err := s.stores.Site.Get(ctx)
	if err != nil {
		s.storeError(c, err, "Settings not found", "Failed to fetch media")
		return
	}

	results := make([]deleteImageResult, 0, len(req.Indices))
	for _, idx := range req.Indices {
		if idx < 0 || idx >= len(settings.Images) {
			results = append(results, deleteImageResult{Index: idx, Status: "error", Error: "index out of range"})
			continue
		}
		url := settings.Images[idx]
		res := deleteImageResult{Index: idx, URL: url, Status: "completed"}
		if key, kerr := s.stores.Storage.KeyFromURL(url); kerr != nil {
			res.Status = "error"
			res.Error = kerr.Error()
		} else if derr := s.stores.Storage.Delete(ctx, key); derr != nil {
			res.Status = "error"
			res.Error = derr.Error()
		}
		results = append(results, res)
	}

	images, err := s.stores.Site.RemoveImages(ctx, req.Indices)
	if err != nil {
		s.storeError(c, err, "Settings not found", "Failed to update image list")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"results": results,
		"images":  images,
	})
}
