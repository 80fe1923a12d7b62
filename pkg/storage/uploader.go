package storage

import (
	"context"
	"io"
	"sync"
)

// Upload outcome states, reported per file.
const (
	UploadCompleted = "completed"
	UploadError     = "error"
)

// UploadFile is one file selected for upload.
type UploadFile struct {
	Name        string
	ContentType string
	Body        io.Reader
}

// UploadResult is the individual outcome of one file's upload. A batch
// always settles every file; failures never cancel siblings.
type UploadResult struct {
	FileName string `json:"fileName"`
	Status   string `json:"status"`
	URL      string `json:"url,omitempty"`
	Error    string `json:"error,omitempty"`
}

// UploadAll uploads every file concurrently and returns one result per
// input, in input order. Callers append the successful URLs to the owning
// document in a single write afterwards.
func (c *Client) UploadAll(ctx context.Context, files []UploadFile) []UploadResult {
	results := make([]UploadResult, len(files))

	var wg sync.WaitGroup
	for i, file := range files {
		wg.Add(1)
		go func(i int, file UploadFile) {
			defer wg.Done()
			results[i] = c.uploadOne(ctx, file)
		}(i, file)
	}
	wg.Wait()

	return results
}

func (c *Client) uploadOne(ctx context.Context, file UploadFile) UploadResult {
	url, err := c.Upload(ctx, c.ObjectKey(file.Name), file.ContentType, file.Body)
	if err != nil {
		return UploadResult{FileName: file.Name, Status: UploadError, Error: err.Error()}
	}
	return UploadResult{FileName: file.Name, Status: UploadCompleted, URL: url}
}

// SuccessfulURLs extracts the URLs of the completed uploads, preserving
// input order.
func SuccessfulURLs(results []UploadResult) []string {
	urls := make([]string, 0, len(results))
	for _, r := range results {
		if r.Status == UploadCompleted {
			urls = append(urls, r.URL)
		}
	}
	return urls
}
