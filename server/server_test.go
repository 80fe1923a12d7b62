package server

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/example/oiladmin/pkg/auth"
	"github.com/example/oiladmin/pkg/config"
	"github.com/example/oiladmin/pkg/models"
	"github.com/example/oiladmin/pkg/repository"
	"github.com/example/oiladmin/pkg/storage"
	"go.uber.org/zap"
)

// In-memory fakes for the store interfaces, mirroring the document-level
// semantics of the Mongo-backed implementations.

type fakeOrderStore struct {
	orders map[string]*models.Order
	err    error
}

func newFakeOrderStore(orders ...*models.Order) *fakeOrderStore {
	f := &fakeOrderStore{orders: map[string]*models.Order{}}
	for _, o := range orders {
		f.orders[o.ID] = o
	}
	return f
}

func (f *fakeOrderStore) List(ctx context.Context, opts repository.ListOrdersOptions) ([]*models.Order, error) {
	if f.err != nil {
		return nil, f.err
	}
	var all []*models.Order
	for _, o := range f.orders {
		all = append(all, o)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].CreatedAt.After(all[j].CreatedAt) })

	limit := opts.Limit
	if limit <= 0 {
		limit = 50
	}
	if int64(len(all)) > limit {
		all = all[:limit]
	}

	var out []*models.Order
	for _, o := range all {
		if opts.Status != "" && opts.Status != "all" && !strings.EqualFold(o.Status, opts.Status) {
			continue
		}
		if !o.MatchesSearch(opts.Search) {
			continue
		}
		out = append(out, o)
	}
	return out, nil
}

func (f *fakeOrderStore) Get(ctx context.Context, id string) (*models.Order, error) {
	if f.err != nil {
		return nil, f.err
	}
	o, ok := f.orders[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return o, nil
}

func (f *fakeOrderStore) Delete(ctx context.Context, id string) error {
	if f.err != nil {
		return f.err
	}
	if _, ok := f.orders[id]; !ok {
		return repository.ErrNotFound
	}
	delete(f.orders, id)
	return nil
}

func (f *fakeOrderStore) SetStatus(ctx context.Context, id, status string) error {
	if f.err != nil {
		return f.err
	}
	o, ok := f.orders[id]
	if !ok {
		return repository.ErrNotFound
	}
	o.Status = status
	o.UpdatedAt = time.Now().UTC()
	return nil
}

func (f *fakeOrderStore) SetPaymentStatus(ctx context.Context, id, paymentStatus string) error {
	if f.err != nil {
		return f.err
	}
	o, ok := f.orders[id]
	if !ok {
		return repository.ErrNotFound
	}
	o.PaymentStatus = paymentStatus
	o.UpdatedAt = time.Now().UTC()
	return nil
}

func (f *fakeOrderStore) Statistics(ctx context.Context) (*models.OrderStatistics, error) {
	if f.err != nil {
		return nil, f.err
	}
	stats := &models.OrderStatistics{}
	for _, o := range f.orders {
		stats.TotalOrders++
		stats.TotalRevenue += o.Total
		switch o.Status {
		case models.OrderStatusPending:
			stats.PendingOrders++
		case models.OrderStatusProcessing:
			stats.ProcessingOrders++
		case models.OrderStatusCompleted:
			stats.CompletedOrders++
		case models.OrderStatusCancelled:
			stats.CancelledOrders++
		}
	}
	return stats, nil
}

type fakeProductStore struct {
	products map[string]*models.Product
}

func newFakeProductStore() *fakeProductStore {
	return &fakeProductStore{products: map[string]*models.Product{}}
}

func (f *fakeProductStore) List(ctx context.Context) ([]*models.Product, error) {
	var out []*models.Product
	for _, p := range f.products {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (f *fakeProductStore) Get(ctx context.Context, name string) (*models.Product, error) {
	p, ok := f.products[name]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return p, nil
}

func (f *fakeProductStore) Upsert(ctx context.Context, product *models.Product) error {
	product.PruneTypes()
	f.products[product.Name] = product
	return nil
}

func (f *fakeProductStore) Delete(ctx context.Context, name string) error {
	if _, ok := f.products[name]; !ok {
		return repository.ErrNotFound
	}
	delete(f.products, name)
	return nil
}

type fakeContactStore struct {
	forms map[string]*models.ContactForm
}

func newFakeContactStore(forms ...*models.ContactForm) *fakeContactStore {
	f := &fakeContactStore{forms: map[string]*models.ContactForm{}}
	for _, form := range forms {
		f.forms[form.ID] = form
	}
	return f
}

func (f *fakeContactStore) List(ctx context.Context, status string) ([]*models.ContactForm, error) {
	var out []*models.ContactForm
	for _, form := range f.forms {
		if status != "" && status != "all" && form.Status != status {
			continue
		}
		out = append(out, form)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (f *fakeContactStore) Get(ctx context.Context, id string) (*models.ContactForm, error) {
	form, ok := f.forms[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return form, nil
}

func (f *fakeContactStore) Update(ctx context.Context, id string, upd repository.ContactUpdate) error {
	form, ok := f.forms[id]
	if !ok {
		return repository.ErrNotFound
	}
	form.Status = upd.Status
	now := time.Now().UTC()
	form.UpdatedAt = now
	if upd.Status == models.ContactStatusContacted {
		form.Contacted = true
		form.ContactedAt = &now
	}
	if upd.ContactedVia != nil {
		form.ContactedVia = *upd.ContactedVia
	}
	if upd.AdminNotes != nil {
		form.AdminNotes = *upd.AdminNotes
	}
	if upd.AssignedTo != nil {
		form.AssignedTo = *upd.AssignedTo
	}
	return nil
}

func (f *fakeContactStore) Archive(ctx context.Context, id string) error {
	return f.Update(ctx, id, repository.ContactUpdate{Status: models.ContactStatusArchived})
}

func (f *fakeContactStore) Delete(ctx context.Context, id string) error {
	if _, ok := f.forms[id]; !ok {
		return repository.ErrNotFound
	}
	delete(f.forms, id)
	return nil
}

func (f *fakeContactStore) Statistics(ctx context.Context) (*models.ContactFormStatistics, error) {
	stats := &models.ContactFormStatistics{}
	for _, form := range f.forms {
		stats.TotalMessages++
		switch form.Status {
		case models.ContactStatusNew:
			stats.NewMessages++
		case models.ContactStatusContacted:
			stats.ContactedMessages++
		case models.ContactStatusArchived:
			stats.ArchivedMessages++
		}
	}
	return stats, nil
}

type fakeSiteStore struct {
	settings models.SiteSettings
	writes   int
}

func (f *fakeSiteStore) Get(ctx context.Context) (*models.SiteSettings, error) {
	copied := f.settings
	return &copied, nil
}

func (f *fakeSiteStore) AddBrand(ctx context.Context, name string) ([]string, error) {
	if models.Contains(f.settings.Brands, name) {
		return nil, repository.ErrDuplicate
	}
	f.settings.Brands = append(f.settings.Brands, name)
	f.writes++
	return f.settings.Brands, nil
}

func (f *fakeSiteStore) RemoveBrand(ctx context.Context, name string) ([]string, error) {
	updated, found := models.Remove(f.settings.Brands, name)
	if !found {
		return nil, repository.ErrNotFound
	}
	f.settings.Brands = updated
	f.writes++
	return updated, nil
}

func (f *fakeSiteStore) AddCategory(ctx context.Context, name string) ([]string, error) {
	if models.Contains(f.settings.Categories, name) {
		return nil, repository.ErrDuplicate
	}
	f.settings.Categories = append(f.settings.Categories, name)
	f.writes++
	return f.settings.Categories, nil
}

func (f *fakeSiteStore) RemoveCategory(ctx context.Context, name string) ([]string, error) {
	updated, found := models.Remove(f.settings.Categories, name)
	if !found {
		return nil, repository.ErrNotFound
	}
	f.settings.Categories = updated
	f.writes++
	return updated, nil
}

func (f *fakeSiteStore) AppendImages(ctx context.Context, urls []string) ([]string, error) {
	f.settings.Images = append(f.settings.Images, urls...)
	f.writes++
	return f.settings.Images, nil
}

func (f *fakeSiteStore) RemoveImages(ctx context.Context, indices []int) ([]string, error) {
	f.settings.Images = models.RemoveIndices(f.settings.Images, indices)
	f.writes++
	return f.settings.Images, nil
}

func (f *fakeSiteStore) AddToSlider(ctx context.Context, url string) ([]string, error) {
	if models.Contains(f.settings.HomepageSlider, url) {
		return nil, repository.ErrDuplicate
	}
	f.settings.HomepageSlider = append(f.settings.HomepageSlider, url)
	f.writes++
	return f.settings.HomepageSlider, nil
}

func (f *fakeSiteStore) RemoveFromSlider(ctx context.Context, index int) ([]string, error) {
	if index < 0 || index >= len(f.settings.HomepageSlider) {
		return nil, repository.ErrNotFound
	}
	f.settings.HomepageSlider = models.RemoveIndices(f.settings.HomepageSlider, []int{index})
	f.writes++
	return f.settings.HomepageSlider, nil
}

func (f *fakeSiteStore) ReorderSlider(ctx context.Context, from, to int) ([]string, error) {
	if from < 0 || from >= len(f.settings.HomepageSlider) || to < 0 || to >= len(f.settings.HomepageSlider) {
		return nil, repository.ErrIndexRange
	}
	f.settings.HomepageSlider = models.MoveIndex(f.settings.HomepageSlider, from, to)
	f.writes++
	return f.settings.HomepageSlider, nil
}

type fakeStorage struct {
	base       string
	failMark   string
	failDelete map[string]bool
	deleted    []string
}

func newFakeStorage() *fakeStorage {
	return &fakeStorage{base: "https://cdn.example.com", failDelete: map[string]bool{}}
}

func (f *fakeStorage) UploadAll(ctx context.Context, files []storage.UploadFile) []storage.UploadResult {
	results := make([]storage.UploadResult, len(files))
	for i, file := range files {
		if f.failMark != "" && strings.Contains(file.Name, f.failMark) {
			results[i] = storage.UploadResult{FileName: file.Name, Status: storage.UploadError, Error: "simulated failure"}
			continue
		}
		results[i] = storage.UploadResult{
			FileName: file.Name,
			Status:   storage.UploadCompleted,
			URL:      f.base + "/" + file.Name,
		}
	}
	return results
}

func (f *fakeStorage) KeyFromURL(url string) (string, error) {
	if !strings.HasPrefix(url, f.base+"/") {
		return "", errors.New("foreign url")
	}
	return strings.TrimPrefix(url, f.base+"/"), nil
}

func (f *fakeStorage) Delete(ctx context.Context, key string) error {
	if f.failDelete[key] {
		return errors.New("simulated delete failure")
	}
	f.deleted = append(f.deleted, key)
	return nil
}

func testStores() Stores {
	return Stores{
		Orders:   newFakeOrderStore(),
		Products: newFakeProductStore(),
		Contacts: newFakeContactStore(),
		Site:     &fakeSiteStore{},
		Storage:  newFakeStorage(),
	}
}

// newTestServer wires the fakes into a real router and returns a valid
// Bearer token for the admin gate.
func newTestServer(t *testing.T, stores Stores) (*Server, string) {
	t.Helper()

	hash, err := auth.HashPassword("s3cret")
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	cfg := &config.Config{
		Auth: config.AuthConfig{
			AdminUsername:     "admin",
			AdminPasswordHash: hash,
			JWTSecret:         "test-secret",
			TokenTTL:          time.Hour,
		},
	}
	authn := auth.New(&cfg.Auth)

	srv := New(cfg, zap.NewNop(), authn, stores)
	srv.SetupRoutes()

	token, err := authn.Login("admin", "s3cret")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	return srv, token
}

func doRequest(srv *Server, token, method, path string, body io.Reader, contentType string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, body)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, req)
	return w
}

func doJSON(srv *Server, token, method, path, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	return doRequest(srv, token, method, path, reader, "application/json")
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode response %q: %v", w.Body.String(), err)
	}
	return out
}

func TestAdminRoutesRequireToken(t *testing.T) {
	srv, _ := newTestServer(t, testStores())

	w := doJSON(srv, "", http.MethodGet, "/api/admin/orders", "")
	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 without token, got %d", w.Code)
	}

	w = doRequest(srv, "", http.MethodGet, "/health", nil, "")
	if w.Code != http.StatusOK {
		t.Errorf("expected health to be open, got %d", w.Code)
	}
}

func TestLogin(t *testing.T) {
	srv, _ := newTestServer(t, testStores())

	w := doJSON(srv, "", http.MethodPost, "/api/admin/login", `{"username":"admin","password":"s3cret"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	body := decodeBody(t, w)
	if body["token"] == "" || body["token"] == nil {
		t.Error("expected a token in the response")
	}

	w = doJSON(srv, "", http.MethodPost, "/api/admin/login", `{"username":"admin","password":"wrong"}`)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 for bad password, got %d", w.Code)
	}
}
