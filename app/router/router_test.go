package router

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"image/color"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/goccy/go-json"

	"armario-outfits/app/controller"
	"armario-outfits/models"
	"armario-outfits/service"
	"armario-outfits/styling"
)

type testServer struct {
	items    *fakeItemRepository
	outfits  *fakeOutfitRepository
	imports  *fakeImportService
	lookbook *fakeLookbookService
	mux      *http.ServeMux
}

// newTestServer registers every route on a fresh mux backed by in-memory fakes
func newTestServer(t *testing.T) *testServer {
	t.Helper()
	return newTestServerWithStyling(t, nil)
}

// newTestServerWithStyling is newTestServer with explicit styling rules
func newTestServerWithStyling(t *testing.T, stylingEngine *styling.Engine) *testServer {
	t.Helper()
	s := &testServer{
		items:    newFakeItemRepository(),
		outfits:  &fakeOutfitRepository{},
		imports:  &fakeImportService{},
		lookbook: &fakeLookbookService{},
		mux:      http.NewServeMux(),
	}

	outfitService := service.NewOutfitService(s.items, stylingEngine, service.OutfitServiceConfig{BaseURL: "http://test"})
	SetupRoutes(s.mux, &Controllers{
		WardrobeItem: controller.NewWardrobeItemController(s.items, service.NewImageOptimizer(t.TempDir())),
		Outfit:       controller.NewOutfitController(s.outfits, outfitService),
		Import:       controller.NewImportController(s.imports, "default-folder"),
		Lookbook:     controller.NewLookbookController(s.lookbook),
	})
	return s
}

func (s *testServer) do(method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	s.mux.ServeHTTP(rec, req)
	return rec
}

func (s *testServer) addItem(userID int, name, category string, colors ...string) models.WardrobeItem {
	item := models.WardrobeItem{UserID: userID, Name: name, Category: category, Colors: colors, Image: "aGVsbG8="}
	created, _ := s.items.Create(context.Background(), &item)
	return *created
}

func pngBase64(t *testing.T) string {
	t.Helper()
	var buf bytes.Buffer
	img := imaging.New(500, 400, color.NRGBA{R: 200, A: 255})
	if err := imaging.Encode(&buf, img, imaging.PNG); err != nil {
		t.Fatalf("encode: %v", err)
	}
	return base64.StdEncoding.EncodeToString(buf.Bytes())
}

func TestPing(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(http.MethodGet, "/ping", "")
	if rec.Code != http.StatusOK || rec.Body.String() != `{"status":"ok"}` {
		t.Fatalf("expected ok, got %d: %s", rec.Code, rec.Body.String())
	}
	rec = s.do(http.MethodPost, "/ping", "")
	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("expected 405, got %d", rec.Code)
	}
}

func TestCreateWardrobeItem(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(http.MethodPost, "/api/wardrobe-items", `{"userId": 1, "name": " Silk blouse ", "category": "tops", "colors": ["ivory"], "image": "aGVsbG8="}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	var created models.WardrobeItem
	if err := json.Unmarshal(rec.Body.Bytes(), &created); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if created.ID != 1 || created.Name != "Silk blouse" || created.PrimaryColor != "ivory" {
		t.Fatalf("unexpected item %+v", created)
	}
	if created.PhotoHash == "" {
		t.Fatalf("expected photo hash computed from image")
	}
}

func TestCreateWardrobeItemValidation(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(http.MethodPost, "/api/wardrobe-items", `{"name": "Tee", "category": "tops", "colors": []}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"field":"colors"`) {
		t.Fatalf("expected colors field error, got %s", rec.Body.String())
	}

	rec = s.do(http.MethodPost, "/api/wardrobe-items", `not json`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for malformed body, got %d", rec.Code)
	}

	rec = s.do(http.MethodGet, "/api/wardrobe-items", "")
	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("expected 405, got %d", rec.Code)
	}
}

func TestCheckDuplicatesHashesImage(t *testing.T) {
	s := newTestServer(t)
	existing := s.addItem(1, "Tee", "tops", "white")
	s.items.duplicates = []models.WardrobeItem{existing}

	rec := s.do(http.MethodPost, "/api/wardrobe-items/check-duplicates", `{"userId": 1, "image": "aGVsbG8="}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp models.DuplicateCheckResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(resp.Duplicates) != 1 || resp.Duplicates[0].ID != existing.ID {
		t.Fatalf("unexpected duplicates %+v", resp.Duplicates)
	}
	if s.items.lastHash == "" {
		t.Fatalf("expected the image to be hashed before lookup")
	}

	rec = s.do(http.MethodPost, "/api/wardrobe-items/check-duplicates", `{"userId": 1}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 without name or photo, got %d", rec.Code)
	}
}

func TestListUpdateDeleteWardrobeItems(t *testing.T) {
	s := newTestServer(t)
	s.addItem(1, "Tee", "tops", "white")
	s.addItem(2, "Jeans", "bottoms", "blue")

	rec := s.do(http.MethodGet, "/api/wardrobe-items/1", "")
	var items []models.WardrobeItem
	if err := json.Unmarshal(rec.Body.Bytes(), &items); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(items) != 1 || items[0].Name != "Tee" {
		t.Fatalf("expected user 1's tee, got %+v", items)
	}

	rec = s.do(http.MethodPatch, "/api/wardrobe-items/1", `{"name": "Linen tee"}`)
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), "Linen tee") {
		t.Fatalf("expected updated item, got %d: %s", rec.Code, rec.Body.String())
	}

	rec = s.do(http.MethodPatch, "/api/wardrobe-items/1", `{"wearCount": -2}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for negative wear count, got %d", rec.Code)
	}

	rec = s.do(http.MethodDelete, "/api/wardrobe-items/1", "")
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
	rec = s.do(http.MethodDelete, "/api/wardrobe-items/1", "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 on second delete, got %d", rec.Code)
	}

	rec = s.do(http.MethodGet, "/api/wardrobe-items/abc", "")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for bad id, got %d", rec.Code)
	}
}

func TestGetItemImage(t *testing.T) {
	s := newTestServer(t)
	item := models.WardrobeItem{UserID: 1, Name: "Scarf", Category: "accessories", Colors: []string{"red"}, Image: pngBase64(t)}
	created, _ := s.items.Create(context.Background(), &item)

	rec := s.do(http.MethodGet, "/api/wardrobe-items/1/image?size=thumb", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if rec.Header().Get("Content-Type") != "image/jpeg" {
		t.Fatalf("expected image/jpeg, got %s", rec.Header().Get("Content-Type"))
	}
	if created.ID != 1 || rec.Body.Len() == 0 {
		t.Fatalf("expected image bytes")
	}

	rec = s.do(http.MethodGet, "/api/wardrobe-items/1/image?size=huge", "")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for unknown size, got %d", rec.Code)
	}
	rec = s.do(http.MethodGet, "/api/wardrobe-items/9/image", "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestGenerateOutfits(t *testing.T) {
	s := newTestServer(t)
	s.addItem(1, "Dress", "dresses", "black")
	s.addItem(1, "Boots", "shoes", "white")

	rec := s.do(http.MethodPost, "/api/outfits/generate", `{"userId": 1, "maxOutfits": 2}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp models.GenerateOutfitsResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(resp.Outfits) != 1 || resp.Outfits[0].ID != "1-2" {
		t.Fatalf("expected the dress outfit, got %+v", resp.Outfits)
	}
	if resp.RequestID == "" {
		t.Fatalf("expected request id")
	}
}

func TestGenerateOutfitsValidation(t *testing.T) {
	s := newTestServer(t)

	for _, body := range []string{
		`{"userId": 1, "maxOutfits": -1}`,
		`{"userId": 1, "maxOutfits": 21}`,
		`{"userId": 1, "temperature": "tropical"}`,
	} {
		rec := s.do(http.MethodPost, "/api/outfits/generate", body)
		if rec.Code != http.StatusBadRequest {
			t.Errorf("expected 400 for %s, got %d", body, rec.Code)
		}
	}
}

func TestGenerateOutfitsConfiguredBand(t *testing.T) {
	engine, err := styling.Parse([]byte(`{"temperatures": {"hot": {"label": "Hot", "avoid": ["wool"]}}}`))
	if err != nil {
		t.Fatalf("parse styling: %v", err)
	}
	s := newTestServerWithStyling(t, engine)
	s.addItem(1, "Wool dress", "dresses", "gray")
	s.addItem(1, "Linen dress", "dresses", "white")
	s.addItem(1, "Sandals", "shoes", "tan")

	rec := s.do(http.MethodPost, "/api/outfits/generate", `{"userId": 1, "temperature": "hot"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 for a configured band, got %d: %s", rec.Code, rec.Body.String())
	}
	var resp models.GenerateOutfitsResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(resp.Outfits) != 1 || resp.Outfits[0].SpotlightItem.Name != "Linen dress" {
		t.Fatalf("expected only the linen dress outfit, got %+v", resp.Outfits)
	}

	// built-in bands are not accepted once a config replaces them
	rec = s.do(http.MethodPost, "/api/outfits/generate", `{"userId": 1, "temperature": "warm"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for a band missing from the config, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "hot") {
		t.Fatalf("expected the configured bands in the error, got %s", rec.Body.String())
	}
}

func TestGenerateOutfitsSmallWardrobe(t *testing.T) {
	s := newTestServer(t)
	s.addItem(1, "Dress", "dresses", "black")

	rec := s.do(http.MethodPost, "/api/outfits/generate", `{"userId": 1}`)
	var resp models.GenerateOutfitsResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(resp.Outfits) != 0 || resp.Message == "" {
		t.Fatalf("expected empty outfits with a message, got %+v", resp)
	}
}

func TestSavedOutfits(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(http.MethodPost, "/api/outfits", `{"userId": 1, "name": "Friday", "occasion": "date", "itemIds": [1, 2]}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	rec = s.do(http.MethodPost, "/api/outfits", `{"userId": 1, "name": "Empty", "occasion": "date", "itemIds": []}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for empty itemIds, got %d", rec.Code)
	}

	rec = s.do(http.MethodGet, "/api/outfits/1", "")
	var outfits []models.Outfit
	if err := json.Unmarshal(rec.Body.Bytes(), &outfits); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(outfits) != 1 || outfits[0].Name != "Friday" {
		t.Fatalf("unexpected outfits %+v", outfits)
	}

	rec = s.do(http.MethodDelete, "/api/outfits/1", "")
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
}

func TestWearOutfit(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(http.MethodPost, "/api/outfits/wear", `{"itemIds": [1, 2, 3]}`)
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), `"updated":3`) {
		t.Fatalf("expected 3 updated, got %d: %s", rec.Code, rec.Body.String())
	}

	rec = s.do(http.MethodPost, "/api/outfits/wear", `{"itemIds": [0]}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for id 0, got %d", rec.Code)
	}
}

func TestImport(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(http.MethodPost, "/api/wardrobe-items/import", `{"userId": 1}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if s.imports.folderID != "default-folder" {
		t.Fatalf("expected default folder, got %s", s.imports.folderID)
	}

	s.imports.err = service.ErrDriveNotConfigured
	rec = s.do(http.MethodPost, "/api/wardrobe-items/import", `{"userId": 1, "folderId": "other"}`)
	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", rec.Code)
	}

	s.imports.err = errors.New("drive down")
	rec = s.do(http.MethodPost, "/api/wardrobe-items/import", `{"userId": 1}`)
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
}

func TestLookbook(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(http.MethodGet, "/api/lookbook/render?userId=4&occasion=work&maxOutfits=3", "")
	if rec.Code != http.StatusOK || !strings.Contains(rec.Header().Get("Content-Type"), "text/html") {
		t.Fatalf("expected html, got %d %s", rec.Code, rec.Header().Get("Content-Type"))
	}
	if s.lookbook.lastRequest.UserID != 4 || s.lookbook.lastRequest.Occasion != "work" || s.lookbook.lastRequest.MaxOutfits != 3 {
		t.Fatalf("unexpected request %+v", s.lookbook.lastRequest)
	}

	rec = s.do(http.MethodGet, "/api/lookbook/pdf?userId=4", "")
	if rec.Code != http.StatusOK || rec.Header().Get("Content-Type") != "application/pdf" {
		t.Fatalf("expected pdf, got %d %s", rec.Code, rec.Header().Get("Content-Type"))
	}

	rec = s.do(http.MethodGet, "/api/lookbook/render", "")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 without userId, got %d", rec.Code)
	}

	rec = s.do(http.MethodGet, "/api/lookbook/render?userId=4&temperature=tropical", "")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for an unknown band, got %d", rec.Code)
	}
}
