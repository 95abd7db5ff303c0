package service

import (
	"bytes"
	"context"
	_ "embed"
	"fmt"
	"html/template"
	"log"
	"net/url"
	"os"
	"strconv"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"

	"armario-outfits/models"
)

//go:embed templates/lookbook.html
var lookbookTemplateHTML string

var lookbookTemplate = template.Must(template.New("lookbook").Parse(lookbookTemplateHTML))

// LookbookRequest selects what goes into a lookbook
type LookbookRequest struct {
	UserID      int
	Occasion    string
	Temperature string
	MaxOutfits  int
}

// LookbookServiceInterface defines the contract for lookbook rendering
type LookbookServiceInterface interface {
	RenderHTML(ctx context.Context, req LookbookRequest) (string, error)
	GeneratePDF(ctx context.Context, req LookbookRequest) ([]byte, error)
}

// LookbookService renders recommended outfits as an HTML page and prints it to PDF
type LookbookService struct {
	outfits *OutfitService
	baseURL string // Base URL the headless browser loads the render endpoint from
}

// Ensure LookbookService implements LookbookServiceInterface
var _ LookbookServiceInterface = (*LookbookService)(nil)

// NewLookbookService creates a new LookbookService
func NewLookbookService(outfits *OutfitService, baseURL string) *LookbookService {
	return &LookbookService{
		outfits: outfits,
		baseURL: baseURL,
	}
}

// detectChromePath detects the path to Chrome/Chromium executable
// Checks CHROME_PATH env var first, then common installation paths
func detectChromePath() string {
	if chromePath := os.Getenv("CHROME_PATH"); chromePath != "" {
		if _, err := os.Stat(chromePath); err == nil {
			return chromePath
		}
	}

	paths := []string{
		"/usr/bin/chromium",
		"/usr/bin/chromium-browser",
		"/usr/bin/google-chrome",
		"/usr/bin/google-chrome-stable",
		"/snap/bin/chromium",
	}
	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// RenderHTML generates recommendations for the request and renders them into the lookbook template
func (s *LookbookService) RenderHTML(ctx context.Context, req LookbookRequest) (string, error) {
	resp, err := s.outfits.Generate(ctx, &models.GenerateOutfitsRequest{
		UserID:      req.UserID,
		MaxOutfits:  req.MaxOutfits,
		Occasion:    req.Occasion,
		Temperature: req.Temperature,
	})
	if err != nil {
		return "", err
	}

	data := models.LookbookData{
		UserID:      req.UserID,
		Occasion:    valueOrAny(req.Occasion),
		Temperature: valueOrAny(req.Temperature),
		Outfits:     resp.Outfits,
		GeneratedAt: time.Now().Format("2006-01-02"),
	}

	var buf bytes.Buffer
	if err := lookbookTemplate.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to execute template: %w", err)
	}

	log.Printf("✓ Lookbook rendered for user_id=%d with %d outfits", req.UserID, len(resp.Outfits))
	return buf.String(), nil
}

func valueOrAny(s string) string {
	if s == "" {
		return "any"
	}
	return s
}

// RenderURL returns the address of the HTML lookbook for the request
func (s *LookbookService) RenderURL(req LookbookRequest) string {
	q := url.Values{}
	q.Set("userId", strconv.Itoa(req.UserID))
	if req.Occasion != "" {
		q.Set("occasion", req.Occasion)
	}
	if req.Temperature != "" {
		q.Set("temperature", req.Temperature)
	}
	if req.MaxOutfits > 0 {
		q.Set("maxOutfits", strconv.Itoa(req.MaxOutfits))
	}
	return fmt.Sprintf("%s/api/lookbook/render?%s", s.baseURL, q.Encode())
}

// GeneratePDF prints the HTML lookbook to an A4 PDF using chromedp
func (s *LookbookService) GeneratePDF(ctx context.Context, req LookbookRequest) ([]byte, error) {
	// reject bad parameters before starting a browser that would print an error page
	if err := s.outfits.checkRequest("lookbook", &models.GenerateOutfitsRequest{
		UserID:      req.UserID,
		Occasion:    req.Occasion,
		Temperature: req.Temperature,
	}); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.NoSandbox, // Required for running in Docker/containers
		chromedp.Flag("enable-print-preview", true),
	)
	if chromePath := detectChromePath(); chromePath != "" {
		opts = append(opts, chromedp.ExecPath(chromePath))
	}

	allocCtx, allocCancel := chromedp.NewExecAllocator(ctx, opts...)
	defer allocCancel()

	chromedpCtx, chromedpCancel := chromedp.NewContext(allocCtx)
	defer chromedpCancel()

	renderURL := s.RenderURL(req)
	log.Printf("🖨️  Printing lookbook from %s", renderURL)

	var pdfBuf []byte
	err := chromedp.Run(chromedpCtx,
		chromedp.EmulateViewport(794, 1123), // 210mm x 297mm at 96 DPI
		chromedp.Navigate(renderURL),
		chromedp.WaitReady("body"),
		// Wait for item photos to load
		chromedp.Evaluate(`
			Promise.all(Array.from(document.querySelectorAll('img')).map(img => new Promise(resolve => {
				if (img.complete) { resolve(); return; }
				const timeout = setTimeout(resolve, 5000);
				img.onload = img.onerror = () => { clearTimeout(timeout); resolve(); };
			})));
		`, nil),
		chromedp.ActionFunc(func(ctx context.Context) error {
			var err error
			pdfBuf, _, err = page.PrintToPDF().
				WithPrintBackground(true).
				WithPaperWidth(8.27).   // 210mm in inches
				WithPaperHeight(11.69). // 297mm in inches
				WithMarginTop(0).
				WithMarginBottom(0).
				WithMarginLeft(0).
				WithMarginRight(0).
				Do(ctx)
			return err
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to generate PDF: %w", err)
	}

	log.Printf("✓ Lookbook PDF generated: %d bytes", len(pdfBuf))
	return pdfBuf, nil
}
