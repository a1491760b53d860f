// Copyright (c) 2026 Lerian Studio. All rights reserved.
// Use of this source code is governed by the Elastic License 2.0
// that can be found in the LICENSE file.

// Package pdf converts HTML documents into PDF bytes with a pool of headless Chrome workers.
package pdf

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime/debug"
	"sync"
	"time"

	cn "github.com/LerianStudio/sales-report/pkg/constant"

	"github.com/LerianStudio/lib-commons/v3/commons/log"
	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
)

//go:generate mockgen --destination=pool.mock.go --package=pdf --copyright_file=../../COPYRIGHT . PDFGenerator

// Compile-time interface satisfaction check.
var _ PDFGenerator = (*WorkerPool)(nil)

// ErrPoolClosed is returned by Generate after Close.
var ErrPoolClosed = errors.New("pdf worker pool is closed")

// pdfMagic is the header every valid PDF starts with.
var pdfMagic = []byte("%PDF-")

// PDFGenerator renders an HTML page into PDF bytes.
type PDFGenerator interface {
	// Generate blocks until the document is rendered or ctx is done.
	Generate(ctx context.Context, html string) ([]byte, error)
}

// Task represents a task to generate a PDF.
type Task struct {
	HTML   string
	Result chan Result
}

// Result carries the rendered bytes or the failure of a Task.
type Result struct {
	PDF []byte
	Err error
}

// WorkerPool manages multiple Chrome workers to generate PDFs.
type WorkerPool struct {
	tasks      chan Task
	wg         *sync.WaitGroup
	workers    int
	timeout    time.Duration
	chromePath string
	logger     log.Logger

	closeOnce sync.Once
	closed    chan struct{}
}

// NewWorkerPool creates a new worker pool. chromePath may be empty to let chromedp find the browser.
func NewWorkerPool(num int, timeout time.Duration, chromePath string, logger log.Logger) *WorkerPool {
	wp := newPool(num, timeout, chromePath, logger)

	for i := 0; i < num; i++ {
		wp.wg.Add(1)

		go func(workerID int) {
			defer func() {
				if r := recover(); r != nil {
					wp.logger.Errorf("Panic recovered in PDF worker %d: %v\nStack: %s", workerID, r, string(debug.Stack()))
				}
			}()

			wp.startWorker(workerID)
		}(i)
	}

	return wp
}

func newPool(num int, timeout time.Duration, chromePath string, logger log.Logger) *WorkerPool {
	return &WorkerPool{
		tasks:      make(chan Task),
		wg:         &sync.WaitGroup{},
		workers:    num,
		timeout:    timeout,
		chromePath: chromePath,
		logger:     logger,
		closed:     make(chan struct{}),
	}
}

// startWorker runs a Chrome worker. One browser process per worker is reused for all tasks.
func (wp *WorkerPool) startWorker(_ int) {
	defer wp.wg.Done()

	allocCtx, allocCancel := chromedp.NewExecAllocator(context.Background(), wp.getChromeOptions()...)
	defer allocCancel()

	for {
		select {
		case <-wp.closed:
			return
		case task := <-wp.tasks:
			wp.processTask(allocCtx, task)
		}
	}
}

// getChromeOptions returns Chrome flags for PDF generation inside memory-limited sandboxes.
func (wp *WorkerPool) getChromeOptions() []chromedp.ExecAllocatorOption {
	opts := []chromedp.ExecAllocatorOption{
		chromedp.Flag("headless", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("single-process", true),
		chromedp.Flag("no-zygote", true),
		chromedp.Flag("disable-dev-shm-usage", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("disable-extensions", true),
		chromedp.Flag("disable-plugins", true),
		chromedp.Flag("disable-background-timer-throttling", true),
		chromedp.Flag("disable-renderer-backgrounding", true),
		chromedp.Flag("js-flags", "--max-old-space-size="+cn.PDFChromeMaxOldSpaceSize),
		chromedp.Flag("disable-software-rasterizer", true),
	}

	if wp.chromePath != "" {
		opts = append(opts, chromedp.ExecPath(wp.chromePath))
	}

	return opts
}

// processTask handles a single PDF generation task. The temp HTML file is removed on every path.
func (wp *WorkerPool) processTask(allocCtx context.Context, task Task) {
	htmlSizeKB := float64(len(task.HTML)) / cn.PDFBytesPerKB
	wp.logger.Infof("Starting PDF generation (HTML size: %.2f KB, timeout: %v)", htmlSizeKB, wp.timeout)

	if len(task.HTML) > cn.PDFLargeHTMLThreshold {
		wp.logger.Warnf("Large HTML detected (%.2f KB). Consider increasing PDF_TIMEOUT_SECONDS if timeouts occur", htmlSizeKB)
	}

	ctx, ctxCancel := chromedp.NewContext(allocCtx)
	defer ctxCancel()

	ctxTimeout, cancelTimeout := context.WithTimeout(ctx, wp.timeout)
	defer cancelTimeout()

	tmpFileName, err := wp.createTempHTMLFile(task.HTML)
	if err != nil {
		task.Result <- Result{Err: err}
		return
	}

	pdfBuf, err := wp.generatePDFFromFile(ctxTimeout, tmpFileName)

	pdfBuf, err = wp.validatePDF(pdfBuf, err)

	err = wp.cleanupTempFile(tmpFileName, err)
	if err != nil {
		pdfBuf = nil
	}

	task.Result <- Result{PDF: pdfBuf, Err: err}
}

// createTempHTMLFile creates a temporary HTML file with the provided content.
func (wp *WorkerPool) createTempHTMLFile(html string) (string, error) {
	tmpFile, err := os.CreateTemp("", "report-*.html")
	if err != nil {
		wp.logger.Errorf("Failed to create temp HTML file: %v", err)
		return "", fmt.Errorf("failed to create temp HTML file: %w", err)
	}

	tmpFileName := tmpFile.Name()

	if err := tmpFile.Close(); err != nil {
		wp.logger.Warnf("Failed to close temp file %s: %v", tmpFileName, err)
	}

	if err := os.WriteFile(tmpFileName, []byte(html), cn.PDFFilePermissions); err != nil {
		wp.logger.Errorf("Failed to write HTML to temp file: %v", err)

		_ = os.Remove(tmpFileName)

		return "", fmt.Errorf("failed to write HTML to temp file: %w", err)
	}

	return tmpFileName, nil
}

// generatePDFFromFile prints an HTML file to PDF using Chrome.
func (wp *WorkerPool) generatePDFFromFile(ctx context.Context, htmlFilePath string) ([]byte, error) {
	fileURL := "file://" + filepath.ToSlash(htmlFilePath)

	var pdfBuf []byte

	err := chromedp.Run(ctx,
		chromedp.Navigate(fileURL),
		chromedp.WaitReady("body", chromedp.ByQuery),
		chromedp.Sleep(cn.PDFRenderSettleDelay),
		chromedp.ActionFunc(func(ctx context.Context) error {
			var err error

			pdfBuf, _, err = page.PrintToPDF().
				WithPrintBackground(true).
				WithPaperWidth(cn.PDFPaperWidthInches).
				WithPaperHeight(cn.PDFPaperHeightInches).
				WithMarginTop(cn.PDFMarginInches).
				WithMarginBottom(cn.PDFMarginInches).
				WithMarginLeft(cn.PDFMarginInches).
				WithMarginRight(cn.PDFMarginInches).
				WithDisplayHeaderFooter(false).
				Do(ctx)

			return err
		}),
	)
	if err != nil {
		wp.logPDFGenerationError(ctx, err)
		return nil, err
	}

	return pdfBuf, nil
}

// validatePDF rejects empty or non-PDF output.
func (wp *WorkerPool) validatePDF(pdfBuf []byte, err error) ([]byte, error) {
	if err != nil {
		return nil, err
	}

	if len(pdfBuf) < cn.PDFMinValidSizeBytes {
		wp.logger.Errorf("Final PDF too small: %d bytes", len(pdfBuf))
		return nil, fmt.Errorf("generated PDF is too small (%d bytes), likely empty", len(pdfBuf))
	}

	if !bytes.HasPrefix(pdfBuf, pdfMagic) {
		wp.logger.Errorf("Chrome output is not a PDF document")
		return nil, errors.New("generated output is not a PDF document")
	}

	wp.logger.Infof("PDF generated successfully: %d bytes", len(pdfBuf))

	return pdfBuf, nil
}

// cleanupTempFile removes the temporary HTML file and wraps cleanup errors with the original error.
func (wp *WorkerPool) cleanupTempFile(tmpFileName string, originalErr error) error {
	if err := os.Remove(tmpFileName); err != nil {
		wp.logger.Errorf("Failed to remove temp file %s: %v", tmpFileName, err)

		if originalErr == nil {
			return fmt.Errorf("generated PDF successfully but failed to remove temp file %s: %w", tmpFileName, err)
		}

		return fmt.Errorf("%w; additionally failed to remove temp file %s: %v", originalErr, tmpFileName, err)
	}

	return originalErr
}

// logPDFGenerationError logs PDF generation errors with appropriate context.
func (wp *WorkerPool) logPDFGenerationError(ctx context.Context, err error) {
	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		wp.logger.Errorf("PDF generation timeout (configured timeout: %v): %v", wp.timeout, err)
	} else if errors.Is(ctx.Err(), context.Canceled) {
		wp.logger.Errorf("PDF generation context canceled: %v", err)
	} else {
		wp.logger.Errorf("PDF generation failed: %v", err)
	}
}

// Generate sends a task to the pool and blocks until it is completed or ctx is done.
// The result channel is buffered so an abandoned task never blocks its worker.
func (wp *WorkerPool) Generate(ctx context.Context, html string) ([]byte, error) {
	res := make(chan Result, 1)

	select {
	case <-wp.closed:
		return nil, ErrPoolClosed
	case <-ctx.Done():
		return nil, ctx.Err()
	case wp.tasks <- Task{HTML: html, Result: res}:
	}

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case r := <-res:
		return r.PDF, r.Err
	}
}

// Close stops accepting tasks and waits for all workers to finish. Safe to call more than once.
func (wp *WorkerPool) Close() {
	wp.closeOnce.Do(func() {
		close(wp.closed)
		wp.wg.Wait()
	})
}

// GetStats returns pool statistics
func (wp *WorkerPool) GetStats() map[string]any {
	return map[string]any{
		"workers":       wp.workers,
		"timeout":       wp.timeout,
		"tasks_pending": len(wp.tasks),
	}
}

// IsHealthy returns true if the pool is healthy
func (wp *WorkerPool) IsHealthy() bool {
	return wp.workers > 0 && wp.timeout > 0
}
