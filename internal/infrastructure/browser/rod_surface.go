// Package browser drives a headless Chromium to turn rendered quotes into PDF.
package browser

import (
	"context"
	"fmt"
	"io"
	"time"

	"marmoraria_tech/internal/usecase/interfaces"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
	"go.uber.org/zap"
)

const DefaultPrintTimeout = 30 * time.Second

// RodSurface launches one browser per print job and closes it afterwards.
// An empty bin lets rod find or download a Chromium build.
type RodSurface struct {
	bin     string
	timeout time.Duration
	logger  *zap.Logger
}

var _ interfaces.IPrintSurface = (*RodSurface)(nil)

func NewRodSurface(bin string, timeout time.Duration, logger *zap.Logger) *RodSurface {
	if timeout <= 0 {
		timeout = DefaultPrintTimeout
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RodSurface{bin: bin, timeout: timeout, logger: logger}
}

func (s *RodSurface) Print(ctx context.Context, html []byte) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	s.logger.Debug("[print][browser] launch", zap.String("bin", s.bin), zap.Int("html_len", len(html)))
	l := launcher.New().Context(ctx).Headless(true).Leakless(false)
	if s.bin != "" {
		l = l.Bin(s.bin)
	}
	u, err := l.Launch()
	if err != nil {
		return nil, fmt.Errorf("launch browser: %w", err)
	}
	defer l.Cleanup()

	browser := rod.New().ControlURL(u).Context(ctx)
	if err := browser.Connect(); err != nil {
		return nil, fmt.Errorf("connect browser: %w", err)
	}
	defer func() {
		if err := browser.Close(); err != nil {
			s.logger.Warn("[print][browser] close failed", zap.Error(err))
		}
	}()

	page, err := browser.Page(proto.TargetCreateTarget{})
	if err != nil {
		return nil, fmt.Errorf("open page: %w", err)
	}
	if err := page.SetDocumentContent(string(html)); err != nil {
		return nil, fmt.Errorf("set document: %w", err)
	}
	if err := page.WaitLoad(); err != nil {
		return nil, fmt.Errorf("wait load: %w", err)
	}

	stream, err := page.PDF(&proto.PagePrintToPDF{
		PrintBackground:   true,
		PreferCSSPageSize: true,
	})
	if err != nil {
		return nil, fmt.Errorf("print pdf: %w", err)
	}
	pdf, err := io.ReadAll(stream)
	if err != nil {
		return nil, fmt.Errorf("read pdf: %w", err)
	}
	s.logger.Info("[print][browser] pdf ready", zap.Int("bytes", len(pdf)))
	return pdf, nil
}
