package browser

import (
	"bytes"
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRodSurface_Defaults(t *testing.T) {
	s := NewRodSurface("", 0, nil)
	assert.Equal(t, DefaultPrintTimeout, s.timeout)
	assert.NotNil(t, s.logger)
}

// Needs a local Chromium; set CHROME_BIN to run it.
func TestRodSurface_PrintsPDF(t *testing.T) {
	bin := os.Getenv("CHROME_BIN")
	if bin == "" {
		t.Skip("CHROME_BIN not set")
	}

	s := NewRodSurface(bin, time.Minute, nil)
	pdf, err := s.Print(context.Background(), []byte("<html><body><h1>Orçamento #1</h1></body></html>"))
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(pdf, []byte("%PDF")))
}
