package interfaces

import "context"

//go:generate mockgen -source=$GOFILE -destination=mocks/print_surface_interface_mock.go -package=mocks

// IPrintSurface turns a standalone HTML document into a printable PDF.
type IPrintSurface interface {
	Print(ctx context.Context, html []byte) ([]byte, error)
}
