package usecase

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"

	"dha-marketplace/internal/core/domain"
	"dha-marketplace/internal/core/port"
)

// MaxPlotFileBytes bounds the size of an import file.
const MaxPlotFileBytes = 20 << 20

// PlotUseCase gates bulk plot imports on the CSV header contract before any
// byte is sent to the backend.
type PlotUseCase struct {
	backend port.Backend
}

// NewPlotUseCase creates a plot import usecase.
func NewPlotUseCase(backend port.Backend) *PlotUseCase {
	return &PlotUseCase{backend: backend}
}

// Validate parses an import file and applies the header gate.
func (u *PlotUseCase) Validate(_ context.Context, name string, r io.Reader) (*domain.PlotSheet, error) {
	if !strings.HasSuffix(strings.ToLower(name), ".csv") {
		return nil, port.ErrNotCSV
	}
	sheet, err := domain.ParsePlotCSV(r)
	if err != nil {
		return nil, err
	}
	return &sheet, nil
}

// Import validates the file and, only when it passes, uploads it.
func (u *PlotUseCase) Import(ctx context.Context, authorization string, file port.PlotFile) (*port.ImportSummary, error) {
	data, err := io.ReadAll(io.LimitReader(file.Content, MaxPlotFileBytes+1))
	if err != nil {
		return nil, fmt.Errorf("read plot file: %w", err)
	}
	if len(data) > MaxPlotFileBytes {
		return nil, port.ErrFileTooLarge
	}
	sheet, err := u.Validate(ctx, file.Name, bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	if len(sheet.Rows) == 0 {
		return nil, port.ErrNoPlotRows
	}

	file.Content = bytes.NewReader(data)
	res, err := u.backend.ImportPlots(ctx, authorization, file)
	if err != nil {
		return nil, err
	}
	if !res.Success {
		return nil, &port.ImportFailedError{Message: res.Message}
	}

	msg := res.Message
	if msg == "" {
		msg = "Import completed successfully!"
	}
	return &port.ImportSummary{
		Total:      len(sheet.Rows),
		Imported:   res.Data.Imported,
		Failed:     res.Data.Failed,
		FailedRows: res.Data.FailedRows,
		ImportID:   rawID(res.Data.ImportID),
		Message:    msg,
	}, nil
}

// Events lists the sale events plots can be imported into.
func (u *PlotUseCase) Events(ctx context.Context, authorization string) ([]port.Event, error) {
	return u.backend.Events(ctx, authorization)
}

// rawID renders a JSON string or number id as text.
func rawID(raw []byte) string {
	s := strings.TrimSpace(string(raw))
	if s == "" || s == "null" {
		return ""
	}
	return strings.Trim(s, `"`)
}
