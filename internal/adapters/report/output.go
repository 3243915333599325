package report

import (
	"context"
	"fmt"
	"io"
	"os"

	"khata-ledger/internal/app"
	"khata-ledger/internal/currency"
)

// Settings are the presentation choices shared by every report surface.
type Settings struct {
	Title     string
	PageLines int
	Money     *currency.Formatter
}

// Generate takes a fresh snapshot from svc and builds a Document from it.
// The snapshot is returned too, since the workbook needs the raw lists.
func Generate(ctx context.Context, svc app.ApplicationService, kind Kind, set Settings) (Document, *app.ReportSnapshot, error) {
	snap, err := svc.ReportSnapshot(ctx)
	if err != nil {
		return Document{}, nil, fmt.Errorf("take report snapshot: %w", err)
	}
	return Build(set.Title, kind, snap, set.Money), snap, nil
}

// Print generates a report and writes it to w as paginated text.
func Print(ctx context.Context, svc app.ApplicationService, w io.Writer, kind Kind, set Settings) error {
	doc, _, err := Generate(ctx, svc, kind, set)
	if err != nil {
		return err
	}
	return WriteText(w, Paginate(doc, set.PageLines))
}

// Export generates a report and saves it as an XLSX workbook at path.
func Export(ctx context.Context, svc app.ApplicationService, path string, kind Kind, set Settings) error {
	doc, snap, err := Generate(ctx, svc, kind, set)
	if err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := WriteXLSX(f, doc, snap); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
