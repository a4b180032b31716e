// internal/app/features/activity/export.go
package activity

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"github.com/dalemusser/activityboard/internal/app/system/metrics"
	"github.com/dalemusser/activityboard/internal/app/system/palette"
	"github.com/dalemusser/activityboard/internal/app/system/tally"
	"go.uber.org/zap"
)

const exportBaseName = "actividades"

// exportRow is one status in the JSON and CSV exports.
type exportRow struct {
	Status   string `json:"status"`
	Slug     string `json:"slug"`
	Count    int    `json:"count"`
	Percent  string `json:"percent"`
	Color    string `json:"color"`
	Position int    `json:"position"`
}

// exportDoc is the JSON export envelope.
type exportDoc struct {
	Total       int         `json:"total"`
	Denominator int         `json:"denominator"`
	PercentBase string      `json:"percent_base"`
	Statuses    []exportRow `json:"statuses"`
}

func buildExport(c tally.Counts, p tally.Percenter) exportDoc {
	entries := c.Entries()
	rows := make([]exportRow, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, exportRow{
			Status:   string(e.Status),
			Slug:     e.Status.Slug(),
			Count:    e.Count,
			Percent:  p.Format(e.Count, c),
			Color:    palette.Color(e.Status),
			Position: e.Status.Position(),
		})
	}
	return exportDoc{
		Total:       c.Sum(),
		Denominator: p.Denominator(c),
		PercentBase: string(p.Base),
		Statuses:    rows,
	}
}

// WriteJSON writes the indented JSON export of c to w.
func WriteJSON(w io.Writer, c tally.Counts, p tally.Percenter) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(buildExport(c, p))
}

// WriteCSV writes the CSV export of c to w: UTF-8 BOM, CRLF line endings,
// one header row then one row per status in display order.
func WriteCSV(w io.Writer, c tally.Counts, p tally.Percenter) error {
	// UTF-8 BOM for Excel
	if _, err := w.Write([]byte{0xEF, 0xBB, 0xBF}); err != nil {
		return fmt.Errorf("write BOM: %w", err)
	}

	cw := csv.NewWriter(w)
	cw.UseCRLF = true

	if err := cw.Write([]string{"position", "status", "count", "percent", "color"}); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for _, row := range buildExport(c, p).Statuses {
		if err := cw.Write([]string{
			strconv.Itoa(row.Position + 1),
			sanitizeCSVField(row.Status),
			strconv.Itoa(row.Count),
			row.Percent,
			row.Color,
		}); err != nil {
			return fmt.Errorf("write row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// ServeExportJSON exports the counts and percentages as JSON.
// GET /export.json
func (h *Handler) ServeExportJSON(w http.ResponseWriter, r *http.Request) {
	counts, err := h.loadCounts(r.Context())
	if err != nil {
		h.ErrLog.LogServerError(w, r, "load status counts for export failed", err, "No se pudieron exportar los datos.", "/")
		return
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, url.PathEscape(exportBaseName+".json")))

	if err := WriteJSON(w, counts, h.Percenter); err != nil {
		h.Log.Error("JSON encode failed", zap.Error(err))
		return
	}

	metrics.TrackRender("export_json")
	h.Log.Info("status counts JSON exported", zap.Int("rows", counts.Len()))
}

// ServeExportCSV exports the counts and percentages as CSV.
// GET /export.csv
func (h *Handler) ServeExportCSV(w http.ResponseWriter, r *http.Request) {
	counts, err := h.loadCounts(r.Context())
	if err != nil {
		h.ErrLog.LogServerError(w, r, "load status counts for export failed", err, "No se pudieron exportar los datos.", "/")
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, url.PathEscape(exportBaseName+".csv")))

	if err := WriteCSV(w, counts, h.Percenter); err != nil {
		h.Log.Error("CSV write failed", zap.Error(err))
		return
	}

	metrics.TrackRender("export_csv")
	h.Log.Info("status counts CSV exported", zap.Int("rows", counts.Len()))
}

// sanitizeCSVField prefixes values that a spreadsheet would evaluate as a
// formula.
func sanitizeCSVField(s string) string {
	if len(s) == 0 {
		return s
	}
	switch s[0] {
	case '=', '+', '-', '@':
		return "'" + s
	}
	return s
}
