package export

import (
	"fmt"
	"io"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// WriteSummary prints the per-table row counts, e.g. "Reservas              :   60.000".
func WriteSummary(w io.Writer, dir string, files []File) error {
	p := message.NewPrinter(language.BrazilianPortuguese)
	if _, err := fmt.Fprintf(w, "Arquivos gerados em %s\n", dir); err != nil {
		return err
	}
	total := 0
	for _, f := range files {
		total += f.Rows
		if _, err := p.Fprintf(w, "%-22s: %10d\n", f.Table, f.Rows); err != nil {
			return err
		}
	}
	_, err := p.Fprintf(w, "%-22s: %10d\n", "Total", total)
	return err
}
