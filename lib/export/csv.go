package export

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/pkg/errors"
)

var Header = []string{"Business Unit", "Focus", "Potentiel", "Stratégie", "Régions"}

// WriteCSV writes the header followed by one line per row. Zero rows produce only the header.
func WriteCSV(w io.Writer, rows []*Row) error {
	cw := csv.NewWriter(w)

	err := cw.Write(Header)
	if err != nil {
		return errors.Wrap(err, "error writing CSV header")
	}

	for _, r := range rows {
		err = cw.Write([]string{
			r.BusinessUnit,
			r.Focus,
			strconv.Itoa(r.Potential),
			r.Strategy,
			r.Regions,
		})
		if err != nil {
			return errors.Wrapf(err, "error writing CSV row for %v", r.BusinessUnit)
		}
	}

	cw.Flush()

	return errors.Wrap(cw.Error(), "error writing CSV")
}
