// Package report renders priced quotes for people (tables, the demo summary)
// and for other programs (CSV, JSON).
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/gocarina/gocsv"
	"github.com/olekukonko/tablewriter"
	"github.com/shopspring/decimal"

	"github.com/contactkeval/option-pricer/internal/scenario"
)

const (
	JSONFile = "quotes.json"
	CSVFile  = "quotes.csv"
)

// quoteRow is the flattened CSV layout of a quote.
type quoteRow struct {
	Name           string  `csv:"name"`
	Strike         float64 `csv:"strike"`
	Rate           float64 `csv:"rate"`
	Maturity       float64 `csv:"maturity"`
	Spot           float64 `csv:"spot"`
	Volatility     float64 `csv:"volatility"`
	D1             float64 `csv:"d1"`
	D2             float64 `csv:"d2"`
	CallPrice      float64 `csv:"call_price"`
	PutPrice       float64 `csv:"put_price"`
	ParityResidual float64 `csv:"parity_residual"`
}

// Money rounds v half away from zero to the given number of decimals.
func Money(v float64, decimals int) string {
	return decimal.NewFromFloat(v).StringFixed(int32(decimals))
}

// Percent formats a rate such as 0.025 as "2.5%".
func Percent(v float64) string {
	return decimal.NewFromFloat(v).Shift(2).String() + "%"
}

// WriteTable renders quotes as an aligned table.
func WriteTable(w io.Writer, quotes []scenario.Quote, decimals int) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Name", "Strike", "Rate", "T (y)", "Spot", "Sigma", "d1", "d2", "Call", "Put"})
	table.SetAlignment(tablewriter.ALIGN_RIGHT)

	for _, q := range quotes {
		table.Append([]string{
			q.Name,
			Money(q.Strike, decimals),
			Percent(q.Rate),
			decimal.NewFromFloat(q.Maturity).String(),
			Money(q.Spot, decimals),
			Percent(q.Volatility),
			Money(q.D1, 4),
			Money(q.D2, 4),
			Money(q.CallPrice, decimals),
			Money(q.PutPrice, decimals),
		})
	}
	table.Render()
}

// WriteSummary prints the labelled call/put listing of the demo program.
func WriteSummary(w io.Writer, quotes []scenario.Quote) {
	rule := strings.Repeat(".", 45)
	fmt.Fprintln(w, rule)
	fmt.Fprintln(w, ": European Vanilla Options Price Calculator :")
	fmt.Fprintln(w, rule)

	for _, q := range quotes {
		fmt.Fprintf(w, "\nOption %s: K = $%s, r = %s, T = %s %s, S = $%s, sigma = %s\n",
			q.Name,
			Money(q.Strike, 2),
			Percent(q.Rate),
			decimal.NewFromFloat(q.Maturity).String(),
			years(q.Maturity),
			Money(q.Spot, 2),
			Percent(q.Volatility),
		)
		fmt.Fprintf(w, "Call price: $%5s\n", Money(q.CallPrice, 2))
		fmt.Fprintf(w, "Put  price: $%5s\n", Money(q.PutPrice, 2))
	}
}

func years(t float64) string {
	if t == 1 {
		return "year"
	}
	return "years"
}

// WriteJSON writes quotes.json into outdir.
func WriteJSON(quotes []scenario.Quote, outdir string) error {
	b, err := json.MarshalIndent(quotes, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(outdir, JSONFile), b, 0644)
}

// WriteCSV writes quotes.csv into outdir.
func WriteCSV(quotes []scenario.Quote, outdir string) error {
	f, err := os.Create(filepath.Join(outdir, CSVFile))
	if err != nil {
		return err
	}
	defer f.Close()

	return MarshalCSV(quotes, f)
}

// MarshalCSV writes quotes as CSV with a header row.
func MarshalCSV(quotes []scenario.Quote, w io.Writer) error {
	rows := make([]quoteRow, 0, len(quotes))
	for _, q := range quotes {
		rows = append(rows, quoteRow{
			Name:           q.Name,
			Strike:         q.Strike,
			Rate:           q.Rate,
			Maturity:       q.Maturity,
			Spot:           q.Spot,
			Volatility:     q.Volatility,
			D1:             q.D1,
			D2:             q.D2,
			CallPrice:      q.CallPrice,
			PutPrice:       q.PutPrice,
			ParityResidual: q.ParityResidual,
		})
	}
	return gocsv.Marshal(&rows, w)
}
