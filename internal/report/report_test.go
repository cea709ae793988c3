package report

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/contactkeval/option-pricer/internal/scenario"
	"github.com/contactkeval/option-pricer/internal/testutil"
)

func demoQuotes(t *testing.T) []scenario.Quote {
	t.Helper()
	quotes, err := scenario.PriceAll(context.Background(), scenario.Defaults())
	require.NoError(t, err)
	return quotes
}

func TestMoney(t *testing.T) {
	assert.Equal(t, "10.45", Money(10.4505756193, 2))
	assert.Equal(t, "34.01", Money(34.0074892607, 2))
	assert.Equal(t, "100.00", Money(100, 2))
	assert.Equal(t, "0.3500", Money(0.35, 4))
}

func TestPercent(t *testing.T) {
	assert.Equal(t, "5%", Percent(0.05))
	assert.Equal(t, "2.5%", Percent(0.025))
	assert.Equal(t, "20%", Percent(0.2))
}

func TestWriteSummary(t *testing.T) {
	var buf bytes.Buffer
	WriteSummary(&buf, demoQuotes(t))
	testutil.CompareBytesWithGolden(t, "demo_summary", buf.Bytes())
}

func TestWriteTable(t *testing.T) {
	var buf bytes.Buffer
	WriteTable(&buf, demoQuotes(t), 2)

	out := buf.String()
	assert.Contains(t, out, "NAME")
	assert.Contains(t, out, "user-defined")
	assert.Contains(t, out, "10.45")
	assert.Contains(t, out, "5.57")
	assert.Contains(t, out, "82.78")
	assert.Contains(t, out, "34.01")
}

func TestWriteFiles(t *testing.T) {
	dir := t.TempDir()
	quotes := demoQuotes(t)

	require.NoError(t, WriteJSON(quotes, dir))
	require.NoError(t, WriteCSV(quotes, dir))

	b, err := os.ReadFile(filepath.Join(dir, JSONFile))
	require.NoError(t, err)
	var decoded []scenario.Quote
	require.NoError(t, json.Unmarshal(b, &decoded))
	require.Len(t, decoded, 2)
	assert.Equal(t, "default", decoded[0].Name)
	assert.InDelta(t, 10.4506, decoded[0].CallPrice, 1e-4)

	b, err = os.ReadFile(filepath.Join(dir, CSVFile))
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(b)), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "name,strike,rate,maturity,spot,volatility,d1,d2,call_price,put_price,parity_residual", lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "default,100,0.05,1,100,0.2,"))
}
