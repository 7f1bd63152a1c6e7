package main

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runReport(t *testing.T, args ...string) string {
	t.Helper()

	var out bytes.Buffer
	cmd := newRootCmd(&out)
	cmd.SetArgs(append([]string{"--seed"}, args...))
	require.NoError(t, cmd.Execute())
	return out.String()
}

func TestReport_AllSections(t *testing.T) {
	out := runReport(t)

	for _, s := range sections {
		assert.Contains(t, out, "== "+s.title+" ==")
	}
	assert.Contains(t, out, "$15,000.00")
	assert.Contains(t, out, "Acme Inc.")
}

func TestReport_TopSales(t *testing.T) {
	out := runReport(t, "top-sales", "--top", "2")

	assert.Contains(t, out, "$15,000.00")
	assert.Contains(t, out, "$12,000.00")
	assert.NotContains(t, out, "$9,500.00")
}

func TestReport_Search(t *testing.T) {
	out := runReport(t, "search", "--departments", "Sales", "--min-total", "20000")

	assert.Contains(t, out, "Alice Martin")
	assert.NotContains(t, out, "Eve Summers")
}

func TestReport_JSON(t *testing.T) {
	out := runReport(t, "departments-by-headcount", "--format", "json")

	var got map[string][]map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	rows := got["departments-by-headcount"]
	require.Len(t, rows, 3)
	assert.Equal(t, "Sales", rows[0]["department"])
}

func TestReport_UnknownSection(t *testing.T) {
	var out bytes.Buffer
	cmd := newRootCmd(&out)
	cmd.SetArgs([]string{"--seed", "nope"})
	cmd.SetErr(&bytes.Buffer{})

	assert.ErrorContains(t, cmd.Execute(), `unknown section "nope"`)
}

func TestReport_UnknownFormat(t *testing.T) {
	var out bytes.Buffer
	cmd := newRootCmd(&out)
	cmd.SetArgs([]string{"--seed", "--format", "yaml"})
	cmd.SetErr(&bytes.Buffer{})

	assert.ErrorContains(t, cmd.Execute(), `unknown format "yaml"`)
	assert.Empty(t, out.String())
}
