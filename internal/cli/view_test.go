package cli

import (
	"encoding/json"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/rshade/datatable/internal/pagination"
	"github.com/rshade/datatable/internal/table"
)

func TestView_TableDefault(t *testing.T) {
	path := writeFile(t, "people.json", peopleJSON)

	out, _, err := executeRoot(t, "view", path, "--columns", "name=Name,age,address.city=City")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 6)
	assert.Equal(t, []string{"NAME", "AGE", "CITY"}, strings.Fields(lines[0]))
	assert.Equal(t, []string{"Ada", "36", "London"}, strings.Fields(lines[2]))
	assert.Equal(t, []string{"Edsger", "Nuenen"}, strings.Fields(lines[5]))
}

func TestView_InferredColumns(t *testing.T) {
	path := writeFile(t, "people.json", peopleJSON)

	out, _, err := executeRoot(t, "view", path)
	require.NoError(t, err)
	assert.Equal(t, []string{"ADDRESS", "AGE", "NAME"}, strings.Fields(strings.SplitN(out, "\n", 2)[0]))
	assert.Contains(t, out, `{"city":"London"}`)
}

func TestView_SortAscendingPutsMissingLast(t *testing.T) {
	path := writeFile(t, "people.json", peopleJSON)

	out, _, err := executeRoot(t, "view", path, "--columns", "name,age", "--sort", "age", "--output", "ndjson")
	require.NoError(t, err)

	names := ndjsonField(t, out, "name")
	assert.Equal(t, []string{"Linus", "Ada", "Grace", "Edsger"}, names)
}

func TestView_SortDescending(t *testing.T) {
	path := writeFile(t, "people.json", peopleJSON)

	out, _, err := executeRoot(t, "view", path, "--columns", "name,address.city", "--sort", "address.city:desc",
		"--output", "ndjson")
	require.NoError(t, err)
	assert.Equal(t, []string{"Edsger", "Ada", "Linus", "Grace"}, ndjsonField(t, out, "name"))
}

func TestView_SortErrors(t *testing.T) {
	path := writeFile(t, "people.json", peopleJSON)

	_, _, err := executeRoot(t, "view", path, "--columns", "name", "--sort", "age")
	require.ErrorIs(t, err, table.ErrInvalidSortField)
	assert.Contains(t, err.Error(), "valid fields: name")

	_, _, err = executeRoot(t, "view", path, "--sort", "age:sideways")
	require.ErrorIs(t, err, pagination.ErrInvalidSortOrder)
}

func TestView_PageJSON(t *testing.T) {
	path := writeFile(t, "rows.json", generateRows(40))

	out, _, err := executeRoot(t, "view", path, "--columns", "id", "--page", "2", "--page-size", "10",
		"--output", "json")
	require.NoError(t, err)

	var doc struct {
		Rows       []map[string]any `json:"rows"`
		Total      int              `json:"total"`
		Pagination *pagination.Meta `json:"pagination"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	require.Len(t, doc.Rows, 10)
	assert.InDelta(t, 11, doc.Rows[0]["id"], 0)
	assert.Equal(t, 40, doc.Total)
	require.NotNil(t, doc.Pagination)
	assert.Equal(t, pagination.Meta{
		CurrentPage: 2, PageSize: 10, TotalPages: 4, TotalItems: 40, HasPrevious: true, HasNext: true,
	}, *doc.Pagination)
}

func TestView_PageBeyondEndShowsLastPage(t *testing.T) {
	path := writeFile(t, "rows.json", generateRows(40))

	out, _, err := executeRoot(t, "view", path, "--columns", "id", "--page", "9", "--page-size", "10")
	require.NoError(t, err)
	assert.Contains(t, out, "31-40 of 40 (page 4 of 4)")
}

func TestView_PageUsesConfiguredRowsPerPage(t *testing.T) {
	path := writeFile(t, "rows.json", generateRows(40))
	t.Setenv("DATATABLE_ROWS_PER_PAGE", "15")

	out, _, err := executeRoot(t, "view", path, "--columns", "id", "--page", "3", "--output", "ndjson")
	require.NoError(t, err)
	assert.Len(t, ndjsonField(t, out, "id"), 10)
}

func TestView_OffsetLimit(t *testing.T) {
	path := writeFile(t, "rows.json", generateRows(40))

	out, _, err := executeRoot(t, "view", path, "--columns", "id", "--offset", "20", "--limit", "5",
		"--output", "yaml")
	require.NoError(t, err)

	var doc struct {
		Rows       []map[string]int `yaml:"rows"`
		Pagination pagination.Meta  `yaml:"pagination"`
	}
	require.NoError(t, yaml.Unmarshal([]byte(out), &doc))
	require.Len(t, doc.Rows, 5)
	assert.Equal(t, 21, doc.Rows[0]["id"])
	assert.Equal(t, 5, doc.Pagination.CurrentPage)
}

func TestView_InvalidPagination(t *testing.T) {
	path := writeFile(t, "rows.json", generateRows(5))

	_, _, err := executeRoot(t, "view", path, "--page", "1", "--offset", "2")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "mutually exclusive")

	_, _, err = executeRoot(t, "view", path, "--page-size", "5")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "page must be specified")
}

func TestView_UnsupportedOutput(t *testing.T) {
	path := writeFile(t, "rows.json", generateRows(1))

	_, _, err := executeRoot(t, "view", path, "--output", "xml")
	require.ErrorIs(t, err, ErrUnsupportedOutput)
}

func TestView_RowsPathAndMultipleFiles(t *testing.T) {
	envelope := writeFile(t, "envelope.json", `{"data": {"items": [{"id": 1}, {"id": 2}]}}`)
	csvPath := writeFile(t, "more.csv", "id\n3\n")

	out, _, err := executeRoot(t, "view", envelope, "--rows-path", "data.items", "--output", "ndjson")
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "2"}, ndjsonField(t, out, "id"))

	out, _, err = executeRoot(t, "view", csvPath, writeFile(t, "x.ndjson", `{"id": 4}`), "--output", "ndjson")
	require.NoError(t, err)
	assert.Equal(t, []string{"3", "4"}, ndjsonField(t, out, "id"))
}

func TestView_EmptyInput(t *testing.T) {
	path := writeFile(t, "empty.json", "[]")

	out, _, err := executeRoot(t, "view", path)
	require.NoError(t, err)
	assert.Contains(t, out, "No rows to display.")
}

func TestView_RequiresFile(t *testing.T) {
	_, _, err := executeRoot(t, "view")
	require.Error(t, err)
}

func TestSortRows_DefaultOrder(t *testing.T) {
	cols := table.ColumnsFromFields([]string{"n"})
	rows := []table.Row{{"n": 1}, {"n": 3}, {"n": 2}}

	sorted, err := sortRows(cols, rows, "n", "desc")
	require.NoError(t, err)
	assert.Equal(t, []table.Row{{"n": 3}, {"n": 2}, {"n": 1}}, sorted)

	sorted, err = sortRows(cols, rows, "n:asc", "desc")
	require.NoError(t, err)
	assert.Equal(t, []table.Row{{"n": 1}, {"n": 2}, {"n": 3}}, sorted)
	assert.Equal(t, []table.Row{{"n": 1}, {"n": 3}, {"n": 2}}, rows, "input is not mutated")
}

// generateRows returns a JSON array of n rows with ids 1..n.
func generateRows(n int) string {
	parts := make([]string, n)
	for i := range parts {
		parts[i] = fmt.Sprintf(`{"id": %d, "label": "row-%d"}`, i+1, i+1)
	}
	return "[" + strings.Join(parts, ",") + "]"
}

// ndjsonField collects field from every NDJSON line, formatted as text.
func ndjsonField(t *testing.T, out, field string) []string {
	t.Helper()
	var values []string
	for _, line := range strings.Split(strings.TrimSpace(out), "\n") {
		if line == "" {
			continue
		}
		var rec map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &rec))
		values = append(values, fmt.Sprint(rec[field]))
	}
	return values
}
