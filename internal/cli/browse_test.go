package cli

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/datatable/internal/config"
	"github.com/rshade/datatable/internal/table"
)

func TestBuildBrowseModel(t *testing.T) {
	config.ResetGlobalConfigForTest()
	t.Cleanup(config.ResetGlobalConfigForTest)

	path := writeFile(t, "people.json", peopleJSON)
	cmd := &cobra.Command{}
	cmd.SetContext(t.Context())

	m, err := buildBrowseModel(cmd, []string{path}, browseParams{sort: "age:desc", pageSize: 2})
	require.NoError(t, err)
	assert.Equal(t, "age", m.SortField())
	assert.Equal(t, table.Descending, m.Direction())
	assert.Equal(t, 2, m.RowsPerPage())
	assert.Equal(t, 2, m.Pages())
	assert.Equal(t, "Grace", m.PageRows()[0]["name"])
	assert.Contains(t, m.View(), "people.json")
}

func TestBuildBrowseModel_DefaultOrderFromConfig(t *testing.T) {
	cfg := config.New()
	cfg.Table.DefaultSortOrder = "desc"
	config.SetGlobalConfig(cfg)
	t.Cleanup(config.ResetGlobalConfigForTest)

	path := writeFile(t, "people.json", peopleJSON)
	cmd := &cobra.Command{}
	cmd.SetContext(t.Context())

	m, err := buildBrowseModel(cmd, []string{path}, browseParams{sort: "name"})
	require.NoError(t, err)
	assert.Equal(t, table.Descending, m.Direction())
	assert.Equal(t, 10, m.RowsPerPage())
}

func TestBuildBrowseModel_Errors(t *testing.T) {
	config.ResetGlobalConfigForTest()
	t.Cleanup(config.ResetGlobalConfigForTest)

	path := writeFile(t, "people.json", peopleJSON)
	cmd := &cobra.Command{}
	cmd.SetContext(t.Context())

	_, err := buildBrowseModel(cmd, []string{path}, browseParams{columns: "name", sort: "age"})
	require.ErrorIs(t, err, table.ErrInvalidSortField)

	_, err = buildBrowseModel(cmd, []string{path}, browseParams{format: "xml"})
	require.Error(t, err)

	_, err = buildBrowseModel(cmd, []string{path}, browseParams{pageSize: 5000})
	require.Error(t, err)

	_, err = buildBrowseModel(cmd, []string{"missing.json"}, browseParams{})
	require.Error(t, err)
}

func TestBrowseTitle(t *testing.T) {
	assert.Equal(t, "a.json, b.csv", browseTitle([]string{"/tmp/x/a.json", "b.csv"}))
}
