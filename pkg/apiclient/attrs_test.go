package apiclient

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/CT070144/HostingWebsite-FE-sub001/internal/models"
)

func TestLabelLookupAndFallback(t *testing.T) {
	require.Equal(t, "Email accounts", DefaultLabels.Label("email_accounts"))
	require.Equal(t, "Dedicated IP", DefaultLabels.Label("dedicated_ip"))

	// Unknown keys humanize instead of rendering raw.
	require.Equal(t, "Disk iops", DefaultLabels.Label("disk_iops"))
	require.Equal(t, "Snapshots", DefaultLabels.Label("snapshots"))
}

func TestFormatAttributeValue(t *testing.T) {
	require.Equal(t, "Yes", FormatAttributeValue(true))
	require.Equal(t, "No", FormatAttributeValue(false))
	require.Equal(t, "10", FormatAttributeValue(10))
	require.Equal(t, "2.5", FormatAttributeValue(2.5))
	require.Equal(t, "50 GB SSD", FormatAttributeValue("50 GB SSD"))
}

func TestAttributeRowsSortedAndComplete(t *testing.T) {
	spec := models.ProductSpec{Attributes: map[string]any{
		"storage":   "50 GB SSD",
		"ssl":       true,
		"databases": 10,
		"ram":       "4 GB",
	}}

	rows := AttributeRows(spec, nil)
	require.Len(t, rows, 4)

	// Sorted by raw key for stable rendering.
	keys := make([]string, len(rows))
	for i, r := range rows {
		keys[i] = r.Key
	}
	require.Equal(t, []string{"databases", "ram", "ssl", "storage"}, keys)

	byKey := map[string]AttributeRow{}
	for _, r := range rows {
		byKey[r.Key] = r
	}
	require.Equal(t, "SSL certificate", byKey["ssl"].Label)
	require.Equal(t, "Yes", byKey["ssl"].Value)
	require.Equal(t, "10", byKey["databases"].Value)
}

func TestAttributeRowsEmptySpec(t *testing.T) {
	rows := AttributeRows(models.ProductSpec{}, DefaultLabels)
	require.Empty(t, rows)
}
