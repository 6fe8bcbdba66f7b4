package apiclient

import (
	"sort"
	"strings"

	"github.com/spf13/cast"

	"github.com/CT070144/HostingWebsite-FE-sub001/internal/models"
)

// LabelTable maps raw spec attribute keys to display labels. It is plain
// data so deployments can swap in their own translations.
type LabelTable map[string]string

// DefaultLabels covers the attribute keys the seeded catalog uses.
var DefaultLabels = LabelTable{
	"storage":        "Storage",
	"bandwidth":      "Bandwidth",
	"domains":        "Domains",
	"subdomains":     "Subdomains",
	"databases":      "Databases",
	"email_accounts": "Email accounts",
	"ssl":            "SSL certificate",
	"cpu":            "CPU",
	"ram":            "RAM",
	"backup":         "Backup",
	"dedicated_ip":   "Dedicated IP",
}

// Label looks the key up, falling back to a humanized form of the key
// itself, so unknown attributes still render.
func (t LabelTable) Label(key string) string {
	if label, ok := t[key]; ok {
		return label
	}
	words := strings.Split(strings.ReplaceAll(key, "_", " "), " ")
	for i, w := range words {
		if w == "" {
			continue
		}
		if i == 0 {
			words[i] = strings.ToUpper(w[:1]) + w[1:]
		}
	}
	return strings.Join(words, " ")
}

// FormatAttributeValue renders a schema-less attribute value: numbers keep a
// compact form, booleans read as Yes/No, everything else passes through cast.
func FormatAttributeValue(v any) string {
	switch v.(type) {
	case bool:
		if cast.ToBool(v) {
			return "Yes"
		}
		return "No"
	case float32, float64, int, int32, int64, uint, uint32, uint64:
		return cast.ToString(v)
	default:
		s, err := cast.ToStringE(v)
		if err != nil {
			return ""
		}
		return s
	}
}

type AttributeRow struct {
	Key   string
	Label string
	Value string
}

// AttributeRows flattens a product spec into ordered display rows. Missing
// or extra keys are tolerated; rows come out sorted by key for stable
// rendering.
func AttributeRows(spec models.ProductSpec, labels LabelTable) []AttributeRow {
	if labels == nil {
		labels = DefaultLabels
	}
	rows := make([]AttributeRow, 0, len(spec.Attributes))
	for key, value := range spec.Attributes {
		rows = append(rows, AttributeRow{
			Key:   key,
			Label: labels.Label(key),
			Value: FormatAttributeValue(value),
		})
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].Key < rows[j].Key })
	return rows
}
