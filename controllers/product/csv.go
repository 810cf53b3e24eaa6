package productcontroller

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/Jgaps7/store316/models"
	"github.com/google/uuid"
)

// Spreadsheets arrive from different templates, some in Portuguese, so each
// canonical column accepts a set of header synonyms. Headers are matched
// after normalization (lowercased, trimmed, inner whitespace collapsed to
// underscores).
var columnSynonyms = map[string]string{
	"name":             "name",
	"nome":             "name",
	"produto":          "name",
	"price":            "price",
	"preco":            "price",
	"preço":            "price",
	"category":         "category",
	"categoria":        "category",
	"category_id":      "category",
	"description":      "description",
	"descricao":        "description",
	"descrição":        "description",
	"images":           "images",
	"imagens":          "images",
	"image_urls":       "images",
	"sizes":            "sizes",
	"tamanhos":         "sizes",
	"discount":         "discount",
	"desconto":         "discount",
	"discount_percent": "discount",
}

// DefaultSizes is the fallback size set for rows that do not declare one.
var DefaultSizes = []string{"P", "M", "G"}

func normalizeHeader(h string) string {
	h = strings.ToLower(strings.TrimSpace(h))
	return strings.Join(strings.Fields(h), "_")
}

// parseLocaleFloat parses a number accepting comma as the decimal separator.
// Unparseable values default to zero instead of rejecting the row.
func parseLocaleFloat(s string) float64 {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", ".")
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return f
}

func splitList(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

// CategoryNameMap builds the case-insensitive name lookup used to resolve
// CSV category references.
func CategoryNameMap(categories []models.Category) map[string]string {
	m := make(map[string]string, len(categories))
	for _, cat := range categories {
		m[strings.ToLower(strings.TrimSpace(cat.Name))] = cat.ID
	}
	return m
}

// ParseProductsCSV reads a header-plus-rows CSV and translates each data row
// into a product create request. Rows whose category cannot be resolved, or
// that carry no name, produce a row error (numbered by original file line)
// and are skipped without blocking the rest. The returned error is only for
// files that cannot be read at all.
func ParseProductsCSV(r io.Reader, categoryIDByName map[string]string) ([]models.Product, []string, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to parse CSV: %w", err)
	}
	if len(records) < 2 {
		return nil, nil, fmt.Errorf("CSV file is empty or missing header row")
	}

	// Map column index -> canonical field. Unrecognized columns are ignored.
	columns := make(map[int]string)
	for i, h := range records[0] {
		if canonical, ok := columnSynonyms[normalizeHeader(h)]; ok {
			columns[i] = canonical
		}
	}

	var toInsert []models.Product
	var rowErrors []string

	for rowIdx, record := range records[1:] {
		line := rowIdx + 2 // 1-based, offset by the header row

		fields := make(map[string]string)
		for i, value := range record {
			if canonical, ok := columns[i]; ok {
				fields[canonical] = value
			}
		}

		name := strings.TrimSpace(fields["name"])
		if name == "" {
			rowErrors = append(rowErrors, fmt.Sprintf("Linha %d: produto sem nome.", line))
			continue
		}

		rawCat := strings.ToLower(strings.TrimSpace(fields["category"]))
		categoryID, ok := categoryIDByName[rawCat]
		if !ok {
			rowErrors = append(rowErrors, fmt.Sprintf("Linha %d: Categoria '%s' não encontrada.", line, rawCat))
			continue
		}

		sizes := splitList(fields["sizes"])
		if len(sizes) == 0 {
			sizes = append([]string(nil), DefaultSizes...)
		}

		toInsert = append(toInsert, models.Product{
			ID:              uuid.NewString(),
			Name:            name,
			Description:     strings.TrimSpace(fields["description"]),
			Price:           parseLocaleFloat(fields["price"]),
			CategoryID:      &categoryID,
			ImageURLs:       splitList(fields["images"]),
			Sizes:           sizes,
			DiscountPercent: models.NormalizeDiscount(parseLocaleFloat(fields["discount"])),
			IsActive:        true,
		})
	}

	return toInsert, rowErrors, nil
}
