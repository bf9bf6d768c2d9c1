package service

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brightstore/store_api/internal/models"
)

type fakeInserter struct {
	products []models.Product
}

func (f *fakeInserter) CreateBatch(products []models.Product) error {
	f.products = products
	return nil
}

func TestImportProductsHeaderMapping(t *testing.T) {
	csv := strings.Join([]string{
		"category,name,price,description",
		"Pulses,Toor Dal,120,Premium quality",
		"Sweeteners,Jaggery,90,",
	}, "\n")

	inserter := &fakeInserter{}
	svc := NewImportService(inserter)

	result, err := svc.ImportProducts(strings.NewReader(csv))
	require.NoError(t, err)
	assert.Equal(t, 2, result.Imported)
	assert.Equal(t, 0, result.Skipped)

	require.Len(t, inserter.products, 2)
	assert.Equal(t, "Toor Dal", inserter.products[0].Name)
	assert.Equal(t, "Pulses", inserter.products[0].Category)
	assert.Equal(t, 120.0, inserter.products[0].Price)
	assert.Equal(t, "Premium quality", inserter.products[0].Description)
}

func TestImportProductsQuotedCommas(t *testing.T) {
	csv := strings.Join([]string{
		"name,description,price",
		`"Dal, Toor","Rich, earthy flavour",120`,
	}, "\n")

	inserter := &fakeInserter{}
	svc := NewImportService(inserter)

	result, err := svc.ImportProducts(strings.NewReader(csv))
	require.NoError(t, err)
	assert.Equal(t, 1, result.Imported)
	assert.Equal(t, "Dal, Toor", inserter.products[0].Name)
	assert.Equal(t, "Rich, earthy flavour", inserter.products[0].Description)
}

func TestImportProductsPositionalFallback(t *testing.T) {
	// header without recognizable names falls back to positional order:
	// name, description, price, wholesale_price, category, image_url
	csv := strings.Join([]string{
		"a,b,c,d,e,f",
		"Toor Dal,Premium,120,100,Pulses,https://img.test/dal.jpg",
	}, "\n")

	inserter := &fakeInserter{}
	svc := NewImportService(inserter)

	result, err := svc.ImportProducts(strings.NewReader(csv))
	require.NoError(t, err)
	assert.Equal(t, 1, result.Imported)

	p := inserter.products[0]
	assert.Equal(t, "Toor Dal", p.Name)
	assert.Equal(t, 120.0, p.Price)
	assert.Equal(t, 100.0, p.WholesalePrice)
	assert.Equal(t, "Pulses", p.Category)
	assert.Equal(t, "https://img.test/dal.jpg", p.ImageURL)
}

func TestImportProductsSkipsShortRows(t *testing.T) {
	csv := strings.Join([]string{
		"name,description,price",
		"Toor Dal,Premium,120",
		"incomplete,row",
		",,100",
	}, "\n")

	inserter := &fakeInserter{}
	svc := NewImportService(inserter)

	result, err := svc.ImportProducts(strings.NewReader(csv))
	require.NoError(t, err)
	assert.Equal(t, 1, result.Imported)
	assert.Equal(t, 2, result.Skipped)
}

func TestImportProductsDefaultsCategory(t *testing.T) {
	csv := strings.Join([]string{
		"name,description,price",
		"Toor Dal,Premium,120",
	}, "\n")

	inserter := &fakeInserter{}
	svc := NewImportService(inserter)

	_, err := svc.ImportProducts(strings.NewReader(csv))
	require.NoError(t, err)
	assert.Equal(t, "General", inserter.products[0].Category)
}

func TestImportProductsEmptyFile(t *testing.T) {
	svc := NewImportService(&fakeInserter{})

	_, err := svc.ImportProducts(strings.NewReader("name,description,price\n"))
	assert.EqualError(t, err, "no valid products found in CSV")
}

func TestParseAmount(t *testing.T) {
	assert.Equal(t, 120.5, parseAmount("120.5"))
	assert.Equal(t, 0.0, parseAmount("abc"))
	assert.Equal(t, 0.0, parseAmount("-10"))
	assert.Equal(t, 0.0, parseAmount(""))
}
