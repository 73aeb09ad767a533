package columns

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInfer(t *testing.T) {
	header := []string{"id", "Rank", "price", "growth", "label", "weight", "_key"}
	rows := []Row{NewRow(header, []string{"x1", "1", "9.99", "50%", "red", "12kg", "k"})}

	got := Infer(header, rows, nil)
	want := []Column{
		{Name: "id", Type: TypeID},
		{Name: "Rank", Type: TypeID},
		{Name: "price", Type: TypeNumber},
		{Name: "growth", Type: TypeNumber},
		{Name: "label", Type: TypeString},
		{Name: "weight", Type: TypeNumber},
		{Name: "_key", Type: TypeString},
	}
	assert.Equal(t, want, got)
}

func TestInferCustomIDNamesAndNoRows(t *testing.T) {
	header := []string{"id", "sku", "qty"}
	got := Infer(header, nil, []string{"sku"})
	assert.Equal(t, []Column{
		{Name: "id", Type: TypeString},
		{Name: "sku", Type: TypeID},
		{Name: "qty", Type: TypeString},
	}, got)
}
