package export

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderCSV(t *testing.T) {
	out, err := RenderCSV(Table{
		Headers: []string{"Apellido", "Nombres", "Asistencia"},
		Rows: [][]string{
			{"Gomez", "Ana", "66.67%"},
			{"Perez", "Luis", "-"},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "Apellido,Nombres,Asistencia\nGomez,Ana,66.67%\nPerez,Luis,-\n", string(out))
}

func TestRenderCSVRequiresHeaders(t *testing.T) {
	_, err := RenderCSV(Table{})
	assert.Error(t, err)
}

func TestRenderPDF(t *testing.T) {
	out, err := RenderPDF(Table{
		Title:   "Asistencia 1A",
		Headers: []string{"Apellido", "Nombres", "Asistencia"},
		Rows:    [][]string{{"Gomez", "Ana", "66.67%"}},
	})
	require.NoError(t, err)
	require.NotEmpty(t, out)
	assert.Equal(t, "%PDF", string(out[:4]))
}
