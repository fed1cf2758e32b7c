package postgres

import (
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// tableDDL recorta el bloque CREATE TABLE de una tabla del esquema inicial.
func tableDDL(t *testing.T, schema, table string) string {
	t.Helper()
	marker := "CREATE TABLE IF NOT EXISTS " + table
	start := strings.Index(schema, marker)
	require.GreaterOrEqual(t, start, 0, "la tabla %s debe existir en el esquema", table)
	end := strings.Index(schema[start:], ";")
	require.Greater(t, end, 0)
	return schema[start : start+end]
}

// Los historiales son archivos append-only: sus columnas guardan UUIDs sin
// claves foráneas, para que borrar una ubicación ya desocupada o un activo
// sin dependientes no quede bloqueado por registros pasados.
func TestEsquema_HistorialesSinClavesForaneas(t *testing.T) {
	raw, err := os.ReadFile("../../../migrations/0001_init.sql")
	require.NoError(t, err)
	schema := string(raw)

	for _, table := range []string{"move_history", "assignment_history"} {
		ddl := tableDDL(t, schema, table)
		assert.NotContains(t, ddl, "REFERENCES",
			"%s es un archivo: sin FK que bloqueen eliminaciones", table)
	}
}

// notes nunca es NULL: un movimiento sin comentario guarda cadena vacía.
func TestEsquema_NotasDeMovimientoNoNulas(t *testing.T) {
	raw, err := os.ReadFile("../../../migrations/0001_init.sql")
	require.NoError(t, err)

	ddl := tableDDL(t, string(raw), "move_history")
	assert.Contains(t, ddl, "notes            TEXT NOT NULL DEFAULT ''")
}
