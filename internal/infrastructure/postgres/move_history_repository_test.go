package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Activos-api/internal/domain/entity"
)

// recordingQuerier captura el SQL y los argumentos de Exec para verificar
// cómo se vinculan los parámetros, sin tocar una base real.
type recordingQuerier struct {
	sql  string
	args []any
}

func (q *recordingQuerier) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	q.sql = sql
	q.args = args
	return pgconn.NewCommandTag("INSERT 0 1"), nil
}

func (q *recordingQuerier) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, pgx.ErrNoRows
}

func (q *recordingQuerier) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	return nil
}

// Un movimiento sin notas debe insertar '' y nunca NULL: la columna notes
// es NOT NULL y un NULL explícito rompería cada movimiento sin comentario.
func TestMoveHistoryCreate_NotasVaciasSeInsertanComoCadena(t *testing.T) {
	q := &recordingQuerier{}
	repo := NewMoveHistoryRepository(q)

	from := "00000000-0000-0000-0000-0000000000a1"
	err := repo.Create(&entity.MoveHistory{
		ParentItemID:   "00000000-0000-0000-0000-0000000000b1",
		FromLocationID: &from,
		ToLocationID:   "00000000-0000-0000-0000-0000000000a2",
		MovedAt:        time.Now(),
		MovedBy:        "00000000-0000-0000-0000-0000000000aa",
	})
	require.NoError(t, err)

	require.Len(t, q.args, 7)
	assert.Equal(t, "", q.args[6], "notes vacías deben vincularse como cadena, no como NULL")
}

func TestMoveHistoryCreate_ConservaNotas(t *testing.T) {
	q := &recordingQuerier{}
	repo := NewMoveHistoryRepository(q)

	err := repo.Create(&entity.MoveHistory{
		ParentItemID: "00000000-0000-0000-0000-0000000000b1",
		ToLocationID: "00000000-0000-0000-0000-0000000000a2",
		MovedAt:      time.Now(),
		MovedBy:      "00000000-0000-0000-0000-0000000000aa",
		Notes:        "traslado por mantenimiento",
	})
	require.NoError(t, err)

	require.Len(t, q.args, 7)
	assert.Equal(t, "traslado por mantenimiento", q.args[6])
	assert.NotEmpty(t, q.args[0], "el repo genera el id cuando viene vacío")
}
