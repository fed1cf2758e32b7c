package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jhoicas/Activos-api/internal/application/assignment"
	"github.com/jhoicas/Activos-api/internal/application/movement"
	"github.com/jhoicas/Activos-api/internal/domain"
	"github.com/jhoicas/Activos-api/internal/domain/repository"
)

// Ensure TxRunner implements movement.TxRunner and assignment.TxRunner.
var _ movement.TxRunner = (*TxRunner)(nil)
var _ assignment.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// RunMove inicia una transacción con los repos que necesita el motor de
// movimientos, ejecuta fn y hace Commit o Rollback. Deadlocks y fallas de
// serialización salen como domain.ErrConflict (reintentable).
func (r *TxRunner) RunMove(ctx context.Context, fn func(
	parentRepo repository.ParentItemRepository,
	childRepo repository.ChildItemRepository,
	moveRepo repository.MoveHistoryRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	parentRepo := NewParentItemRepository(tx)
	childRepo := NewChildItemRepository(tx)
	moveRepo := NewMoveHistoryRepository(tx)

	if err := fn(parentRepo, childRepo, moveRepo); err != nil {
		return translateTxError(err)
	}
	if err := tx.Commit(ctx); err != nil {
		return translateTxError(fmt.Errorf("commit transaction: %w", err))
	}
	return nil
}

// RunAssignment inicia una transacción con los repos del gestor de asignaciones.
func (r *TxRunner) RunAssignment(ctx context.Context, fn func(
	childRepo repository.ChildItemRepository,
	parentRepo repository.ParentItemRepository,
	assignRepo repository.AssignmentHistoryRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	childRepo := NewChildItemRepository(tx)
	parentRepo := NewParentItemRepository(tx)
	assignRepo := NewAssignmentHistoryRepository(tx)

	if err := fn(childRepo, parentRepo, assignRepo); err != nil {
		return translateTxError(err)
	}
	if err := tx.Commit(ctx); err != nil {
		return translateTxError(fmt.Errorf("commit transaction: %w", err))
	}
	return nil
}

// translateTxError expone deadlock/serialización como conflicto de dominio.
func translateTxError(err error) error {
	if isSerializationFailure(err) {
		return fmt.Errorf("%w: %v", domain.ErrConflict, err)
	}
	return err
}
