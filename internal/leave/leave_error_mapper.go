package leave

import (
	"errors"

	leaveerrors "github.com/Chayapol0073-141266/HRM-SDcon/internal/leave/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return leaveerrors.ErrLeaveNotFound
	}

	// A duplicate primary key on insert means another writer created the
	// same id first.
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return leaveerrors.ErrConcurrentModification
	}

	return err
}
