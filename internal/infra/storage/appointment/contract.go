package appointment

import (
	"context"
	"database/sql"

	"github.com/brightshine-detailing/scheduler-service/pkg/dbmetrics"
)

// Reuse the dbmetrics interfaces so the repository works with both a raw
// *sql.DB and the metrics wrapper.
type DBExecutor = dbmetrics.DBExecutor
type TxExecutor = dbmetrics.TxExecutor

// TxBeginner starts transactions over *sql.DB or *dbmetrics.DB.
type TxBeginner interface {
	BeginTx(ctx context.Context, opts *sql.TxOptions) (TxExecutor, error)
}
