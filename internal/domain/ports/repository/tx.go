package repository

import (
	"context"

	"github.com/jackc/pgx/v4"
)

// Tx is an opaque executor handle threaded through repository calls. The
// concrete type is infra-defined (pgx.Tx for Postgres); repositories must
// accept NoTX and fall back to their own pool.
type Tx interface{}

// NoTX selects the non-transactional path.
var NoTX interface{}

// TransactionManager runs fn inside one database transaction, handing the
// transaction handle to fn as the Tx to pass along to repositories. Keeping
// the handle opaque stops transaction types from leaking into use-case
// signatures.
type TransactionManager interface {
	WithTx(ctx context.Context, txOpt pgx.TxOptions, fn func(ctx context.Context, tx Tx) error) error
}
