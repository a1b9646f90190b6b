package dlx

import "errors"

// ErrNoColumns is returned by Build when the column phase declared no
// columns at all.
var ErrNoColumns = errors.New("dlx: no columns were declared")

// ErrUnknownItem is returned by Build when a by-value row referenced an
// item that was never declared as a column.
var ErrUnknownItem = errors.New("dlx: row references an item that is not a declared column")

// ErrInvalidColumnID is returned by Build when a by-id row referenced a
// column id outside [1, number of declared columns].
var ErrInvalidColumnID = errors.New("dlx: row references an invalid column id")
