package view

import (
	"context"
	"time"

	"github.com/khawla-14/markyticket/internal/money"
)

const dbTimeout = 5 * time.Second

// FormatAmount renders an amount with its currency suffix.
func FormatAmount(m money.Money) string {
	return m.String() + " DA"
}

// FormatTime formats a time.Time into YYYY-MM-DD HH:MM.
func FormatTime(t time.Time) string {
	return t.Format("2006-01-02 15:04")
}

// DbCtx returns a context with a standard timeout for database operations.
func DbCtx() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), dbTimeout)
}
