package middleware

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"github.com/khawla-14/markyticket/internal/http/auth"
	"github.com/khawla-14/markyticket/internal/idempotency"
)

const HeaderKey = "Idempotency-Key"

// keyspace namespaces scoped idempotency keys.
var keyspace = uuid.MustParse("6f1c1e9a-3b0e-4a52-9d0c-8f4e7a2b5c10")

// ResponseStore is the subset of idempotency.Store the middleware needs.
type ResponseStore interface {
	Get(ctx context.Context, key string) (*idempotency.Record, error)
	Lock(ctx context.Context, key string) (bool, error)
	Unlock(ctx context.Context, key string) error
	Save(ctx context.Context, key string, rec idempotency.Record) error
}

// Idempotency replays the stored response when a caller repeats an
// Idempotency-Key on the same route. Only non-5xx responses are stored.
// When the store is unreachable the request runs without replay protection.
func Idempotency(store ResponseStore) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get(HeaderKey)
			if header == "" {
				next.ServeHTTP(w, r)
				return
			}

			ctx := r.Context()
			key := scopedKey(r, header)

			rec, err := store.Get(ctx, key)
			if err != nil {
				slog.Error("idempotency lookup failed", "error", err)
				next.ServeHTTP(w, r)

				return
			}

			if rec != nil {
				replay(w, rec)
				return
			}

			locked, err := store.Lock(ctx, key)
			if err != nil {
				slog.Error("idempotency lock failed", "error", err)
				next.ServeHTTP(w, r)

				return
			}

			if !locked {
				http.Error(w, "request with this idempotency key is in progress", http.StatusConflict)
				return
			}

			defer func() {
				if err := store.Unlock(context.WithoutCancel(ctx), key); err != nil {
					slog.Error("idempotency unlock failed", "error", err)
				}
			}()

			var body bytes.Buffer

			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			ww.Tee(&body)

			next.ServeHTTP(ww, r)

			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}

			if status >= http.StatusInternalServerError {
				return
			}

			if err := store.Save(context.WithoutCancel(ctx), key, idempotency.Record{
				Status:      status,
				ContentType: ww.Header().Get("Content-Type"),
				Body:        body.Bytes(),
			}); err != nil {
				slog.Error("idempotency save failed", "error", err)
			}
		})
	}
}

// scopedKey binds the client supplied key to the caller and route, so two
// callers reusing the same key never see each other's responses.
func scopedKey(r *http.Request, header string) string {
	caller := "anonymous"
	if id, ok := auth.FromContext(r.Context()); ok {
		caller = fmt.Sprintf("%s:%d", id.Role, id.ID)
	}

	return uuid.NewSHA1(keyspace, []byte(caller+"|"+r.Method+" "+r.URL.Path+"|"+header)).String()
}

func replay(w http.ResponseWriter, rec *idempotency.Record) {
	if rec.ContentType != "" {
		w.Header().Set("Content-Type", rec.ContentType)
	}

	w.Header().Set("Idempotency-Replayed", "true")
	w.WriteHeader(rec.Status)

	if _, err := w.Write(rec.Body); err != nil {
		slog.Error("failed to write replayed response", "error", err)
	}
}
