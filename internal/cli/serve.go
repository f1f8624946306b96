package cli

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/spf13/cobra"

	gberrors "github.com/matzehuels/gridboard/pkg/errors"
	"github.com/matzehuels/gridboard/pkg/export"
	"github.com/matzehuels/gridboard/pkg/layout"
	"github.com/matzehuels/gridboard/pkg/store"
)

// serveCommand creates the serve command exposing the layout store over HTTP.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr    string
		backend string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the layout store over HTTP",
		Long: `Run an HTTP API over the layout store.

Routes:
  GET    /healthz                    liveness probe
  GET    /layouts                    list layout names
  GET    /layouts/{name}             fetch a layout as JSON
  PUT    /layouts/{name}             store a layout
  DELETE /layouts/{name}             delete a layout
  GET    /layouts/{name}/render.svg  render a layout as SVG`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			st, err := c.openStore(ctx, backend)
			if err != nil {
				return err
			}
			defer st.Close()

			srv := &http.Server{
				Addr:              addr,
				Handler:           newRouter(st),
				ReadHeaderTimeout: 5 * time.Second,
			}

			logger := loggerFromContext(ctx)
			errCh := make(chan error, 1)
			go func() {
				logger.Info("listening", "addr", addr)
				errCh <- srv.ListenAndServe()
			}()

			select {
			case <-ctx.Done():
				shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				return srv.Shutdown(shutdownCtx)
			case err := <-errCh:
				if errors.Is(err, http.ErrServerClosed) {
					return nil
				}
				return err
			}
		},
	}

	cmd.Flags().StringVarP(&addr, "addr", "a", ":8480", "listen address")
	cmd.Flags().StringVar(&backend, "store", "", "store backend (file, memory, redis, mongo)")

	return cmd
}

// newRouter builds the chi router over a layout store.
func newRouter(st store.Store) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Route("/layouts", func(r chi.Router) {
		r.Get("/", handleList(st))
		r.Get("/{name}", handleGet(st))
		r.Put("/{name}", handlePut(st))
		r.Delete("/{name}", handleDelete(st))
		r.Get("/{name}/render.svg", handleRenderSVG(st))
	})

	return r
}

func handleList(st store.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		names, err := st.List(r.Context())
		if err != nil {
			httpError(w, err)
			return
		}
		if names == nil {
			names = []string{}
		}
		writeJSON(w, http.StatusOK, map[string]any{"layouts": names})
	}
}

func handleGet(st store.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		l, err := st.Get(r.Context(), chi.URLParam(r, "name"))
		if err != nil {
			httpError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, l)
	}
}

func handlePut(st store.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var l layout.Layout
		if err := json.NewDecoder(r.Body).Decode(&l); err != nil {
			httpError(w, gberrors.Wrap(gberrors.ErrCodeInvalidInput, err, "invalid layout JSON"))
			return
		}
		l.Name = chi.URLParam(r, "name")
		if _, err := l.Config(); err != nil {
			httpError(w, gberrors.Wrap(gberrors.ErrCodeInvalidLayout, err, "layout failed validation"))
			return
		}
		l.EnsureIDs()

		if err := st.Set(r.Context(), &l); err != nil {
			httpError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, &l)
	}
}

func handleDelete(st store.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := st.Delete(r.Context(), chi.URLParam(r, "name")); err != nil {
			httpError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func handleRenderSVG(st store.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		l, err := st.Get(r.Context(), chi.URLParam(r, "name"))
		if err != nil {
			httpError(w, err)
			return
		}
		data, err := export.RenderSVG(l)
		if err != nil {
			httpError(w, gberrors.Wrap(gberrors.ErrCodeRender, err, "rendering layout"))
			return
		}
		w.Header().Set("Content-Type", "image/svg+xml")
		_, _ = w.Write(data)
	}
}

// httpError maps errors to status codes and a machine-readable error body.
func httpError(w http.ResponseWriter, err error) {
	code := gberrors.GetCode(err)
	status := http.StatusInternalServerError

	switch {
	case errors.Is(err, store.ErrNotFound):
		code, status = gberrors.ErrCodeNotFound, http.StatusNotFound
	case errors.Is(err, store.ErrInvalidName):
		code, status = gberrors.ErrCodeInvalidName, http.StatusBadRequest
	case code == gberrors.ErrCodeInvalidInput:
		status = http.StatusBadRequest
	case code == gberrors.ErrCodeInvalidLayout:
		status = http.StatusUnprocessableEntity
	case code == "":
		code = gberrors.ErrCodeInternal
	}

	writeJSON(w, status, map[string]string{
		"error": gberrors.UserMessage(err),
		"code":  string(code),
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	// Headers are already out; an encode failure has nowhere to go.
	_ = json.NewEncoder(w).Encode(v)
}
