package main

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/sanLimbu/task-tracker/internal/rest"
	"github.com/sanLimbu/task-tracker/internal/service"
	"github.com/sanLimbu/task-tracker/internal/sqlite"
)

func TestSmoke(t *testing.T) {
	db, err := sqlite.Open(":memory:")
	require.NoError(t, err)

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	router := chi.NewRouter()
	rest.NewTaskHandler(service.NewTask(zap.NewNop(), sqlite.NewTask(db))).Register(router)

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)

	client := &apiClient{baseURL: srv.URL, http: srv.Client()}

	require.NoError(t, smoke(context.Background(), client))

	require.Error(t, client.do(context.Background(), http.MethodGet, "/tasks/1", nil, http.StatusOK, nil))
}
