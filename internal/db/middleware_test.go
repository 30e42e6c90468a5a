// Copyright 2026 NoteDrill
// SPDX-License-Identifier: AGPL-3.0

package db

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	sq "github.com/Masterminds/squirrel"

	"github.com/matheuspuca/NoteDrill-sub001/internal/logging"
)

type fakeDBClient struct {
	commitErr error
	calls     int
}

func (f *fakeDBClient) Statement(context.Context) sq.StatementBuilderType {
	return sq.StatementBuilderType{}
}

func (f *fakeDBClient) TxStatement(context.Context) (TxInterface, sq.StatementBuilderType, error) {
	return nil, sq.StatementBuilderType{}, nil
}

func (f *fakeDBClient) BeginTx(ctx context.Context) (context.Context, TxInterface, error) {
	return ctx, nil, nil
}

func (f *fakeDBClient) WithTx(ctx context.Context, fn func(context.Context) error) error {
	f.calls++
	if err := fn(ctx); err != nil {
		return err
	}
	return f.commitErr
}

func (f *fakeDBClient) Close() {}

type captureLogger struct {
	logging.LoggerInterface
	errors []string
}

func (l *captureLogger) Errorf(format string, args ...interface{}) {
	l.errors = append(l.errors, fmt.Sprintf(format, args...))
}

func TestTransactionMiddleware(t *testing.T) {
	okHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	t.Run("read-only requests skip the transaction", func(t *testing.T) {
		client := &fakeDBClient{}
		handler := TransactionMiddleware(client, logging.NewNoopLogger())(okHandler)

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v0/projects", nil))

		if client.calls != 0 {
			t.Errorf("expected no transaction, got %d", client.calls)
		}
	})

	t.Run("mutating requests run in a transaction", func(t *testing.T) {
		client := &fakeDBClient{}
		logger := &captureLogger{LoggerInterface: logging.NewNoopLogger()}
		handler := TransactionMiddleware(client, logger)(okHandler)

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v0/projects", nil))

		if client.calls != 1 {
			t.Fatalf("expected one transaction, got %d", client.calls)
		}
		if len(logger.errors) != 0 {
			t.Errorf("unexpected error logs: %v", logger.errors)
		}
	})

	t.Run("error responses roll back without noise", func(t *testing.T) {
		client := &fakeDBClient{}
		logger := &captureLogger{LoggerInterface: logging.NewNoopLogger()}
		handler := TransactionMiddleware(client, logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnprocessableEntity)
		}))

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v0/projects", nil))

		if client.calls != 1 {
			t.Fatalf("expected one transaction, got %d", client.calls)
		}
		if len(logger.errors) != 0 {
			t.Errorf("deliberate rollback should not be logged as an error, got %v", logger.errors)
		}
	})

	t.Run("commit failure is logged", func(t *testing.T) {
		client := &fakeDBClient{commitErr: errors.New("connection reset during commit")}
		logger := &captureLogger{LoggerInterface: logging.NewNoopLogger()}
		handler := TransactionMiddleware(client, logger)(okHandler)

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v0/projects", nil))

		if len(logger.errors) != 1 || !strings.Contains(logger.errors[0], "connection reset during commit") {
			t.Errorf("expected the commit failure to be logged, got %v", logger.errors)
		}
	})
}
