package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgtype"
	"go.opentelemetry.io/otel"
	semconv "go.opentelemetry.io/otel/semconv/v1.4.0"
	"go.opentelemetry.io/otel/trace"

	"github.com/sanLimbu/task-tracker/internal"
	"github.com/sanLimbu/task-tracker/internal/postgresql/db"
)

//go:generate sqlc generate

const otelName = "github.com/sanLimbu/task-tracker/internal/postgresql"

func convertPriority(p string) (internal.Priority, error) {
	res, err := internal.ParsePriority(p)
	if err != nil {
		return internal.Priority(-1), fmt.Errorf("unknown value: %s", p)
	}

	return res, nil
}

func newPriority(p internal.Priority) string {
	return p.String()
}

func newDate(d *internal.Date) pgtype.Date {
	if d == nil {
		return pgtype.Date{}
	}

	return pgtype.Date{
		Time:  d.Time(),
		Valid: true,
	}
}

func newText(s *string) pgtype.Text {
	if s == nil {
		return pgtype.Text{}
	}

	return pgtype.Text{
		String: *s,
		Valid:  true,
	}
}

func convertTask(t db.Task) (internal.Task, error) {
	priority, err := convertPriority(t.Priority)
	if err != nil {
		return internal.Task{}, internal.WrapErrorf(err, internal.ErrorCodeUnknown, "convertPriority")
	}

	res := internal.Task{
		ID:        t.ID,
		Title:     t.Title,
		Completed: t.Completed,
		Priority:  priority,
	}

	if t.Description.Valid {
		description := t.Description.String
		res.Description = &description
	}

	if t.DueDate.Valid {
		due := internal.DateOf(t.DueDate.Time)
		res.DueDate = &due
	}

	return res, nil
}

func convertTasks(rows []db.Task) ([]internal.Task, error) {
	res := make([]internal.Task, 0, len(rows))

	for _, row := range rows {
		task, err := convertTask(row)
		if err != nil {
			return nil, err
		}

		res = append(res, task)
	}

	return res, nil
}

func newOTELSpan(ctx context.Context, name string) trace.Span {
	_, span := otel.Tracer(otelName).Start(ctx, name)

	span.SetAttributes(semconv.DBSystemPostgreSQL)

	return span
}
