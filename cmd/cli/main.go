package main

import (
	"bytes"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/jaeger"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/propagation"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	"github.com/sanLimbu/task-tracker/internal"
	"github.com/sanLimbu/task-tracker/internal/rest"
)

func main() {
	var address, jaegerEndpoint string

	flag.StringVar(&address, "address", "http://127.0.0.1:9234", "Task API base URL")
	flag.StringVar(&jaegerEndpoint, "jaeger", "", "Jaeger collector endpoint, i.e. http://localhost:14268/api/traces")
	flag.Parse()

	tp, err := initTracer(jaegerEndpoint)
	if err != nil {
		log.Fatalf("Couldn't initialize tracer: %s", err)
	}

	defer func() {
		_ = tp.Shutdown(context.Background())
	}()

	client := &apiClient{
		baseURL: address,
		http:    &http.Client{Transport: otelhttp.NewTransport(http.DefaultTransport), Timeout: 5 * time.Second},
	}

	ctx, span := otel.Tracer("task-tracker-cli").Start(context.Background(), "cli.smoke")
	defer span.End()

	if err := smoke(ctx, client); err != nil {
		span.RecordError(err)
		log.Fatalf("Smoke test failed: %s", err)
	}
}

func smoke(ctx context.Context, client *apiClient) error {
	desc := "Sleep early"
	due := internal.DateOf(time.Now()).AddDays(1)

	var created rest.Task
	if err := client.do(ctx, http.MethodPost, "/tasks", rest.TaskRequest{
		Title:       "Smoke test",
		Description: &desc,
		Priority:    internal.PriorityHigh,
		DueDate:     &due,
	}, http.StatusCreated, &created); err != nil {
		return fmt.Errorf("create: %w", err)
	}

	printTask("New Task", created)

	path := fmt.Sprintf("/tasks/%d", created.ID)

	var read rest.Task
	if err := client.do(ctx, http.MethodGet, path, nil, http.StatusOK, &read); err != nil {
		return fmt.Errorf("read: %w", err)
	}

	var completed rest.Task
	if err := client.do(ctx, http.MethodPatch, path+"/complete", nil, http.StatusOK, &completed); err != nil {
		return fmt.Errorf("complete: %w", err)
	}

	printTask("Completed Task", completed)

	var tasks []rest.Task
	if err := client.do(ctx, http.MethodGet, "/tasks/priority/HIGH/status/true", nil, http.StatusOK, &tasks); err != nil {
		return fmt.Errorf("list: %w", err)
	}

	fmt.Printf("High priority completed tasks: %d\n", len(tasks))

	if err := client.do(ctx, http.MethodDelete, path, nil, http.StatusNoContent, nil); err != nil {
		return fmt.Errorf("delete: %w", err)
	}

	if err := client.do(ctx, http.MethodGet, path, nil, http.StatusNotFound, nil); err != nil {
		return fmt.Errorf("read deleted: %w", err)
	}

	fmt.Printf("Deleted Task %d\n", created.ID)

	return nil
}

func printTask(header string, task rest.Task) {
	fmt.Printf("%s\n\tID: %d\n", header, task.ID)
	fmt.Printf("\tTitle: %s\n", task.Title)
	fmt.Printf("\tPriority: %s\n", task.Priority)
	fmt.Printf("\tCompleted: %t\n", task.Completed)

	if task.DueDate != nil {
		fmt.Printf("\tDue: %s\n", task.DueDate)
	}
}

type apiClient struct {
	baseURL string
	http    *http.Client
}

func (c *apiClient) do(ctx context.Context, method, path string, body interface{}, status int, out interface{}) error {
	var reader io.Reader

	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("json.Marshal: %w", err)
		}

		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("http.NewRequest: %w", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("http.Do: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != status {
		b, _ := io.ReadAll(resp.Body)

		return fmt.Errorf("%s %s: expected status %d, got %d: %s", method, path, status, resp.StatusCode, b)
	}

	if out == nil {
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("json.Decode: %w", err)
	}

	return nil
}

// initTracer initializes OpenTelemetry tracing with stdout and, optionally, Jaeger exporters.
func initTracer(jaegerEndpoint string) (*sdktrace.TracerProvider, error) {
	stdoutExporter, err := stdouttrace.New(stdouttrace.WithPrettyPrint())
	if err != nil {
		return nil, fmt.Errorf("stdouttrace.New: %w", err)
	}

	options := []sdktrace.TracerProviderOption{
		sdktrace.WithSampler(sdktrace.AlwaysSample()),
		sdktrace.WithBatcher(stdoutExporter),
	}

	if jaegerEndpoint != "" {
		jaegerExporter, err := jaeger.New(jaeger.WithCollectorEndpoint(jaeger.WithEndpoint(jaegerEndpoint)))
		if err != nil {
			return nil, fmt.Errorf("jaeger.New: %w", err)
		}

		options = append(options, sdktrace.WithBatcher(jaegerExporter))
	}

	tp := sdktrace.NewTracerProvider(options...)

	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(propagation.TraceContext{}, propagation.Baggage{}))

	return tp, nil
}
