package rest

import (
	"net/http"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/ghodss/yaml"
	"github.com/go-chi/chi/v5"
)

// NewOpenAPI3 instantiates the OpenAPI specification for this service.
func NewOpenAPI3() openapi3.T {
	swagger := openapi3.T{
		OpenAPI: "3.0.0",
		Info: &openapi3.Info{
			Title:       "Task Tracker API",
			Description: "REST APIs used for tracking tasks",
			Version:     "0.0.0",
			License: &openapi3.License{
				Name: "MIT",
				URL:  "https://opensource.org/licenses/MIT",
			},
		},
		Components: &openapi3.Components{},
		Servers: openapi3.Servers{
			&openapi3.Server{
				Description: "Local development",
				URL:         "http://127.0.0.1:9234",
			},
		},
	}

	swagger.Components.Schemas = openapi3.Schemas{
		"Priority": openapi3.NewSchemaRef("",
			openapi3.NewStringSchema().
				WithEnum("LOW", "MEDIUM", "HIGH")),
		"Task": openapi3.NewSchemaRef("",
			openapi3.NewObjectSchema().
				WithProperty("id", openapi3.NewInt64Schema()).
				WithProperty("title", openapi3.NewStringSchema()).
				WithProperty("description", openapi3.NewStringSchema().WithNullable()).
				WithProperty("completed", openapi3.NewBoolSchema()).
				WithPropertyRef("priority", &openapi3.SchemaRef{Ref: "#/components/schemas/Priority"}).
				WithProperty("dueDate", openapi3.NewStringSchema().WithFormat("date").WithNullable())),
		"Tasks": openapi3.NewSchemaRef("",
			&openapi3.Schema{
				Type:  openapi3.TypeArray,
				Items: &openapi3.SchemaRef{Ref: "#/components/schemas/Task"},
			}),
		"Error": openapi3.NewSchemaRef("",
			openapi3.NewObjectSchema().
				WithProperty("error", openapi3.NewStringSchema())),
	}

	swagger.Components.RequestBodies = openapi3.RequestBodies{
		"TaskRequest": &openapi3.RequestBodyRef{
			Value: openapi3.NewRequestBody().
				WithDescription("Task fields, a missing priority defaults to MEDIUM").
				WithRequired(true).
				WithJSONSchemaRef(&openapi3.SchemaRef{Ref: "#/components/schemas/Task"}),
		},
	}

	swagger.Components.Responses = openapi3.Responses{
		"ErrorResponse": &openapi3.ResponseRef{
			Value: openapi3.NewResponse().
				WithDescription("Response when errors happen.").
				WithJSONSchemaRef(&openapi3.SchemaRef{Ref: "#/components/schemas/Error"}),
		},
		"TaskResponse": &openapi3.ResponseRef{
			Value: openapi3.NewResponse().
				WithDescription("A single task.").
				WithJSONSchemaRef(&openapi3.SchemaRef{Ref: "#/components/schemas/Task"}),
		},
		"TasksResponse": &openapi3.ResponseRef{
			Value: openapi3.NewResponse().
				WithDescription("Tasks ordered by id.").
				WithJSONSchemaRef(&openapi3.SchemaRef{Ref: "#/components/schemas/Tasks"}),
		},
	}

	var (
		idParam        = pathParam("id", openapi3.NewInt64Schema())
		priorityParam  = &openapi3.ParameterRef{Value: openapi3.NewPathParameter("priority").WithSchema(openapi3.NewStringSchema().WithEnum("LOW", "MEDIUM", "HIGH"))}
		completedParam = pathParam("completed", openapi3.NewBoolSchema())
		dateParam      = pathParam("date", openapi3.NewStringSchema().WithFormat("date"))
	)

	swagger.Paths = openapi3.Paths{
		"/tasks": &openapi3.PathItem{
			Get: listOperation("ListTasks"),
			Post: &openapi3.Operation{
				OperationID: "CreateTask",
				RequestBody: &openapi3.RequestBodyRef{Ref: "#/components/requestBodies/TaskRequest"},
				Responses: openapi3.Responses{
					"400": errorResponse(),
					"500": errorResponse(),
					"201": taskResponse(),
				},
			},
		},
		"/tasks/{id}": &openapi3.PathItem{
			Get: taskOperation("ReadTask", idParam),
			Put: &openapi3.Operation{
				OperationID: "UpdateTask",
				Parameters:  openapi3.Parameters{idParam},
				RequestBody: &openapi3.RequestBodyRef{Ref: "#/components/requestBodies/TaskRequest"},
				Responses: openapi3.Responses{
					"200": taskResponse(),
					"400": errorResponse(),
					"404": errorResponse(),
					"500": errorResponse(),
				},
			},
			Delete: &openapi3.Operation{
				OperationID: "DeleteTask",
				Parameters:  openapi3.Parameters{idParam},
				Responses: openapi3.Responses{
					"204": &openapi3.ResponseRef{Value: openapi3.NewResponse().WithDescription("Task deleted")},
					"400": errorResponse(),
					"404": errorResponse(),
					"500": errorResponse(),
				},
			},
		},
		"/tasks/priority/{priority}":                   &openapi3.PathItem{Get: listOperation("ListTasksByPriority", priorityParam)},
		"/tasks/priority/{priority}/status/{completed}": &openapi3.PathItem{Get: listOperation("ListTasksByPriorityAndStatus", priorityParam, completedParam)},
		"/tasks/priority/{priority}/due-date/{date}":    &openapi3.PathItem{Get: listOperation("ListTasksByPriorityAndDueDate", priorityParam, dateParam)},
		"/tasks/status/{completed}":                     &openapi3.PathItem{Get: listOperation("ListTasksByStatus", completedParam)},
		"/tasks/due-date/{date}":                        &openapi3.PathItem{Get: listOperation("ListTasksByDueDate", dateParam)},
		"/tasks/due-before/{date}":                      &openapi3.PathItem{Get: listOperation("ListTasksDueBefore", dateParam)},
		"/tasks/due-after/{date}":                       &openapi3.PathItem{Get: listOperation("ListTasksDueAfter", dateParam)},
		"/tasks/{id}/complete":                          &openapi3.PathItem{Patch: taskOperation("MarkTaskCompleted", idParam)},
		"/tasks/{id}/incomplete":                        &openapi3.PathItem{Patch: taskOperation("MarkTaskNotCompleted", idParam)},
		"/tasks/{id}/priority/{priority}":               &openapi3.PathItem{Patch: taskOperation("UpdateTaskPriority", idParam, priorityParam)},
		"/tasks/{id}/due-date": &openapi3.PathItem{
			Patch: taskOperation("UpdateTaskDueDate", idParam,
				&openapi3.ParameterRef{
					Value: openapi3.NewQueryParameter("dueDate").
						WithRequired(true).
						WithSchema(openapi3.NewStringSchema().WithFormat("date")),
				}),
		},
	}

	return swagger
}

func pathParam(name string, schema *openapi3.Schema) *openapi3.ParameterRef {
	return &openapi3.ParameterRef{
		Value: openapi3.NewPathParameter(name).WithSchema(schema),
	}
}

func errorResponse() *openapi3.ResponseRef {
	return &openapi3.ResponseRef{Ref: "#/components/responses/ErrorResponse"}
}

func taskResponse() *openapi3.ResponseRef {
	return &openapi3.ResponseRef{Ref: "#/components/responses/TaskResponse"}
}

func listOperation(id string, params ...*openapi3.ParameterRef) *openapi3.Operation {
	return &openapi3.Operation{
		OperationID: id,
		Parameters:  params,
		Responses: openapi3.Responses{
			"200": &openapi3.ResponseRef{Ref: "#/components/responses/TasksResponse"},
			"400": errorResponse(),
			"500": errorResponse(),
		},
	}
}

func taskOperation(id string, params ...*openapi3.ParameterRef) *openapi3.Operation {
	return &openapi3.Operation{
		OperationID: id,
		Parameters:  params,
		Responses: openapi3.Responses{
			"200": taskResponse(),
			"400": errorResponse(),
			"404": errorResponse(),
			"500": errorResponse(),
		},
	}
}

// RegisterOpenAPI serves the OpenAPI document as JSON and YAML.
func RegisterOpenAPI(r chi.Router) {
	swagger := NewOpenAPI3()

	r.Get("/openapi3.json", func(w http.ResponseWriter, r *http.Request) {
		renderResponse(w, r, &swagger, http.StatusOK)
	})

	r.Get("/openapi3.yaml", func(w http.ResponseWriter, r *http.Request) {
		data, err := yaml.Marshal(&swagger)
		if err != nil {
			renderErrorResponse(w, r, "marshal failed", err)
			return
		}

		w.Header().Set("Content-Type", "application/x-yaml")
		w.WriteHeader(http.StatusOK)

		_, _ = w.Write(data)
	})
}
