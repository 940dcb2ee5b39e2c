package api_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/steinfletcher/apitest"
	jsonpath "github.com/steinfletcher/apitest-jsonpath"
	"github.com/stretchr/testify/require"
	"github.com/taskslite/tasks-lite-api/internal/domain"
	"github.com/taskslite/tasks-lite-api/internal/service/auth"
)

// createTask seeds a task for the given account through the store.
func (e *testEnv) createTask(t *testing.T, owner *auth.AuthResult, title string) *domain.Task {
	t.Helper()
	task, err := domain.NewTask(title, "description of "+title, owner.User.ID)
	require.NoError(t, err)
	require.NoError(t, e.taskStore.Create(context.Background(), task))
	return task
}

func TestCreateTaskEndpoint(t *testing.T) {
	env := newTestEnv(t)
	result, token := env.registerUser(t, "jane@x.com")

	apitest.New().
		Handler(env.router).
		Post("/api/tasks").
		Header("Authorization", token).
		JSON(`{"title":"Buy milk","description":"2 liters"}`).
		Expect(t).
		Status(http.StatusCreated).
		Assert(jsonpath.Equal("$.success", true)).
		Assert(jsonpath.Present("$.data.id")).
		Assert(jsonpath.Equal("$.data.title", "Buy milk")).
		Assert(jsonpath.Equal("$.data.status", "todo")).
		Assert(jsonpath.Equal("$.data.userId", result.User.ID.String())).
		End()
}

func TestCreateTaskEndpointValidation(t *testing.T) {
	env := newTestEnv(t)
	_, token := env.registerUser(t, "jane@x.com")

	for name, body := range map[string]string{
		"missing_title":       `{"description":"2 liters"}`,
		"missing_description": `{"title":"Buy milk"}`,
		"empty_body":          `{}`,
	} {
		t.Run(name, func(t *testing.T) {
			apitest.New().
				Handler(env.router).
				Post("/api/tasks").
				Header("Authorization", token).
				JSON(body).
				Expect(t).
				Status(http.StatusBadRequest).
				Assert(jsonpath.Equal("$.error.message", "Title and description are required")).
				End()
		})
	}
}

func TestListTasksEndpoint(t *testing.T) {
	env := newTestEnv(t)
	jane, janeToken := env.registerUser(t, "jane@x.com")
	bob, _ := env.registerUser(t, "bob@x.com")

	env.createTask(t, jane, "first")
	env.createTask(t, jane, "second")
	env.createTask(t, bob, "not-jane's")

	apitest.New().
		Handler(env.router).
		Get("/api/tasks").
		Header("Authorization", janeToken).
		Expect(t).
		Status(http.StatusOK).
		Assert(jsonpath.Equal("$.success", true)).
		Assert(jsonpath.Equal("$.count", float64(2))).
		Assert(jsonpath.Len("$.data", 2)).
		Assert(jsonpath.Equal("$.data[0].title", "first")).
		Assert(jsonpath.Equal("$.data[1].title", "second")).
		End()
}

func TestListTasksEndpointEmpty(t *testing.T) {
	env := newTestEnv(t)
	_, token := env.registerUser(t, "jane@x.com")

	// An empty collection is [] with count 0, never null.
	apitest.New().
		Handler(env.router).
		Get("/api/tasks").
		Header("Authorization", token).
		Expect(t).
		Status(http.StatusOK).
		Assert(jsonpath.Equal("$.count", float64(0))).
		Assert(jsonpath.Len("$.data", 0)).
		End()
}

func TestGetTaskEndpoint(t *testing.T) {
	env := newTestEnv(t)
	jane, token := env.registerUser(t, "jane@x.com")
	task := env.createTask(t, jane, "mine")

	apitest.New().
		Handler(env.router).
		Get("/api/tasks/"+task.ID.String()).
		Header("Authorization", token).
		Expect(t).
		Status(http.StatusOK).
		Assert(jsonpath.Equal("$.data.id", task.ID.String())).
		Assert(jsonpath.Equal("$.data.title", "mine")).
		End()
}

func TestGetTaskEndpointNotFound(t *testing.T) {
	env := newTestEnv(t)
	_, janeToken := env.registerUser(t, "jane@x.com")
	bob, bobToken := env.registerUser(t, "bob@x.com")
	task := env.createTask(t, bob, "bob's")

	t.Run("other_owners_task", func(t *testing.T) {
		// Another user's task is indistinguishable from a missing one.
		apitest.New().
			Handler(env.router).
			Get("/api/tasks/"+task.ID.String()).
			Header("Authorization", janeToken).
			Expect(t).
			Status(http.StatusNotFound).
			Assert(jsonpath.Equal("$.error.message", "Task not found")).
			End()
	})

	t.Run("malformed_id", func(t *testing.T) {
		apitest.New().
			Handler(env.router).
			Get("/api/tasks/not-a-valid-id").
			Header("Authorization", bobToken).
			Expect(t).
			Status(http.StatusNotFound).
			Assert(jsonpath.Equal("$.error.message", "Task not found")).
			End()
	})
}

func TestUpdateTaskEndpoint(t *testing.T) {
	env := newTestEnv(t)
	jane, token := env.registerUser(t, "jane@x.com")
	task := env.createTask(t, jane, "original")

	t.Run("partial_update", func(t *testing.T) {
		apitest.New().
			Handler(env.router).
			Put("/api/tasks/"+task.ID.String()).
			Header("Authorization", token).
			JSON(`{"status":"in_progress"}`).
			Expect(t).
			Status(http.StatusOK).
			Assert(jsonpath.Equal("$.data.status", "in_progress")).
			Assert(jsonpath.Equal("$.data.title", "original")).
			End()
	})

	t.Run("invalid_status", func(t *testing.T) {
		apitest.New().
			Handler(env.router).
			Put("/api/tasks/"+task.ID.String()).
			Header("Authorization", token).
			JSON(`{"title":"should not stick","status":"bogus"}`).
			Expect(t).
			Status(http.StatusBadRequest).
			Assert(jsonpath.Equal("$.error.message", "Invalid status")).
			End()

		// The rejected update left the record untouched.
		apitest.New().
			Handler(env.router).
			Get("/api/tasks/"+task.ID.String()).
			Header("Authorization", token).
			Expect(t).
			Status(http.StatusOK).
			Assert(jsonpath.Equal("$.data.title", "original")).
			Assert(jsonpath.Equal("$.data.status", "in_progress")).
			End()
	})

	t.Run("unknown_task", func(t *testing.T) {
		apitest.New().
			Handler(env.router).
			Put("/api/tasks/01ARZ3NDEKTSV4RRFFQ69G5FAV").
			Header("Authorization", token).
			JSON(`{"title":"x"}`).
			Expect(t).
			Status(http.StatusNotFound).
			Assert(jsonpath.Equal("$.error.message", "Task not found")).
			End()
	})
}

func TestDeleteTaskEndpoint(t *testing.T) {
	env := newTestEnv(t)
	jane, token := env.registerUser(t, "jane@x.com")
	task := env.createTask(t, jane, "doomed")

	apitest.New().
		Handler(env.router).
		Delete("/api/tasks/"+task.ID.String()).
		Header("Authorization", token).
		Expect(t).
		Status(http.StatusOK).
		Assert(jsonpath.Equal("$.success", true)).
		Assert(jsonpath.Equal("$.message", "Task deleted successfully")).
		End()

	// A second delete finds nothing.
	apitest.New().
		Handler(env.router).
		Delete("/api/tasks/"+task.ID.String()).
		Header("Authorization", token).
		Expect(t).
		Status(http.StatusNotFound).
		Assert(jsonpath.Equal("$.error.message", "Task not found")).
		End()
}

func TestTaskEndpointsRequireAuth(t *testing.T) {
	env := newTestEnv(t)

	apitest.New().
		Handler(env.router).
		Post("/api/tasks").
		JSON(`{"title":"x","description":"y"}`).
		Expect(t).
		Status(http.StatusUnauthorized).
		Assert(jsonpath.Equal("$.error.message", "Access denied. No token provided.")).
		End()

	apitest.New().
		Handler(env.router).
		Get("/api/tasks").
		Expect(t).
		Status(http.StatusUnauthorized).
		Assert(jsonpath.Equal("$.error.message", "Access denied. No token provided.")).
		End()
}
