package client

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/idilsaglam/taskboard/internal/config"
	"github.com/idilsaglam/taskboard/internal/model"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func newServer(t *testing.T, h http.HandlerFunc) (*httptest.Server, *Client) {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	c := New(config.RemoteConfig{BaseURL: srv.URL, ResourcePath: "Tasks"}, zap.NewNop(), WithHTTPClient(srv.Client()))
	return srv, c
}

func TestFetchAll(t *testing.T) {
	var gotPath, gotAuth, gotQuery string
	_, c := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath, gotAuth, gotQuery = r.URL.Path, r.Header.Get("Authorization"), r.URL.RawQuery
		assert.Equal(t, http.MethodGet, r.Method)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{"id": "1", "title": "Write report", "description": "", "status": "To Do", "priority": "High", "category": "Work", "dueDate": ""},
			{"id": 2, "title": "Gym", "status": "Completed", "priority": "Low", "category": "Health", "dueDate": "2025-02-10T00:00:00"}
		]`))
	})

	tasks, err := c.FetchAll(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "/Tasks", gotPath)
	assert.Empty(t, gotAuth, "no credentials are sent")
	assert.Empty(t, gotQuery)
	assert.Equal(t, []model.Task{
		{ID: "1", Title: "Write report", Status: model.StatusTodo, Priority: model.PriorityHigh, Category: "Work"},
		{ID: "2", Title: "Gym", Status: model.StatusCompleted, Priority: model.PriorityLow, Category: "Health", DueDate: "2025-02-10"},
	}, tasks)
}

func TestFetchAll_Errors(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
		check   func(t *testing.T, err error)
	}{
		{
			name: "server error",
			handler: func(w http.ResponseWriter, r *http.Request) {
				http.Error(w, "boom", http.StatusInternalServerError)
			},
			check: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, ErrUnexpectedStatus)
				assert.ErrorContains(t, err, "500")
			},
		},
		{
			name: "not found",
			handler: func(w http.ResponseWriter, r *http.Request) {
				http.NotFound(w, r)
			},
			check: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, ErrUnexpectedStatus)
			},
		},
		{
			name: "malformed body",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`{"tasks": [`))
			},
			check: func(t *testing.T, err error) {
				assert.ErrorContains(t, err, "decode tasks")
			},
		},
		{
			name: "unknown status value",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`[{"id": "1", "status": "Archived"}]`))
			},
			check: func(t *testing.T, err error) {
				assert.ErrorContains(t, err, "unknown status")
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, c := newServer(t, tt.handler)
			tasks, err := c.FetchAll(context.Background())
			require.Error(t, err)
			assert.Nil(t, tasks)
			tt.check(t, err)
		})
	}
}

func TestFetchAll_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	c := New(config.RemoteConfig{BaseURL: url, ResourcePath: "Tasks"}, nil)
	_, err := c.FetchAll(context.Background())
	assert.ErrorContains(t, err, "fetch tasks")
}

func TestNew_URL(t *testing.T) {
	c := New(config.RemoteConfig{BaseURL: "https://localhost:44309/", ResourcePath: "Tasks", InsecureTLS: true}, nil)
	assert.Equal(t, "https://localhost:44309/Tasks", c.URL())
}

type stubSource struct {
	tasks []model.Task
	err   error
}

func (s stubSource) FetchAll(context.Context) ([]model.Task, error) { return s.tasks, s.err }

func TestLoad_SwallowsFailure(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	res := Load(context.Background(), stubSource{err: errors.New("network unreachable")}, zap.New(core))

	assert.False(t, res.OK())
	assert.NotNil(t, res.Tasks)
	assert.Empty(t, res.Tasks)
	assert.EqualError(t, res.Err, "network unreachable")
	require.Equal(t, 1, logs.Len())
	assert.Equal(t, "task fetch failed, starting empty", logs.All()[0].Message)
}

func TestLoad_Success(t *testing.T) {
	res := Load(context.Background(), stubSource{tasks: []model.Task{{ID: "1"}}}, nil)
	assert.True(t, res.OK())
	assert.Len(t, res.Tasks, 1)

	res = Load(context.Background(), stubSource{}, nil)
	assert.True(t, res.OK())
	assert.NotNil(t, res.Tasks)
}

func TestLoad_AgainstFailingServer(t *testing.T) {
	_, c := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	})
	res := Load(context.Background(), c, nil)
	assert.False(t, res.OK())
	assert.ErrorIs(t, res.Err, ErrUnexpectedStatus)
	assert.Empty(t, res.Tasks)
}
