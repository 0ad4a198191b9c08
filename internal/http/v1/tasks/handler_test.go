package tasks

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	_ "github.com/danielgtaylor/huma/v2/formats/cbor"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	applog "github.com/faang-dcc/validator-api/internal/platform/logging"
	appmiddleware "github.com/faang-dcc/validator-api/internal/platform/middleware"
	"github.com/faang-dcc/validator-api/internal/platform/respond"
	"github.com/faang-dcc/validator-api/internal/service/biosamples"
	"github.com/faang-dcc/validator-api/internal/service/ontology"
	taskssvc "github.com/faang-dcc/validator-api/internal/service/tasks"
	enginepkg "github.com/faang-dcc/validator-api/internal/validation"
)

func newTestRouter() (chi.Router, *taskssvc.MockTaskService, *taskssvc.Runner) {
	respond.Install()

	onto := ontology.NewMockService()
	onto.Add("OBI:0100026", "organism", "obi")
	onto.Add("NCBITaxon:9913", "Bos taurus", "ncbitaxon")
	onto.Add("PATO:0000384", "male", "pato")
	engine := enginepkg.NewEngine(onto, biosamples.NewMockService())

	svc := taskssvc.NewMockTaskService()
	runner := taskssvc.NewRunner(svc, engine, nil)

	router := chi.NewRouter()
	router.Use(
		appmiddleware.RequestID(),
		chimiddleware.RealIP,
		applog.RequestLogger(),
		respond.Recoverer(),
	)
	cfg := huma.DefaultConfig("TasksTest", "test")
	cfg.CreateHooks = nil
	api := humachi.New(router, cfg)
	Register(api, svc, runner, "")
	return router, svc, runner
}

const organismBatch = `{
	"organism": [{
		"Sample Name": "ORG1",
		"Material": "organism",
		"Term Source ID": "OBI:0100026",
		"Project": "FAANG",
		"Organism": "Bos taurus",
		"Organism Term Source ID": "NCBITaxon:9913",
		"Sex": "male",
		"Sex Term Source ID": "PATO:0000384"
	}]
}`

func TestCreateTaskAccepted(t *testing.T) {
	router, _, runner := newTestRouter()

	req := httptest.NewRequest(http.MethodPost, "/v1/validation/tasks", strings.NewReader(organismBatch))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(chimiddleware.RequestIDHeader, "tasks-create")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	runner.Wait()

	if resp.Code != http.StatusAccepted {
		t.Fatalf("expected 202, got %d: %s", resp.Code, resp.Body.String())
	}

	var task Task
	if err := json.Unmarshal(resp.Body.Bytes(), &task); err != nil {
		t.Fatalf("json unmarshal: %v", err)
	}
	if task.ID == "" {
		t.Fatal("expected a task ID")
	}
	if task.Status != string(taskssvc.StatusPending) {
		t.Errorf("expected pending, got %s", task.Status)
	}
	if task.Submitted["organism"] != 1 {
		t.Errorf("expected 1 submitted organism, got %+v", task.Submitted)
	}

	want := "/v1/validation/tasks/" + task.ID
	if loc := resp.Header().Get("Location"); loc != want {
		t.Errorf("expected Location %s, got %s", want, loc)
	}
}

func TestCreateTaskEmptyBody(t *testing.T) {
	router, _, _ := newTestRouter()

	req := httptest.NewRequest(http.MethodPost, "/v1/validation/tasks", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(chimiddleware.RequestIDHeader, "tasks-create-empty")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d: %s", resp.Code, resp.Body.String())
	}
}

func TestGetTaskCompleted(t *testing.T) {
	router, _, runner := newTestRouter()

	req := httptest.NewRequest(http.MethodPost, "/v1/validation/tasks", strings.NewReader(organismBatch))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(chimiddleware.RequestIDHeader, "tasks-get-create")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusAccepted {
		t.Fatalf("expected 202, got %d", resp.Code)
	}

	var created Task
	if err := json.Unmarshal(resp.Body.Bytes(), &created); err != nil {
		t.Fatalf("json unmarshal: %v", err)
	}

	runner.Wait()

	req = httptest.NewRequest(http.MethodGet, "/v1/validation/tasks/"+created.ID, nil)
	req.Header.Set(chimiddleware.RequestIDHeader, "tasks-get")
	resp = httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.Code, resp.Body.String())
	}

	var task Task
	if err := json.Unmarshal(resp.Body.Bytes(), &task); err != nil {
		t.Fatalf("json unmarshal: %v", err)
	}
	if task.Status != string(taskssvc.StatusCompleted) {
		t.Fatalf("expected completed, got %s", task.Status)
	}
	if task.Result == nil {
		t.Fatal("expected a result on the completed task")
	}
	if task.Result.Summary.Valid != 1 {
		t.Errorf("expected 1 valid record, got %+v", task.Result.Summary)
	}
}

func TestGetTaskNotFound(t *testing.T) {
	router, _, _ := newTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/v1/validation/tasks/1b671a64-40d5-491e-99b0-da01ff1f3341", nil)
	req.Header.Set(chimiddleware.RequestIDHeader, "tasks-get-404")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d: %s", resp.Code, resp.Body.String())
	}

	var env struct {
		Error *struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &env); err != nil {
		t.Fatalf("json unmarshal: %v", err)
	}
	if env.Error == nil || env.Error.Code != "NOT_FOUND" {
		t.Errorf("expected NOT_FOUND error, got %+v", env.Error)
	}
}

func TestListTasksPaginated(t *testing.T) {
	router, svc, _ := newTestRouter()

	for range 3 {
		if _, err := svc.Create(context.Background(), map[string]int{"organism": 1}); err != nil {
			t.Fatalf("seed task: %v", err)
		}
	}

	req := httptest.NewRequest(http.MethodGet, "/v1/validation/tasks?limit=2", nil)
	req.Header.Set(chimiddleware.RequestIDHeader, "tasks-list-1")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.Code, resp.Body.String())
	}

	var page ListData
	if err := json.Unmarshal(resp.Body.Bytes(), &page); err != nil {
		t.Fatalf("json unmarshal: %v", err)
	}
	if len(page.Tasks) != 2 {
		t.Fatalf("expected 2 tasks, got %d", len(page.Tasks))
	}
	if page.NextCursor == "" {
		t.Fatal("expected a next cursor")
	}
	if link := resp.Header().Get("Link"); !strings.Contains(link, `rel="next"`) {
		t.Errorf("expected next Link header, got %q", link)
	}

	req = httptest.NewRequest(http.MethodGet, "/v1/validation/tasks?limit=2&cursor="+page.NextCursor, nil)
	req.Header.Set(chimiddleware.RequestIDHeader, "tasks-list-2")
	resp = httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.Code, resp.Body.String())
	}
	var rest ListData
	if err := json.Unmarshal(resp.Body.Bytes(), &rest); err != nil {
		t.Fatalf("json unmarshal: %v", err)
	}
	if len(rest.Tasks) != 1 {
		t.Fatalf("expected 1 task on second page, got %d", len(rest.Tasks))
	}
	if rest.NextCursor != "" {
		t.Errorf("expected no next cursor, got %q", rest.NextCursor)
	}
}

func TestListTasksInvalidCursor(t *testing.T) {
	router, _, _ := newTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/v1/validation/tasks?cursor=%25%25", nil)
	req.Header.Set(chimiddleware.RequestIDHeader, "tasks-list-bad-cursor")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", resp.Code, resp.Body.String())
	}
}
