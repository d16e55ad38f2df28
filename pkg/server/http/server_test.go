package http_server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/skillwaves/skillwaves-server/config"
	"github.com/skillwaves/skillwaves-server/internal/handler"
	"github.com/skillwaves/skillwaves-server/internal/model"
	"github.com/skillwaves/skillwaves-server/internal/model/response"
	"github.com/skillwaves/skillwaves-server/internal/store"
	"github.com/skillwaves/skillwaves-server/internal/token"
	"github.com/skillwaves/skillwaves-server/pkg/cache"
)

func init() {
	gin.SetMode(gin.TestMode)
}

const (
	testSecret = "server-test-secret"
	testJobID  = "0123456789abcdef01234567"
	testBidID  = "76543210fedcba9876543210"
)

// fakeJobStore records calls so tests can assert which store operations ran.
type fakeJobStore struct {
	jobsByID map[string]model.Job
	all      []model.Job

	listCalls           int
	lastFilter          store.JobFilter
	listByEmployerCalls int
	lastEmployer        string
	lastReplaceID       string
	lastReplace         model.Job
	deleteCount         int64
}

func (f *fakeJobStore) GetByID(_ context.Context, id string) (*model.Job, error) {
	job, ok := f.jobsByID[id]
	if !ok {
		return nil, nil
	}
	return &job, nil
}

func (f *fakeJobStore) List(_ context.Context, filter store.JobFilter) ([]model.Job, error) {
	f.listCalls++
	f.lastFilter = filter
	if filter.Category == "" {
		return f.all, nil
	}
	matched := []model.Job{}
	for _, job := range f.all {
		if job.Category == filter.Category {
			matched = append(matched, job)
		}
	}
	return matched, nil
}

func (f *fakeJobStore) ListByEmployer(_ context.Context, email string) ([]model.Job, error) {
	f.listByEmployerCalls++
	f.lastEmployer = email
	matched := []model.Job{}
	for _, job := range f.all {
		if job.EmployerEmail == email {
			matched = append(matched, job)
		}
	}
	return matched, nil
}

func (f *fakeJobStore) Create(_ context.Context, job model.Job) (response.InsertResult, error) {
	if f.jobsByID == nil {
		f.jobsByID = map[string]model.Job{}
	}
	f.jobsByID[testJobID] = job
	return response.InsertResult{InsertedID: testJobID, Acknowledged: true}, nil
}

func (f *fakeJobStore) Replace(_ context.Context, id string, job model.Job) (response.UpdateResult, error) {
	f.lastReplaceID = id
	f.lastReplace = job
	if _, ok := f.jobsByID[id]; !ok {
		return response.UpdateResult{}, nil
	}
	return response.UpdateResult{MatchedCount: 1, ModifiedCount: 1}, nil
}

func (f *fakeJobStore) Delete(_ context.Context, id string) (response.DeleteResult, error) {
	if _, ok := f.jobsByID[id]; !ok {
		return response.DeleteResult{DeletedCount: 0}, nil
	}
	delete(f.jobsByID, id)
	f.deleteCount++
	return response.DeleteResult{DeletedCount: 1}, nil
}

type fakeBidStore struct {
	bids []model.Bid

	lastFilter     store.BidFilter
	lastPatchID    string
	lastPatchValue string
}

func (f *fakeBidStore) List(_ context.Context, filter store.BidFilter) ([]model.Bid, error) {
	f.lastFilter = filter
	matched := []model.Bid{}
	for _, bid := range f.bids {
		if filter.EmployeeEmail != "" && bid.EmployeeEmail != filter.EmployeeEmail {
			continue
		}
		if filter.JobOwnerEmail != "" && bid.JobOwnerEmail != filter.JobOwnerEmail {
			continue
		}
		matched = append(matched, bid)
	}
	return matched, nil
}

func (f *fakeBidStore) Create(_ context.Context, bid model.Bid) (response.InsertResult, error) {
	f.bids = append(f.bids, bid)
	return response.InsertResult{InsertedID: testBidID, Acknowledged: true}, nil
}

func (f *fakeBidStore) PatchStatus(_ context.Context, id, status string) (response.UpdateResult, error) {
	f.lastPatchID = id
	f.lastPatchValue = status
	return response.UpdateResult{MatchedCount: 1, ModifiedCount: 1}, nil
}

func testEnv() *config.Env {
	return &config.Env{
		AppConfig: config.AppConfig{
			Name:        "skillwaves-server",
			Environment: "test",
			PathPrefix:  "/api",
		},
		AuthConfig: config.AuthConfig{
			Secret:          testSecret,
			TokenTTLMinutes: 60,
			CookieName:      "token",
			CookieMaxAge:    86400,
		},
	}
}

func newTestServer(jobs store.JobStore, bids store.BidStore, listCache cache.Cache, opts ...Option) (*Server, *token.Codec) {
	env := testEnv()
	codec := token.NewCodec([]byte(env.AuthConfig.Secret), time.Hour)
	handlers := Handlers{
		Job:  handler.NewJobHandler(jobs, listCache),
		Bid:  handler.NewBidHandler(bids),
		User: handler.NewUserHandler(codec, env.AuthConfig),
	}
	return New(env, codec, handlers, opts...), codec
}

func authCookie(t *testing.T, codec *token.Codec, email string) *http.Cookie {
	t.Helper()
	signed, err := codec.Issue(email)
	if err != nil {
		t.Fatalf("Issue() error: %v", err)
	}
	return &http.Cookie{Name: "token", Value: signed}
}

func decodeEnvelope(t *testing.T, body string) response.ResponseData {
	t.Helper()
	var res response.ResponseData
	if err := json.Unmarshal([]byte(body), &res); err != nil {
		t.Fatalf("decode envelope: %v (body %s)", err, body)
	}
	return res
}

func TestLiveness(t *testing.T) {
	t.Parallel()

	srv, _ := newTestServer(&fakeJobStore{}, &fakeBidStore{}, nil)

	w := httptest.NewRecorder()
	srv.App.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	if w.Code != http.StatusOK {
		t.Errorf("status = %d, want %d", w.Code, http.StatusOK)
	}
	if got := w.Body.String(); got != "skill waves server is running well" {
		t.Errorf("body = %q", got)
	}

	w = httptest.NewRecorder()
	srv.App.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	if w.Code != http.StatusOK {
		t.Errorf("health status = %d, want %d", w.Code, http.StatusOK)
	}
}

func TestHealthCheck(t *testing.T) {
	t.Parallel()

	t.Run("healthy upstream probe reports ok", func(t *testing.T) {
		t.Parallel()

		probed := false
		srv, _ := newTestServer(&fakeJobStore{}, &fakeBidStore{}, nil,
			HealthCheck(func(context.Context) error {
				probed = true
				return nil
			}))

		w := httptest.NewRecorder()
		srv.App.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

		if w.Code != http.StatusOK {
			t.Errorf("status = %d, want %d", w.Code, http.StatusOK)
		}
		if !probed {
			t.Error("health endpoint did not consult the upstream probe")
		}
	})

	t.Run("failing upstream probe is a 503", func(t *testing.T) {
		t.Parallel()

		srv, _ := newTestServer(&fakeJobStore{}, &fakeBidStore{}, nil,
			HealthCheck(func(context.Context) error {
				return errors.New("primary unreachable")
			}))

		w := httptest.NewRecorder()
		srv.App.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

		if w.Code != http.StatusServiceUnavailable {
			t.Errorf("status = %d, want %d", w.Code, http.StatusServiceUnavailable)
		}
		var body map[string]string
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("decode body: %v", err)
		}
		if body["status"] != "unavailable" {
			t.Errorf("status field = %q, want %q", body["status"], "unavailable")
		}
	})
}

func TestAccessTokenLifecycle(t *testing.T) {
	t.Parallel()

	jobs := &fakeJobStore{jobsByID: map[string]model.Job{
		testJobID: {JobTitle: "build a landing page"},
	}}
	srv, _ := newTestServer(jobs, &fakeBidStore{}, nil)

	// Login sets the token cookie.
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/user/access-token",
		strings.NewReader(`{"email":"a@b.com"}`))
	req.Header.Set("Content-Type", "application/json")
	srv.App.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("access-token status = %d, body %s", w.Code, w.Body.String())
	}
	var status response.TokenStatus
	if err := json.Unmarshal(w.Body.Bytes(), &status); err != nil || !status.Status {
		t.Fatalf("access-token body = %s, want {\"status\":true}", w.Body.String())
	}

	cookies := w.Result().Cookies()
	if len(cookies) != 1 {
		t.Fatalf("got %d cookies, want 1", len(cookies))
	}
	cookie := cookies[0]
	if cookie.Name != "token" || cookie.Value == "" {
		t.Fatalf("cookie = %+v", cookie)
	}
	if !cookie.HttpOnly || !cookie.Secure || cookie.SameSite != http.SameSiteNoneMode {
		t.Errorf("cookie attributes = httpOnly:%v secure:%v sameSite:%v", cookie.HttpOnly, cookie.Secure, cookie.SameSite)
	}
	if cookie.MaxAge != 86400 {
		t.Errorf("cookie MaxAge = %d, want 86400", cookie.MaxAge)
	}

	// The cookie authenticates a protected read.
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/api/v1/job/"+testJobID, nil)
	req.AddCookie(&http.Cookie{Name: cookie.Name, Value: cookie.Value})
	srv.App.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("authed get status = %d, body %s", w.Code, w.Body.String())
	}

	// Logout clears the cookie.
	w = httptest.NewRecorder()
	srv.App.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/v1/user/delete-token", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("delete-token status = %d", w.Code)
	}
	cleared := w.Result().Cookies()
	if len(cleared) != 1 || cleared[0].MaxAge >= 0 || cleared[0].Value != "" {
		t.Errorf("cleared cookie = %+v, want empty value with negative MaxAge", cleared[0])
	}

	// Without the cookie the same read is rejected.
	w = httptest.NewRecorder()
	srv.App.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/job/"+testJobID, nil))
	if w.Code != http.StatusUnauthorized {
		t.Errorf("unauthenticated get status = %d, want %d", w.Code, http.StatusUnauthorized)
	}
}

func TestGetJob(t *testing.T) {
	t.Parallel()

	jobs := &fakeJobStore{jobsByID: map[string]model.Job{
		testJobID: {JobTitle: "api integration", Category: "web"},
	}}
	srv, codec := newTestServer(jobs, &fakeBidStore{}, nil)

	t.Run("existing job is returned", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/job/"+testJobID, nil)
		req.AddCookie(authCookie(t, codec, "a@b.com"))
		srv.App.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
		}
		res := decodeEnvelope(t, w.Body.String())
		data, _ := json.Marshal(res.Data)
		var job model.Job
		if err := json.Unmarshal(data, &job); err != nil {
			t.Fatalf("decode job: %v", err)
		}
		if job.JobTitle != "api integration" {
			t.Errorf("job title = %q", job.JobTitle)
		}
	})

	t.Run("missing job is 200 with null data", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/job/ffffffffffffffffffffffff", nil)
		req.AddCookie(authCookie(t, codec, "a@b.com"))
		srv.App.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("status = %d", w.Code)
		}
		if res := decodeEnvelope(t, w.Body.String()); res.Data != nil {
			t.Errorf("data = %v, want null", res.Data)
		}
	})

	t.Run("malformed id is a 400", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/job/not-hex", nil)
		req.AddCookie(authCookie(t, codec, "a@b.com"))
		srv.App.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want %d", w.Code, http.StatusBadRequest)
		}
	})
}

func TestListJobs(t *testing.T) {
	t.Parallel()

	all := []model.Job{
		{JobTitle: "logo design", Category: "design", EmployerEmail: "x@y.com"},
		{JobTitle: "api work", Category: "web", EmployerEmail: "a@b.com"},
		{JobTitle: "landing page", Category: "web", EmployerEmail: "a@b.com"},
	}

	t.Run("empty filter returns every job", func(t *testing.T) {
		t.Parallel()

		srv, _ := newTestServer(&fakeJobStore{all: all}, &fakeBidStore{}, nil)
		w := httptest.NewRecorder()
		srv.App.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/jobs", nil))

		if w.Code != http.StatusOK {
			t.Fatalf("status = %d", w.Code)
		}
		res := decodeEnvelope(t, w.Body.String())
		if res.Total == nil || *res.Total != len(all) {
			t.Errorf("total = %v, want %d", res.Total, len(all))
		}
		if w.Header().Get("ETag") == "" {
			t.Error("ETag header missing on list response")
		}
	})

	t.Run("category filter narrows the result", func(t *testing.T) {
		t.Parallel()

		jobs := &fakeJobStore{all: all}
		srv, _ := newTestServer(jobs, &fakeBidStore{}, nil)
		w := httptest.NewRecorder()
		srv.App.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/jobs?category=web", nil))

		res := decodeEnvelope(t, w.Body.String())
		if res.Total == nil || *res.Total != 2 {
			t.Errorf("total = %v, want 2", res.Total)
		}
		if jobs.lastFilter.Category != "web" {
			t.Errorf("filter category = %q, want %q", jobs.lastFilter.Category, "web")
		}
	})

	t.Run("second read within the TTL is served from cache", func(t *testing.T) {
		t.Parallel()

		jobs := &fakeJobStore{all: all}
		listCache := cache.NewLRUCache(16, 60)
		defer listCache.Stop()
		srv, _ := newTestServer(jobs, &fakeBidStore{}, listCache)

		for range 2 {
			w := httptest.NewRecorder()
			srv.App.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/jobs", nil))
			if w.Code != http.StatusOK {
				t.Fatalf("status = %d", w.Code)
			}
		}
		if jobs.listCalls != 1 {
			t.Errorf("store List calls = %d, want 1", jobs.listCalls)
		}
	})

	t.Run("a write invalidates the cached list", func(t *testing.T) {
		t.Parallel()

		jobs := &fakeJobStore{all: all}
		listCache := cache.NewLRUCache(16, 60)
		defer listCache.Stop()
		srv, _ := newTestServer(jobs, &fakeBidStore{}, listCache)

		w := httptest.NewRecorder()
		srv.App.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/jobs", nil))

		body := `{"employer_email":"a@b.com","job_title":"t","job_deadline":"2026-01-01","category":"web"}`
		w = httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/job/create-job", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		srv.App.ServeHTTP(w, req)
		if w.Code != http.StatusOK {
			t.Fatalf("create status = %d, body %s", w.Code, w.Body.String())
		}

		w = httptest.NewRecorder()
		srv.App.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/jobs", nil))
		if jobs.listCalls != 2 {
			t.Errorf("store List calls = %d, want 2 after invalidation", jobs.listCalls)
		}
	})
}

func TestListPostedJobs(t *testing.T) {
	t.Parallel()

	all := []model.Job{
		{JobTitle: "api work", Category: "web", EmployerEmail: "a@b.com"},
		{JobTitle: "logo", Category: "design", EmployerEmail: "x@y.com"},
	}

	t.Run("email mismatch is 403 and hits no store call", func(t *testing.T) {
		t.Parallel()

		jobs := &fakeJobStore{all: all}
		srv, codec := newTestServer(jobs, &fakeBidStore{}, nil)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/jobs/posted-jobs?user-email=x@y.com", nil)
		req.AddCookie(authCookie(t, codec, "a@b.com"))
		srv.App.ServeHTTP(w, req)

		if w.Code != http.StatusForbidden {
			t.Errorf("status = %d, want %d", w.Code, http.StatusForbidden)
		}
		if jobs.listByEmployerCalls != 0 {
			t.Errorf("store calls = %d, want 0", jobs.listByEmployerCalls)
		}
	})

	t.Run("matching email lists the employer's postings", func(t *testing.T) {
		t.Parallel()

		jobs := &fakeJobStore{all: all}
		srv, codec := newTestServer(jobs, &fakeBidStore{}, nil)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/jobs/posted-jobs?user-email=a@b.com", nil)
		req.AddCookie(authCookie(t, codec, "a@b.com"))
		srv.App.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
		}
		res := decodeEnvelope(t, w.Body.String())
		if res.Total == nil || *res.Total != 1 {
			t.Errorf("total = %v, want 1", res.Total)
		}
		if jobs.lastEmployer != "a@b.com" {
			t.Errorf("employer filter = %q", jobs.lastEmployer)
		}
	})

	t.Run("without a cookie the route is 401", func(t *testing.T) {
		t.Parallel()

		srv, _ := newTestServer(&fakeJobStore{all: all}, &fakeBidStore{}, nil)
		w := httptest.NewRecorder()
		srv.App.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/jobs/posted-jobs?user-email=a@b.com", nil))
		if w.Code != http.StatusUnauthorized {
			t.Errorf("status = %d, want %d", w.Code, http.StatusUnauthorized)
		}
	})
}

func TestCreateAndUpdateJob(t *testing.T) {
	t.Parallel()

	t.Run("create then get returns the same whitelisted fields", func(t *testing.T) {
		t.Parallel()

		jobs := &fakeJobStore{}
		srv, codec := newTestServer(jobs, &fakeBidStore{}, nil)

		body := `{"employer_email":"a@b.com","job_title":"api work","job_deadline":"2026-02-01",` +
			`"category":"web","min_price":100,"max_price":500,"description":"REST endpoints"}`
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/job/create-job", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		srv.App.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("create status = %d, body %s", w.Code, w.Body.String())
		}
		res := decodeEnvelope(t, w.Body.String())
		data, _ := json.Marshal(res.Data)
		var insert response.InsertResult
		if err := json.Unmarshal(data, &insert); err != nil {
			t.Fatalf("decode insert result: %v", err)
		}
		if insert.InsertedID == "" || !insert.Acknowledged {
			t.Fatalf("insert result = %+v", insert)
		}

		w = httptest.NewRecorder()
		req = httptest.NewRequest(http.MethodGet, "/api/v1/job/"+insert.InsertedID, nil)
		req.AddCookie(authCookie(t, codec, "a@b.com"))
		srv.App.ServeHTTP(w, req)

		res = decodeEnvelope(t, w.Body.String())
		data, _ = json.Marshal(res.Data)
		var job model.Job
		if err := json.Unmarshal(data, &job); err != nil {
			t.Fatalf("decode job: %v", err)
		}
		want := model.Job{
			EmployerEmail: "a@b.com",
			JobTitle:      "api work",
			JobDeadline:   "2026-02-01",
			Category:      "web",
			MinPrice:      100,
			MaxPrice:      500,
			Description:   "REST endpoints",
		}
		if job != want {
			t.Errorf("job = %+v, want %+v", job, want)
		}
	})

	t.Run("create without required fields is a 400", func(t *testing.T) {
		t.Parallel()

		srv, _ := newTestServer(&fakeJobStore{}, &fakeBidStore{}, nil)
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/job/create-job",
			strings.NewReader(`{"job_title":"no email"}`))
		req.Header.Set("Content-Type", "application/json")
		srv.App.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want %d", w.Code, http.StatusBadRequest)
		}
	})

	t.Run("update passes only whitelisted fields to the store", func(t *testing.T) {
		t.Parallel()

		jobs := &fakeJobStore{jobsByID: map[string]model.Job{testJobID: {JobTitle: "old"}}}
		srv, _ := newTestServer(jobs, &fakeBidStore{}, nil)

		// The _id and an unknown field ride along in the payload; neither may
		// reach the store.
		body := `{"_id":"` + testJobID + `","employer_email":"a@b.com","job_title":"new title",` +
			`"job_deadline":"2026-03-01","category":"web","min_price":1,"max_price":2,` +
			`"description":"d","sneaky_extra":"ignored"}`
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPut, "/api/v1/job/update-job/"+testJobID, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		srv.App.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
		}
		if jobs.lastReplaceID != testJobID {
			t.Errorf("replace id = %q", jobs.lastReplaceID)
		}
		want := model.Job{
			EmployerEmail: "a@b.com",
			JobTitle:      "new title",
			JobDeadline:   "2026-03-01",
			Category:      "web",
			MinPrice:      1,
			MaxPrice:      2,
			Description:   "d",
		}
		if jobs.lastReplace != want {
			t.Errorf("replaced fields = %+v, want %+v", jobs.lastReplace, want)
		}

		res := decodeEnvelope(t, w.Body.String())
		data, _ := json.Marshal(res.Data)
		var update response.UpdateResult
		if err := json.Unmarshal(data, &update); err != nil {
			t.Fatalf("decode update result: %v", err)
		}
		if update.MatchedCount != 1 || update.ModifiedCount != 1 {
			t.Errorf("update result = %+v", update)
		}
	})
}

func TestDeleteJob(t *testing.T) {
	t.Parallel()

	t.Run("deleting a missing job is a zero-count success", func(t *testing.T) {
		t.Parallel()

		srv, _ := newTestServer(&fakeJobStore{}, &fakeBidStore{}, nil)
		w := httptest.NewRecorder()
		srv.App.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/api/v1/job/delete-job/"+testJobID, nil))

		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
		}
		res := decodeEnvelope(t, w.Body.String())
		data, _ := json.Marshal(res.Data)
		var del response.DeleteResult
		if err := json.Unmarshal(data, &del); err != nil {
			t.Fatalf("decode delete result: %v", err)
		}
		if del.DeletedCount != 0 {
			t.Errorf("deleted count = %d, want 0", del.DeletedCount)
		}
	})

	t.Run("deleting an existing job reports one removal", func(t *testing.T) {
		t.Parallel()

		jobs := &fakeJobStore{jobsByID: map[string]model.Job{testJobID: {JobTitle: "gone"}}}
		srv, _ := newTestServer(jobs, &fakeBidStore{}, nil)
		w := httptest.NewRecorder()
		srv.App.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/api/v1/job/delete-job/"+testJobID, nil))

		res := decodeEnvelope(t, w.Body.String())
		data, _ := json.Marshal(res.Data)
		var del response.DeleteResult
		if err := json.Unmarshal(data, &del); err != nil {
			t.Fatalf("decode delete result: %v", err)
		}
		if del.DeletedCount != 1 {
			t.Errorf("deleted count = %d, want 1", del.DeletedCount)
		}
	})
}

func TestBidRoutes(t *testing.T) {
	t.Parallel()

	bids := []model.Bid{
		{EmployeeEmail: "e1@b.com", JobOwnerEmail: "o1@b.com", Status: model.BidStatusPending},
		{EmployeeEmail: "e2@b.com", JobOwnerEmail: "o1@b.com", Status: model.BidStatusPending},
		{EmployeeEmail: "e1@b.com", JobOwnerEmail: "o2@b.com", Status: model.BidStatusAccepted},
	}

	t.Run("bid listing requires the cookie", func(t *testing.T) {
		t.Parallel()

		srv, _ := newTestServer(&fakeJobStore{}, &fakeBidStore{bids: bids}, nil)
		w := httptest.NewRecorder()
		srv.App.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/bid/all", nil))
		if w.Code != http.StatusUnauthorized {
			t.Errorf("status = %d, want %d", w.Code, http.StatusUnauthorized)
		}
	})

	t.Run("both filters narrow to the conjunction", func(t *testing.T) {
		t.Parallel()

		bidStore := &fakeBidStore{bids: bids}
		srv, codec := newTestServer(&fakeJobStore{}, bidStore, nil)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet,
			"/api/v1/bid/all?user-email=e1@b.com&employer-email=o1@b.com", nil)
		req.AddCookie(authCookie(t, codec, "e1@b.com"))
		srv.App.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
		}
		res := decodeEnvelope(t, w.Body.String())
		if res.Total == nil || *res.Total != 1 {
			t.Errorf("total = %v, want 1", res.Total)
		}
		want := store.BidFilter{EmployeeEmail: "e1@b.com", JobOwnerEmail: "o1@b.com"}
		if bidStore.lastFilter != want {
			t.Errorf("filter = %+v, want %+v", bidStore.lastFilter, want)
		}
	})

	t.Run("create bid inserts and returns the id", func(t *testing.T) {
		t.Parallel()

		bidStore := &fakeBidStore{}
		srv, _ := newTestServer(&fakeJobStore{}, bidStore, nil)

		body := `{"employee_email":"e1@b.com","job_owner_email":"o1@b.com","status":"pending","price":150}`
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/job/bid-job", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		srv.App.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
		}
		if len(bidStore.bids) != 1 || bidStore.bids[0].Price != 150 {
			t.Errorf("stored bids = %+v", bidStore.bids)
		}
	})

	t.Run("status patch reaches only the status field", func(t *testing.T) {
		t.Parallel()

		bidStore := &fakeBidStore{}
		srv, _ := newTestServer(&fakeJobStore{}, bidStore, nil)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPatch, "/api/v1/bid/update-specific/"+testBidID,
			strings.NewReader(`{"status":"accepted"}`))
		req.Header.Set("Content-Type", "application/json")
		srv.App.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
		}
		if bidStore.lastPatchID != testBidID || bidStore.lastPatchValue != "accepted" {
			t.Errorf("patch = (%q, %q)", bidStore.lastPatchID, bidStore.lastPatchValue)
		}
	})

	t.Run("unknown status value is a 400", func(t *testing.T) {
		t.Parallel()

		srv, _ := newTestServer(&fakeJobStore{}, &fakeBidStore{}, nil)
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPatch, "/api/v1/bid/update-specific/"+testBidID,
			strings.NewReader(`{"status":"maybe"}`))
		req.Header.Set("Content-Type", "application/json")
		srv.App.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want %d", w.Code, http.StatusBadRequest)
		}
	})
}
