package router

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/deppfellow/luxury-living/internal/config"
	"github.com/deppfellow/luxury-living/internal/handler"
	"github.com/deppfellow/luxury-living/internal/middleware"
	"github.com/deppfellow/luxury-living/internal/model"
	"github.com/deppfellow/luxury-living/internal/server"
	"github.com/deppfellow/luxury-living/internal/service"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type testApp struct {
	t       *testing.T
	router  *echo.Echo
	db      *memDB
	intents *recordingIntents
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()

	publicDir := t.TempDir()
	if err := os.WriteFile(filepath.Join(publicDir, "robots.txt"), []byte("User-agent: *\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	logger := zerolog.Nop()
	s := &server.Server{
		Config: &config.Config{
			Primary: config.Primary{Env: "test"},
			Server: config.ServerConfig{
				Port:               "0",
				CORSAllowedOrigins: []string{"*"},
				PublicDir:          publicDir,
			},
			Observability: config.DefaultObservabilityConfig(),
		},
		Logger: &logger,
	}

	db := &memDB{}
	intents := &recordingIntents{}
	services := service.New(service.Stores{
		Reviews:  memReviews{db},
		Users:    memUsers{db},
		Services: memServices{db},
		Orders:   memOrders{db},
		Projects: memProjects{db},
		Payments: intents,
	})

	return &testApp{
		t:       t,
		router:  NewRouter(s, handler.NewHandlers(s, services)),
		db:      db,
		intents: intents,
	}
}

func (a *testApp) do(method, target, body string) *httptest.ResponseRecorder {
	a.t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	a.router.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	if err := json.Unmarshal(rec.Body.Bytes(), &v); err != nil {
		t.Fatalf("decode %q: %v", rec.Body.String(), err)
	}
	return v
}

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Status  int    `json:"status"`
	Errors  []struct {
		Field string `json:"field"`
		Error string `json:"error"`
	} `json:"errors"`
}

func expectStatus(t *testing.T, rec *httptest.ResponseRecorder, want int) {
	t.Helper()
	if rec.Code != want {
		t.Fatalf("status = %d, want %d (body %s)", rec.Code, want, rec.Body.String())
	}
}

func TestLivenessNeedsNoStore(t *testing.T) {
	app := newTestApp(t)
	app.db.down = true

	rec := app.do(http.MethodGet, "/", "")
	expectStatus(t, rec, http.StatusOK)
	if rec.Body.String() != handler.LivenessMessage {
		t.Errorf("body = %q", rec.Body.String())
	}
	if rec.Header().Get(middleware.RequestIDHeader) == "" {
		t.Error("missing request id header")
	}
}

func TestReviewsInsertThenList(t *testing.T) {
	app := newTestApp(t)

	rec := app.do(http.MethodPost, "/reviews", `{"name":"Ann","description":"Spotless","rating":5}`)
	expectStatus(t, rec, http.StatusOK)
	ack := decode[model.InsertResult](t, rec)
	if !ack.Acknowledged || !primitive.IsValidObjectID(ack.InsertedID) {
		t.Fatalf("ack = %+v", ack)
	}

	reviews := decode[[]map[string]interface{}](t, app.do(http.MethodGet, "/reviews", ""))
	if len(reviews) != 1 || reviews[0]["_id"] != ack.InsertedID || reviews[0]["description"] != "Spotless" {
		t.Errorf("reviews = %v", reviews)
	}
}

func TestReviewsKeepFreeFormFields(t *testing.T) {
	app := newTestApp(t)

	expectStatus(t, app.do(http.MethodPost, "/reviews", `{"name":"Ann","review":"ok","rating":5}`), http.StatusOK)

	reviews := decode[[]map[string]interface{}](t, app.do(http.MethodGet, "/reviews", ""))
	if len(reviews) != 1 || reviews[0]["review"] != "ok" || reviews[0]["name"] != "Ann" || reviews[0]["rating"] != float64(5) {
		t.Errorf("reviews = %v", reviews)
	}
}

func TestReviewValidation(t *testing.T) {
	app := newTestApp(t)

	rec := app.do(http.MethodPost, "/reviews", `{"name":"Ann","rating":9,"email":"nope"}`)
	expectStatus(t, rec, http.StatusBadRequest)

	body := decode[errorBody](t, rec)
	fields := map[string]bool{}
	for _, fe := range body.Errors {
		fields[fe.Field] = true
	}
	if !fields["email"] || !fields["rating"] {
		t.Errorf("errors = %+v", body.Errors)
	}

	rec = app.do(http.MethodPost, "/reviews", `{"name":`)
	expectStatus(t, rec, http.StatusBadRequest)
}

func TestDuplicateUsersAreAllowed(t *testing.T) {
	app := newTestApp(t)

	for i := 0; i < 2; i++ {
		expectStatus(t, app.do(http.MethodPost, "/users", `{"email":"twin@x.com","displayName":"Twin"}`), http.StatusOK)
	}
	if len(app.db.users) != 2 {
		t.Errorf("users = %d, want 2", len(app.db.users))
	}
}

func TestAdminRoleRoundTrip(t *testing.T) {
	app := newTestApp(t)

	role := decode[model.UserRole](t, app.do(http.MethodGet, "/users/nobody@x.com", ""))
	if role.Admin {
		t.Error("unknown email must not be admin")
	}

	rec := app.do(http.MethodPut, "/users/admin", `{"email":"boss@x.com"}`)
	expectStatus(t, rec, http.StatusOK)
	if ack := decode[model.UpdateResult](t, rec); ack.UpsertedCount != 1 || ack.UpsertedID == nil {
		t.Errorf("ack = %+v", ack)
	}

	role = decode[model.UserRole](t, app.do(http.MethodGet, "/users/boss@x.com", ""))
	if !role.Admin {
		t.Error("expected admin after PUT /users/admin")
	}
}

func TestUpsertUser(t *testing.T) {
	app := newTestApp(t)

	rec := app.do(http.MethodPut, "/users", `{"email":"a@x.com","displayName":"A"}`)
	expectStatus(t, rec, http.StatusOK)
	if ack := decode[model.UpdateResult](t, rec); ack.UpsertedCount != 1 {
		t.Errorf("first upsert = %+v", ack)
	}

	rec = app.do(http.MethodPut, "/users", `{"email":"a@x.com","displayName":"B"}`)
	if ack := decode[model.UpdateResult](t, rec); ack.MatchedCount != 1 || ack.ModifiedCount != 1 || ack.UpsertedID != nil {
		t.Errorf("second upsert = %+v", ack)
	}

	expectStatus(t, app.do(http.MethodPut, "/users", `{"displayName":"no email"}`), http.StatusBadRequest)
}

func TestUpsertUserSetsRole(t *testing.T) {
	app := newTestApp(t)

	rec := app.do(http.MethodPut, "/users", `{"email":"b@x.com","displayName":"Bo","role":"admin"}`)
	expectStatus(t, rec, http.StatusOK)

	role := decode[model.UserRole](t, app.do(http.MethodGet, "/users/b@x.com", ""))
	if !role.Admin {
		t.Error("role from PUT /users body was not stored")
	}
}

func TestOrderListPagination(t *testing.T) {
	app := newTestApp(t)
	for _, name := range []string{"a", "b", "c", "d", "e"} {
		expectStatus(t, app.do(http.MethodPost, "/orderList", `{"email":"c@x.com","name":"`+name+`"}`), http.StatusOK)
	}

	tests := []struct {
		query string
		want  int
	}{
		{"", 5},
		{"?page=0&size=2", 2},
		{"?page=1&size=2", 2},
		{"?page=2&size=2", 1},
		{"?page=3&size=2", 0},
	}
	for _, tt := range tests {
		rec := app.do(http.MethodGet, "/orderList"+tt.query, "")
		expectStatus(t, rec, http.StatusOK)

		page := decode[model.OrderPage](t, rec)
		if page.Count != 5 || len(page.OrderList) != tt.want {
			t.Errorf("%q: count = %d, items = %d, want 5/%d", tt.query, page.Count, len(page.OrderList), tt.want)
		}
	}

	last := decode[model.OrderPage](t, app.do(http.MethodGet, "/orderList?page=2&size=2", ""))
	if last.OrderList[0].Name != "e" || last.OrderList[0].Status != model.OrderStatusPending {
		t.Errorf("last page = %+v", last.OrderList)
	}
}

func TestOrderListRejectsBadPaging(t *testing.T) {
	app := newTestApp(t)

	for _, query := range []string{"?page=1", "?page=1&size=0", "?page=1&size=x", "?page=-1&size=2", "?page=4611686018427387904&size=4"} {
		rec := app.do(http.MethodGet, "/orderList"+query, "")
		if rec.Code != http.StatusBadRequest {
			t.Errorf("%q: status = %d, want 400", query, rec.Code)
		}
	}

	body := decode[errorBody](t, app.do(http.MethodGet, "/orderList?page=1", ""))
	if len(body.Errors) != 1 || body.Errors[0].Field != "size" {
		t.Errorf("errors = %+v", body.Errors)
	}
}

func TestOrdersByEmailUpdateAndDelete(t *testing.T) {
	app := newTestApp(t)

	ack := decode[model.InsertResult](t, app.do(http.MethodPost, "/orderList", `{"email":"mine@x.com","serviceName":"Cleaning","serviceCost":50}`))
	app.do(http.MethodPost, "/orderList", `{"email":"other@x.com"}`)

	mine := decode[[]model.Order](t, app.do(http.MethodGet, "/orderList/mine@x.com", ""))
	if len(mine) != 1 || mine[0].ServiceName != "Cleaning" {
		t.Fatalf("orders = %+v", mine)
	}
	if none := decode[[]model.Order](t, app.do(http.MethodGet, "/orderList/ghost@x.com", "")); len(none) != 0 {
		t.Errorf("expected [], got %+v", none)
	}

	rec := app.do(http.MethodPut, "/orderList/"+ack.InsertedID, `{"status":"Done"}`)
	expectStatus(t, rec, http.StatusOK)
	if upd := decode[model.UpdateResult](t, rec); upd.MatchedCount != 1 || upd.ModifiedCount != 1 {
		t.Errorf("update = %+v", upd)
	}

	missing := primitive.NewObjectID().Hex()
	if upd := decode[model.UpdateResult](t, app.do(http.MethodPut, "/orderList/"+missing, `{"status":"Done"}`)); upd.MatchedCount != 0 {
		t.Errorf("update of missing order = %+v", upd)
	}

	expectStatus(t, app.do(http.MethodPut, "/orderList/"+ack.InsertedID, `{}`), http.StatusBadRequest)
	expectStatus(t, app.do(http.MethodPut, "/orderList/not-an-id", `{"status":"Done"}`), http.StatusBadRequest)

	if del := decode[model.DeleteResult](t, app.do(http.MethodDelete, "/orderList/"+ack.InsertedID, "")); del.DeletedCount != 1 {
		t.Errorf("delete = %+v", del)
	}
	if del := decode[model.DeleteResult](t, app.do(http.MethodDelete, "/orderList/"+ack.InsertedID, "")); del.DeletedCount != 0 {
		t.Errorf("second delete = %+v", del)
	}
}

func TestServices(t *testing.T) {
	app := newTestApp(t)

	ack := decode[model.InsertResult](t, app.do(http.MethodPost, "/services", `{"name":"Cleaning","serviceCost":50}`))

	rec := app.do(http.MethodGet, "/services/"+ack.InsertedID, "")
	expectStatus(t, rec, http.StatusOK)
	if svc := decode[model.Service](t, rec); svc.Name != "Cleaning" || svc.ID.Hex() != ack.InsertedID {
		t.Errorf("service = %+v", svc)
	}

	if list := decode[[]model.Service](t, app.do(http.MethodGet, "/services", "")); len(list) != 1 {
		t.Errorf("services = %+v", list)
	}

	expectStatus(t, app.do(http.MethodPost, "/services", `{"serviceCost":-1}`), http.StatusBadRequest)
}

func TestServiceNotFoundAndMalformedIDs(t *testing.T) {
	app := newTestApp(t)
	missing := primitive.NewObjectID().Hex()

	rec := app.do(http.MethodGet, "/services/"+missing, "")
	expectStatus(t, rec, http.StatusNotFound)
	if body := decode[errorBody](t, rec); body.Code != "SERVICE_NOT_FOUND" {
		t.Errorf("code = %q", body.Code)
	}

	rec = app.do(http.MethodDelete, "/services/"+missing, "")
	expectStatus(t, rec, http.StatusOK)
	if del := decode[model.DeleteResult](t, rec); !del.Acknowledged || del.DeletedCount != 0 {
		t.Errorf("delete = %+v", del)
	}

	for _, target := range []string{"/services/123", "/services/zzzzzzzzzzzzzzzzzzzzzzzz"} {
		rec := app.do(http.MethodGet, target, "")
		expectStatus(t, rec, http.StatusBadRequest)
		body := decode[errorBody](t, rec)
		if len(body.Errors) != 1 || body.Errors[0].Field != "serviceId" {
			t.Errorf("%s: errors = %+v", target, body.Errors)
		}
	}

	expectStatus(t, app.do(http.MethodDelete, "/services/123", ""), http.StatusBadRequest)
}

func TestProjects(t *testing.T) {
	app := newTestApp(t)

	rec := app.do(http.MethodGet, "/projects", "")
	expectStatus(t, rec, http.StatusOK)
	if strings.TrimSpace(rec.Body.String()) != "[]" {
		t.Errorf("body = %q, want []", rec.Body.String())
	}
}

func TestCreatePaymentIntent(t *testing.T) {
	app := newTestApp(t)

	rec := app.do(http.MethodPost, "/create-payment-intent", `{"serviceCost":50}`)
	expectStatus(t, rec, http.StatusOK)

	res := decode[model.PaymentIntentResponse](t, rec)
	if res.ClientSecret != "pi_test_secret" {
		t.Errorf("clientSecret = %q", res.ClientSecret)
	}
	if len(app.intents.amounts) != 1 || app.intents.amounts[0] != 5000 {
		t.Errorf("amounts = %v, want [5000]", app.intents.amounts)
	}

	for _, body := range []string{`{}`, `{"serviceCost":0}`, `{"serviceCost":-3}`, `{"serviceCost":"abc"}`} {
		if rec := app.do(http.MethodPost, "/create-payment-intent", body); rec.Code != http.StatusBadRequest {
			t.Errorf("%s: status = %d, want 400", body, rec.Code)
		}
	}
	if len(app.intents.amounts) != 1 {
		t.Error("invalid requests must not reach the processor")
	}
}

func TestStoreUnavailable(t *testing.T) {
	app := newTestApp(t)
	app.db.down = true

	rec := app.do(http.MethodGet, "/reviews", "")
	expectStatus(t, rec, http.StatusServiceUnavailable)
	if body := decode[errorBody](t, rec); body.Code != "SERVICE_UNAVAILABLE" {
		t.Errorf("code = %q", body.Code)
	}

	rec = app.do(http.MethodGet, "/status", "")
	expectStatus(t, rec, http.StatusServiceUnavailable)
}

func TestUnknownRouteAndPublicFiles(t *testing.T) {
	app := newTestApp(t)

	rec := app.do(http.MethodGet, "/does-not-exist", "")
	expectStatus(t, rec, http.StatusNotFound)
	if body := decode[errorBody](t, rec); body.Code != "NOT_FOUND" {
		t.Errorf("code = %q", body.Code)
	}

	rec = app.do(http.MethodGet, "/robots.txt", "")
	expectStatus(t, rec, http.StatusOK)
	if !strings.Contains(rec.Body.String(), "User-agent") {
		t.Errorf("body = %q", rec.Body.String())
	}
}

func TestCORSAllowsAnyOrigin(t *testing.T) {
	app := newTestApp(t)

	req := httptest.NewRequest(http.MethodGet, "/services", nil)
	req.Header.Set(echo.HeaderOrigin, "https://luxury-living.example")
	rec := httptest.NewRecorder()
	app.router.ServeHTTP(rec, req)

	if got := rec.Header().Get(echo.HeaderAccessControlAllowOrigin); got != "*" {
		t.Errorf("Access-Control-Allow-Origin = %q", got)
	}
}
