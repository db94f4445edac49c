package main

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// fakePortal imita o portal da BPUT: responde por path e guarda o último formulário recebido.
type fakePortal struct {
	mu        sync.Mutex
	forms     map[string]url.Values
	responses map[string]fakeResponse
}

type fakeResponse struct {
	status      int
	contentType string
	body        string
}

func newFakePortal() *fakePortal {
	return &fakePortal{
		forms:     map[string]url.Values{},
		responses: map[string]fakeResponse{},
	}
}

func (p *fakePortal) respond(path string, status int, body string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	contentType := "application/json"
	if strings.HasPrefix(strings.TrimSpace(body), "<") {
		contentType = "text/html"
	}
	p.responses[path] = fakeResponse{status: status, contentType: contentType, body: body}
}

func (p *fakePortal) form(path string) url.Values {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.forms[path]
}

func (p *fakePortal) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	_ = r.ParseForm()
	p.mu.Lock()
	p.forms[r.URL.Path] = r.Form
	res, ok := p.responses[r.URL.Path]
	p.mu.Unlock()

	if !ok {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", res.contentType)
	w.WriteHeader(res.status)
	_, _ = w.Write([]byte(res.body))
}

func testConfig(baseURL string) Config {
	cfg := DefaultConfig()
	cfg.UpstreamBaseURL = baseURL
	cfg.LandingURL = baseURL + "/"
	cfg.TemplateURL = baseURL + "/templates/index.html"
	return cfg
}

func newTestRouter(t *testing.T, cfg Config) *gin.Engine {
	t.Helper()
	logger := zaptest.NewLogger(t)
	extractor, err := NewOptionExtractor(cfg.OptionExtractor)
	require.NoError(t, err)
	return NewRouter(cfg, NewBputClient(cfg, logger), extractor, logger)
}

func setupRouter(t *testing.T) (*gin.Engine, *fakePortal) {
	t.Helper()
	portal := newFakePortal()
	srv := httptest.NewServer(portal)
	t.Cleanup(srv.Close)
	return newTestRouter(t, testConfig(srv.URL)), portal
}

func doRequest(router http.Handler, method, target string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

func TestMissingRollNo(t *testing.T) {
	router, _ := setupRouter(t)

	for _, target := range []string{
		"/details",
		"/details?rollno=",
		"/results?semid=3&html",
		"/examinfo?dob=2001-01-01",
		"/sgpa?session=E23",
	} {
		t.Run(target, func(t *testing.T) {
			rr := doRequest(router, http.MethodGet, target)
			assert.Equal(t, http.StatusBadRequest, rr.Code)
			assert.Equal(t, MIME_JSON, rr.Header().Get("Content-Type"))
			assert.JSONEq(t, `{"error":"rollno query parameter is required"}`, rr.Body.String())
		})
	}
}

func TestDetailsPassthrough(t *testing.T) {
	router, portal := setupRouter(t)
	portal.respond(PATH_STUDENT_DETAILS, http.StatusOK, `{ "studentName": "ASHA",  "branch": "CSE" }`)

	rr := doRequest(router, http.MethodGet, "/details?rollno=2101234567")

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, MIME_JSON, rr.Header().Get("Content-Type"))
	assert.Equal(t, `{"studentName":"ASHA","branch":"CSE"}`, rr.Body.String())
	assert.Equal(t, url.Values{"rollNo": {"2101234567"}}, portal.form(PATH_STUDENT_DETAILS))
}

func TestResultsForwardsDefaults(t *testing.T) {
	router, portal := setupRouter(t)
	portal.respond(PATH_SUBJECTS_LIST, http.StatusOK, `[]`)

	rr := doRequest(router, http.MethodGet, "/results?rollno=123")

	require.Equal(t, http.StatusOK, rr.Code)
	form := portal.form(PATH_SUBJECTS_LIST)
	assert.Equal(t, "123", form.Get("rollNo"))
	assert.Equal(t, "4", form.Get("semid"))
	assert.Equal(t, "Even-(2023-24)", form.Get("session"))
}

func TestSessionCodeTranslation(t *testing.T) {
	router, portal := setupRouter(t)
	portal.respond(PATH_RESULTS_SGPA, http.StatusOK, `{"sgpa":"8.12"}`)

	rr := doRequest(router, http.MethodGet, "/sgpa?rollno=123&semid=2&session=R22")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "Re-ExamOdd (2021-22)", portal.form(PATH_RESULTS_SGPA).Get("session"))
	assert.Equal(t, "2", portal.form(PATH_RESULTS_SGPA).Get("semid"))

	rr = doRequest(router, http.MethodGet, "/sgpa?rollno=123&session=X99")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "X99", portal.form(PATH_RESULTS_SGPA).Get("session"))
}

func TestExamInfoDefaults(t *testing.T) {
	router, portal := setupRouter(t)
	portal.respond(PATH_RESULTS_LIST, http.StatusOK, `[{"semId":4}]`)

	rr := doRequest(router, http.MethodGet, "/examinfo?rollno=123&session=O23")

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, `[{"semId":4}]`, rr.Body.String())
	form := portal.form(PATH_RESULTS_LIST)
	assert.Equal(t, "2009-07-14", form.Get("dob"))
	assert.Equal(t, "Odd-(2022-23)", form.Get("session"))
	assert.Empty(t, form.Get("semid"))
}

func TestResultsHTMLTable(t *testing.T) {
	router, portal := setupRouter(t)
	portal.respond(PATH_SUBJECTS_LIST, http.StatusOK,
		`[{"subjectCODE":"CS101","subjectName":"Algo","subjectTP":"T","subjectCredits":"4","grade":"A"}]`)

	rr := doRequest(router, http.MethodGet, "/results?rollno=123&html")

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, MIME_HTML, rr.Header().Get("Content-Type"))
	body := rr.Body.String()
	assert.Contains(t, body, "<td>1</td><td>CS101</td><td>Algo</td><td>T</td><td>4</td><td>A</td>")
	assert.Equal(t, 2, strings.Count(body, "<tr>"))
}

func TestResultsEmptyArray(t *testing.T) {
	router, portal := setupRouter(t)
	portal.respond(PATH_SUBJECTS_LIST, http.StatusOK, `[]`)

	rr := doRequest(router, http.MethodGet, "/results?rollno=123&html=no")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, MIME_HTML, rr.Header().Get("Content-Type"))
	assert.Equal(t, 1, strings.Count(rr.Body.String(), "<tr>"), "only the header row")
	assert.NotContains(t, rr.Body.String(), "<td>")

	rr = doRequest(router, http.MethodGet, "/results?rollno=123")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, MIME_JSON, rr.Header().Get("Content-Type"))
	assert.Equal(t, "[]", rr.Body.String())
}

func TestResultsHTMLRejectsObjectPayload(t *testing.T) {
	router, portal := setupRouter(t)
	portal.respond(PATH_SUBJECTS_LIST, http.StatusOK, `{"message":"No record found"}`)

	rr := doRequest(router, http.MethodGet, "/results?rollno=123&html")
	assert.Equal(t, http.StatusBadGateway, rr.Code)
	assert.Equal(t, MIME_PLAIN, rr.Header().Get("Content-Type"))
	assert.True(t, strings.HasPrefix(rr.Body.String(), "Error: "), rr.Body.String())
	assert.Contains(t, rr.Body.String(), "expected array")

	// Sem o flag html o mesmo payload segue direto.
	rr = doRequest(router, http.MethodGet, "/results?rollno=123")
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, `{"message":"No record found"}`, rr.Body.String())
}

func TestResultsHTMLRejectsNullRows(t *testing.T) {
	router, portal := setupRouter(t)
	portal.respond(PATH_SUBJECTS_LIST, http.StatusOK, `[{"subjectCODE":"BS101","grade":"A"},null]`)

	rr := doRequest(router, http.MethodGet, "/results?rollno=123&html")
	assert.Equal(t, http.StatusBadGateway, rr.Code)
	assert.Equal(t, MIME_PLAIN, rr.Header().Get("Content-Type"))
	assert.Contains(t, rr.Body.String(), "subject result 1 is not an object")
	assert.NotContains(t, rr.Body.String(), "<tr>")
}

func TestUpstreamFailures(t *testing.T) {
	router, portal := setupRouter(t)
	portal.respond(PATH_STUDENT_DETAILS, http.StatusInternalServerError, `{"error":"boom"}`)
	portal.respond(PATH_RESULTS_SGPA, http.StatusOK, `<html>maintenance</html>`)

	for _, target := range []string{"/details?rollno=1", "/sgpa?rollno=1"} {
		t.Run(target, func(t *testing.T) {
			rr := doRequest(router, http.MethodGet, target)
			assert.Equal(t, http.StatusInternalServerError, rr.Code)
			assert.Equal(t, MIME_JSON, rr.Header().Get("Content-Type"))
			assert.Contains(t, rr.Body.String(), `"error":"Failed to retrieve data: `)
		})
	}
}

func TestUpstreamUnreachable(t *testing.T) {
	dead := httptest.NewServer(http.NotFoundHandler())
	base := dead.URL
	dead.Close()

	router := newTestRouter(t, testConfig(base))

	rr := doRequest(router, http.MethodGet, "/results?rollno=1&html")
	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.Contains(t, rr.Body.String(), "Failed to retrieve data: ")

	rr = doRequest(router, http.MethodGet, "/allsession")
	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.Equal(t, MIME_JSON, rr.Header().Get("Content-Type"))

	rr = doRequest(router, http.MethodGet, "/")
	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.Equal(t, MIME_PLAIN, rr.Header().Get("Content-Type"))
	assert.True(t, strings.HasPrefix(rr.Body.String(), "Error: "))
}

func TestHomeTemplate(t *testing.T) {
	router, portal := setupRouter(t)

	rr := doRequest(router, http.MethodGet, "/")
	assert.Equal(t, http.StatusInternalServerError, rr.Code, "template missing upstream")
	assert.Equal(t, MIME_PLAIN, rr.Header().Get("Content-Type"))

	page := "\n  <html><body>BPUT</body></html>\n\n"
	portal.respond("/templates/index.html", http.StatusOK, page)
	rr = doRequest(router, http.MethodGet, "/")
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, MIME_HTML, rr.Header().Get("Content-Type"))
	assert.Equal(t, page, rr.Body.String(), "template segue byte a byte")
}

func TestAllSession(t *testing.T) {
	router, portal := setupRouter(t)
	portal.respond("/", http.StatusOK,
		`<select id="session"><option>Select Session</option><option>Even-(2023-24)</option></select>`)

	rr := doRequest(router, http.MethodGet, "/allsession")

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, MIME_JSON, rr.Header().Get("Content-Type"))
	assert.JSONEq(t, `[{"name":"Even-(2023-24)","shortCode":"E24"}]`, rr.Body.String())
}

func TestAllSessionEmpty(t *testing.T) {
	router, portal := setupRouter(t)
	portal.respond("/", http.StatusOK, `<html><body>no sessions</body></html>`)

	rr := doRequest(router, http.MethodGet, "/allsession")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "[]", rr.Body.String())
}

func TestAllSessionDocumentExtractor(t *testing.T) {
	portal := newFakePortal()
	srv := httptest.NewServer(portal)
	t.Cleanup(srv.Close)
	portal.respond("/", http.StatusOK,
		`<html><body><select><option value="">Select Session</option><option value="x"> Odd-(2023-24) </option></select></body></html>`)

	cfg := testConfig(srv.URL)
	cfg.OptionExtractor = EXTRACTOR_DOCUMENT
	router := newTestRouter(t, cfg)

	rr := doRequest(router, http.MethodGet, "/allsession")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `[{"name":"Odd-(2023-24)","shortCode":"O24"}]`, rr.Body.String())
}

func TestNotFound(t *testing.T) {
	router, _ := setupRouter(t)

	cases := []struct {
		method string
		target string
	}{
		{http.MethodGet, "/ping"},
		{http.MethodGet, "/unknown-path"},
		{http.MethodGet, "/unknown-path?rollno=123&html"},
		{http.MethodGet, "/details/"},
		{http.MethodGet, "/swagger/index.html"},
		{http.MethodPost, "/details?rollno=123"},
	}
	for _, tc := range cases {
		t.Run(tc.method+" "+tc.target, func(t *testing.T) {
			rr := doRequest(router, tc.method, tc.target)
			assert.Equal(t, http.StatusNotFound, rr.Code)
			assert.Empty(t, rr.Body.String())
		})
	}
}

func TestSwaggerOptIn(t *testing.T) {
	cfg := testConfig("http://127.0.0.1:1")
	cfg.EnableSwagger = true
	router := newTestRouter(t, cfg)

	rr := doRequest(router, http.MethodGet, "/swagger/doc.json")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "BPUT Results API")
	assert.Contains(t, rr.Body.String(), "/allsession")
}

func TestCORSRestrictedOrigins(t *testing.T) {
	cfg := testConfig("http://127.0.0.1:1")
	cfg.CORSOrigins = []string{"https://tools.example.edu"}
	router := newTestRouter(t, cfg)

	req := httptest.NewRequest(http.MethodGet, "/details", nil)
	req.Header.Set("Origin", "https://tools.example.edu")
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	assert.Equal(t, "https://tools.example.edu", rr.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodGet, "/details", nil)
	req.Header.Set("Origin", "https://evil.example.com")
	rr = httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusForbidden, rr.Code)
}

func TestBuildForm(t *testing.T) {
	newCtx := func(target string) *gin.Context {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		c.Request = httptest.NewRequest(http.MethodGet, target, nil)
		return c
	}

	form, err := buildForm(newCtx("/results?rollno=7&semid=&session="), paramRollNo, paramSemID, paramSession)
	require.NoError(t, err)
	assert.Equal(t, url.Values{
		"rollNo":  {"7"},
		"semid":   {"4"},
		"session": {"Even-(2023-24)"},
	}, form)

	_, err = buildForm(newCtx("/results?semid=2"), paramRollNo, paramSemID)
	var paramErr *ParamError
	require.True(t, errors.As(err, &paramErr))
	assert.Equal(t, "rollno", paramErr.Param)
	assert.True(t, errors.Is(err, ErrMissingParam))
}
