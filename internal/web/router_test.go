package web_test

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/breakthecode/server/internal/factory"
	"github.com/breakthecode/server/internal/model"
	"github.com/breakthecode/server/internal/testutil"
	"github.com/breakthecode/server/internal/web"
)

// pngMagic is the fixed first eight bytes of any PNG stream
var pngMagic = []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A}

type webTestServer struct {
	t       *testing.T
	handler http.Handler
	app     *factory.App
}

func newWebTestServer(t *testing.T) *webTestServer {
	t.Helper()

	app := factory.New(factory.Config{})
	router := web.NewRouter(web.RouterConfig{
		Logger:  testutil.NopLogger(),
		Gateway: app.Gateway,
		Storage: app.Storage,
	})

	return &webTestServer{t: t, handler: router, app: app}
}

func (ts *webTestServer) get(path string) *httptest.ResponseRecorder {
	ts.t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rr := httptest.NewRecorder()
	ts.handler.ServeHTTP(rr, req)
	return rr
}

func (ts *webTestServer) seedRoom(code model.RoomCode) {
	ts.t.Helper()
	err := ts.app.Storage.SaveRoom(context.Background(), &model.Room{
		Code:  code,
		State: model.RoomStateWaiting,
	})
	require.NoError(ts.t, err)
}

func TestIndexPageServesClient(t *testing.T) {
	ts := newWebTestServer(t)

	rr := ts.get("/")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Header().Get("Content-Type"), "text/html")

	doc, err := goquery.NewDocumentFromReader(rr.Body)
	require.NoError(t, err)

	assert.Equal(t, "Break The Code", doc.Find("title").Text())
	assert.Equal(t, 1, doc.Find("#lobby").Length())
	assert.Equal(t, 1, doc.Find("#create").Length())
	assert.Equal(t, 1, doc.Find("#join").Length())
	assert.Equal(t, 1, doc.Find("input#secret").Length())
	assert.Equal(t, 1, doc.Find("input#guess").Length())

	// The client speaks the websocket protocol of this server
	script := doc.Find("script").Text()
	assert.Contains(t, script, "'/ws'")
	assert.Contains(t, script, "createRoom")
	assert.Contains(t, script, "makeGuess")
}

func TestHealthz(t *testing.T) {
	ts := newWebTestServer(t)

	rr := ts.get("/healthz")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"status":"ok"}`, rr.Body.String())
}

func TestQRCodeForExistingRoom(t *testing.T) {
	ts := newWebTestServer(t)
	ts.seedRoom("ABC123")

	rr := ts.get("/rooms/ABC123/qr")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "image/png", rr.Header().Get("Content-Type"))
	assert.True(t, bytes.HasPrefix(rr.Body.Bytes(), pngMagic))
}

func TestQRCodeForUnknownRoom(t *testing.T) {
	ts := newWebTestServer(t)

	rr := ts.get("/rooms/ZZZ999/qr")
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestQRCodeForMalformedCode(t *testing.T) {
	ts := newWebTestServer(t)

	rr := ts.get("/rooms/nope/qr")
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestUnknownPathIs404(t *testing.T) {
	ts := newWebTestServer(t)

	rr := ts.get("/definitely-not-here")
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestIndexRejectsPost(t *testing.T) {
	ts := newWebTestServer(t)

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(""))
	rr := httptest.NewRecorder()
	ts.handler.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)
}
