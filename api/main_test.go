package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"
	"github.com/katatrina/procurement-BE/internal/auction"
	db "github.com/katatrina/procurement-BE/internal/db/sqlc"
	"github.com/katatrina/procurement-BE/internal/event"
	"github.com/katatrina/procurement-BE/internal/util"
	"github.com/katatrina/procurement-BE/internal/worker"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

type recordingDistributor struct {
	mu     sync.Mutex
	starts []*worker.PayloadStartAuction
	ends   []*worker.PayloadEndAuction
	err    error
}

func (d *recordingDistributor) DistributeTaskSendNotification(context.Context, *worker.PayloadSendNotification, ...asynq.Option) error {
	return d.err
}

func (d *recordingDistributor) DistributeTaskStartAuction(_ context.Context, payload *worker.PayloadStartAuction, _ ...asynq.Option) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.starts = append(d.starts, payload)
	return d.err
}

func (d *recordingDistributor) DistributeTaskEndAuction(_ context.Context, payload *worker.PayloadEndAuction, _ ...asynq.Option) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.ends = append(d.ends, payload)
	return d.err
}

type testServer struct {
	*Server
	events      *event.SSEServer
	distributor *recordingDistributor
}

func newTestServer(t *testing.T, store db.Store) *testServer {
	config := util.Config{
		TokenSecretKey:      "0123456789abcdefghijklmnopqrstuv",
		AccessTokenDuration: time.Minute,
	}

	events := event.NewSSEServer()
	t.Cleanup(events.Shutdown)

	distributor := &recordingDistributor{}
	server, err := NewServer(config, store, distributor, events, auction.NewService(store, events))
	require.NoError(t, err)

	return &testServer{Server: server, events: events, distributor: distributor}
}

func (s *testServer) authHeader(t *testing.T, userID string, role db.UserRole) string {
	accessToken, _, err := s.tokenMaker.CreateToken(userID, string(role), time.Minute)
	require.NoError(t, err)

	return fmt.Sprintf("%s %s", authorizationTypeBearer, accessToken)
}

func (s *testServer) do(t *testing.T, method, url string, body any, authorization string) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	request, err := http.NewRequest(method, url, reader)
	require.NoError(t, err)
	request.Header.Set("Content-Type", "application/json")
	if authorization != "" {
		request.Header.Set(authorizationHeaderKey, authorization)
	}

	recorder := httptest.NewRecorder()
	s.router.ServeHTTP(recorder, request)

	return recorder
}

func decodeBody(t *testing.T, recorder *httptest.ResponseRecorder) map[string]any {
	var body map[string]any
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	return body
}
