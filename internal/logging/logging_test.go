package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func captureLogger() (*logrus.Logger, *bytes.Buffer) {
	logger := SetupLogging("debug")
	buf := &bytes.Buffer{}
	logger.Out = buf
	return logger, buf
}

func lastEntry(t *testing.T, buf *bytes.Buffer) map[string]interface{} {
	t.Helper()
	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.NotEmpty(t, lines)
	entry := map[string]interface{}{}
	require.NoError(t, json.Unmarshal(lines[len(lines)-1], &entry))
	return entry
}

func TestSetupLogging_Level(t *testing.T) {
	assert.Equal(t, logrus.DebugLevel, SetupLogging("debug").Level)
	assert.Equal(t, logrus.InfoLevel, SetupLogging("").Level)
	assert.Equal(t, logrus.InfoLevel, SetupLogging("loud").Level)
}

func TestLogData_ContextRoundTrip(t *testing.T) {
	logger, buf := captureLogger()
	logData := NewLogData(logger)
	ctx := WithLogData(context.Background(), logData)

	assert.Same(t, logData, GetLogData(ctx))
	assert.Nil(t, GetLogData(context.Background()))

	n, err := Timed(ctx, "workMs", func() (int, error) { return 3, nil })
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	logData.AddData("userID", "u-1")
	logData.Log().Info("done")

	entry := lastEntry(t, buf)
	assert.Equal(t, "info", entry["loglevel"])
	assert.Equal(t, "u-1", entry["userID"])
	assert.Contains(t, entry, "workMs")
}

func TestLoggingWrapper_LogsError(t *testing.T) {
	logger, buf := captureLogger()
	handler := LoggingWrapper("Status", logger, func(w http.ResponseWriter, _ *http.Request, logData *LogData) error {
		logData.AddData("marker", true)
		w.WriteHeader(http.StatusServiceUnavailable)
		return errors.New("database down")
	})

	w := httptest.NewRecorder()
	handler(w, httptest.NewRequest(http.MethodGet, "/status", nil))

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	entry := lastEntry(t, buf)
	assert.Equal(t, "Handler.Status.Error", entry["msg"])
	assert.Equal(t, "database down", entry["error"])
	assert.Equal(t, true, entry["marker"])
}

type pingOutput struct {
	Body struct {
		HasLogData bool `json:"hasLogData"`
	}
}

func TestMiddleware_AttachesLogData(t *testing.T) {
	logger, buf := captureLogger()
	_, api := humatest.New(t)
	api.UseMiddleware(Middleware(logger))
	huma.Register(api, huma.Operation{
		OperationID: "ping",
		Method:      http.MethodGet,
		Path:        "/ping",
	}, func(ctx context.Context, _ *struct{}) (*pingOutput, error) {
		out := &pingOutput{}
		out.Body.HasLogData = GetLogData(ctx) != nil
		return out, nil
	})

	resp := api.Get("/ping")

	assert.Equal(t, http.StatusOK, resp.Code)
	var body struct {
		HasLogData bool `json:"hasLogData"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.True(t, body.HasLogData)
	entry := lastEntry(t, buf)
	assert.Equal(t, "Handler.ping.Complete", entry["msg"])
	assert.Equal(t, float64(http.StatusOK), entry["status"])
}
