package http

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	appModeration "github.com/flagwise/flagwise/pkg/app/moderation"
	moderationMocks "github.com/flagwise/flagwise/pkg/app/moderation/mocks"
	"github.com/flagwise/flagwise/pkg/domain/flag"
	"github.com/flagwise/flagwise/pkg/handlers/http/response"
	"github.com/flagwise/flagwise/pkg/infra/providers"
	providerMocks "github.com/flagwise/flagwise/pkg/infra/providers/mocks"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func doTestModerate(t *testing.T, app *fiber.App, body map[string]interface{}) (int, []byte) {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest("POST", "/test/moderate", bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	payload, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, payload
}

func TestTestModerateHandler_Success(t *testing.T) {
	moderator := new(moderationMocks.Service)
	moderator.On("Moderate", mock.Anything, "some text").Return(tiedRecords())

	handler := NewTestModerateHandler(logrus.New(), moderator)
	app := fiber.New()
	app.Post("/test/moderate", handler.Handle)

	status, payload := doTestModerate(t, app, map[string]interface{}{"content": "some text"})

	assert.Equal(t, 200, status)

	var body response.ModerationResponse
	require.NoError(t, json.Unmarshal(payload, &body))
	require.Len(t, body.Flags, len(flag.Types()))
}

func TestTestModerateHandler_MissingContent(t *testing.T) {
	moderator := new(moderationMocks.Service)

	handler := NewTestModerateHandler(logrus.New(), moderator)
	app := fiber.New()
	app.Post("/test/moderate", handler.Handle)

	status, _ := doTestModerate(t, app, map[string]interface{}{})
	assert.Equal(t, 400, status)

	status, _ = doTestModerate(t, app, map[string]interface{}{"content": ""})
	assert.Equal(t, 400, status)

	moderator.AssertNotCalled(t, "Moderate", mock.Anything, mock.Anything)
}

// Classifier unreachable: the real moderation service degrades to fallback
// scores and the endpoint still answers 200 with a complete record list.
func TestTestModerateHandler_ClassifierUnreachable(t *testing.T) {
	client := new(providerMocks.Client)
	client.On("Classify", mock.Anything, mock.Anything, mock.Anything).Return(nil, assert.AnError)

	cfg := &providers.Config{
		Credentials: providers.Credentials{ApiKey: "test-key"},
		Model:       "test-model",
	}
	moderator := appModeration.NewService(
		client, cfg, appModeration.NewFallbackGenerator(1), logrus.New(), time.Second,
	)

	handler := NewTestModerateHandler(logrus.New(), moderator)
	app := fiber.New()
	app.Post("/test/moderate", handler.Handle)

	status, payload := doTestModerate(t, app, map[string]interface{}{"content": "some text"})

	assert.Equal(t, 200, status)

	var body response.ModerationResponse
	require.NoError(t, json.Unmarshal(payload, &body))
	require.Len(t, body.Flags, len(flag.Types()))
	for i, ft := range flag.Types() {
		assert.Equal(t, ft, body.Flags[i].Flag)
		assert.GreaterOrEqual(t, body.Flags[i].Value, 0.0)
		assert.LessOrEqual(t, body.Flags[i].Value, 1.0)
	}
}
