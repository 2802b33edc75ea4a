package v1

import (
	"context"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/motus-health/backend/internal/app/appconfig"
	"github.com/motus-health/backend/internal/model"
	"github.com/motus-health/backend/internal/server/httpserver"
	"github.com/motus-health/backend/internal/server/svr"
	"github.com/motus-health/backend/internal/service"
	"github.com/motus-health/backend/internal/util/frameutil"
)

type staticFrameStore struct {
	frames []*model.ActivityFrame
}

func (s *staticFrameStore) GetFramesByPatientAndTimeRange(_ context.Context, patientID int, start, end time.Time) ([]*model.ActivityFrame, error) {
	matched := []*model.ActivityFrame{}
	for _, frame := range s.frames {
		if frame.PatientID != patientID || frame.StartedAt.Before(start) || frame.StartedAt.After(end) {
			continue
		}
		matched = append(matched, frame)
	}
	return matched, nil
}

func newSummaryTestApp(store service.FrameStore) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: httpserver.ErrorHandler,
	})
	v1, _ := svr.CreateEndpointGroups(app)
	RegisterSummary(v1, Summary{
		SummaryService: &service.Summary{
			Frames: store,
			Config: &appconfig.Config{
				ConfigSpec: appconfig.ConfigSpec{
					DefaultMotionTargetSeconds: 600,
				},
			},
		},
	})
	return app
}

func TestDailySummaryEndpoint(t *testing.T) {
	enabledAt := time.Date(2023, time.June, 14, 8, 0, 0, 0, time.UTC)
	app := newSummaryTestApp(&staticFrameStore{
		frames: frameutil.Decode("1;0;1000;2;2000;5000", enabledAt, 1),
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/api/v1/patients/1/summaries/daily/2023-06-14", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var summary model.DailySummary
	require.NoError(t, json.Unmarshal(body, &summary))

	assert.Equal(t, "2023-06-14", summary.Date)
	assert.Equal(t, int64(1), summary.Clapping.DurationSeconds)
	assert.Equal(t, int64(3), summary.BrushingTeeth.DurationSeconds)
	assert.Equal(t, int64(4), summary.Motion.DurationSeconds)
	assert.Equal(t, int64(600), summary.Motion.TargetSeconds.Int64)
	assert.False(t, summary.Clapping.TargetSeconds.Valid)
}

func TestDailySummaryEndpointRejectsBadDate(t *testing.T) {
	app := newSummaryTestApp(&staticFrameStore{})

	resp, err := app.Test(httptest.NewRequest("GET", "/api/v1/patients/1/summaries/daily/14-06-2023", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestDailySummaryEndpointRejectsBadPatientID(t *testing.T) {
	app := newSummaryTestApp(&staticFrameStore{})

	resp, err := app.Test(httptest.NewRequest("GET", "/api/v1/patients/zero/summaries/daily/2023-06-14", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestMonthlySummaryEndpoint(t *testing.T) {
	app := newSummaryTestApp(&staticFrameStore{})

	resp, err := app.Test(httptest.NewRequest("GET", "/api/v1/patients/1/summaries/monthly/2024-02", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var summary model.MonthlySummary
	require.NoError(t, json.Unmarshal(body, &summary))

	require.Len(t, summary.Days, 29)
	assert.Equal(t, "2024-02-01", summary.Days[0].Date)
	assert.Equal(t, "2024-02-29", summary.Days[28].Date)
}
