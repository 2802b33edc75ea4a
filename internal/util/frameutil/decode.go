// Package frameutil decodes raw device payloads into activity frames and
// aggregates frames into per-category durations. Everything here is pure;
// persistence and transport live elsewhere.
package frameutil

import (
	"strconv"
	"strings"
	"time"

	"github.com/samber/lo"

	"github.com/motus-health/backend/internal/model"
)

// CleanTokens splits a raw payload on ";" and keeps only tokens made up
// entirely of ASCII digits. Devices on flaky links interleave garbage bytes
// with real readings, so anything else is dropped without complaint.
func CleanTokens(payload string) []string {
	return lo.Filter(strings.Split(payload, ";"), func(token string, _ int) bool {
		return isDigits(token)
	})
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// Decode turns a raw payload into activity frames for patientID. Tokens are
// cleaned, then consumed in triples of (category, startMs, finishMs) where
// the millisecond offsets are relative to enabledAt, the instant the device
// was powered on. Malformed triples are skipped; Decode never fails.
func Decode(payload string, enabledAt time.Time, patientID int) []*model.ActivityFrame {
	tokens := CleanTokens(payload)

	frames := make([]*model.ActivityFrame, 0, len(tokens)/3)
	for i := 0; i+3 <= len(tokens); i += 3 {
		category, start, finish := tokens[i], tokens[i+1], tokens[i+2]
		if len(category) != 1 {
			continue
		}
		startMs, err := strconv.ParseInt(start, 10, 64)
		if err != nil {
			continue
		}
		finishMs, err := strconv.ParseInt(finish, 10, 64)
		if err != nil {
			continue
		}
		if startMs > finishMs {
			continue
		}

		frames = append(frames, &model.ActivityFrame{
			PatientID:  patientID,
			Category:   model.ActivityCategory(category[0] - '0'),
			StartedAt:  enabledAt.Add(time.Duration(startMs) * time.Millisecond),
			FinishedAt: enabledAt.Add(time.Duration(finishMs) * time.Millisecond),
		})
	}
	return frames
}
