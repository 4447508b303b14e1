// internal/service/input.go
package service

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/opsdesk/taskboard/internal/domain"
)

// IDList accepts either a single id or an array of ids in request
// payloads; callers that associate one division send a bare string.
type IDList []uuid.UUID

func (l *IDList) UnmarshalJSON(data []byte) error {
	var one uuid.UUID
	if err := json.Unmarshal(data, &one); err == nil {
		*l = IDList{one}
		return nil
	}

	var many []uuid.UUID
	if err := json.Unmarshal(data, &many); err != nil {
		return err
	}
	*l = IDList(many)
	return nil
}

// Dedupe returns the list with duplicates removed, order preserved.
func (l IDList) Dedupe() []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(l))
	out := make([]uuid.UUID, 0, len(l))
	for _, id := range l {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02 15:04:05",
}

// parseDate accepts the date formats clients actually send and normalizes
// the result to start of day UTC.
func parseDate(value string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return startOfDay(t), nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: unrecognized date %q", domain.ErrInvalidInput, value)
}

func startOfDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
