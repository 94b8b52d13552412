package archive

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"
	"unicode/utf8"

	"github.com/carbon-dev/carbon/internal/domain"
)

// ErrNoRemote is returned when no remote base URL is configured. Callers
// treat it like any other remote failure.
var ErrNoRemote = errors.New("no remote archive service configured")

// RemoteStore implements domain.Store against the remote archive service:
// GET /entries, POST /entries, GET /health.
type RemoteStore struct {
	baseURL string
	client  *http.Client
}

// NewRemoteStore creates a RemoteStore for the given base URL. An empty
// base URL is allowed; every call then fails with ErrNoRemote.
func NewRemoteStore(baseURL string, timeout time.Duration) *RemoteStore {
	return &RemoteStore{
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
	}
}

// remoteRow is the wire shape of one archived entry.
type remoteRow struct {
	ID            json.Number `json:"id"`
	CreatedAt     string      `json:"created_at"`
	Feeling       string      `json:"feeling"`
	Intensity     string      `json:"intensity"`
	Medium        string      `json:"medium"`
	PressureStyle string      `json:"pressure_style"`
	Prompt        string      `json:"prompt"`
	Draft         string      `json:"draft"`
}

// mapRow reconstructs an entry from a remote record. The remote schema has
// no playground column and no session timing, so those default; draft chars
// are always recomputed from the draft text.
func mapRow(row remoteRow) domain.Entry {
	createdAt, err := time.Parse(time.RFC3339, row.CreatedAt)
	if err != nil {
		createdAt = time.Now().UTC()
	}

	intensity := domain.Intensity(row.Intensity)
	if intensity == "" {
		intensity = domain.IntensityLow
	}
	style := domain.PressureStyle(row.PressureStyle)
	if style == "" {
		style = domain.StyleGentle
	}

	return domain.Entry{
		ID:            row.ID.String(),
		Feeling:       row.Feeling,
		Intensity:     intensity,
		Medium:        domain.Medium(row.Medium),
		PressureStyle: style,
		Prompt:        row.Prompt,
		Draft:         row.Draft,
		Playground:    "",
		Metrics: domain.Metrics{
			TimeSpentSec:  0,
			RevisionCount: 0,
			DraftChars:    utf8.RuneCountInString(row.Draft),
		},
		CreatedAt: createdAt,
		Source:    domain.SourceRemote,
	}
}

// Health probes the remote service. Any non-2xx status is a failure; the
// body is ignored.
func (r *RemoteStore) Health(ctx context.Context) error {
	if r.baseURL == "" {
		return ErrNoRemote
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.baseURL+"/health", nil)
	if err != nil {
		return fmt.Errorf("build health request: %w", err)
	}
	res, err := r.client.Do(req)
	if err != nil {
		return fmt.Errorf("health probe: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		return fmt.Errorf("health probe: unexpected status %d", res.StatusCode)
	}
	return nil
}

// List fetches the remote entries, newest first.
func (r *RemoteStore) List(ctx context.Context) ([]domain.Entry, error) {
	if r.baseURL == "" {
		return nil, ErrNoRemote
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.baseURL+"/entries", nil)
	if err != nil {
		return nil, fmt.Errorf("build list request: %w", err)
	}
	res, err := r.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("list entries: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		return nil, fmt.Errorf("list entries: unexpected status %d", res.StatusCode)
	}

	var body struct {
		Rows []remoteRow `json:"rows"`
	}
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("decode entries: %w", err)
	}

	entries := make([]domain.Entry, len(body.Rows))
	for i, row := range body.Rows {
		entries[i] = mapRow(row)
	}
	return entries, nil
}

// Create posts the snapshot to the remote service. The playground buffer is
// intentionally dropped: the remote schema has no column for it.
func (r *RemoteStore) Create(ctx context.Context, snap domain.Snapshot) (domain.Entry, error) {
	if r.baseURL == "" {
		return domain.Entry{}, ErrNoRemote
	}

	payload := map[string]string{
		"feeling":       snap.Feeling,
		"intensity":     string(snap.Intensity),
		"medium":        string(snap.Medium),
		"pressureStyle": string(snap.PressureStyle),
		"prompt":        snap.Prompt,
		"draft":         snap.Draft,
	}
	data, err := json.Marshal(payload)
	if err != nil {
		return domain.Entry{}, fmt.Errorf("marshal entry payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.baseURL+"/entries", bytes.NewReader(data))
	if err != nil {
		return domain.Entry{}, fmt.Errorf("build create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := r.client.Do(req)
	if err != nil {
		return domain.Entry{}, fmt.Errorf("create entry: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		return domain.Entry{}, fmt.Errorf("create entry: unexpected status %d", res.StatusCode)
	}

	var body struct {
		Inserted *struct {
			ID        json.Number `json:"id"`
			CreatedAt string      `json:"created_at"`
		} `json:"inserted"`
	}
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		return domain.Entry{}, fmt.Errorf("decode create response: %w", err)
	}
	if body.Inserted == nil || body.Inserted.ID.String() == "" {
		return domain.Entry{}, errors.New("create entry: malformed response")
	}

	return mapRow(remoteRow{
		ID:            body.Inserted.ID,
		CreatedAt:     body.Inserted.CreatedAt,
		Feeling:       snap.Feeling,
		Intensity:     string(snap.Intensity),
		Medium:        string(snap.Medium),
		PressureStyle: string(snap.PressureStyle),
		Prompt:        snap.Prompt,
		Draft:         snap.Draft,
	}), nil
}
