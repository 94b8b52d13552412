package archive

import (
	"context"
	"math/rand"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/oklog/ulid/v2"

	"github.com/carbon-dev/carbon/internal/domain"
)

// LocalStore implements domain.Store over the device slots. Entry ids are
// ULIDs, a time+random composite.
type LocalStore struct {
	device *DeviceStore

	mu      sync.Mutex
	entropy *rand.Rand
	now     func() time.Time
}

// NewLocalStore creates a LocalStore backed by the given device store.
func NewLocalStore(device *DeviceStore) *LocalStore {
	return &LocalStore{
		device:  device,
		entropy: rand.New(rand.NewSource(time.Now().UnixNano())),
		now:     time.Now,
	}
}

func (s *LocalStore) newID(t time.Time) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return ulid.MustNew(ulid.Timestamp(t), s.entropy).String()
}

// List returns the persisted entries, newest first.
func (s *LocalStore) List(_ context.Context) ([]domain.Entry, error) {
	return s.device.ReadEntries(), nil
}

// Create freezes the snapshot into a new entry, prepends it to the
// persisted list, and rewrites the slot in full.
func (s *LocalStore) Create(_ context.Context, snap domain.Snapshot) (domain.Entry, error) {
	now := s.now().UTC()
	entry := domain.Entry{
		ID:            s.newID(now),
		Feeling:       snap.Feeling,
		Intensity:     snap.Intensity,
		Medium:        snap.Medium,
		PressureStyle: snap.PressureStyle,
		Prompt:        snap.Prompt,
		Draft:         snap.Draft,
		Playground:    snap.Playground,
		Metrics: domain.Metrics{
			TimeSpentSec:  snap.TimeSpentSec,
			RevisionCount: snap.RevisionCount,
			DraftChars:    utf8.RuneCountInString(snap.Draft),
		},
		CreatedAt: now,
		Source:    domain.SourceLocal,
	}

	entries := append([]domain.Entry{entry}, s.device.ReadEntries()...)
	if err := s.device.WriteEntries(entries); err != nil {
		return entry, err
	}
	return entry, nil
}
