package persist

import (
	"context"
	"encoding/json"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/alexanderramin/weekboard/internal/domain"
)

// CurrentVersion is the schema version written by Save. Load migrates any
// older envelope forward before handing the state to the caller.
const CurrentVersion = 2

// DefaultBlobName is the single envelope name used per application instance.
const DefaultBlobName = "weekboard"

// State is the persisted shape of the store.
type State struct {
	Tasks       []domain.Task `json:"tasks"`
	CurrentWeek *domain.Week  `json:"currentWeek,omitempty"`
}

// Envelope wraps persisted state with a version tag so schema changes don't
// corrupt or strand old saved data.
type Envelope struct {
	Version   int             `json:"version"`
	Data      json.RawMessage `json:"data"`
	Timestamp int64           `json:"timestamp"` // epoch millis of the save
}

// Serializer reads and writes the versioned envelope through a BlobStore.
type Serializer struct {
	blobs  BlobStore
	name   string
	logger *log.Logger
	now    func() time.Time
}

// NewSerializer creates a Serializer over the given medium.
func NewSerializer(blobs BlobStore, logger *log.Logger) *Serializer {
	if logger == nil {
		logger = log.StandardLogger()
	}
	return &Serializer{blobs: blobs, name: DefaultBlobName, logger: logger, now: time.Now}
}

// Load reads the envelope and returns the persisted state, or nil when
// nothing has been saved yet. Stale envelopes are migrated forward and
// immediately re-saved so the next load skips migration. A structurally
// unrecognizable envelope is discarded with a warning; the caller starts
// fresh rather than seeing a parse error.
func (s *Serializer) Load(ctx context.Context) (*State, error) {
	raw, err := s.blobs.Get(ctx, s.name)
	if err != nil {
		return nil, err
	}
	if raw == nil {
		return nil, nil
	}

	state, migrated, err := s.Decode(raw)
	if err != nil {
		s.logger.WithError(err).Warn("discarding unreadable saved state")
		return nil, nil
	}
	if migrated {
		s.Save(ctx, *state)
	}
	return state, nil
}

// Decode parses an envelope, running the migration chain when the stored
// version is behind CurrentVersion. The second return reports whether
// migration ran (the caller should re-save). Import uses the same path as
// Load so old exports heal identically.
func (s *Serializer) Decode(raw []byte) (*State, bool, error) {
	var env Envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, false, err
	}

	version := env.Version
	if version == 0 {
		// Pre-versioning saves carried no tag.
		version = 1
	}

	data := env.Data
	migrated := false
	for v := version; v < CurrentVersion; v++ {
		next, err := runMigration(v, data)
		if err != nil {
			return nil, false, err
		}
		data = next
		migrated = true
	}

	var state State
	if err := json.Unmarshal(data, &state); err != nil {
		return nil, false, err
	}
	return &state, migrated, nil
}

// Save wraps the state in a current-version envelope and writes it. Write
// failures are logged, never returned: losing one save is recoverable (the
// next save retries), crashing the session is not.
func (s *Serializer) Save(ctx context.Context, state State) {
	data, err := json.Marshal(state)
	if err != nil {
		s.logger.WithError(err).Warn("encoding state for save")
		return
	}
	raw, err := json.Marshal(Envelope{
		Version:   CurrentVersion,
		Data:      data,
		Timestamp: s.now().UnixMilli(),
	})
	if err != nil {
		s.logger.WithError(err).Warn("encoding envelope for save")
		return
	}
	if err := s.blobs.Put(ctx, s.name, raw); err != nil {
		s.logger.WithError(err).Warn("writing saved state")
	}
}
