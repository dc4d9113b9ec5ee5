package save

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"

	"github.com/quasilyte/gdata/v2"
	"go.opentelemetry.io/otel/attribute"
	"gopkg.in/yaml.v3"

	"github.com/samdwyer/farmsim/internal/telemetry"
)

const savesObject = "saves"

var slotPattern = regexp.MustCompile(`^[A-Za-z0-9_-]{1,32}$`)

// Store reads and writes one save slot. With a nil gdata manager it keeps the
// slot in memory only, so the game still runs where no data directory is
// available.
type Store struct {
	manager *gdata.Manager
	slot    string
	memory  []byte
}

// Open opens the platform data directory for appName through gdata.
func Open(appName, slot string) (*Store, error) {
	m, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		return nil, fmt.Errorf("failed to open save storage: %w", err)
	}
	return NewStore(m, slot)
}

// NewStore wraps an existing gdata manager, which may be nil.
func NewStore(m *gdata.Manager, slot string) (*Store, error) {
	if !slotPattern.MatchString(slot) {
		return nil, fmt.Errorf("invalid save slot %q: use 1-32 letters, digits, '-' or '_'", slot)
	}
	return &Store{manager: m, slot: slot}, nil
}

// Slot returns the slot name.
func (s *Store) Slot() string {
	return s.slot
}

// Exists returns true if the slot holds a save.
func (s *Store) Exists() bool {
	if s.manager == nil {
		return s.memory != nil
	}
	return s.manager.ObjectPropExists(savesObject, s.slot)
}

// Save writes the snapshot to the slot.
func (s *Store) Save(ctx context.Context, snap Snapshot) error {
	_, span := telemetry.Tracer("save").Start(ctx, "save.write")
	defer span.End()

	data, err := yaml.Marshal(snap)
	if err != nil {
		return fmt.Errorf("failed to marshal save: %w", err)
	}
	span.SetAttributes(
		attribute.String("save.slot", s.slot),
		attribute.Int("save.bytes", len(data)),
		attribute.Int("save.crops", len(snap.Crops)),
	)

	if s.manager == nil {
		s.memory = data
		return nil
	}
	if err := s.manager.SaveObjectProp(savesObject, s.slot, data); err != nil {
		span.RecordError(err)
		return fmt.Errorf("failed to write save slot %s: %w", s.slot, err)
	}

	slog.Info("game saved", "slot", s.slot, "bytes", len(data))
	return nil
}

// Load reads the slot. It returns false if the slot is empty.
func (s *Store) Load(ctx context.Context) (Snapshot, bool, error) {
	_, span := telemetry.Tracer("save").Start(ctx, "save.read")
	defer span.End()
	span.SetAttributes(attribute.String("save.slot", s.slot))

	if !s.Exists() {
		return Snapshot{}, false, nil
	}

	data := s.memory
	if s.manager != nil {
		var err error
		data, err = s.manager.LoadObjectProp(savesObject, s.slot)
		if err != nil {
			span.RecordError(err)
			return Snapshot{}, false, fmt.Errorf("failed to read save slot %s: %w", s.slot, err)
		}
	}

	var snap Snapshot
	if err := yaml.Unmarshal(data, &snap); err != nil {
		return Snapshot{}, false, fmt.Errorf("failed to parse save slot %s: %w", s.slot, err)
	}
	return snap, true, nil
}
