package engine

import (
	"context"
	"encoding/json"
	"time"

	"github.com/Thomas-Buddemberg/escuela-tortuga/internal/storage"
)

// Snapshot is the persisted-state contract for export and import.
type Snapshot struct {
	ExportedAt string                    `json:"exportedAtISO"`
	Player     *storage.Player           `json:"player,omitempty"`
	Settings   *storage.Settings         `json:"settings,omitempty"`
	Actions    []storage.KiAction        `json:"actions,omitempty"`
	Quests     []storage.QuestCompletion `json:"quests,omitempty"`
	Workouts   []storage.Workout         `json:"workouts,omitempty"`
}

// Export captures the full store as a snapshot.
func (s *Service) Export(ctx context.Context) (*Snapshot, error) {
	player, err := s.store.Players.Get(ctx)
	if err != nil {
		return nil, err
	}
	settings, err := s.store.Settings.Get(ctx)
	if err != nil {
		return nil, err
	}
	actions, err := s.store.Actions.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	quests, err := s.store.Quests.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	workouts, err := s.store.Workouts.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	return &Snapshot{
		ExportedAt: s.now().Format(time.RFC3339),
		Player:     player,
		Settings:   settings,
		Actions:    actions,
		Quests:     quests,
		Workouts:   workouts,
	}, nil
}

// Import validates the payload, then atomically clears all five tables and
// repopulates them. Missing sections are skipped, not errors. A final seed
// pass guarantees the player and settings rows exist even when the payload
// omitted them. Nothing is written when validation fails.
func (s *Service) Import(ctx context.Context, data []byte) error {
	var probe any
	if err := json.Unmarshal(data, &probe); err != nil {
		return InvalidPayloadError{Reason: err.Error()}
	}
	if _, ok := probe.(map[string]any); !ok {
		return InvalidPayloadError{Reason: "payload is not a JSON object"}
	}

	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return InvalidPayloadError{Reason: err.Error()}
	}

	err := s.store.WithTx(ctx, func(tx *storage.Store) error {
		if err := clearAll(ctx, tx); err != nil {
			return err
		}
		if snap.Player != nil {
			snap.Player.Key = storage.PlayerKey
			if err := tx.Players.Put(ctx, snap.Player); err != nil {
				return err
			}
		}
		if snap.Settings != nil {
			snap.Settings.Key = storage.SettingsKey
			if err := tx.Settings.Put(ctx, snap.Settings); err != nil {
				return err
			}
		}
		for i := range snap.Actions {
			if _, err := tx.Actions.Insert(ctx, &snap.Actions[i]); err != nil {
				return err
			}
		}
		for i := range snap.Quests {
			if _, err := tx.Quests.Insert(ctx, &snap.Quests[i]); err != nil {
				return err
			}
		}
		for i := range snap.Workouts {
			if _, err := tx.Workouts.Insert(ctx, &snap.Workouts[i]); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	if err := s.EnsureSeed(ctx); err != nil {
		return err
	}
	s.log.WithField("actions", len(snap.Actions)).Info("data imported")
	return nil
}

// HardReset clears every table and re-seeds the singletons.
func (s *Service) HardReset(ctx context.Context) error {
	err := s.store.WithTx(ctx, func(tx *storage.Store) error {
		return clearAll(ctx, tx)
	})
	if err != nil {
		return err
	}
	if err := s.EnsureSeed(ctx); err != nil {
		return err
	}
	s.log.Warn("all data reset")
	return nil
}

func clearAll(ctx context.Context, tx *storage.Store) error {
	if err := tx.Players.Clear(ctx); err != nil {
		return err
	}
	if err := tx.Settings.Clear(ctx); err != nil {
		return err
	}
	if err := tx.Actions.Clear(ctx); err != nil {
		return err
	}
	if err := tx.Quests.Clear(ctx); err != nil {
		return err
	}
	return tx.Workouts.Clear(ctx)
}
