package repositories

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"

	"chatflow/src/models"
	"chatflow/src/services/storage"
)

// ProfileKey is the fixed storage key holding the serialized user profile.
const ProfileKey = "chatapp_user"

// ProfileRepository persists the single logged-in user profile.
type ProfileRepository struct {
	store  storage.KeyValueStore
	logger *slog.Logger
}

// NewProfileRepository creates a repository over store. A nil logger discards output.
func NewProfileRepository(store storage.KeyValueStore, logger *slog.Logger) *ProfileRepository {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &ProfileRepository{store: store, logger: logger}
}

// Load returns the stored profile, or nil when none is stored. A value that
// does not parse is discarded and the key cleared; that case also returns nil.
func (r *ProfileRepository) Load() (*models.User, error) {
	data, err := r.store.Get(ProfileKey)
	if err != nil {
		if storage.IsNotFound(err) {
			return nil, nil
		}
		return nil, &models.StorageError{Message: "failed to read stored profile", Err: err}
	}
	var user models.User
	err = json.Unmarshal(data, &user)
	if err == nil && (user.ID == "" || user.Username == "") {
		// null and {} decode cleanly but carry no identity.
		err = errors.New("profile has no id or username")
	}
	if err != nil {
		r.logger.Error("discarding corrupt stored profile", "key", ProfileKey, "error", err)
		if derr := r.store.Delete(ProfileKey); derr != nil {
			return nil, &models.StorageError{Message: "failed to clear corrupt profile", Err: derr}
		}
		return nil, nil
	}
	return &user, nil
}

// Save stores user under ProfileKey.
func (r *ProfileRepository) Save(user models.User) error {
	data, err := json.Marshal(user)
	if err != nil {
		return &models.StorageError{Message: "failed to marshal profile", Err: err}
	}
	return r.store.Put(ProfileKey, data)
}

// Clear removes the stored profile.
func (r *ProfileRepository) Clear() error {
	return r.store.Delete(ProfileKey)
}
