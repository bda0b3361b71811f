package storage

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/julianstephens/dayflow/internal/constants"
	"github.com/julianstephens/dayflow/internal/logger"
	"github.com/julianstephens/dayflow/internal/models"
)

func getJSON(p Provider, key string, v any) error {
	data, err := p.Get(key)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("failed to decode %s: %w", key, err)
	}
	return nil
}

func setJSON(p Provider, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", key, err)
	}
	return p.Set(key, data)
}

// LoadTasks returns the stored task list. Missing or unreadable data yields
// an empty list; the problem is logged, never returned.
func LoadTasks(p Provider) []models.Task {
	var tasks []models.Task
	if err := getJSON(p, constants.KeyTasks, &tasks); err != nil {
		if !errors.Is(err, ErrNotFound) {
			logger.Warn("Falling back to empty task list", "error", err)
		}
		return []models.Task{}
	}
	if tasks == nil {
		tasks = []models.Task{}
	}
	return tasks
}

func SaveTasks(p Provider, tasks []models.Task) error {
	if tasks == nil {
		tasks = []models.Task{}
	}
	return setJSON(p, constants.KeyTasks, tasks)
}

// LoadSettings returns the stored settings with defaults filled in. Missing
// or unreadable data yields the default settings.
func LoadSettings(p Provider) models.Settings {
	var s models.Settings
	if err := getJSON(p, constants.KeySettings, &s); err != nil {
		if !errors.Is(err, ErrNotFound) {
			logger.Warn("Falling back to default settings", "error", err)
		}
		return models.DefaultSettings()
	}
	models.ApplyDefaultSettings(&s)
	return s
}

func SaveSettings(p Provider, s models.Settings) error {
	return setJSON(p, constants.KeySettings, s)
}

// LoadUser returns the stored profile, if any.
func LoadUser(p Provider) (models.UserProfile, bool) {
	var u models.UserProfile
	if err := getJSON(p, constants.KeyUser, &u); err != nil {
		if !errors.Is(err, ErrNotFound) {
			logger.Warn("Ignoring unreadable user profile", "error", err)
		}
		return models.UserProfile{}, false
	}
	if u.ID == "" {
		return models.UserProfile{}, false
	}
	return u, true
}

func SaveUser(p Provider, u models.UserProfile) error {
	return setJSON(p, constants.KeyUser, u)
}

func ClearUser(p Provider) error {
	return p.Delete(constants.KeyUser)
}
