package models

import "testing"

func TestApplyDefaultSettings(t *testing.T) {
	s := Settings{Schedule: Schedule{WakeTime: "06:30"}}
	ApplyDefaultSettings(&s)

	if s.WakeTime != "06:30" {
		t.Errorf("WakeTime overwritten: %s", s.WakeTime)
	}
	if s.RestTime != "23:00" {
		t.Errorf("RestTime = %s, want 23:00", s.RestTime)
	}
	if len(s.RecoveryDays) != 2 || s.RecoveryDays[0] != 0 || s.RecoveryDays[1] != 6 {
		t.Errorf("RecoveryDays = %v, want [0 6]", s.RecoveryDays)
	}
	if s.Language != "en" {
		t.Errorf("Language = %s, want en", s.Language)
	}
	if s.Alarm.Enabled || s.Alarm.Time != "07:00" || s.Alarm.Sound != "forest" {
		t.Errorf("unexpected alarm defaults: %+v", s.Alarm)
	}
}

func TestApplyDefaultSettingsKeepsEmptyRecoveryDays(t *testing.T) {
	s := Settings{Schedule: Schedule{RecoveryDays: []int{}}}
	ApplyDefaultSettings(&s)
	if len(s.RecoveryDays) != 0 {
		t.Errorf("explicit empty recovery days replaced: %v", s.RecoveryDays)
	}
}

func TestDefaultSettingsDoNotShareRecoveryDays(t *testing.T) {
	a := DefaultSettings()
	a.RecoveryDays[0] = 3
	b := DefaultSettings()
	if b.RecoveryDays[0] != 0 {
		t.Error("DefaultSettings shares its recovery days slice")
	}
}

func TestRecordWorkDay(t *testing.T) {
	var s Settings
	s.RecordWorkDay("2024-03-04")
	s.RecordWorkDay("2024-03-04")
	s.RecordWorkDay("2024-03-05")
	if len(s.WorkHistory) != 2 {
		t.Errorf("WorkHistory = %v, want two unique days", s.WorkHistory)
	}
}

func TestIsRecoveryDay(t *testing.T) {
	s := Schedule{RecoveryDays: []int{0, 6}}
	if !s.IsRecoveryDay(0) || !s.IsRecoveryDay(6) {
		t.Error("weekend should be recovery")
	}
	if s.IsRecoveryDay(3) {
		t.Error("wednesday should not be recovery")
	}
}

func TestGuestProfile(t *testing.T) {
	g := GuestProfile()
	if g.ID != "guest" || g.Name != "Guest User" || g.Email != "guest@flow.local" || !g.IsGuest {
		t.Errorf("unexpected guest profile: %+v", g)
	}
}
