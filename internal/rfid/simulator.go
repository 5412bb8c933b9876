// Package rfid simulates an RFID tag population for the dashboard panels.
// There is no hardware behind it: tags, scans, alerts and audits are all
// generated from a seedable random source so panels render reproducible
// data in tests and demos. Readiness and recommendation logic must not
// depend on this package.
package rfid

import (
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/tldm-bits/ordnance-service/internal/models"
)

// TagStatus is the simulated hardware state of a tag.
type TagStatus string

const (
	TagActive  TagStatus = "active"
	TagWeak    TagStatus = "weak_signal"
	TagMissing TagStatus = "missing"
)

// Tag is a simulated RFID tag bound to an ordnance batch.
type Tag struct {
	TagID        string          `json:"tag_id"`
	ItemName     string          `json:"item_name"`
	Category     models.Category `json:"category"`
	Location     string          `json:"location"`
	Status       TagStatus       `json:"status"`
	BatteryLevel int             `json:"battery_level"`
	LastSeen     time.Time       `json:"last_seen"`
}

// ScanEvent is one simulated reader pass over a tag.
type ScanEvent struct {
	TagID          string    `json:"tag_id"`
	Location       string    `json:"location"`
	SignalStrength int       `json:"signal_strength"`
	Detected       bool      `json:"detected"`
	ScannedAt      time.Time `json:"scanned_at"`
}

// Alert flags a tag needing attention.
type Alert struct {
	AlertID  string               `json:"alert_id"`
	TagID    string               `json:"tag_id"`
	Type     string               `json:"type"`
	Message  string               `json:"message"`
	Severity models.AlertSeverity `json:"severity"`
	RaisedAt time.Time            `json:"raised_at"`
}

// AuditReport summarises a full inventory sweep.
type AuditReport struct {
	AuditID      string    `json:"audit_id"`
	StartedAt    time.Time `json:"started_at"`
	TagsExpected int       `json:"tags_expected"`
	TagsFound    int       `json:"tags_found"`
	MissingTags  []string  `json:"missing_tags"`
	Accuracy     float64   `json:"accuracy"`
}

var depotLocations = []string{
	"Lumut Armament Depot",
	"Kota Kinabalu Magazine",
	"Tanjung Gelang Depot",
	"Sepanggar Ordnance Store",
}

var tagItemNames = map[models.Category][]string{
	models.CategoryMissile:     {"Exocet MM40", "Sea Skua"},
	models.CategoryTorpedo:     {"A244/S Torpedo", "Black Shark"},
	models.CategoryAmmunition:  {"76mm Naval Gun Rounds", "30mm Cannon Rounds"},
	models.CategorySeamine:     {"Influence Mine Mk2"},
	models.CategoryPyrotechnic: {"Signal Flare Red", "Smoke Float"},
	models.CategoryDemolition:  {"Demolition Charge M112"},
	models.CategoryNavalMines:  {"Moored Contact Mine"},
}

// Simulator owns the generated tag population. All randomness flows through
// the injected rand.Rand; the clock is injectable for tests.
type Simulator struct {
	mu    sync.Mutex
	rng   *rand.Rand
	now   func() time.Time
	newID func() string

	tags   []Tag
	alerts []Alert
}

// NewSimulator builds a tag population of the requested size.
func NewSimulator(rng *rand.Rand, tagCount int, now func() time.Time) *Simulator {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if now == nil {
		now = time.Now
	}
	if tagCount <= 0 {
		tagCount = 24
	}

	s := &Simulator{
		rng:   rng,
		now:   now,
		newID: uuid.NewString,
	}
	s.populate(tagCount)
	return s
}

func (s *Simulator) populate(count int) {
	generatedAt := s.now().UTC()
	s.tags = make([]Tag, 0, count)

	for i := 0; i < count; i++ {
		category := models.Categories[s.rng.Intn(len(models.Categories))]
		names := tagItemNames[category]

		tag := Tag{
			TagID:        fmt.Sprintf("RFID-%04d", i+1),
			ItemName:     names[s.rng.Intn(len(names))],
			Category:     category,
			Location:     depotLocations[s.rng.Intn(len(depotLocations))],
			Status:       TagActive,
			BatteryLevel: 40 + s.rng.Intn(61),
			LastSeen:     generatedAt.Add(-time.Duration(s.rng.Intn(72)) * time.Hour),
		}

		// Roughly one tag in ten reads weak, one in twenty goes missing.
		switch roll := s.rng.Float64(); {
		case roll < 0.05:
			tag.Status = TagMissing
		case roll < 0.15:
			tag.Status = TagWeak
		}

		s.tags = append(s.tags, tag)
		s.raiseAlertIfNeeded(tag, generatedAt)
	}
}

func (s *Simulator) raiseAlertIfNeeded(tag Tag, at time.Time) {
	switch {
	case tag.Status == TagMissing:
		s.alerts = append(s.alerts, Alert{
			AlertID:  s.newID(),
			TagID:    tag.TagID,
			Type:     "tag_missing",
			Message:  fmt.Sprintf("%s not detected at %s", tag.ItemName, tag.Location),
			Severity: models.SeverityHigh,
			RaisedAt: at,
		})
	case tag.BatteryLevel < 50:
		s.alerts = append(s.alerts, Alert{
			AlertID:  s.newID(),
			TagID:    tag.TagID,
			Type:     "low_battery",
			Message:  fmt.Sprintf("tag battery at %d%%", tag.BatteryLevel),
			Severity: models.SeverityLow,
			RaisedAt: at,
		})
	}
}

// Tags returns a copy of the current tag population.
func (s *Simulator) Tags() []Tag {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Tag, len(s.tags))
	copy(out, s.tags)
	return out
}

// Alerts returns a copy of the outstanding alerts.
func (s *Simulator) Alerts() []Alert {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Alert, len(s.alerts))
	copy(out, s.alerts)
	return out
}

// Scan simulates a reader pass at a location. Missing tags never respond;
// weak tags respond with degraded signal. A detected tag refreshes LastSeen.
func (s *Simulator) Scan(location string) []ScanEvent {
	s.mu.Lock()
	defer s.mu.Unlock()

	scannedAt := s.now().UTC()
	events := []ScanEvent{}

	for i := range s.tags {
		tag := &s.tags[i]
		if location != "" && tag.Location != location {
			continue
		}

		event := ScanEvent{
			TagID:     tag.TagID,
			Location:  tag.Location,
			ScannedAt: scannedAt,
		}

		switch tag.Status {
		case TagMissing:
			event.Detected = false
			event.SignalStrength = 0
		case TagWeak:
			event.Detected = true
			event.SignalStrength = 20 + s.rng.Intn(30)
		default:
			event.Detected = true
			event.SignalStrength = 60 + s.rng.Intn(41)
		}

		if event.Detected {
			tag.LastSeen = scannedAt
		}
		events = append(events, event)
	}

	return events
}

// ErrUnknownTag is returned when an operation names a tag that does not
// exist in the population.
var ErrUnknownTag = fmt.Errorf("unknown rfid tag")

// Transfer relocates a tag to another depot location. Missing tags cannot
// be transferred.
func (s *Simulator) Transfer(tagID, location string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.tags {
		tag := &s.tags[i]
		if tag.TagID != tagID {
			continue
		}
		if tag.Status == TagMissing {
			return fmt.Errorf("tag %s is missing and cannot be transferred", tagID)
		}
		tag.Location = location
		tag.LastSeen = s.now().UTC()
		return nil
	}
	return ErrUnknownTag
}

// RunAudit sweeps the whole population and reports reconciliation accuracy.
func (s *Simulator) RunAudit() AuditReport {
	s.mu.Lock()
	defer s.mu.Unlock()

	startedAt := s.now().UTC()
	report := AuditReport{
		AuditID:      s.newID(),
		StartedAt:    startedAt,
		TagsExpected: len(s.tags),
		MissingTags:  []string{},
	}

	for _, tag := range s.tags {
		if tag.Status == TagMissing {
			report.MissingTags = append(report.MissingTags, tag.TagID)
			continue
		}
		report.TagsFound++
	}

	if report.TagsExpected > 0 {
		report.Accuracy = float64(report.TagsFound) / float64(report.TagsExpected) * 100
	}
	return report
}
