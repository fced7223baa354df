// Package registry owns the canonical in-memory set of ward records: it
// generates the synthetic initial state, keeps scores and ranks derived, and
// is the only sanctioned read/write surface over that state. One instance is
// constructed at startup and handed to every collaborator; all access
// serializes through its mutex.
package registry

import (
	"log"
	"math/rand"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"ward_dashboard/models"
)

// DefaultWardCount matches the number of Delhi's administrative wards the
// dashboard models.
const DefaultWardCount = 250

type Registry struct {
	mu    sync.RWMutex
	wards []*models.Ward
	byID  map[string]*models.Ward
	rng   *rand.Rand

	observers []func()
}

// New builds a registry with the default ward count and a time-based seed.
func New() *Registry {
	return NewSeeded(DefaultWardCount, time.Now().UnixNano())
}

// NewSeeded builds a registry with an explicit ward count and RNG seed so
// fixtures and tests get reproducible data.
func NewSeeded(count int, seed int64) *Registry {
	r := &Registry{
		byID: make(map[string]*models.Ward, count),
		rng:  rand.New(rand.NewSource(seed)),
	}

	r.wards = r.generateWards(count)
	for _, w := range r.wards {
		r.byID[w.WardID] = w
	}
	r.recomputeScoresAndRanksLocked()

	log.Printf("Ward registry initialized with %d wards", len(r.wards))
	return r
}

// OnChange registers a callback fired after any mutation completes,
// including the score/rank recomputation when one is triggered. Callbacks
// run outside the registry lock.
func (r *Registry) OnChange(fn func()) {
	r.mu.Lock()
	r.observers = append(r.observers, fn)
	r.mu.Unlock()
}

func (r *Registry) notify() {
	r.mu.RLock()
	observers := make([]func(), len(r.observers))
	copy(observers, r.observers)
	r.mu.RUnlock()

	for _, fn := range observers {
		fn()
	}
}

// Count reports the number of wards.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.wards)
}

// GetAll returns a deep copy of every ward in creation order.
func (r *Registry) GetAll() []models.Ward {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.Ward, 0, len(r.wards))
	for _, w := range r.wards {
		out = append(out, w.Clone())
	}
	return out
}

// GetByID returns a copy of the ward, or false if the id is unknown.
func (r *Registry) GetByID(wardID string) (models.Ward, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	w, ok := r.byID[wardID]
	if !ok {
		return models.Ward{}, false
	}
	return w.Clone(), true
}

// GetByZone returns every ward whose zone name contains the query,
// case-insensitively.
func (r *Registry) GetByZone(zone string) []models.Ward {
	needle := strings.ToLower(zone)

	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.Ward, 0)
	for _, w := range r.wards {
		if strings.Contains(strings.ToLower(w.Zone), needle) {
			out = append(out, w.Clone())
		}
	}
	return out
}

// Search matches the query as a case-insensitive substring of ward name,
// ward code or zone. The registry applies no minimum query length; that
// convention belongs to callers.
func (r *Registry) Search(query string) []models.Ward {
	needle := strings.ToLower(query)

	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.Ward, 0)
	for _, w := range r.wards {
		if strings.Contains(strings.ToLower(w.WardName), needle) ||
			strings.Contains(strings.ToLower(w.WardCode), needle) ||
			strings.Contains(strings.ToLower(w.Zone), needle) {
			out = append(out, w.Clone())
		}
	}
	return out
}

// Top returns the n best-scoring wards, descending.
func (r *Registry) Top(n int) []models.Ward {
	return r.sortedByScore(n, func(a, b *models.Ward) bool {
		return a.PollutionScore > b.PollutionScore
	})
}

// Bottom returns the n worst-scoring wards, ascending.
func (r *Registry) Bottom(n int) []models.Ward {
	return r.sortedByScore(n, func(a, b *models.Ward) bool {
		return a.PollutionScore < b.PollutionScore
	})
}

func (r *Registry) sortedByScore(n int, less func(a, b *models.Ward) bool) []models.Ward {
	r.mu.RLock()
	sorted := append([]*models.Ward(nil), r.wards...)
	sort.SliceStable(sorted, func(i, j int) bool { return less(sorted[i], sorted[j]) })

	if n > len(sorted) {
		n = len(sorted)
	}
	if n < 0 {
		n = 0
	}
	out := make([]models.Ward, 0, n)
	for _, w := range sorted[:n] {
		out = append(out, w.Clone())
	}
	r.mu.RUnlock()

	return out
}

// ComplaintInput carries the citizen-supplied fields of a new complaint.
// Type, Severity, Location and Reporter are optional.
type ComplaintInput struct {
	Type     models.ComplaintType `json:"type"`
	Severity models.Severity      `json:"severity"`
	Location string               `json:"location"`
	Text     string               `json:"text"`
	Reporter string               `json:"reporter"`
}

// AddComplaint appends a new open complaint to the ward and bumps its
// citizenReports counter. Returns false without mutating anything when the
// ward id is unknown. Complaints never affect pollution scores, so no
// recomputation runs.
func (r *Registry) AddComplaint(wardID string, input ComplaintInput) (models.Complaint, bool) {
	complaint := models.Complaint{
		ID:        uuid.NewString(),
		Type:      input.Type,
		Severity:  input.Severity,
		Location:  input.Location,
		Text:      input.Text,
		Reporter:  input.Reporter,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Status:    models.StatusOpen,
		Supports:  0,
	}
	if complaint.Reporter == "" {
		complaint.Reporter = "Anonymous"
	}

	r.mu.Lock()
	w, ok := r.byID[wardID]
	if !ok {
		r.mu.Unlock()
		return models.Complaint{}, false
	}
	w.Complaints = append(w.Complaints, complaint)
	w.CitizenReports++
	r.mu.Unlock()

	r.notify()
	return complaint, true
}

// SupportComplaint increments the supports counter of the complaint.
// Unknown ward or complaint ids are no-ops; the returned count is only
// meaningful when found is true. Repeat supports are allowed and unbounded.
func (r *Registry) SupportComplaint(wardID, complaintID string) (supports int, found bool) {
	r.mu.Lock()
	w, ok := r.byID[wardID]
	if ok {
		for i := range w.Complaints {
			if w.Complaints[i].ID == complaintID {
				w.Complaints[i].Supports++
				supports = w.Complaints[i].Supports
				found = true
				break
			}
		}
	}
	r.mu.Unlock()

	if found {
		r.notify()
	}
	return supports, found
}

// UpdateLiveData perturbs the ward's AQI by at most 5 in either direction,
// floored at zero, re-derives the air status, refreshes the reading
// timestamp and then reruns the full score/rank pass. This is the only
// operation that changes scores after generation.
func (r *Registry) UpdateLiveData(wardID string) bool {
	r.mu.Lock()
	w, ok := r.byID[wardID]
	if !ok {
		r.mu.Unlock()
		return false
	}

	change := r.rng.Intn(11) - 5
	aqi := w.Pollution.Air.AQI + change
	if aqi < 0 {
		aqi = 0
	}
	w.Pollution.Air.AQI = aqi
	w.Pollution.Air.Status = AQIStatus(aqi)
	w.Pollution.Air.Timestamp = time.Now().UTC().Format(time.RFC3339)

	r.recomputeScoresAndRanksLocked()
	r.mu.Unlock()

	r.notify()
	return true
}

// UpdateRandomWard applies a live update to one uniformly chosen ward and
// returns its id. Used by the periodic updater.
func (r *Registry) UpdateRandomWard() string {
	// rng is only safe under the write lock.
	r.mu.Lock()
	if len(r.wards) == 0 {
		r.mu.Unlock()
		return ""
	}
	wardID := r.wards[r.rng.Intn(len(r.wards))].WardID
	r.mu.Unlock()

	r.UpdateLiveData(wardID)
	return wardID
}
