package session

import (
	"sync"

	"github.com/xuri/excelize/v2"

	"github.com/victorhprada/excel-automation/internal/model"
)

// Outcome statuses for one slot's last processing attempt.
const (
	StatusOK         = "ok"
	StatusMissing    = "missing_file"
	StatusUnreadable = "unreadable_file"
)

// Outcome records how the last processing run ended for a slot.
type Outcome struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// Session is the per-user interaction state: the selected period, the
// uploads waiting for processing and the tables produced from them.
// Everything here dies with the session; nothing is persisted.
type Session struct {
	ID string

	mu           sync.RWMutex
	period       model.Period
	uploads      map[model.Slot]*model.UploadedFile
	tables       map[model.Slot]*model.Table
	outcomes     map[model.Slot]Outcome
	baseWorkbook *excelize.File
	processed    bool
}

func newSession(id string) *Session {
	return &Session{
		ID:       id,
		period:   model.DefaultPeriod(),
		uploads:  make(map[model.Slot]*model.UploadedFile),
		tables:   make(map[model.Slot]*model.Table),
		outcomes: make(map[model.Slot]Outcome),
	}
}

// Period returns the current selection.
func (s *Session) Period() model.Period {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.period
}

// SetPeriod stores the selection. The caller validates the values.
func (s *Session) SetPeriod(p model.Period) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.period = p
}

// Upload returns the pending upload for the slot, or nil.
func (s *Session) Upload(slot model.Slot) *model.UploadedFile {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.uploads[slot]
}

// SetUpload replaces the slot's upload and invalidates any table parsed
// from the previous file.
func (s *Session) SetUpload(slot model.Slot, file *model.UploadedFile) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.uploads[slot] = file
	delete(s.tables, slot)
	delete(s.outcomes, slot)
	if slot == model.SlotBase {
		s.baseWorkbook = nil
	}
}

// Table returns the loaded table for the slot, or nil.
func (s *Session) Table(slot model.Slot) *model.Table {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.tables[slot]
}

// SetTable stores a successfully parsed table and marks the session as
// processed.
func (s *Session) SetTable(slot model.Slot, table *model.Table) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tables[slot] = table
	s.outcomes[slot] = Outcome{Status: StatusOK}
	s.processed = true
}

// SetFailure records a failed load for the slot. The other slot is not
// affected.
func (s *Session) SetFailure(slot model.Slot, status, message string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.tables, slot)
	s.outcomes[slot] = Outcome{Status: status, Message: message}
}

// Outcome returns the slot's last processing outcome.
func (s *Session) Outcome(slot model.Slot) (Outcome, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	o, ok := s.outcomes[slot]
	return o, ok
}

// SetBaseWorkbook retains the BASE workbook object so formulas survive
// past parsing, mirroring what the preview reports.
func (s *Session) SetBaseWorkbook(f *excelize.File) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.baseWorkbook = f
}

// BaseWorkbook returns the retained BASE workbook, or nil.
func (s *Session) BaseWorkbook() *excelize.File {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.baseWorkbook
}

// Processed reports whether at least one table was loaded successfully.
func (s *Session) Processed() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.processed
}
