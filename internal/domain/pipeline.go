package domain

import (
	"context"
	"time"
)

// ============================================================================
// Canonical pipeline status
// ============================================================================

// PipelineStatus is the single status model shared by both entry paths. The
// two stores persist their own vocabularies; these values are the union, and
// the mapping functions below are the only place the encodings meet.
type PipelineStatus string

const (
	StatusApplied     PipelineStatus = "Applied"
	StatusSubmitted   PipelineStatus = "Submitted"
	StatusScreening   PipelineStatus = "Screening"
	StatusUnderReview PipelineStatus = "Under Review"
	StatusPhoneScreen PipelineStatus = "Phone Screen Scheduled"
	StatusShortlisted PipelineStatus = "Shortlisted"
	StatusInterview   PipelineStatus = "Interview"
	StatusOnsite      PipelineStatus = "Onsite Scheduled"
	StatusOffer       PipelineStatus = "Offer"
	StatusHired       PipelineStatus = "Hired"
	StatusRejected    PipelineStatus = "Rejected"
)

// Onboarding status values, meaningful once a record reaches Hired.
const (
	OnboardingPending    = "Pending"
	OnboardingInProgress = "In Progress"
	OnboardingCompleted  = "Completed"
)

// ValidOnboardingStatus reports whether v is one of the three allowed values.
func ValidOnboardingStatus(v string) bool {
	return v == OnboardingPending || v == OnboardingInProgress || v == OnboardingCompleted
}

var directVocabulary = map[string]PipelineStatus{
	DirectStatusApplied:     StatusApplied,
	DirectStatusScreening:   StatusScreening,
	DirectStatusUnderReview: StatusUnderReview,
	DirectStatusInterview:   StatusInterview,
	DirectStatusOffer:       StatusOffer,
	DirectStatusHired:       StatusHired,
	DirectStatusRejected:    StatusRejected,
}

var candidateVocabulary = map[string]PipelineStatus{
	CandidateStatusSubmitted:   StatusSubmitted,
	CandidateStatusUnderReview: StatusUnderReview,
	CandidateStatusPhoneScreen: StatusPhoneScreen,
	CandidateStatusShortlisted: StatusShortlisted,
	CandidateStatusInterview:   StatusInterview,
	CandidateStatusRejected:    StatusRejected,
	CandidateStatusOnsite:      StatusOnsite,
	CandidateStatusHired:       StatusHired,
}

// CanonicalFromDirect maps a stored DirectApplication status to the canonical
// model. Unknown strings pass through unchanged so legacy data still renders.
func CanonicalFromDirect(s string) PipelineStatus {
	if c, ok := directVocabulary[s]; ok {
		return c
	}
	return PipelineStatus(s)
}

// CanonicalFromCandidate maps a stored Candidate status to the canonical model.
func CanonicalFromCandidate(s string) PipelineStatus {
	if c, ok := candidateVocabulary[s]; ok {
		return c
	}
	return PipelineStatus(s)
}

// ForDirect encodes a canonical status into the DirectApplication vocabulary.
// The second return is false when the direct store has no equivalent.
func (s PipelineStatus) ForDirect() (string, bool) {
	for stored, canonical := range directVocabulary {
		if canonical == s {
			return stored, true
		}
	}
	return "", false
}

// ForCandidate encodes a canonical status into the Candidate vocabulary.
func (s PipelineStatus) ForCandidate() (string, bool) {
	for stored, canonical := range candidateVocabulary {
		if canonical == s {
			return stored, true
		}
	}
	return "", false
}

// ============================================================================
// Resolved handle
// ============================================================================

// EntrySource tags which store owns a resolved pipeline entry.
type EntrySource string

const (
	SourceDirect    EntrySource = "direct"
	SourceCandidate EntrySource = "candidate"
)

// PipelineHandle is the discriminated result of resolving an opaque id.
// Exactly one of Application/Candidate is set, matching Source.
type PipelineHandle struct {
	Source      EntrySource
	Application *DirectApplication
	Candidate   *Candidate
}

func (h *PipelineHandle) ID() string {
	if h.Source == SourceDirect {
		return h.Application.ID
	}
	return h.Candidate.ID
}

func (h *PipelineHandle) Status() PipelineStatus {
	if h.Source == SourceDirect {
		return CanonicalFromDirect(h.Application.Status)
	}
	return CanonicalFromCandidate(h.Candidate.Status)
}

func (h *PipelineHandle) OnboardingStatus() string {
	if h.Source == SourceDirect {
		return h.Application.OnboardingStatus
	}
	return h.Candidate.OnboardingStatus
}

func (h *PipelineHandle) Email() string {
	if h.Source == SourceDirect {
		return h.Application.Email
	}
	return h.Candidate.Email
}

func (h *PipelineHandle) DisplayName() string {
	if h.Source == SourceDirect {
		return h.Application.CandidateName
	}
	return h.Candidate.DisplayName()
}

// ============================================================================
// Unified view
// ============================================================================

// Entry types exposed by the hired (onboarding) view.
const (
	EntryTypeDirect = "Direct"
	EntryTypeAgency = "Agency"
)

// PipelineEntry is the normalized, store-agnostic projection exposed to every
// consumer. For recruiter submissions the id is the Candidate id, because
// that is the record transitions write to.
type PipelineEntry struct {
	ID                    string    `json:"id"`
	CandidateName         string    `json:"candidate_name"`
	Email                 string    `json:"email"`
	Phone                 string    `json:"phone,omitempty"`
	Position              string    `json:"position"`
	Department            string    `json:"department,omitempty"`
	Status                string    `json:"status"`
	ResumeURL             string    `json:"resume_url,omitempty"`
	OnboardingStatus      string    `json:"onboarding_status"`
	AppliedAt             time.Time `json:"applied_at"`
	IsRecruiterSubmission bool      `json:"is_recruiter_submission"`
	Type                  string    `json:"type,omitempty"` // Direct | Agency, hired view only
}

// PipelineFilter is stateless post-processing over the already-unified list.
type PipelineFilter struct {
	Status   string `json:"status,omitempty" form:"status"`
	Search   string `json:"search,omitempty" form:"search"`
	Page     int    `json:"page" form:"page"`
	PageSize int    `json:"page_size" form:"page_size"`
}

// PaginatedResult for list responses
type PaginatedResult[T any] struct {
	Data       []T   `json:"data"`
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	PageSize   int   `json:"pageSize"`
	TotalPages int   `json:"totalPages"`
}

// PipelineExportRequest selects columns and format for a pipeline export.
type PipelineExportRequest struct {
	Filter  PipelineFilter `json:"filter"`
	Columns []string       `json:"columns"`
	Format  string         `json:"format"` // "xlsx" or "csv"
}

// ExportableColumns lists all pipeline columns that can be exported.
var ExportableColumns = []string{
	"candidate_name",
	"email",
	"phone",
	"position",
	"status",
	"onboarding_status",
	"applied_at",
	"source",
}

// ============================================================================
// Usecase Interface
// ============================================================================

// PipelineUsecase is the entity resolution and status reconciliation engine:
// one coherent pipeline over two heterogeneous stores.
type PipelineUsecase interface {
	// Resolve locates the store owning id. Read-only.
	Resolve(ctx context.Context, id string) (*PipelineHandle, error)

	// Transitions. Each routes through Resolve and writes only to the owning
	// store. All are idempotent at the record level.
	Review(ctx context.Context, id string) (*PipelineEntry, error)
	Reject(ctx context.Context, id string) (*PipelineEntry, error)
	Hire(ctx context.Context, id string) (*PipelineEntry, error)
	SetOnboardingStatus(ctx context.Context, id, value string) (*PipelineEntry, error)

	// Unified views.
	ListPipeline(ctx context.Context, filter PipelineFilter) (*PaginatedResult[PipelineEntry], error)
	HistoryByEmail(ctx context.Context, email string) ([]PipelineEntry, error)
	HiredPipeline(ctx context.Context) ([]PipelineEntry, error)
	ExportPipeline(ctx context.Context, req PipelineExportRequest) ([]byte, string, error)
}
