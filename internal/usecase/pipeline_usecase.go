package usecase

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"go-pipeline-tracker/internal/domain"
	"go-pipeline-tracker/pkg/apperror"
	"go-pipeline-tracker/pkg/logger"

	"github.com/xuri/excelize/v2"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
	exportRowLimit  = 10000
)

// Limits bounds pagination and export size for the unified views. Zero
// fields fall back to the package defaults.
type Limits struct {
	DefaultPageSize int
	MaxPageSize     int
	ExportRowLimit  int
}

func (l Limits) withDefaults() Limits {
	if l.DefaultPageSize <= 0 {
		l.DefaultPageSize = defaultPageSize
	}
	if l.MaxPageSize <= 0 {
		l.MaxPageSize = maxPageSize
	}
	if l.ExportRowLimit <= 0 {
		l.ExportRowLimit = exportRowLimit
	}
	return l
}

type pipelineUsecase struct {
	appRepo  domain.ApplicationRepository
	candRepo domain.CandidateRepository
	subRepo  domain.SubmissionRepository
	limits   Limits
}

// NewPipelineUsecase creates the entity resolution and status reconciliation
// engine over the two pipeline stores.
func NewPipelineUsecase(
	appRepo domain.ApplicationRepository,
	candRepo domain.CandidateRepository,
	subRepo domain.SubmissionRepository,
	limits Limits,
) domain.PipelineUsecase {
	return &pipelineUsecase{
		appRepo:  appRepo,
		candRepo: candRepo,
		subRepo:  subRepo,
		limits:   limits.withDefaults(),
	}
}

// ============================================================================
// Entity Resolver
// ============================================================================

// Resolve locates the store owning id. Lookup order is fixed: the direct
// application store first, then the candidate store. When, by data
// corruption, both stores own the id, the direct match wins and the
// ambiguity is logged; the candidate record is never silently preferred.
func (uc *pipelineUsecase) Resolve(ctx context.Context, id string) (*domain.PipelineHandle, error) {
	app, err := uc.appRepo.GetByID(ctx, id)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, apperror.Internal(err)
	}

	if app != nil {
		if cand, candErr := uc.candRepo.GetByID(ctx, id); candErr == nil && cand != nil {
			logger.Log.Warn("pipeline id owned by both stores, resolving to direct application",
				"id", id)
		}
		return &domain.PipelineHandle{Source: domain.SourceDirect, Application: app}, nil
	}

	cand, err := uc.candRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Record not found")
		}
		return nil, apperror.Internal(err)
	}
	return &domain.PipelineHandle{Source: domain.SourceCandidate, Candidate: cand}, nil
}

// ============================================================================
// Status Transition Engine
// ============================================================================

// Review sets the store-appropriate "Under Review" status.
func (uc *pipelineUsecase) Review(ctx context.Context, id string) (*domain.PipelineEntry, error) {
	return uc.transition(ctx, id, domain.StatusUnderReview)
}

// Reject moves the entry to Rejected. Idempotent: rejecting a rejected
// record re-asserts Rejected without error.
func (uc *pipelineUsecase) Reject(ctx context.Context, id string) (*domain.PipelineEntry, error) {
	return uc.transition(ctx, id, domain.StatusRejected)
}

// transition validates the canonical status against the owning store's
// vocabulary and writes it to that store only.
func (uc *pipelineUsecase) transition(ctx context.Context, id string, status domain.PipelineStatus) (*domain.PipelineEntry, error) {
	handle, err := uc.Resolve(ctx, id)
	if err != nil {
		return nil, err
	}

	switch handle.Source {
	case domain.SourceDirect:
		stored, ok := status.ForDirect()
		if !ok {
			return nil, apperror.BadRequest(fmt.Sprintf("Status %q is not valid for a direct application", status))
		}
		if err := uc.appRepo.UpdateStatus(ctx, id, stored); err != nil {
			return nil, storeError(err)
		}
		handle.Application.Status = stored
	case domain.SourceCandidate:
		stored, ok := status.ForCandidate()
		if !ok {
			return nil, apperror.BadRequest(fmt.Sprintf("Status %q is not valid for a recruiter candidate", status))
		}
		if err := uc.candRepo.UpdateStatus(ctx, id, stored); err != nil {
			return nil, storeError(err)
		}
		handle.Candidate.Status = stored
	}

	return entryFromHandle(handle), nil
}

// Hire moves the entry to Hired and initializes onboarding in the same
// write. Re-hiring a hired record keeps an onboarding status that has
// already advanced instead of regressing it to Pending.
func (uc *pipelineUsecase) Hire(ctx context.Context, id string) (*domain.PipelineEntry, error) {
	handle, err := uc.Resolve(ctx, id)
	if err != nil {
		return nil, err
	}

	onboarding := domain.OnboardingPending
	if handle.Status() == domain.StatusHired && domain.ValidOnboardingStatus(handle.OnboardingStatus()) {
		onboarding = handle.OnboardingStatus()
	}

	switch handle.Source {
	case domain.SourceDirect:
		if err := uc.appRepo.UpdateStatusAndOnboarding(ctx, id, domain.DirectStatusHired, onboarding); err != nil {
			return nil, storeError(err)
		}
		handle.Application.Status = domain.DirectStatusHired
		handle.Application.OnboardingStatus = onboarding
	case domain.SourceCandidate:
		if err := uc.candRepo.UpdateStatusAndOnboarding(ctx, id, domain.CandidateStatusHired, onboarding); err != nil {
			return nil, storeError(err)
		}
		handle.Candidate.Status = domain.CandidateStatusHired
		handle.Candidate.OnboardingStatus = onboarding
	}

	return entryFromHandle(handle), nil
}

// SetOnboardingStatus writes the onboarding flag to whichever store owns the
// id. The value is validated; the hire state deliberately is not, matching
// the permissive behavior the onboarding dashboard depends on.
func (uc *pipelineUsecase) SetOnboardingStatus(ctx context.Context, id, value string) (*domain.PipelineEntry, error) {
	if !domain.ValidOnboardingStatus(value) {
		return nil, apperror.BadRequest("Invalid onboarding status value")
	}

	handle, err := uc.Resolve(ctx, id)
	if err != nil {
		return nil, err
	}

	switch handle.Source {
	case domain.SourceDirect:
		if err := uc.appRepo.SetOnboardingStatus(ctx, id, value); err != nil {
			return nil, storeError(err)
		}
		handle.Application.OnboardingStatus = value
	case domain.SourceCandidate:
		if err := uc.candRepo.SetOnboardingStatus(ctx, id, value); err != nil {
			return nil, storeError(err)
		}
		handle.Candidate.OnboardingStatus = value
	}

	return entryFromHandle(handle), nil
}

// storeError keeps a NotFound surfaced by a concurrent delete client-visible
// and wraps everything else as a transient server failure.
func storeError(err error) error {
	if errors.Is(err, domain.ErrNotFound) {
		return apperror.NotFound("Record not found")
	}
	return apperror.Internal(err)
}

// ============================================================================
// Unified View Builder
// ============================================================================

// ListPipeline merges both entry paths into one normalized list: every
// direct application plus every submission whose candidate and position both
// still resolve. Orphaned submissions contribute nothing.
func (uc *pipelineUsecase) ListPipeline(ctx context.Context, filter domain.PipelineFilter) (*domain.PaginatedResult[domain.PipelineEntry], error) {
	apps, err := uc.appRepo.Fetch(ctx)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	subs, err := uc.subRepo.FetchWithRefs(ctx)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	entries := make([]domain.PipelineEntry, 0, len(apps)+len(subs))
	for i := range apps {
		entries = append(entries, entryFromApplication(&apps[i]))
	}
	for i := range subs {
		if entry, ok := entryFromSubmission(&subs[i]); ok {
			entries = append(entries, entry)
		}
	}

	sortEntries(entries)
	entries = applyFilter(entries, filter)

	return paginate(entries, filter, uc.limits), nil
}

// HistoryByEmail returns every pipeline entry an email has ever produced
// across both stores, newest first. Auditor view.
func (uc *pipelineUsecase) HistoryByEmail(ctx context.Context, email string) ([]domain.PipelineEntry, error) {
	if email == "" {
		return nil, apperror.BadRequest("Email is required")
	}

	apps, err := uc.appRepo.FetchByEmail(ctx, email)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	cands, err := uc.candRepo.FetchByEmail(ctx, email)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	entries := make([]domain.PipelineEntry, 0, len(apps)+len(cands))
	for i := range apps {
		entries = append(entries, entryFromApplication(&apps[i]))
	}
	for i := range cands {
		entries = append(entries, entryFromCandidate(&cands[i]))
	}

	sortEntries(entries)
	return entries, nil
}

// HiredPipeline is the unified view narrowed to hired entries, with the
// position department and the entry path tag the onboarding dashboard shows.
func (uc *pipelineUsecase) HiredPipeline(ctx context.Context) ([]domain.PipelineEntry, error) {
	apps, err := uc.appRepo.FetchByStatus(ctx, domain.DirectStatusHired)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	subs, err := uc.subRepo.FetchWithRefs(ctx)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	entries := make([]domain.PipelineEntry, 0, len(apps))
	for i := range apps {
		entry := entryFromApplication(&apps[i])
		entry.Type = domain.EntryTypeDirect
		entries = append(entries, entry)
	}
	for i := range subs {
		entry, ok := entryFromSubmission(&subs[i])
		if !ok || entry.Status != string(domain.StatusHired) {
			continue
		}
		entry.Type = domain.EntryTypeAgency
		entry.Department = subs[i].Position.Department
		entries = append(entries, entry)
	}

	sortEntries(entries)
	return entries, nil
}

// ============================================================================
// Projections
// ============================================================================

func entryFromApplication(app *domain.DirectApplication) domain.PipelineEntry {
	return domain.PipelineEntry{
		ID:               app.ID,
		CandidateName:    app.CandidateName,
		Email:            app.Email,
		Phone:            app.Phone,
		Position:         app.Position,
		Status:           string(domain.CanonicalFromDirect(app.Status)),
		ResumeURL:        app.ResumeURL,
		OnboardingStatus: orPending(app.OnboardingStatus),
		AppliedAt:        app.AppliedAt,
	}
}

// entryFromSubmission projects a populated join into the unified shape. The
// candidate id is used as the entry id because transitions write to the
// candidate record. Returns false for orphaned joins.
func entryFromSubmission(sub *domain.SubmissionWithRefs) (domain.PipelineEntry, bool) {
	if sub.Candidate == nil || sub.Position == nil {
		return domain.PipelineEntry{}, false
	}
	return domain.PipelineEntry{
		ID:                    sub.Candidate.ID,
		CandidateName:         sub.Candidate.DisplayName(),
		Email:                 sub.Candidate.Email,
		Phone:                 sub.Candidate.Phone,
		Position:              sub.Position.Title,
		Status:                string(domain.CanonicalFromCandidate(sub.Candidate.Status)),
		ResumeURL:             sub.Candidate.ResumePath,
		OnboardingStatus:      orPending(sub.Candidate.OnboardingStatus),
		AppliedAt:             sub.CreatedAt,
		IsRecruiterSubmission: true,
	}, true
}

func entryFromCandidate(cand *domain.Candidate) domain.PipelineEntry {
	return domain.PipelineEntry{
		ID:                    cand.ID,
		CandidateName:         cand.DisplayName(),
		Email:                 cand.Email,
		Phone:                 cand.Phone,
		Position:              cand.Position,
		Status:                string(domain.CanonicalFromCandidate(cand.Status)),
		ResumeURL:             cand.ResumePath,
		OnboardingStatus:      orPending(cand.OnboardingStatus),
		AppliedAt:             cand.CreatedAt,
		IsRecruiterSubmission: true,
	}
}

func entryFromHandle(handle *domain.PipelineHandle) *domain.PipelineEntry {
	var entry domain.PipelineEntry
	switch handle.Source {
	case domain.SourceDirect:
		entry = entryFromApplication(handle.Application)
	case domain.SourceCandidate:
		entry = entryFromCandidate(handle.Candidate)
	}
	return &entry
}

func orPending(onboarding string) string {
	if onboarding == "" {
		return domain.OnboardingPending
	}
	return onboarding
}

// sortEntries orders newest first. Stable, so equal timestamps keep the
// input order.
func sortEntries(entries []domain.PipelineEntry) {
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].AppliedAt.After(entries[j].AppliedAt)
	})
}

// ============================================================================
// Filtering & pagination (stateless post-processing)
// ============================================================================

func applyFilter(entries []domain.PipelineEntry, filter domain.PipelineFilter) []domain.PipelineEntry {
	if filter.Status == "" && filter.Search == "" {
		return entries
	}

	search := strings.ToLower(filter.Search)
	filtered := make([]domain.PipelineEntry, 0, len(entries))
	for _, e := range entries {
		if filter.Status != "" && !strings.EqualFold(e.Status, filter.Status) {
			continue
		}
		if search != "" {
			haystack := strings.ToLower(e.CandidateName + " " + e.Email + " " + e.Position)
			if !strings.Contains(haystack, search) {
				continue
			}
		}
		filtered = append(filtered, e)
	}
	return filtered
}

func paginate(entries []domain.PipelineEntry, filter domain.PipelineFilter, limits Limits) *domain.PaginatedResult[domain.PipelineEntry] {
	page := filter.Page
	if page < 1 {
		page = 1
	}
	pageSize := filter.PageSize
	if pageSize <= 0 {
		pageSize = limits.DefaultPageSize
	}
	if pageSize > limits.MaxPageSize {
		pageSize = limits.MaxPageSize
	}

	total := int64(len(entries))
	totalPages := int(total) / pageSize
	if int(total)%pageSize > 0 {
		totalPages++
	}

	start := (page - 1) * pageSize
	if start > len(entries) {
		start = len(entries)
	}
	end := start + pageSize
	if end > len(entries) {
		end = len(entries)
	}

	return &domain.PaginatedResult[domain.PipelineEntry]{
		Data:       entries[start:end],
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
	}
}

// ============================================================================
// Export
// ============================================================================

// ExportPipeline exports the filtered unified list to Excel or CSV.
func (uc *pipelineUsecase) ExportPipeline(ctx context.Context, req domain.PipelineExportRequest) ([]byte, string, error) {
	apps, err := uc.appRepo.Fetch(ctx)
	if err != nil {
		return nil, "", apperror.Internal(err)
	}
	subs, err := uc.subRepo.FetchWithRefs(ctx)
	if err != nil {
		return nil, "", apperror.Internal(err)
	}

	entries := make([]domain.PipelineEntry, 0, len(apps)+len(subs))
	for i := range apps {
		entries = append(entries, entryFromApplication(&apps[i]))
	}
	for i := range subs {
		if entry, ok := entryFromSubmission(&subs[i]); ok {
			entries = append(entries, entry)
		}
	}
	sortEntries(entries)
	entries = applyFilter(entries, req.Filter)
	if len(entries) > uc.limits.ExportRowLimit {
		entries = entries[:uc.limits.ExportRowLimit]
	}

	if len(req.Columns) == 0 {
		req.Columns = domain.ExportableColumns
	}
	validColumns := make(map[string]bool)
	for _, col := range domain.ExportableColumns {
		validColumns[col] = true
	}
	for _, col := range req.Columns {
		if !validColumns[col] {
			return nil, "", apperror.BadRequest(fmt.Sprintf("Invalid export column: %s", col))
		}
	}

	switch req.Format {
	case "csv":
		return exportCSV(entries, req.Columns)
	case "xlsx", "":
		return exportExcel(entries, req.Columns)
	default:
		return nil, "", apperror.BadRequest(fmt.Sprintf("Unsupported export format: %s", req.Format))
	}
}

var exportHeaderNames = map[string]string{
	"candidate_name":    "CANDIDATE",
	"email":             "EMAIL",
	"phone":             "PHONE",
	"position":          "POSITION",
	"status":            "STATUS",
	"onboarding_status": "ONBOARDING",
	"applied_at":        "APPLIED AT",
	"source":            "SOURCE",
}

func exportFieldValue(e domain.PipelineEntry, field string) string {
	switch field {
	case "candidate_name":
		return e.CandidateName
	case "email":
		return e.Email
	case "phone":
		return e.Phone
	case "position":
		return e.Position
	case "status":
		return e.Status
	case "onboarding_status":
		return e.OnboardingStatus
	case "applied_at":
		return e.AppliedAt.Format("2006-01-02")
	case "source":
		if e.IsRecruiterSubmission {
			return "Recruiter"
		}
		return "Direct"
	default:
		return ""
	}
}

// exportExcel generates an Excel file from the unified list
func exportExcel(entries []domain.PipelineEntry, columns []string) ([]byte, string, error) {
	f := excelize.NewFile()
	sheetName := "Pipeline"
	f.SetSheetName("Sheet1", sheetName)

	for i, col := range columns {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		headerName := exportHeaderNames[col]
		if headerName == "" {
			headerName = col
		}
		f.SetCellValue(sheetName, cell, headerName)
	}

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "#FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"#1E3A5F"}},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	endCell, _ := excelize.CoordinatesToCellName(len(columns), 1)
	f.SetCellStyle(sheetName, "A1", endCell, headerStyle)

	for rowIdx, entry := range entries {
		for colIdx, col := range columns {
			cell, _ := excelize.CoordinatesToCellName(colIdx+1, rowIdx+2)
			f.SetCellValue(sheetName, cell, exportFieldValue(entry, col))
		}
	}

	for i := range columns {
		colName, _ := excelize.ColumnNumberToName(i + 1)
		f.SetColWidth(sheetName, colName, colName, 20)
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, "", apperror.Internal(err)
	}

	filename := fmt.Sprintf("pipeline_%s.xlsx", time.Now().Format("20060102_150405"))
	return buf.Bytes(), filename, nil
}

// exportCSV generates a CSV file from the unified list
func exportCSV(entries []domain.PipelineEntry, columns []string) ([]byte, string, error) {
	var buf bytes.Buffer

	buf.WriteString(strings.Join(columns, ",") + "\n")
	for _, entry := range entries {
		var values []string
		for _, col := range columns {
			value := exportFieldValue(entry, col)
			if strings.ContainsAny(value, ",\"\n") {
				value = "\"" + strings.ReplaceAll(value, "\"", "\"\"") + "\""
			}
			values = append(values, value)
		}
		buf.WriteString(strings.Join(values, ",") + "\n")
	}

	filename := fmt.Sprintf("pipeline_%s.csv", time.Now().Format("20060102_150405"))
	return buf.Bytes(), filename, nil
}
