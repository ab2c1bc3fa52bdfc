package repositories

import (
	"context"

	"captura-leads.backend/internal/domain/entities"
	domainRepos "captura-leads.backend/internal/domain/repositories"
	"captura-leads.backend/internal/infrastructure/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// LeadRepository implements lead data operations
type LeadRepository struct {
	db *gorm.DB
}

// NewLeadRepository creates a new lead repository
func NewLeadRepository(db *gorm.DB) *LeadRepository {
	return &LeadRepository{db: db}
}

// Create creates a new lead
func (r *LeadRepository) Create(ctx context.Context, lead *entities.Lead) error {
	return translateError(GetDB(ctx, r.db).Create(r.toModel(lead)).Error)
}

// GetByID gets a lead by ID
func (r *LeadRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Lead, error) {
	var m models.Lead
	if err := GetDB(ctx, r.db).Where("id = ?", id).First(&m).Error; err != nil {
		return nil, translateError(err)
	}
	return r.toEntity(&m), nil
}

// Update writes every mutable column
func (r *LeadRepository) Update(ctx context.Context, lead *entities.Lead) error {
	fields := map[string]interface{}{
		"name":           lead.Name,
		"email":          lead.Email,
		"phone":          lead.Phone,
		"status":         string(lead.Status),
		"is_active":      lead.IsActive,
		"tax_id":         lead.TaxID,
		"profession":     lead.Profession,
		"license_number": lead.LicenseNumber,
		"experience":     lead.Experience,
	}
	addressUpdates(fields, "", lead.Address)
	addressUpdates(fields, "work_", lead.WorkAddress)
	return updateRow(GetDB(ctx, r.db), &models.Lead{}, lead.ID, mergeUpdates(fields, lead.Audit))
}

// List returns a page of leads, newest first
func (r *LeadRepository) List(ctx context.Context, filter domainRepos.ListFilter) ([]*entities.Lead, int64, error) {
	rows, total, err := paginate[models.Lead](func() *gorm.DB { return GetDB(ctx, r.db) }, filter)
	if err != nil {
		return nil, 0, err
	}
	return r.toEntities(rows), total, nil
}

// ListByStatus returns live leads with the given status, newest first
func (r *LeadRepository) ListByStatus(ctx context.Context, status entities.LeadStatus) ([]*entities.Lead, error) {
	var rows []models.Lead
	err := live(GetDB(ctx, r.db)).
		Where("status = ?", string(status)).
		Order("created_at DESC").Order("id DESC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return r.toEntities(rows), nil
}

type statusCount struct {
	Status string
	Total  int64
}

// CountByStatus counts live leads per status
func (r *LeadRepository) CountByStatus(ctx context.Context) (map[entities.LeadStatus]int64, error) {
	var rows []statusCount
	err := live(GetDB(ctx, r.db).Model(&models.Lead{})).
		Select("status, COUNT(*) AS total").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	counts := make(map[entities.LeadStatus]int64, len(rows))
	for _, row := range rows {
		counts[entities.LeadStatus(row.Status)] = row.Total
	}
	return counts, nil
}

func addressUpdates(fields map[string]interface{}, prefix string, a entities.Address) {
	fields[prefix+"postal_code"] = a.PostalCode
	fields[prefix+"street"] = a.Street
	fields[prefix+"neighborhood"] = a.Neighborhood
	fields[prefix+"city"] = a.City
	fields[prefix+"state"] = a.State
	fields[prefix+"number"] = a.Number
	fields[prefix+"complement"] = a.Complement
}

func (r *LeadRepository) toEntities(rows []models.Lead) []*entities.Lead {
	leads := make([]*entities.Lead, 0, len(rows))
	for i := range rows {
		leads = append(leads, r.toEntity(&rows[i]))
	}
	return leads
}

func (r *LeadRepository) toModel(l *entities.Lead) *models.Lead {
	return &models.Lead{
		ID:            l.ID,
		Name:          l.Name,
		Email:         l.Email,
		Phone:         l.Phone,
		Status:        string(l.Status),
		IsActive:      l.IsActive,
		TaxID:         l.TaxID,
		Address:       models.AddressColumns(l.Address),
		Profession:    l.Profession,
		LicenseNumber: l.LicenseNumber,
		Experience:    l.Experience,
		WorkAddress:   models.AddressColumns(l.WorkAddress),
		AuditColumns:  toAuditModel(l.Audit),
	}
}

func (r *LeadRepository) toEntity(m *models.Lead) *entities.Lead {
	return &entities.Lead{
		ID:            m.ID,
		Name:          m.Name,
		Email:         m.Email,
		Phone:         m.Phone,
		Status:        entities.LeadStatus(m.Status),
		IsActive:      m.IsActive,
		TaxID:         m.TaxID,
		Address:       entities.Address(m.Address),
		Profession:    m.Profession,
		LicenseNumber: m.LicenseNumber,
		Experience:    m.Experience,
		WorkAddress:   entities.Address(m.WorkAddress),
		Audit:         toAuditEntity(m.AuditColumns),
	}
}
