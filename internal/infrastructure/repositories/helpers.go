package repositories

import (
	"errors"

	"captura-leads.backend/internal/domain/entities"
	domainerrors "captura-leads.backend/internal/domain/errors"
	domainRepos "captura-leads.backend/internal/domain/repositories"
	"captura-leads.backend/internal/infrastructure/models"
	"github.com/volatiletech/null/v8"
	"gorm.io/gorm"
)

func toAuditModel(a entities.Audit) models.AuditColumns {
	return models.AuditColumns{
		CreatedBy:     a.CreatedBy.Ptr(),
		CreatedAt:     a.CreatedAt,
		ModifiedBy:    a.ModifiedBy.Ptr(),
		ModifiedAt:    a.ModifiedAt,
		DeactivatedBy: a.DeactivatedBy.Ptr(),
		DeactivatedAt: a.DeactivatedAt.Ptr(),
	}
}

func toAuditEntity(m models.AuditColumns) entities.Audit {
	return entities.Audit{
		CreatedBy:     null.StringFromPtr(m.CreatedBy),
		CreatedAt:     m.CreatedAt,
		ModifiedBy:    null.StringFromPtr(m.ModifiedBy),
		ModifiedAt:    m.ModifiedAt,
		DeactivatedBy: null.StringFromPtr(m.DeactivatedBy),
		DeactivatedAt: null.TimeFromPtr(m.DeactivatedAt),
	}
}

// auditUpdates returns the audit columns written by every Update.
// Creation stamps are immutable and never included.
func auditUpdates(a entities.Audit) map[string]interface{} {
	return map[string]interface{}{
		"modified_by":    a.ModifiedBy.Ptr(),
		"modified_at":    a.ModifiedAt,
		"deactivated_by": a.DeactivatedBy.Ptr(),
		"deactivated_at": a.DeactivatedAt.Ptr(),
	}
}

func translateError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return domainerrors.ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return domainerrors.ErrConflict
	}
	return err
}

func live(db *gorm.DB) *gorm.DB {
	return db.Where("deactivated_at IS NULL")
}

// paginate counts and fetches one page, newest first. query builds a fresh
// statement on each call so Count and Find do not share state.
func paginate[M any](query func() *gorm.DB, filter domainRepos.ListFilter) ([]M, int64, error) {
	scoped := func() *gorm.DB {
		q := query().Model(new(M))
		if !filter.IncludeInactive {
			q = live(q)
		}
		return q
	}

	var total int64
	if err := scoped().Count(&total).Error; err != nil {
		return nil, 0, err
	}

	q := scoped().Order("created_at DESC").Order("id DESC").Offset(filter.Offset)
	if filter.Limit > 0 {
		q = q.Limit(filter.Limit)
	}
	var rows []M
	if err := q.Find(&rows).Error; err != nil {
		return nil, 0, err
	}
	return rows, total, nil
}

func updateRow(db *gorm.DB, model interface{}, id interface{}, updates map[string]interface{}) error {
	result := db.Model(model).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return translateError(result.Error)
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func mergeUpdates(fields map[string]interface{}, audit entities.Audit) map[string]interface{} {
	for k, v := range auditUpdates(audit) {
		fields[k] = v
	}
	return fields
}
