package repository

import (
	"context"
	stderrors "errors"
	"fmt"

	"gorm.io/gorm"

	"helpdesk/internal/domain/company"
	"helpdesk/internal/infrastructure/persistence/mappers"
	"helpdesk/internal/infrastructure/persistence/models"
	"helpdesk/internal/shared/authorization"
	"helpdesk/internal/shared/db"
	"helpdesk/internal/shared/errors"
)

type CompanyRepository struct {
	db     *gorm.DB
	mapper mappers.CompanyMapper
}

func NewCompanyRepository(database *gorm.DB) *CompanyRepository {
	return &CompanyRepository{
		db:     database,
		mapper: mappers.NewCompanyMapper(),
	}
}

func (r *CompanyRepository) Save(ctx context.Context, c *company.Company) error {
	model := r.mapper.ToModel(c)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		if stderrors.Is(err, gorm.ErrDuplicatedKey) {
			return errors.NewDuplicateKeyError(fmt.Sprintf("company %s already exists", c.Key()))
		}
		return fmt.Errorf("failed to save company: %w", err)
	}

	return nil
}

// Update rewrites the mutable attributes of one row by primary key. The
// table is never cleared and reinserted; the key row stays in place for
// referential history.
func (r *CompanyRepository) Update(ctx context.Context, c *company.Company) error {
	model := r.mapper.ToModel(c)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.CompanyModel{}).
		Where("key = ?", model.Key).
		Updates(map[string]interface{}{
			"name":         model.Name,
			"city":         model.City,
			"manager_name": model.ManagerName,
			"updated_at":   model.UpdatedAt,
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update company: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError(fmt.Sprintf("company %s not found", model.Key))
	}

	return nil
}

func (r *CompanyRepository) Delete(ctx context.Context, key string) error {
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.Where("key = ?", key).Delete(&models.CompanyModel{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete company: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError(fmt.Sprintf("company %s not found", key))
	}

	return nil
}

func (r *CompanyRepository) GetByKey(ctx context.Context, key string) (*company.Company, error) {
	var model models.CompanyModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("key = ?", key).First(&model).Error; err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.NewNotFoundError(fmt.Sprintf("company %s not found", key))
		}
		return nil, fmt.Errorf("failed to find company: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *CompanyRepository) List(ctx context.Context, pred authorization.Predicate, filter company.Filter) ([]*company.Company, int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	query := tx.Model(&models.CompanyModel{}).Scopes(pred.GormScope())
	if filter.City != nil {
		query = query.Where("city = ?", *filter.City)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count companies: %w", err)
	}

	var rows []models.CompanyModel
	if err := query.Order("name ASC").Find(&rows).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list companies: %w", err)
	}

	companies := make([]*company.Company, 0, len(rows))
	for i := range rows {
		c, err := r.mapper.ToDomain(&rows[i])
		if err != nil {
			return nil, 0, err
		}
		companies = append(companies, c)
	}

	return companies, total, nil
}

func (r *CompanyRepository) Count(ctx context.Context) (int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var total int64
	if err := tx.Model(&models.CompanyModel{}).Count(&total).Error; err != nil {
		return 0, fmt.Errorf("failed to count companies: %w", err)
	}

	return total, nil
}

// HasDependents reports whether any user or ticket still references the
// company key. Company deletion is refused while dependents exist.
func (r *CompanyRepository) HasDependents(ctx context.Context, key string) (bool, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var users int64
	if err := tx.Model(&models.UserModel{}).Where("company_key = ?", key).Count(&users).Error; err != nil {
		return false, fmt.Errorf("failed to count dependent users: %w", err)
	}
	if users > 0 {
		return true, nil
	}

	var tickets int64
	if err := tx.Model(&models.TicketModel{}).Where("company_key = ?", key).Count(&tickets).Error; err != nil {
		return false, fmt.Errorf("failed to count dependent tickets: %w", err)
	}

	return tickets > 0, nil
}
