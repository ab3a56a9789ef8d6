package mappers

import (
	"time"

	"helpdesk/internal/domain/company"
	"helpdesk/internal/infrastructure/persistence/models"
)

// CompanyMapper handles the conversion between Company domain entities and persistence models.
type CompanyMapper interface {
	ToModel(c *company.Company) *models.CompanyModel
	ToDomain(model *models.CompanyModel) (*company.Company, error)
}

type CompanyMapperImpl struct{}

func NewCompanyMapper() CompanyMapper {
	return &CompanyMapperImpl{}
}

func (m *CompanyMapperImpl) ToModel(c *company.Company) *models.CompanyModel {
	return &models.CompanyModel{
		Key:         c.Key(),
		Name:        c.Name(),
		City:        c.City(),
		ManagerName: c.ManagerName(),
		CreatedAt:   c.CreatedAt().UnixMilli(),
		UpdatedAt:   c.UpdatedAt().UnixMilli(),
	}
}

func (m *CompanyMapperImpl) ToDomain(model *models.CompanyModel) (*company.Company, error) {
	return company.ReconstructCompany(
		model.Key,
		model.Name,
		model.City,
		model.ManagerName,
		time.UnixMilli(model.CreatedAt).UTC(),
		time.UnixMilli(model.UpdatedAt).UTC(),
	)
}
