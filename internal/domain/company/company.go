package company

import (
	"fmt"
	"strings"
	"time"

	"helpdesk/internal/shared/biztime"
)

// Company is the billing unit on whose behalf tickets are raised. Its key is
// the business-registration number and never changes after creation.
type Company struct {
	key         string
	name        string
	city        string
	managerName string
	createdAt   time.Time
	updatedAt   time.Time
}

func NewCompany(key, name, city, managerName string) (*Company, error) {
	key = strings.TrimSpace(key)
	if len(key) == 0 {
		return nil, fmt.Errorf("company key is required")
	}
	if len(key) > 32 {
		return nil, fmt.Errorf("company key exceeds maximum length of 32 characters")
	}
	if len(strings.TrimSpace(name)) == 0 {
		return nil, fmt.Errorf("company name is required")
	}
	if len(name) > 200 {
		return nil, fmt.Errorf("company name exceeds maximum length of 200 characters")
	}

	now := biztime.NowUTC()

	return &Company{
		key:         key,
		name:        name,
		city:        city,
		managerName: managerName,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

func ReconstructCompany(key, name, city, managerName string, createdAt, updatedAt time.Time) (*Company, error) {
	if len(key) == 0 {
		return nil, fmt.Errorf("company key is required")
	}
	if len(name) == 0 {
		return nil, fmt.Errorf("company name is required")
	}

	return &Company{
		key:         key,
		name:        name,
		city:        city,
		managerName: managerName,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}, nil
}

func (c *Company) Key() string {
	return c.key
}

func (c *Company) Name() string {
	return c.name
}

func (c *Company) City() string {
	return c.city
}

func (c *Company) ManagerName() string {
	return c.managerName
}

func (c *Company) CreatedAt() time.Time {
	return c.createdAt
}

func (c *Company) UpdatedAt() time.Time {
	return c.updatedAt
}

// UpdateDetails replaces the mutable attributes. The key is identity and
// cannot change.
func (c *Company) UpdateDetails(name, city, managerName string) error {
	if len(strings.TrimSpace(name)) == 0 {
		return fmt.Errorf("company name is required")
	}

	c.name = name
	c.city = city
	c.managerName = managerName
	c.updatedAt = biztime.NowUTC()

	return nil
}
