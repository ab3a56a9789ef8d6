package models

type CompanyModel struct {
	Key         string `gorm:"primaryKey;size:32"`
	Name        string `gorm:"size:200;not null"`
	City        string `gorm:"size:100"`
	ManagerName string `gorm:"size:200"`
	CreatedAt   int64  `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt   int64  `gorm:"autoUpdateTime:milli;not null"`

	// Note: No foreign key constraints or associations.
	// All relationships are managed by application business logic.
}

func (CompanyModel) TableName() string {
	return "companies"
}
