package models

type UserModel struct {
	Username     string  `gorm:"primaryKey;size:64"`
	PasswordHash string  `gorm:"size:100;not null"`
	CompanyKey   *string `gorm:"size:32;index"`
	DisplayName  string  `gorm:"size:200;not null"`
	Role         string  `gorm:"size:20;not null;index"`
	CreatedAt    int64   `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt    int64   `gorm:"autoUpdateTime:milli;not null"`
}

func (UserModel) TableName() string {
	return "users"
}
