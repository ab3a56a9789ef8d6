package models

type TicketModel struct {
	ID          uint    `gorm:"primaryKey"`
	CompanyKey  string  `gorm:"size:32;not null;index"`
	Author      string  `gorm:"size:200;not null"`
	Description string  `gorm:"type:text;not null"`
	Status      string  `gorm:"size:20;not null;index"`
	Stage       string  `gorm:"size:20;not null;index"`
	Value       float64 `gorm:"not null;default:0"`
	Version     int     `gorm:"not null;default:1"`
	OpenedAt    int64   `gorm:"not null;index"`
	ClosedAt    *int64
	CreatedAt   int64 `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt   int64 `gorm:"autoUpdateTime:milli;not null"`
}

func (TicketModel) TableName() string {
	return "tickets"
}
