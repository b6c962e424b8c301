package db_models

import "gorm.io/datatypes"

type Plan struct {
	BaseModel
	Name         string `gorm:"uniqueIndex"`
	PriceMinor   int64  // 49900 = INR 499.00
	Currency     string `gorm:"size:3;default:INR"`
	DurationDays int

	// Feature tags, e.g. ["email_notification","priority_apply"].
	Features datatypes.JSON `gorm:"type:jsonb;default:'[]'"`
	IsActive bool           `gorm:"default:true"`
}
