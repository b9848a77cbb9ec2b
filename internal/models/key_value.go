package models

import "time"

type KeyValue struct {
	Key       string `gorm:"primaryKey"`
	Value     string `gorm:"not null"`
	UpdatedAt time.Time
}

func (KeyValue) TableName() string {
	return "kv_store"
}
