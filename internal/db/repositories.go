package db

import "gorm.io/gorm"

type Repositories struct {
	Users     *UserRepository
	Entries   *EntryRepository
	KeyValues *KeyValueRepository
}

func NewRepositories(database *gorm.DB) *Repositories {
	return &Repositories{
		Users:     NewUserRepository(database),
		Entries:   NewEntryRepository(database),
		KeyValues: NewKeyValueRepository(database),
	}
}
